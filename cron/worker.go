package cron

import (
	"time"

	slotRepo "brightsmile/database/repository/slot"
	"brightsmile/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// StartMaintenanceWorker schedules the nightly cleanup. Slot exception rows
// dated before today never affect availability again, so they are purged.
func StartMaintenanceWorker(slots slotRepo.SlotRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("15 2 * * *", func() {
		today := time.Now().Format(dateLayout)
		deleted, err := slots.DeleteBefore(today)
		if err != nil {
			utils.GetLogger().Error("nightly slot cleanup failed", zap.Error(err))
			return
		}
		utils.GetLogger().Info("nightly slot cleanup done",
			zap.String("before", today),
			zap.Int64("deleted", deleted),
		)
	})
	if err != nil {
		utils.GetLogger().Error("failed to schedule nightly slot cleanup", zap.Error(err))
		return c
	}

	c.Start()
	return c
}
