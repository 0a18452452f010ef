package availability

import (
	"fmt"
	"time"

	"brightsmile/config"
	"brightsmile/models"
	"brightsmile/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultAvailabilityService) grid() []string {
	if len(s.Grid) == 0 {
		openH, closeH, step := config.AppConfig.ClinicOpenHour, config.AppConfig.ClinicCloseHour, config.AppConfig.SlotMinutes
		if step == 0 {
			openH, closeH, step = 9, 17, 30
		}
		s.Grid = utils.GenerateTimeGrid(openH, closeH, step)
	}
	return s.Grid
}

func (s *DefaultAvailabilityService) onGrid(timeStr string) bool {
	for _, t := range s.grid() {
		if t == timeStr {
			return true
		}
	}
	return false
}

// DayGrid builds the slot grid for one doctor and date. Pending and
// confirmed appointments mark slots booked; past dates, Sundays, vacations
// and explicit off rows mark them closed. Booked wins over closed only when
// the day itself is open.
func (s *DefaultAvailabilityService) DayGrid(doctorID, date string) (models.DayAvailability, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return models.DayAvailability{}, ErrInvalidDate
	}

	today := time.Now().Format(dateLayout)
	dayClosed := date < today || day.Weekday() == time.Sunday

	if !dayClosed && doctorID != "" {
		covering, err := s.Vacations.GetCovering(doctorID, date)
		if err != nil {
			return models.DayAvailability{}, fmt.Errorf("failed to check vacations: %w", err)
		}
		dayClosed = len(covering) > 0
	}

	var rows []models.AvailabilitySlot
	if !dayClosed && doctorID != "" {
		if rows, err = s.Slots.GetByDoctorAndDate(doctorID, date); err != nil {
			return models.DayAvailability{}, fmt.Errorf("failed to load slot rows: %w", err)
		}
	}
	offByTime := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !row.IsAvailable {
			offByTime[row.StartTime] = true
		}
	}

	var appts []models.Appointment
	if !dayClosed {
		if appts, err = s.Appointments.GetByDate(date); err != nil {
			return models.DayAvailability{}, fmt.Errorf("failed to load appointments: %w", err)
		}
	}

	out := models.DayAvailability{DoctorID: doctorID, Date: date}
	for _, t := range s.grid() {
		status := models.SlotStatusAvailable
		switch {
		case dayClosed:
			status = models.SlotStatusClosed
		case offByTime[t]:
			status = models.SlotStatusClosed
		case slotTaken(appts, doctorID, date, t):
			status = models.SlotStatusBooked
		}
		out.Slots = append(out.Slots, models.GridSlot{Time: t, Status: status})
	}
	return out, nil
}

// slotTaken reports whether an active appointment occupies the slot. An
// appointment without a doctor ("any doctor") blocks the slot for every
// doctor, and a query without a doctor sees every doctor's bookings.
func slotTaken(appts []models.Appointment, doctorID, date, timeStr string) bool {
	for _, a := range appts {
		if !a.Occupies(date, timeStr) {
			continue
		}
		if doctorID == "" || a.DoctorID == "" || a.DoctorID == doctorID {
			return true
		}
	}
	return false
}

func (s *DefaultAvailabilityService) ListSlots(doctorID, from, to string) ([]models.AvailabilitySlot, error) {
	if _, err := time.Parse(dateLayout, from); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return nil, ErrInvalidDate
	}
	return s.Slots.GetByDoctorInRange(doctorID, from, to)
}

// ToggleSlot flips one triple. With no stored row the slot sits at its
// default (available), so the first toggle stores an explicit off row.
func (s *DefaultAvailabilityService) ToggleSlot(doctorID, date, timeStr string) (*models.AvailabilitySlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	if !s.onGrid(timeStr) {
		return nil, ErrUnknownTime
	}

	row, err := s.Slots.GetByKey(doctorID, date, timeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to look up slot: %w", err)
	}
	if row == nil {
		row = &models.AvailabilitySlot{
			ID:          uuid.New().String(),
			DoctorID:    doctorID,
			SlotDate:    date,
			StartTime:   timeStr,
			IsAvailable: false,
		}
		if err := s.Slots.Create(row); err != nil {
			return nil, err
		}
		return row, nil
	}

	row.IsAvailable = !row.IsAvailable
	if err := s.Slots.Update(row); err != nil {
		return nil, err
	}
	return row, nil
}

// AddVacation inserts the vacation record, then deletes the doctor's slot
// rows inside the range. The two steps are not transactional: a failed
// deletion leaves the vacation recorded and is logged for a manual
// ApplyVacationCascade retry.
func (s *DefaultAvailabilityService) AddVacation(doctorID, startDate, endDate, reason string) (*models.DoctorVacation, error) {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return nil, ErrInvalidDate
	}
	if startDate > endDate {
		return nil, ErrInvalidRange
	}

	v := &models.DoctorVacation{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}
	if err := s.Vacations.Create(v); err != nil {
		return nil, err
	}

	deleted, err := s.Slots.DeleteRange(doctorID, startDate, endDate)
	if err != nil {
		utils.GetLogger().Warn("vacation recorded but slot cleanup failed; re-run cascade",
			zap.String("vacationID", v.ID), zap.Error(err))
		return v, nil
	}
	utils.GetLogger().Info("vacation recorded",
		zap.String("vacationID", v.ID), zap.Int64("slotsRemoved", deleted))
	return v, nil
}

func (s *DefaultAvailabilityService) ApplyVacationCascade(vacationID string) error {
	v, err := s.Vacations.GetByID(vacationID)
	if err != nil {
		return err
	}
	if _, err := s.Slots.DeleteRange(v.DoctorID, v.StartDate, v.EndDate); err != nil {
		return fmt.Errorf("failed to remove slots for vacation %s: %w", vacationID, err)
	}
	return nil
}

// DeleteVacation removes the record only. Slots removed by the cascade are
// not regenerated; re-opening them is a separate manual action.
func (s *DefaultAvailabilityService) DeleteVacation(id string) error {
	return s.Vacations.Delete(id)
}

func (s *DefaultAvailabilityService) ListVacations(doctorID string) ([]models.DoctorVacation, error) {
	return s.Vacations.GetByDoctor(doctorID)
}
