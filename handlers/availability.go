// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"

	"brightsmile/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot grid publicly and slot/vacation
// management to the back office.
type AvailabilityHandler struct {
	Svc availability.Service
}

// NewAvailabilityHandler creates a new AvailabilityHandler instance.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// DayGrid returns the slot grid for one date, optionally scoped to a doctor.
func (h *AvailabilityHandler) DayGrid(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	day, err := h.Svc.DayGrid(c.Query("doctorId"), date)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ListSlots returns the stored exception rows for a doctor in a date range.
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}
	slots, err := h.Svc.ListSlots(c.Query("doctorId"), from, to)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ToggleSlot flips one slot between available and closed.
func (h *AvailabilityHandler) ToggleSlot(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctorId"`
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	slot, err := h.Svc.ToggleSlot(input.DoctorID, input.Date, input.Time)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// AddVacation records a doctor absence and clears slot rows in its range.
func (h *AvailabilityHandler) AddVacation(c *gin.Context) {
	var input struct {
		DoctorID  string `json:"doctorId" binding:"required"`
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	vacation, err := h.Svc.AddVacation(input.DoctorID, input.StartDate, input.EndDate, input.Reason)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vacation": vacation})
}

// ApplyVacationCascade re-runs the slot removal for a recorded vacation.
func (h *AvailabilityHandler) ApplyVacationCascade(c *gin.Context) {
	if err := h.Svc.ApplyVacationCascade(c.Param("id")); err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vacation cascade applied"})
}

// DeleteVacation removes the vacation record only.
func (h *AvailabilityHandler) DeleteVacation(c *gin.Context) {
	if err := h.Svc.DeleteVacation(c.Param("id")); err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vacation deleted"})
}

// ListVacations returns a doctor's recorded absences.
func (h *AvailabilityHandler) ListVacations(c *gin.Context) {
	vacations, err := h.Svc.ListVacations(c.Query("doctorId"))
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacations": vacations})
}

func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidRange),
		errors.Is(err, availability.ErrUnknownTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "availability operation failed", "details": err.Error()})
	}
}
