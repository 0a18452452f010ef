// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"brightsmile/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the public booking wizard over HTTP.
type BookingHandler struct {
	Svc booking.BookingSessionService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// StartSession opens a fresh wizard session and returns the bookable services.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, services, err := h.Svc.StartSession(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  session,
		"services": services,
	})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c, c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectService records the chosen service (and optionally a doctor).
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		DoctorID  string `json:"doctorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectService(c, c.Param("sessionID"), input.ServiceID, input.DoctorID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectDate records the visit date and returns that day's slot grid. Any
// previously chosen time is discarded.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectDate(c, c.Param("sessionID"), input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectTime records the visit time after re-checking the slot is still open.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectTime(c, c.Param("sessionID"), input.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetDetails records the patient's contact details.
func (h *BookingHandler) SetDetails(c *gin.Context) {
	var input booking.ContactDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SetDetails(c, c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Next advances the wizard one step if the current step is complete.
func (h *BookingHandler) Next(c *gin.Context) {
	session, err := h.Svc.Next(c, c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back moves the wizard one step backwards.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c, c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Submit turns the completed draft into an appointment.
func (h *BookingHandler) Submit(c *gin.Context) {
	appt, err := h.Svc.Submit(c, c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "appointment booked successfully",
		"appointment": appt,
	})
}

// Reset clears the session back to the first step.
func (h *BookingHandler) Reset(c *gin.Context) {
	session, err := h.Svc.Reset(c, c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession abandons the wizard and deletes the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c, c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.Is(err, booking.ErrStepIncomplete),
		errors.Is(err, booking.ErrWrongStep),
		errors.Is(err, booking.ErrNoDateSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrUnknownDoctor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "the selected time is no longer available"})
	case errors.Is(err, booking.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "submission already in progress"})
	case errors.Is(err, booking.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "this booking has already been submitted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed", "details": err.Error()})
	}
}
