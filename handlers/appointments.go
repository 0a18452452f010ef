// File: handlers/appointments.go
package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "brightsmile/database/repository/appointment"
	"brightsmile/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the back-office appointment views.
type AppointmentHandler struct {
	Svc appointment.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler instance.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// ListAppointments returns every appointment, newest date first.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var (
		appts interface{}
		err   error
	)
	if c.Query("scope") == "today" {
		appts, err = h.Svc.ListToday()
	} else {
		appts, err = h.Svc.ListAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointment returns one appointment by id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// UpdateAppointmentStatus applies an admin status transition.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.UpdateStatus(c.Param("id"), input.Status); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		case errors.Is(err, appointment.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrTerminalStatus):
			c.JSON(http.StatusConflict, gin.H{"error": "appointment is already completed or cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment status updated"})
}

// DashboardStats returns the admin dashboard counters.
func (h *AppointmentHandler) DashboardStats(c *gin.Context) {
	stats, err := h.Svc.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPatients returns the known patients.
func (h *AppointmentHandler) ListPatients(c *gin.Context) {
	patients, err := h.Svc.ListPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list patients", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}
