// File: services/booking/interface.go
package booking

import (
	"context"

	appointmentRepo "brightsmile/database/repository/appointment"
	doctorRepo "brightsmile/database/repository/doctor"
	patientRepo "brightsmile/database/repository/patient"
	serviceRepo "brightsmile/database/repository/service"
	"brightsmile/models"
)

// BookingSessionService drives the public booking wizard. Each session is a
// single draft appointment moved through service → datetime → details →
// confirmation, submitted exactly once.
type BookingSessionService interface {
	StartSession(ctx context.Context) (*models.BookingSession, []models.Service, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, serviceID, doctorID string) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	SelectTime(ctx context.Context, sessionID, timeStr string) (*models.BookingSession, error)
	SetDetails(ctx context.Context, sessionID string, details ContactDetails) (*models.BookingSession, error)
	Next(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Appointment, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// ContactDetails are the patient fields collected on the details step.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// AvailabilityProvider is the slice of the availability service the wizard
// needs: the day grid shown on the datetime step.
type AvailabilityProvider interface {
	DayGrid(doctorID, date string) (models.DayAvailability, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store        SessionStore
	Availability AvailabilityProvider
	Services     serviceRepo.ServiceRepository
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Patients     patientRepo.PatientRepository
}
