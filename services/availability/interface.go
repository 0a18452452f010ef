// File: services/availability/interface.go
package availability

import (
	appointmentRepo "brightsmile/database/repository/appointment"
	slotRepo "brightsmile/database/repository/slot"
	vacationRepo "brightsmile/database/repository/vacation"
	"brightsmile/models"
)

// Service manages which (doctor, date, time) triples are bookable. The
// store holds exceptions only; absent a stored row, a slot on a valid
// working day is available by default.
type Service interface {
	// DayGrid returns the full slot grid for one doctor and date. Slots
	// that cannot be booked stay in the grid with status booked or closed.
	DayGrid(doctorID, date string) (models.DayAvailability, error)
	// ListSlots returns the stored exception rows in a date range.
	ListSlots(doctorID, from, to string) ([]models.AvailabilitySlot, error)
	// ToggleSlot flips the effective availability of one triple. Two
	// toggles restore the original value.
	ToggleSlot(doctorID, date, timeStr string) (*models.AvailabilitySlot, error)
	// AddVacation records an absence range and removes the doctor's slot
	// rows inside it. The removal is best-effort; see ApplyVacationCascade.
	AddVacation(doctorID, startDate, endDate, reason string) (*models.DoctorVacation, error)
	// ApplyVacationCascade re-runs the slot removal for a recorded
	// vacation. Idempotent: deleting absent rows is a no-op.
	ApplyVacationCascade(vacationID string) error
	// DeleteVacation removes the vacation record only. Slots deleted by
	// the cascade stay deleted.
	DeleteVacation(id string) error
	ListVacations(doctorID string) ([]models.DoctorVacation, error)
}

// DefaultAvailabilityService implements Service.
type DefaultAvailabilityService struct {
	Slots        slotRepo.SlotRepository
	Vacations    vacationRepo.VacationRepository
	Appointments appointmentRepo.AppointmentRepository

	// Grid is the clinic's bookable times. Left empty, it is built from the
	// configured opening hours.
	Grid []string
}
