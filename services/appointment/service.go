// File: services/appointment/service.go
package appointment

import (
	"errors"
	"time"

	appointmentRepo "brightsmile/database/repository/appointment"
	doctorRepo "brightsmile/database/repository/doctor"
	patientRepo "brightsmile/database/repository/patient"
	serviceRepo "brightsmile/database/repository/service"
	"brightsmile/models"
)

var (
	// ErrUnknownStatus is returned for status values outside the known set.
	ErrUnknownStatus = errors.New("unknown appointment status")
	// ErrTerminalStatus is returned when mutating a completed or cancelled
	// appointment.
	ErrTerminalStatus = errors.New("appointment status is terminal")
)

// AppointmentService is the back-office view over booked visits.
type AppointmentService interface {
	ListAll() ([]models.Appointment, error)
	ListToday() ([]models.Appointment, error)
	Get(id string) (*models.Appointment, error)
	// UpdateStatus applies an admin status transition. Completed and
	// cancelled are terminal.
	UpdateStatus(id, status string) error
	Stats() (models.DashboardStats, error)
	ListPatients() ([]models.Patient, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Services serviceRepo.ServiceRepository
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
}

const dateLayout = "2006-01-02"

func (s *DefaultAppointmentService) ListAll() ([]models.Appointment, error) {
	appts, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.joinDisplayFields(appts)
}

func (s *DefaultAppointmentService) ListToday() ([]models.Appointment, error) {
	appts, err := s.Repo.GetByDate(time.Now().Format(dateLayout))
	if err != nil {
		return nil, err
	}
	return s.joinDisplayFields(appts)
}

func (s *DefaultAppointmentService) Get(id string) (*models.Appointment, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultAppointmentService) UpdateStatus(id, status string) error {
	if !models.ValidAppointmentStatus(status) {
		return ErrUnknownStatus
	}
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt.IsTerminal() {
		return ErrTerminalStatus
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *DefaultAppointmentService) Stats() (models.DashboardStats, error) {
	today := time.Now().Format(dateLayout)

	todayCount, err := s.Repo.CountByDate(today)
	if err != nil {
		return models.DashboardStats{}, err
	}
	completedToday, err := s.Repo.CountByDateAndStatus(today, models.AppointmentCompleted)
	if err != nil {
		return models.DashboardStats{}, err
	}
	patients, err := s.Patients.Count()
	if err != nil {
		return models.DashboardStats{}, err
	}

	return models.DashboardStats{
		TodayAppointments: int(todayCount),
		TotalPatients:     int(patients),
		CompletedToday:    int(completedToday),
	}, nil
}

func (s *DefaultAppointmentService) ListPatients() ([]models.Patient, error) {
	return s.Patients.GetAll()
}

// joinDisplayFields attaches service titles and doctor names for the admin
// tables. Lookup tables are small, so both are fetched whole.
func (s *DefaultAppointmentService) joinDisplayFields(appts []models.Appointment) ([]models.Appointment, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, err
	}
	doctors, err := s.Doctors.GetAll()
	if err != nil {
		return nil, err
	}

	titleByID := make(map[string]string, len(services))
	for _, svc := range services {
		titleByID[svc.ID] = svc.Title
	}
	nameByID := make(map[string]string, len(doctors))
	for _, doc := range doctors {
		nameByID[doc.ID] = doc.Name
	}

	for i := range appts {
		appts[i].ServiceTitle = titleByID[appts[i].ServiceID]
		appts[i].DoctorName = nameByID[appts[i].DoctorID]
	}
	return appts, nil
}
