package appointment

import (
	"fmt"
	"testing"
	"time"

	"brightsmile/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAppointmentRepo struct {
	appts []models.Appointment
}

func (r *memAppointmentRepo) Create(appt *models.Appointment) error {
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *memAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			cp := r.appts[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (r *memAppointmentRepo) GetAll() ([]models.Appointment, error) { return r.appts, nil }

func (r *memAppointmentRepo) GetByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.AppointmentDate == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) GetActiveAt(date, timeStr string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Occupies(date, timeStr) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) UpdateStatus(id, status string) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

func (r *memAppointmentRepo) CountByDate(date string) (int64, error) {
	appts, _ := r.GetByDate(date)
	return int64(len(appts)), nil
}

func (r *memAppointmentRepo) CountByDateAndStatus(date, status string) (int64, error) {
	var n int64
	for _, a := range r.appts {
		if a.AppointmentDate == date && a.Status == status {
			n++
		}
	}
	return n, nil
}

type memServiceRepo struct{ services []models.Service }

func (r *memServiceRepo) Create(svc *models.Service) error { return nil }
func (r *memServiceRepo) Update(svc *models.Service) error { return nil }
func (r *memServiceRepo) Delete(id string) error           { return nil }
func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *memServiceRepo) GetAll() ([]models.Service, error)    { return r.services, nil }
func (r *memServiceRepo) GetActive() ([]models.Service, error) { return r.services, nil }

type memDoctorRepo struct{ doctors []models.Doctor }

func (r *memDoctorRepo) Create(doc *models.Doctor) error { return nil }
func (r *memDoctorRepo) Update(doc *models.Doctor) error { return nil }
func (r *memDoctorRepo) Delete(id string) error          { return nil }
func (r *memDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *memDoctorRepo) GetAll() ([]models.Doctor, error)    { return r.doctors, nil }
func (r *memDoctorRepo) GetActive() ([]models.Doctor, error) { return r.doctors, nil }

type memPatientRepo struct{ patients []models.Patient }

func (r *memPatientRepo) UpsertByEmail(p *models.Patient) error {
	r.patients = append(r.patients, *p)
	return nil
}
func (r *memPatientRepo) GetAll() ([]models.Patient, error) { return r.patients, nil }
func (r *memPatientRepo) Count() (int64, error)             { return int64(len(r.patients)), nil }

func newTestService() (*DefaultAppointmentService, *memAppointmentRepo) {
	repo := &memAppointmentRepo{}
	svc := &DefaultAppointmentService{
		Repo: repo,
		Services: &memServiceRepo{services: []models.Service{
			{ID: "svc-1", Title: "Teeth Cleaning"},
		}},
		Doctors: &memDoctorRepo{doctors: []models.Doctor{
			{ID: "doc-1", Name: "Sarah Mitchell"},
		}},
		Patients: &memPatientRepo{patients: []models.Patient{
			{ID: "pat-1", Email: "jane@example.com"},
		}},
	}
	return svc, repo
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, repo := newTestService()
	repo.appts = []models.Appointment{
		{ID: "appt-1", Status: models.AppointmentPending},
		{ID: "appt-2", Status: models.AppointmentCompleted},
		{ID: "appt-3", Status: models.AppointmentCancelled},
	}

	require.NoError(t, svc.UpdateStatus("appt-1", models.AppointmentConfirmed))
	assert.Equal(t, models.AppointmentConfirmed, repo.appts[0].Status)

	assert.ErrorIs(t, svc.UpdateStatus("appt-1", "rescheduled"), ErrUnknownStatus)
	assert.ErrorIs(t, svc.UpdateStatus("appt-2", models.AppointmentConfirmed), ErrTerminalStatus)
	assert.ErrorIs(t, svc.UpdateStatus("appt-3", models.AppointmentPending), ErrTerminalStatus)
	assert.Error(t, svc.UpdateStatus("missing", models.AppointmentConfirmed))
}

func TestListAllJoinsDisplayFields(t *testing.T) {
	svc, repo := newTestService()
	repo.appts = []models.Appointment{
		{ID: "appt-1", ServiceID: "svc-1", DoctorID: "doc-1", Status: models.AppointmentPending},
		{ID: "appt-2", ServiceID: "gone", DoctorID: "", Status: models.AppointmentPending},
	}

	appts, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "Teeth Cleaning", appts[0].ServiceTitle)
	assert.Equal(t, "Sarah Mitchell", appts[0].DoctorName)
	assert.Empty(t, appts[1].ServiceTitle, "unknown service ids resolve to empty titles")
	assert.Empty(t, appts[1].DoctorName)
}

func TestStats(t *testing.T) {
	svc, repo := newTestService()
	today := time.Now().Format("2006-01-02")
	repo.appts = []models.Appointment{
		{ID: "appt-1", AppointmentDate: today, Status: models.AppointmentPending},
		{ID: "appt-2", AppointmentDate: today, Status: models.AppointmentCompleted},
		{ID: "appt-3", AppointmentDate: "2020-01-01", Status: models.AppointmentCompleted},
	}

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 1, stats.TotalPatients)
}
