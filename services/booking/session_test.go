package booking

import (
	"context"
	"fmt"
	"testing"

	"brightsmile/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	sessions map[string]models.BookingSession
	locks    map[string]bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		sessions: make(map[string]models.BookingSession),
		locks:    make(map[string]bool),
	}
}

func (s *memSessionStore) Save(_ context.Context, session *models.BookingSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := session
	return &cp, nil
}

func (s *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *memSessionStore) AcquireSubmitLock(_ context.Context, sessionID string) (bool, error) {
	if s.locks[sessionID] {
		return false, nil
	}
	s.locks[sessionID] = true
	return true, nil
}

func (s *memSessionStore) ReleaseSubmitLock(_ context.Context, sessionID string) error {
	delete(s.locks, sessionID)
	return nil
}

// fixedGridProvider serves the same grid for every date, with a configurable
// set of unavailable times.
type fixedGridProvider struct {
	grid   []string
	booked map[string]bool
}

func (p *fixedGridProvider) DayGrid(doctorID, date string) (models.DayAvailability, error) {
	out := models.DayAvailability{DoctorID: doctorID, Date: date}
	for _, t := range p.grid {
		status := models.SlotStatusAvailable
		if p.booked[t] {
			status = models.SlotStatusBooked
		}
		out.Slots = append(out.Slots, models.GridSlot{Time: t, Status: status})
	}
	return out, nil
}

type memServiceRepo struct {
	services map[string]*models.Service
}

func (r *memServiceRepo) Create(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *memServiceRepo) Update(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *memServiceRepo) Delete(id string) error           { delete(r.services, id); return nil }

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return svc, nil
}

func (r *memServiceRepo) GetAll() ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (r *memServiceRepo) GetActive() ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		if svc.IsActive {
			out = append(out, *svc)
		}
	}
	return out, nil
}

type memDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (r *memDoctorRepo) Create(doc *models.Doctor) error { r.doctors[doc.ID] = doc; return nil }
func (r *memDoctorRepo) Update(doc *models.Doctor) error { r.doctors[doc.ID] = doc; return nil }
func (r *memDoctorRepo) Delete(id string) error          { delete(r.doctors, id); return nil }

func (r *memDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	doc, ok := r.doctors[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	return doc, nil
}

func (r *memDoctorRepo) GetAll() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doc := range r.doctors {
		out = append(out, *doc)
	}
	return out, nil
}

func (r *memDoctorRepo) GetActive() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doc := range r.doctors {
		if doc.IsActive {
			out = append(out, *doc)
		}
	}
	return out, nil
}

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
			return &r.appts[i], nil
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

type memPatientRepo struct {
	byEmail map[string]*models.Patient
}

func (r *memPatientRepo) UpsertByEmail(p *models.Patient) error {
	if r.byEmail == nil {
		r.byEmail = make(map[string]*models.Patient)
	}
	r.byEmail[p.Email] = p
	return nil
}

func (r *memPatientRepo) GetAll() ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.byEmail {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPatientRepo) Count() (int64, error) { return int64(len(r.byEmail)), nil }

type wizardFixture struct {
	svc      *DefaultBookingSessionService
	store    *memSessionStore
	grid     *fixedGridProvider
	appts    *memAppointmentRepo
	patients *memPatientRepo
}

func newWizard() *wizardFixture {
	store := newMemSessionStore()
	grid := &fixedGridProvider{
		grid:   []string{"09:00", "09:30", "10:00"},
		booked: map[string]bool{},
	}
	appts := &memAppointmentRepo{}
	patients := &memPatientRepo{}

	svc := &DefaultBookingSessionService{
		Store:        store,
		Availability: grid,
		Services: &memServiceRepo{services: map[string]*models.Service{
			"svc-1": {ID: "svc-1", Title: "Teeth Cleaning", IsActive: true},
			"svc-2": {ID: "svc-2", Title: "Old Whitening", IsActive: false},
		}},
		Doctors: &memDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", Name: "Sarah Mitchell", IsActive: true},
		}},
		Appointments: appts,
		Patients:     patients,
	}
	return &wizardFixture{svc: svc, store: store, grid: grid, appts: appts, patients: patients}
}

// walkToDetails drives a fresh session up to the details step.
func (f *wizardFixture) walkToDetails(t *testing.T) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "doc-1")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)

	_, err = f.svc.SelectDate(ctx, session.SessionID, "2030-06-10")
	require.NoError(t, err)
	_, err = f.svc.SelectTime(ctx, session.SessionID, "10:00")
	require.NoError(t, err)
	session, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StepDetails, session.Step)
	return session
}

func TestStartSessionReturnsActiveServicesOnly(t *testing.T) {
	f := newWizard()

	session, services, err := f.svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)
	require.Len(t, services, 1)
	assert.Equal(t, "svc-1", services[0].ID)
}

func TestNextBlockedUntilStepComplete(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.Next(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "")
	require.NoError(t, err)
	session, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)

	// Date without time still blocks.
	_, err = f.svc.SelectDate(ctx, session.SessionID, "2030-06-10")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrStepIncomplete)
}

func TestSelectServiceRejectsInactive(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-2", "")
	assert.ErrorIs(t, err, ErrUnknownService)
	_, err = f.svc.SelectService(ctx, session.SessionID, "nope", "")
	assert.ErrorIs(t, err, ErrUnknownService)
	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "nope")
	assert.ErrorIs(t, err, ErrUnknownDoctor)
}

func TestSelectDateClearsTime(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)

	_, err = f.svc.SelectDate(ctx, session.SessionID, "2030-06-10")
	require.NoError(t, err)
	session, err = f.svc.SelectTime(ctx, session.SessionID, "09:30")
	require.NoError(t, err)
	require.Equal(t, "09:30", session.Draft.Time)

	session, err = f.svc.SelectDate(ctx, session.SessionID, "2030-06-11")
	require.NoError(t, err)
	assert.Equal(t, "2030-06-11", session.Draft.Date)
	assert.Empty(t, session.Draft.Time, "changing the date must clear the chosen time")
}

func TestSelectTimeRequiresDate(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)

	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:30")
	assert.ErrorIs(t, err, ErrNoDateSelected)
}

func TestSelectTimeRejectsTakenSlot(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, session.SessionID)
	require.NoError(t, err)
	_, err = f.svc.SelectDate(ctx, session.SessionID, "2030-06-10")
	require.NoError(t, err)

	// Another patient books the slot between grid render and selection.
	f.grid.booked["09:30"] = true

	_, err = f.svc.SelectTime(ctx, session.SessionID, "09:30")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	_, err = f.svc.SelectTime(ctx, session.SessionID, "23:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSubmitEndToEnd(t *testing.T) {
	f := newWizard()
	ctx := context.Background()
	session := f.walkToDetails(t)

	_, err := f.svc.SetDetails(ctx, session.SessionID, ContactDetails{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-0101",
		Notes: "sensitive gums",
	})
	require.NoError(t, err)

	appt, err := f.svc.Submit(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, "svc-1", appt.ServiceID)
	assert.Equal(t, "doc-1", appt.DoctorID)
	assert.Equal(t, "2030-06-10", appt.AppointmentDate)
	assert.Equal(t, "10:00", appt.AppointmentTime)
	assert.Equal(t, "Jane Doe", appt.PatientName)
	assert.Equal(t, "jane@example.com", appt.PatientEmail)
	assert.Equal(t, "sensitive gums", appt.Notes)
	require.Len(t, f.appts.appts, 1)

	session, err = f.svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, session.Step)
	assert.Equal(t, appt.ID, session.AppointmentID)

	// The patient directory picked up the booking contact.
	assert.NotNil(t, f.patients.byEmail["jane@example.com"])
}

func TestSubmitBlockedUntilDetailsComplete(t *testing.T) {
	f := newWizard()
	ctx := context.Background()
	session := f.walkToDetails(t)

	_, err := f.svc.SetDetails(ctx, session.SessionID, ContactDetails{Name: "Jane Doe"})
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Empty(t, f.appts.appts)
}

func TestSubmitIsNotReentrant(t *testing.T) {
	f := newWizard()
	ctx := context.Background()
	session := f.walkToDetails(t)

	_, err := f.svc.SetDetails(ctx, session.SessionID, ContactDetails{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0101",
	})
	require.NoError(t, err)

	// A concurrent submit holds the lock.
	held, err := f.store.AcquireSubmitLock(ctx, session.SessionID)
	require.NoError(t, err)
	require.True(t, held)

	_, err = f.svc.Submit(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Empty(t, f.appts.appts)

	// After the lock clears the submit proceeds, and a repeat finds the
	// session already confirmed.
	require.NoError(t, f.store.ReleaseSubmitLock(ctx, session.SessionID))
	_, err = f.svc.Submit(ctx, session.SessionID)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, f.appts.appts, 1, "a double submit must not create a second appointment")
}

func TestBackPreservesDataAndStopsAtStart(t *testing.T) {
	f := newWizard()
	ctx := context.Background()
	session := f.walkToDetails(t)

	session, err := f.svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)
	assert.Equal(t, "10:00", session.Draft.Time, "going back must not wipe entered data")

	session, err = f.svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)

	// Back on the first step is a no-op.
	session, err = f.svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)
}

func TestConfirmationStepIsTerminalExceptReset(t *testing.T) {
	f := newWizard()
	ctx := context.Background()
	session := f.walkToDetails(t)

	_, err := f.svc.SetDetails(ctx, session.SessionID, ContactDetails{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0101",
	})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, session.SessionID)
	require.NoError(t, err)

	_, err = f.svc.Back(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	_, err = f.svc.SelectService(ctx, session.SessionID, "svc-1", "")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	_, err = f.svc.Next(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	session, err = f.svc.Reset(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)
	assert.Equal(t, models.BookingDraft{}, session.Draft)
	assert.Empty(t, session.AppointmentID)
}

func TestCancelDeletesSession(t *testing.T) {
	f := newWizard()
	ctx := context.Background()

	session, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, session.SessionID))

	_, err = f.svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
