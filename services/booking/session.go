// File: services/booking/session.go
package booking

import (
	"context"
	"time"

	"brightsmile/models"
	"brightsmile/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new wizard session with an empty draft and returns
// it together with the bookable services for the first step.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context) (*models.BookingSession, []models.Service, error) {
	services, err := s.Services.GetActive()
	if err != nil {
		return nil, nil, err
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, services, nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectService records the chosen service and, optionally, a preferred
// doctor. An empty doctorID means "any doctor".
func (s *DefaultBookingSessionService) SelectService(ctx context.Context, sessionID, serviceID, doctorID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != models.StepService {
		return nil, ErrWrongStep
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil || !svc.IsActive {
		return nil, ErrUnknownService
	}
	if doctorID != "" {
		doc, err := s.Doctors.GetByID(doctorID)
		if err != nil || !doc.IsActive {
			return nil, ErrUnknownDoctor
		}
	}

	session.Draft.ServiceID = serviceID
	session.Draft.DoctorID = doctorID
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate records the chosen date and always clears any previously
// selected time, so a stale time can never ride along to a new date. The
// session carries the day's slot grid afterwards.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != models.StepDateTime {
		return nil, ErrWrongStep
	}

	grid, err := s.Availability.DayGrid(session.Draft.DoctorID, date)
	if err != nil {
		return nil, err
	}

	session.Draft.Date = date
	session.Draft.Time = ""
	session.Availability = &grid
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTime records the chosen time. The time must sit on the grid of the
// already-selected date and be available there.
func (s *DefaultBookingSessionService) SelectTime(ctx context.Context, sessionID, timeStr string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != models.StepDateTime {
		return nil, ErrWrongStep
	}
	if session.Draft.Date == "" {
		return nil, ErrNoDateSelected
	}

	// Re-check against a fresh grid; the cached one may predate another
	// patient's booking.
	grid, err := s.Availability.DayGrid(session.Draft.DoctorID, session.Draft.Date)
	if err != nil {
		return nil, err
	}
	slot := grid.SlotAt(timeStr)
	if slot == nil || slot.Status != models.SlotStatusAvailable {
		return nil, ErrSlotUnavailable
	}

	session.Draft.Time = timeStr
	session.Availability = &grid
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDetails records the patient's contact fields on the details step.
func (s *DefaultBookingSessionService) SetDetails(ctx context.Context, sessionID string, details ContactDetails) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != models.StepDetails {
		return nil, ErrWrongStep
	}

	session.Draft.Name = details.Name
	session.Draft.Email = details.Email
	session.Draft.Phone = details.Phone
	session.Draft.Notes = details.Notes
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

var nextStep = map[string]string{
	models.StepService:  models.StepDateTime,
	models.StepDateTime: models.StepDetails,
}

var prevStep = map[string]string{
	models.StepDateTime: models.StepService,
	models.StepDetails:  models.StepDateTime,
}

// Next advances one step when the current step's guard is satisfied. The
// details step advances through Submit, not Next.
func (s *DefaultBookingSessionService) Next(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	target, ok := nextStep[session.Step]
	if !ok {
		return nil, ErrWrongStep
	}
	if !session.CanProceed() {
		return nil, ErrStepIncomplete
	}

	session.Step = target
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step towards the start. Entered data is preserved.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	target, ok := prevStep[session.Step]
	if !ok {
		return session, nil
	}

	session.Step = target
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit persists the draft as a pending appointment. A per-session lock
// makes the call non-reentrant: a second submit while the first is pending
// creates nothing. On store failure the wizard stays on the details step
// with the draft intact.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmation {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != models.StepDetails {
		return nil, ErrWrongStep
	}
	if !session.CanProceed() {
		return nil, ErrStepIncomplete
	}

	acquired, err := s.Store.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmitInProgress
	}
	defer func() {
		if err := s.Store.ReleaseSubmitLock(ctx, sessionID); err != nil {
			utils.GetLogger().Warn("failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ServiceID:       session.Draft.ServiceID,
		DoctorID:        session.Draft.DoctorID,
		AppointmentDate: session.Draft.Date,
		AppointmentTime: session.Draft.Time,
		PatientName:     session.Draft.Name,
		PatientEmail:    session.Draft.Email,
		PatientPhone:    session.Draft.Phone,
		Status:          models.AppointmentPending,
		Notes:           session.Draft.Notes,
		CreatedAt:       time.Now(),
	}
	if err := s.Appointments.Create(appt); err != nil {
		return nil, err
	}

	// Keep the patient directory current. Failure here never fails the
	// booking itself.
	patient := &models.Patient{
		ID:        uuid.New().String(),
		Name:      appt.PatientName,
		Email:     appt.PatientEmail,
		Phone:     appt.PatientPhone,
		CreatedAt: time.Now(),
	}
	if err := s.Patients.UpsertByEmail(patient); err != nil {
		utils.GetLogger().Warn("failed to upsert patient record", zap.String("email", appt.PatientEmail), zap.Error(err))
	}

	session.Step = models.StepConfirmation
	session.AppointmentID = appt.ID
	session.Availability = nil
	if err := s.Store.Save(ctx, session); err != nil {
		utils.GetLogger().Warn("appointment created but session update failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
	return appt, nil
}

// Reset returns the session to the initial service step with an empty
// draft. This is the only way out of the confirmation step.
func (s *DefaultBookingSessionService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepService
	session.Draft = models.BookingDraft{}
	session.Availability = nil
	session.AppointmentID = ""
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session entirely.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
