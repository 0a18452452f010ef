package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a wizard session has expired or
	// never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrStepIncomplete is returned when the current step's guard is not
	// satisfied. The session is unchanged; the caller simply cannot move
	// forward yet.
	ErrStepIncomplete = errors.New("current step is missing required fields")
	// ErrWrongStep is returned when an operation does not belong to the
	// session's current step.
	ErrWrongStep = errors.New("operation not valid for the current step")
	// ErrNoDateSelected is returned when a time is picked before a date.
	ErrNoDateSelected = errors.New("select a date before picking a time")
	// ErrSlotUnavailable is returned when the picked time is booked or
	// closed for the chosen date.
	ErrSlotUnavailable = errors.New("selected time is not available")
	// ErrUnknownService is returned when the chosen service does not exist
	// or is inactive.
	ErrUnknownService = errors.New("unknown or inactive service")
	// ErrUnknownDoctor is returned when the chosen doctor does not exist
	// or is inactive.
	ErrUnknownDoctor = errors.New("unknown or inactive doctor")
	// ErrSubmitInProgress is returned when a submit is already running for
	// the session. The duplicate attempt creates nothing.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrAlreadySubmitted is returned for mutations after the session
	// reached confirmation. Only Reset leaves that state.
	ErrAlreadySubmitted = errors.New("booking already submitted")
)
