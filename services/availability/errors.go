package availability

import "errors"

var (
	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrInvalidRange is returned when a vacation's start date is after its end date.
	ErrInvalidRange = errors.New("vacation start date must not be after end date")
	// ErrUnknownTime is returned for times outside the clinic's slot grid.
	ErrUnknownTime = errors.New("time is not on the clinic slot grid")
)
