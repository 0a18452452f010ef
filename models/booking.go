package models

// Wizard steps, in order. Linear, no branching; confirmation is terminal
// until an explicit reset.
const (
	StepService      = "service"
	StepDateTime     = "datetime"
	StepDetails      = "details"
	StepConfirmation = "confirmation"
)

// BookingDraft is the in-progress appointment accumulated across wizard
// steps. It is submitted exactly once.
type BookingDraft struct {
	ServiceID string `json:"serviceId,omitempty"`
	DoctorID  string `json:"doctorId,omitempty"` // empty means "any doctor"
	Date      string `json:"date,omitempty"`     // YYYY-MM-DD
	Time      string `json:"time,omitempty"`     // HH:MM
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// BookingSession is one wizard run, held server-side for the lifetime of the
// booking flow.
type BookingSession struct {
	SessionID     string           `json:"sessionId"`
	Step          string           `json:"step"`
	Draft         BookingDraft     `json:"draft"`
	Availability  *DayAvailability `json:"availability,omitempty"`
	AppointmentID string           `json:"appointmentId,omitempty"`
}

// CanProceed reports whether the current step's required fields are
// populated. A false result keeps the wizard on its step; it is not an
// error.
func (s BookingSession) CanProceed() bool {
	switch s.Step {
	case StepService:
		return s.Draft.ServiceID != ""
	case StepDateTime:
		return s.Draft.Date != "" && s.Draft.Time != ""
	case StepDetails:
		return s.Draft.Name != "" && s.Draft.Email != "" && s.Draft.Phone != ""
	default:
		return true
	}
}
