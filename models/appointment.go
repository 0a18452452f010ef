package models

import "time"

// Appointment statuses. Completed and cancelled are terminal.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booked visit created by the public wizard and managed by
// staff. Patient contact details are stored inline on the record.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	ServiceID       string    `bson:"service_id" json:"serviceId"`
	DoctorID        string    `bson:"doctor_id,omitempty" json:"doctorId,omitempty"` // empty means "any doctor"
	AppointmentDate string    `bson:"appointment_date" json:"appointmentDate"`       // YYYY-MM-DD
	AppointmentTime string    `bson:"appointment_time" json:"appointmentTime"`       // HH:MM
	PatientName     string    `bson:"patient_name" json:"patientName"`
	PatientEmail    string    `bson:"patient_email" json:"patientEmail"`
	PatientPhone    string    `bson:"patient_phone" json:"patientPhone"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`

	// Joined display fields, populated on admin reads.
	ServiceTitle string `bson:"-" json:"serviceTitle,omitempty"`
	DoctorName   string `bson:"-" json:"doctorName,omitempty"`
}

// IsTerminal reports whether the appointment status admits no further
// transitions.
func (a Appointment) IsTerminal() bool {
	return a.Status == AppointmentCompleted || a.Status == AppointmentCancelled
}

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Occupies reports whether the appointment holds the given slot. Pending and
// confirmed bookings both block the slot; completed and cancelled do not.
func (a Appointment) Occupies(date, timeStr string) bool {
	if a.Status != AppointmentPending && a.Status != AppointmentConfirmed {
		return false
	}
	return a.AppointmentDate == date && a.AppointmentTime == timeStr
}

// DashboardStats summarizes the admin landing page counters.
type DashboardStats struct {
	TodayAppointments int `json:"todayAppointments"`
	TotalPatients     int `json:"totalPatients"`
	CompletedToday    int `json:"completedToday"`
}

// Patient is a clinic patient directory entry, upserted from wizard
// submissions and browsable in the back office.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
