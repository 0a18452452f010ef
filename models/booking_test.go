package models

import "testing"

func TestCanProceed(t *testing.T) {
	tests := []struct {
		name    string
		session BookingSession
		want    bool
	}{
		{"service step empty", BookingSession{Step: StepService}, false},
		{"service step filled", BookingSession{Step: StepService, Draft: BookingDraft{ServiceID: "svc-1"}}, true},
		{"datetime date only", BookingSession{Step: StepDateTime, Draft: BookingDraft{Date: "2030-06-10"}}, false},
		{"datetime time only", BookingSession{Step: StepDateTime, Draft: BookingDraft{Time: "10:00"}}, false},
		{"datetime complete", BookingSession{Step: StepDateTime, Draft: BookingDraft{Date: "2030-06-10", Time: "10:00"}}, true},
		{"details missing phone", BookingSession{Step: StepDetails, Draft: BookingDraft{Name: "Jane", Email: "j@x.com"}}, false},
		{"details complete", BookingSession{Step: StepDetails, Draft: BookingDraft{Name: "Jane", Email: "j@x.com", Phone: "555"}}, true},
		{"notes optional", BookingSession{Step: StepDetails, Draft: BookingDraft{Name: "Jane", Email: "j@x.com", Phone: "555", Notes: ""}}, true},
		{"confirmation", BookingSession{Step: StepConfirmation}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.CanProceed(); got != tt.want {
				t.Errorf("CanProceed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVacationCovers(t *testing.T) {
	v := DoctorVacation{StartDate: "2030-06-10", EndDate: "2030-06-14"}
	for date, want := range map[string]bool{
		"2030-06-09": false,
		"2030-06-10": true,
		"2030-06-12": true,
		"2030-06-14": true,
		"2030-06-15": false,
	} {
		if got := v.Covers(date); got != want {
			t.Errorf("Covers(%q) = %v, want %v", date, got, want)
		}
	}
}

func TestAppointmentOccupies(t *testing.T) {
	base := Appointment{AppointmentDate: "2030-06-10", AppointmentTime: "10:00"}

	for status, want := range map[string]bool{
		AppointmentPending:   true,
		AppointmentConfirmed: true,
		AppointmentCompleted: false,
		AppointmentCancelled: false,
	} {
		a := base
		a.Status = status
		if got := a.Occupies("2030-06-10", "10:00"); got != want {
			t.Errorf("status %s: Occupies = %v, want %v", status, got, want)
		}
	}

	active := base
	active.Status = AppointmentPending
	if active.Occupies("2030-06-10", "10:30") {
		t.Error("different time should not be occupied")
	}
	if active.Occupies("2030-06-11", "10:00") {
		t.Error("different date should not be occupied")
	}
}
