package models

// AvailabilitySlot is a stored exception to the default-available policy for
// one (doctor, date, startTime) triple. Absent a row, a slot on a valid
// working day is available. Uniquely identified by the triple.
type AvailabilitySlot struct {
	ID          string `bson:"id" json:"id"`
	DoctorID    string `bson:"doctor_id" json:"doctorId"`
	SlotDate    string `bson:"slot_date" json:"slotDate"`   // YYYY-MM-DD
	StartTime   string `bson:"start_time" json:"startTime"` // HH:MM
	IsAvailable bool   `bson:"is_available" json:"isAvailable"`
}

// Slot statuses as presented to the booking UI. Unavailable slots stay in
// the grid so the caller can tell a taken slot from a closed one.
const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusClosed    = "closed"
)

// GridSlot is one entry of a day's slot grid.
type GridSlot struct {
	Time   string `json:"time"`   // HH:MM
	Status string `json:"status"` // available | booked | closed
}

// DayAvailability is the full slot grid for one doctor on one date.
type DayAvailability struct {
	DoctorID string     `json:"doctorId,omitempty"`
	Date     string     `json:"date"`
	Slots    []GridSlot `json:"slots"`
}

// SlotAt returns the grid entry for the given time, or nil if the time is
// not on the grid.
func (d DayAvailability) SlotAt(time string) *GridSlot {
	for i := range d.Slots {
		if d.Slots[i].Time == time {
			return &d.Slots[i]
		}
	}
	return nil
}
