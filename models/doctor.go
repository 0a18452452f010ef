package models

// Doctor is a clinic practitioner listed on the team page and bookable
// through the wizard.
type Doctor struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Title           string   `bson:"title" json:"title"`
	Bio             string   `bson:"bio,omitempty" json:"bio,omitempty"`
	ImageURL        string   `bson:"image_url,omitempty" json:"image,omitempty"`
	Specializations []string `bson:"specializations" json:"specializations"`
	Education       string   `bson:"education,omitempty" json:"education,omitempty"`
	IsActive        bool     `bson:"is_active" json:"isActive"`
	SortOrder       int      `bson:"sort_order" json:"sortOrder"`
}

// DoctorInput carries the editable doctor fields for create/update.
type DoctorInput struct {
	Name            *string  `json:"name,omitempty"`
	Title           *string  `json:"title,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	ImageURL        *string  `json:"image,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	Education       *string  `json:"education,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	SortOrder       *int     `json:"sortOrder,omitempty"`
}

// DoctorVacation blocks a doctor's availability over an inclusive date
// range. Recording one deletes the doctor's slot rows inside the range;
// deleting one does NOT restore them.
type DoctorVacation struct {
	ID        string `bson:"id" json:"id"`
	DoctorID  string `bson:"doctor_id" json:"doctorId"`
	StartDate string `bson:"start_date" json:"startDate"` // YYYY-MM-DD
	EndDate   string `bson:"end_date" json:"endDate"`     // YYYY-MM-DD
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Covers reports whether the given date falls inside the vacation range.
// ISO dates compare correctly as strings.
func (v DoctorVacation) Covers(date string) bool {
	return v.StartDate <= date && date <= v.EndDate
}
