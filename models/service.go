package models

// Service is a treatment the clinic offers, shown on the public site and
// selectable in the booking wizard.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Price       float64 `bson:"price" json:"price"`
	ImageURL    string  `bson:"image_url,omitempty" json:"image,omitempty"`
	Icon        string  `bson:"icon,omitempty" json:"icon,omitempty"`
	IsActive    bool    `bson:"is_active" json:"isActive"`
	SortOrder   int     `bson:"sort_order" json:"sortOrder"`
}

// ServiceInput carries the editable fields for create/update. Pointer fields
// distinguish "not provided" from a zero value on partial updates.
type ServiceInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"image,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
	SortOrder   *int     `json:"sortOrder,omitempty"`
}
