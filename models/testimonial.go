package models

import "time"

// Testimonial is a patient review shown on the public site.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Text      string    `bson:"text" json:"text"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Treatment string    `bson:"treatment,omitempty" json:"treatment,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image,omitempty"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// TestimonialInput carries the editable testimonial fields.
type TestimonialInput struct {
	Name      *string `json:"name,omitempty"`
	Text      *string `json:"text,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Treatment *string `json:"treatment,omitempty"`
	ImageURL  *string `json:"image,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
