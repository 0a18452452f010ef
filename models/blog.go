package models

import "time"

// BlogPost is an article on the public blog, managed in the back office.
type BlogPost struct {
	ID            string     `bson:"id" json:"id"`
	Title         string     `bson:"title" json:"title"`
	Slug          string     `bson:"slug" json:"slug"`
	Excerpt       string     `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content       string     `bson:"content" json:"content"`
	FeaturedImage string     `bson:"featured_image,omitempty" json:"featuredImage,omitempty"`
	Tags          []string   `bson:"tags" json:"tags"`
	Author        string     `bson:"author,omitempty" json:"author,omitempty"`
	IsPublished   bool       `bson:"is_published" json:"isPublished"`
	PublishedAt   *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
}

// BlogPostInput carries the editable post fields for create/update.
type BlogPostInput struct {
	Title         *string  `json:"title,omitempty"`
	Slug          *string  `json:"slug,omitempty"`
	Excerpt       *string  `json:"excerpt,omitempty"`
	Content       *string  `json:"content,omitempty"`
	FeaturedImage *string  `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Author        *string  `json:"author,omitempty"`
	IsPublished   *bool    `json:"isPublished,omitempty"`
}
