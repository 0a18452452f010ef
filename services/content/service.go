// File: services/content/service.go
package content

import (
	"regexp"
	"strings"
	"time"

	blogRepo "brightsmile/database/repository/blog"
	testimonialRepo "brightsmile/database/repository/testimonial"
	"brightsmile/models"

	"github.com/google/uuid"
)

// ContentService manages the public site's editorial content: blog posts
// and patient testimonials.
type ContentService interface {
	ListPosts(publishedOnly bool) ([]models.BlogPost, error)
	GetPostBySlug(slug string) (*models.BlogPost, error)
	CreatePost(in models.BlogPostInput) (*models.BlogPost, error)
	UpdatePost(id string, in models.BlogPostInput) (*models.BlogPost, error)
	DeletePost(id string) error

	ListTestimonials(activeOnly bool) ([]models.Testimonial, error)
	CreateTestimonial(in models.TestimonialInput) (*models.Testimonial, error)
	UpdateTestimonial(id string, in models.TestimonialInput) (*models.Testimonial, error)
	DeleteTestimonial(id string) error
}

// DefaultContentService implements ContentService.
type DefaultContentService struct {
	Posts        blogRepo.BlogRepository
	Testimonials testimonialRepo.TestimonialRepository
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL slug: lowercase, non-alphanumerics
// collapsed to single dashes, no leading or trailing dash.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

func (s *DefaultContentService) ListPosts(publishedOnly bool) ([]models.BlogPost, error) {
	if publishedOnly {
		return s.Posts.GetPublished()
	}
	return s.Posts.GetAll()
}

func (s *DefaultContentService) GetPostBySlug(slug string) (*models.BlogPost, error) {
	return s.Posts.GetBySlug(slug)
}

func (s *DefaultContentService) CreatePost(in models.BlogPostInput) (*models.BlogPost, error) {
	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Tags:      []string{},
		CreatedAt: time.Now(),
	}
	applyPostInput(post, in)
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.Posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *DefaultContentService) UpdatePost(id string, in models.BlogPostInput) (*models.BlogPost, error) {
	post, err := s.Posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	wasPublished := post.IsPublished
	applyPostInput(post, in)
	if post.IsPublished && !wasPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.Posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *DefaultContentService) DeletePost(id string) error {
	return s.Posts.Delete(id)
}

func (s *DefaultContentService) ListTestimonials(activeOnly bool) ([]models.Testimonial, error) {
	if activeOnly {
		return s.Testimonials.GetActive()
	}
	return s.Testimonials.GetAll()
}

func (s *DefaultContentService) CreateTestimonial(in models.TestimonialInput) (*models.Testimonial, error) {
	t := &models.Testimonial{
		ID:        uuid.New().String(),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	applyTestimonialInput(t, in)
	if err := s.Testimonials.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultContentService) UpdateTestimonial(id string, in models.TestimonialInput) (*models.Testimonial, error) {
	t, err := s.Testimonials.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyTestimonialInput(t, in)
	if err := s.Testimonials.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultContentService) DeleteTestimonial(id string) error {
	return s.Testimonials.Delete(id)
}

func applyPostInput(post *models.BlogPost, in models.BlogPostInput) {
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Slug != nil {
		post.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = *in.FeaturedImage
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
}

func applyTestimonialInput(t *models.Testimonial, in models.TestimonialInput) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Text != nil {
		t.Text = *in.Text
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.Treatment != nil {
		t.Treatment = *in.Treatment
	}
	if in.ImageURL != nil {
		t.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
}
