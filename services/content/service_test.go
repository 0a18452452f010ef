package content

import (
	"testing"

	blogRepo "brightsmile/database/repository/blog"
	testimonialRepo "brightsmile/database/repository/testimonial"
	"brightsmile/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBlogRepo struct {
	posts map[string]*models.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: make(map[string]*models.BlogPost)}
}

func (r *memBlogRepo) Create(post *models.BlogPost) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memBlogRepo) Update(post *models.BlogPost) error {
	if _, ok := r.posts[post.ID]; !ok {
		return blogRepo.ErrNotFound
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memBlogRepo) Delete(id string) error {
	if _, ok := r.posts[id]; !ok {
		return blogRepo.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, blogRepo.ErrNotFound
	}
	cp := *post
	return &cp, nil
}

func (r *memBlogRepo) GetBySlug(slug string) (*models.BlogPost, error) {
	for _, post := range r.posts {
		if post.Slug == slug {
			cp := *post
			return &cp, nil
		}
	}
	return nil, blogRepo.ErrNotFound
}

func (r *memBlogRepo) GetAll() ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, post := range r.posts {
		out = append(out, *post)
	}
	return out, nil
}

func (r *memBlogRepo) GetPublished() ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, post := range r.posts {
		if post.IsPublished {
			out = append(out, *post)
		}
	}
	return out, nil
}

type memTestimonialRepo struct {
	items map[string]*models.Testimonial
}

func newMemTestimonialRepo() *memTestimonialRepo {
	return &memTestimonialRepo{items: make(map[string]*models.Testimonial)}
}

func (r *memTestimonialRepo) Create(t *models.Testimonial) error {
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *memTestimonialRepo) Update(t *models.Testimonial) error {
	if _, ok := r.items[t.ID]; !ok {
		return testimonialRepo.ErrNotFound
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *memTestimonialRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return testimonialRepo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memTestimonialRepo) GetByID(id string) (*models.Testimonial, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, testimonialRepo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTestimonialRepo) GetAll() ([]models.Testimonial, error) {
	var out []models.Testimonial
	for _, t := range r.items {
		out = append(out, *t)
	}
	return out, nil
}

func (r *memTestimonialRepo) GetActive() ([]models.Testimonial, error) {
	var out []models.Testimonial
	for _, t := range r.items {
		if t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func newTestService() *DefaultContentService {
	return &DefaultContentService{
		Posts:        newMemBlogRepo(),
		Testimonials: newMemTestimonialRepo(),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"5 Tips for Healthy Teeth", "5-tips-for-healthy-teeth"},
		{"  Whitening: Before & After!  ", "whitening-before-after"},
		{"ALL CAPS", "all-caps"},
		{"---", "untitled"},
		{"", "untitled"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCreatePostDerivesSlug(t *testing.T) {
	svc := newTestService()

	post, err := svc.CreatePost(models.BlogPostInput{
		Title:   strPtr("5 Tips for Healthy Teeth"),
		Content: strPtr("Brush twice a day."),
	})
	require.NoError(t, err)
	assert.Equal(t, "5-tips-for-healthy-teeth", post.Slug)
	assert.False(t, post.IsPublished)
	assert.Nil(t, post.PublishedAt)

	found, err := svc.GetPostBySlug("5-tips-for-healthy-teeth")
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)
}

func TestPublishTransitionSetsPublishedAt(t *testing.T) {
	svc := newTestService()

	post, err := svc.CreatePost(models.BlogPostInput{
		Title:   strPtr("Draft Post"),
		Content: strPtr("..."),
	})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	post, err = svc.UpdatePost(post.ID, models.BlogPostInput{IsPublished: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt

	// Re-saving a published post keeps the original publish time.
	post, err = svc.UpdatePost(post.ID, models.BlogPostInput{Title: strPtr("Renamed Post")})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, first, *post.PublishedAt)
}

func TestListPostsPublishedOnly(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreatePost(models.BlogPostInput{Title: strPtr("Draft"), Content: strPtr("...")})
	require.NoError(t, err)
	_, err = svc.CreatePost(models.BlogPostInput{
		Title: strPtr("Live"), Content: strPtr("..."), IsPublished: boolPtr(true),
	})
	require.NoError(t, err)

	all, err := svc.ListPosts(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := svc.ListPosts(true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live", published[0].Title)
}

func TestTestimonialLifecycle(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateTestimonial(models.TestimonialInput{
		Name: strPtr("Jane Doe"), Text: strPtr("Painless visit."), Rating: intPtr(5),
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive, "new testimonials default to visible")

	_, err = svc.UpdateTestimonial(created.ID, models.TestimonialInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	active, err := svc.ListTestimonials(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.DeleteTestimonial(created.ID))
	assert.ErrorIs(t, svc.DeleteTestimonial(created.ID), testimonialRepo.ErrNotFound)
}

func intPtr(n int) *int { return &n }
