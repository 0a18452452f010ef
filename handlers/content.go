// File: handlers/content.go
package handlers

import (
	"errors"
	"net/http"

	blogRepo "brightsmile/database/repository/blog"
	testimonialRepo "brightsmile/database/repository/testimonial"
	"brightsmile/models"
	"brightsmile/services/content"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves blog posts and testimonials.
type ContentHandler struct {
	Svc content.ContentService
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Svc: svc}
}

// ListPublicPosts returns published posts for the site.
func (h *ContentHandler) ListPublicPosts(c *gin.Context) {
	posts, err := h.Svc.ListPosts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListPosts returns all posts, drafts included.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.Svc.ListPosts(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPostBySlug returns one post by its URL slug.
func (h *ContentHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.Svc.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, blogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch post", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost adds a blog post. The slug is derived from the title.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var input models.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	post, err := h.Svc.CreatePost(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost applies a partial update to a blog post.
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var input models.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	post, err := h.Svc.UpdatePost(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, blogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a blog post.
func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.Svc.DeletePost(c.Param("id")); err != nil {
		if errors.Is(err, blogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// ListPublicTestimonials returns the testimonials shown on the site.
func (h *ContentHandler) ListPublicTestimonials(c *gin.Context) {
	testimonials, err := h.Svc.ListTestimonials(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// ListTestimonials returns all testimonials, hidden ones included.
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.Svc.ListTestimonials(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial adds a testimonial.
func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var input models.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	testimonial, err := h.Svc.CreateTestimonial(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create testimonial", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": testimonial})
}

// UpdateTestimonial applies a partial update to a testimonial.
func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var input models.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	testimonial, err := h.Svc.UpdateTestimonial(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, testimonialRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update testimonial", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": testimonial})
}

// DeleteTestimonial removes a testimonial.
func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.Svc.DeleteTestimonial(c.Param("id")); err != nil {
		if errors.Is(err, testimonialRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete testimonial", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}
