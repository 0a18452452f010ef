// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"brightsmile/models"
	"brightsmile/services/admin"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves admin sign-in, sign-out and the current-user probe.
type AuthHandler struct {
	Svc admin.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc admin.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// SignIn exchanges admin credentials for a bearer token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, user, err := h.Svc.SignIn(c, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign in failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  sanitizeAdmin(user),
	})
}

// Me returns the admin user behind the request's token.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Svc.CurrentUser(c, bearerToken(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sanitizeAdmin(user)})
}

// SignOut revokes the request's token.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.Svc.SignOut(c, bearerToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign out failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func sanitizeAdmin(user *models.AdminUser) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
}
