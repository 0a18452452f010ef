// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	doctorRepo "brightsmile/database/repository/doctor"
	serviceRepo "brightsmile/database/repository/service"
	"brightsmile/models"
	"brightsmile/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the treatment and practitioner catalog. Public
// routes see active entries only; admin routes see everything.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListPublicServices returns the active services shown on the site.
func (h *CatalogHandler) ListPublicServices(c *gin.Context) {
	services, err := h.Svc.ListServices(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListServices returns all services, active or not.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns one service by id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// CreateService adds a service to the catalog.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc, err := h.Svc.CreateService(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService applies a partial update to a service.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc, err := h.Svc.UpdateService(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService removes a service from the catalog.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Param("id")); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// ListPublicDoctors returns the active practitioners shown on the site.
func (h *CatalogHandler) ListPublicDoctors(c *gin.Context) {
	doctors, err := h.Svc.ListDoctors(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// ListDoctors returns all practitioners, active or not.
func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Svc.ListDoctors(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctor returns one practitioner by id.
func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.Svc.GetDoctor(c.Param("id"))
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch doctor", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// CreateDoctor adds a practitioner.
func (h *CatalogHandler) CreateDoctor(c *gin.Context) {
	var input models.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	doctor, err := h.Svc.CreateDoctor(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create doctor", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

// UpdateDoctor applies a partial update to a practitioner.
func (h *CatalogHandler) UpdateDoctor(c *gin.Context) {
	var input models.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	doctor, err := h.Svc.UpdateDoctor(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update doctor", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// DeleteDoctor removes a practitioner.
func (h *CatalogHandler) DeleteDoctor(c *gin.Context) {
	if err := h.Svc.DeleteDoctor(c.Param("id")); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "doctor deleted"})
}
