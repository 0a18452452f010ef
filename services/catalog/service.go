// File: services/catalog/service.go
package catalog

import (
	doctorRepo "brightsmile/database/repository/doctor"
	serviceRepo "brightsmile/database/repository/service"
	"brightsmile/models"

	"github.com/google/uuid"
)

// CatalogService manages the clinic's treatment and practitioner catalog.
type CatalogService interface {
	ListServices(activeOnly bool) ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	CreateService(in models.ServiceInput) (*models.Service, error)
	UpdateService(id string, in models.ServiceInput) (*models.Service, error)
	DeleteService(id string) error

	ListDoctors(activeOnly bool) ([]models.Doctor, error)
	GetDoctor(id string) (*models.Doctor, error)
	CreateDoctor(in models.DoctorInput) (*models.Doctor, error)
	UpdateDoctor(id string, in models.DoctorInput) (*models.Doctor, error)
	DeleteDoctor(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Doctors  doctorRepo.DoctorRepository
}

func (s *DefaultCatalogService) ListServices(activeOnly bool) ([]models.Service, error) {
	if activeOnly {
		return s.Services.GetActive()
	}
	return s.Services.GetAll()
}

func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Services.GetByID(id)
}

func (s *DefaultCatalogService) CreateService(in models.ServiceInput) (*models.Service, error) {
	svc := &models.Service{
		ID:       uuid.New().String(),
		IsActive: true,
	}
	applyServiceInput(svc, in)
	if err := s.Services.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(id string, in models.ServiceInput) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyServiceInput(svc, in)
	if err := s.Services.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Services.Delete(id)
}

func (s *DefaultCatalogService) ListDoctors(activeOnly bool) ([]models.Doctor, error) {
	if activeOnly {
		return s.Doctors.GetActive()
	}
	return s.Doctors.GetAll()
}

func (s *DefaultCatalogService) GetDoctor(id string) (*models.Doctor, error) {
	return s.Doctors.GetByID(id)
}

func (s *DefaultCatalogService) CreateDoctor(in models.DoctorInput) (*models.Doctor, error) {
	doc := &models.Doctor{
		ID:              uuid.New().String(),
		Specializations: []string{},
		IsActive:        true,
	}
	applyDoctorInput(doc, in)
	if err := s.Doctors.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultCatalogService) UpdateDoctor(id string, in models.DoctorInput) (*models.Doctor, error) {
	doc, err := s.Doctors.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyDoctorInput(doc, in)
	if err := s.Doctors.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultCatalogService) DeleteDoctor(id string) error {
	return s.Doctors.Delete(id)
}

func applyServiceInput(svc *models.Service, in models.ServiceInput) {
	if in.Title != nil {
		svc.Title = *in.Title
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.ImageURL != nil {
		svc.ImageURL = *in.ImageURL
	}
	if in.Icon != nil {
		svc.Icon = *in.Icon
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		svc.SortOrder = *in.SortOrder
	}
}

func applyDoctorInput(doc *models.Doctor, in models.DoctorInput) {
	if in.Name != nil {
		doc.Name = *in.Name
	}
	if in.Title != nil {
		doc.Title = *in.Title
	}
	if in.Bio != nil {
		doc.Bio = *in.Bio
	}
	if in.ImageURL != nil {
		doc.ImageURL = *in.ImageURL
	}
	if in.Specializations != nil {
		doc.Specializations = in.Specializations
	}
	if in.Education != nil {
		doc.Education = *in.Education
	}
	if in.IsActive != nil {
		doc.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		doc.SortOrder = *in.SortOrder
	}
}
