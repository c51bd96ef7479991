package service

import (
	"context"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// DirectoryService serves the public doctor and facility listings.
type DirectoryService struct {
	doctors    ports.DoctorRepository
	facilities ports.FacilityRepository
}

func NewDirectoryService(doctors ports.DoctorRepository, facilities ports.FacilityRepository) *DirectoryService {
	return &DirectoryService{doctors: doctors, facilities: facilities}
}

func (s *DirectoryService) ListDoctors(ctx context.Context, specialty string) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx, specialty)
}

func (s *DirectoryService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	return s.doctors.FindByID(ctx, id)
}

func (s *DirectoryService) ListFacilities(ctx context.Context, neighborhood string) ([]*domain.Facility, error) {
	return s.facilities.List(ctx, neighborhood)
}

func (s *DirectoryService) GetFacility(ctx context.Context, id string) (*domain.Facility, error) {
	return s.facilities.FindByID(ctx, id)
}
