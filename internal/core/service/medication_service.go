package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// MedicationService manages the inventory. Status is only ever written as
// DeriveStockStatus of the quantity being written.
type MedicationService struct {
	repo       ports.MedicationRepository
	facilities ports.FacilityRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewMedicationService(repo ports.MedicationRepository, facilities ports.FacilityRepository, logger zerolog.Logger) *MedicationService {
	return &MedicationService{repo: repo, facilities: facilities, logger: logger, now: time.Now}
}

func (s *MedicationService) List(ctx context.Context, filter ports.MedicationFilter) ([]*domain.Medication, error) {
	if filter.Status != "" && !domain.ValidStockStatus(filter.Status) {
		return nil, domain.NewValidationError("status inválido")
	}
	return s.repo.List(ctx, filter)
}

func (s *MedicationService) Get(ctx context.Context, id string) (*domain.Medication, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stocks a new medication at a facility.
func (s *MedicationService) Create(ctx context.Context, caller *domain.User, input ports.CreateMedicationInput) (*domain.Medication, error) {
	if err := AuthorizeMedicationWrite(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("nome é obrigatório")
	}
	if input.Quantity < 0 {
		return nil, domain.NewValidationError("quantidade não pode ser negativa")
	}
	if input.FacilityID != "" {
		if _, err := s.facilities.FindByID(ctx, input.FacilityID); err != nil {
			if errors.Is(err, domain.ErrFacilityNotFound) {
				return nil, domain.NewValidationError("posto não encontrado")
			}
			return nil, fmt.Errorf("create medication: %w", err)
		}
	}

	med := &domain.Medication{
		Name:        strings.TrimSpace(input.Name),
		Type:        input.Type,
		Description: input.Description,
		FacilityID:  input.FacilityID,
	}
	med.SetQuantity(input.Quantity, s.now().UTC())

	created, err := s.repo.Create(ctx, med)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("medication_id", created.ID).Str("user_id", caller.ID).Msg("medication created")
	return created, nil
}

// UpdateQuantity writes a new stock level and its derived status.
func (s *MedicationService) UpdateQuantity(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error) {
	if err := AuthorizeMedicationWrite(caller); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, domain.NewValidationError("quantidade não pode ser negativa")
	}

	status := domain.DeriveStockStatus(quantity)
	updated, err := s.repo.UpdateStock(ctx, id, quantity, status, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("medication_id", id).
		Str("user_id", caller.ID).
		Int("quantity", quantity).
		Str("status", string(status)).
		Msg("stock updated")
	return updated, nil
}
