package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

const defaultDedupTTL = time.Hour

type stockRequestService struct {
	requests    ports.StockRequestRepository
	medications ports.MedicationRepository
	facilities  ports.FacilityRepository
	dedup       ports.DedupStore
	dedupTTL    time.Duration
	log         zerolog.Logger
	now         func() time.Time
	newProtocol func() string
}

// NewStockRequestService returns a StockRequestService implementation.
func NewStockRequestService(
	requests ports.StockRequestRepository,
	medications ports.MedicationRepository,
	facilities ports.FacilityRepository,
	dedup ports.DedupStore,
	dedupTTL time.Duration,
	log zerolog.Logger,
) ports.StockRequestService {
	if dedupTTL <= 0 {
		dedupTTL = defaultDedupTTL
	}
	return &stockRequestService{
		requests:    requests,
		medications: medications,
		facilities:  facilities,
		dedup:       dedup,
		dedupTTL:    dedupTTL,
		log:         log,
		now:         time.Now,
		newProtocol: uuid.NewString,
	}
}

// Submit validates, deduplicates, and persists a medication request.
func (s *stockRequestService) Submit(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
	if caller == nil {
		return nil, domain.ErrMissingToken
	}
	if in.MedicationID == "" || in.FacilityID == "" {
		return nil, domain.NewValidationError("medicamentoId e postoId são obrigatórios")
	}

	// 1. The medication and the facility must exist, and the medication must
	// be stocked there.
	med, err := s.medications.FindByID(ctx, in.MedicationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.facilities.FindByID(ctx, in.FacilityID); err != nil {
		if errors.Is(err, domain.ErrFacilityNotFound) {
			return nil, domain.NewValidationError("posto não encontrado")
		}
		return nil, err
	}
	if med.FacilityID != "" && med.FacilityID != in.FacilityID {
		return nil, domain.NewValidationError("medicamento não pertence ao posto informado")
	}

	req := &domain.StockRequest{
		Protocol:     s.newProtocol(),
		UserID:       caller.ID,
		MedicationID: in.MedicationID,
		FacilityID:   in.FacilityID,
		CreatedAt:    s.now().UTC(),
	}

	// 2. Idempotency: a repeat inside the window returns the first protocol.
	key := dedupKey(caller.ID, in.MedicationID, in.FacilityID)
	claimed, existing, err := s.dedup.Claim(ctx, key, req.Protocol, s.dedupTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", caller.ID).Msg("dedup check failed, processing anyway")
	} else if !claimed {
		s.log.Debug().Str("user_id", caller.ID).Str("protocol", existing).Msg("duplicate stock request skipped")
		req.Protocol = existing
		return &ports.StockRequestResult{Request: req, Duplicate: true}, nil
	}

	// 3. Persist.
	stored, err := s.requests.Insert(ctx, req)
	if err != nil {
		// Free the claim so a retry is not answered with an unstored protocol.
		if claimed {
			if rerr := s.dedup.Release(ctx, key); rerr != nil {
				s.log.Warn().Err(rerr).Str("user_id", caller.ID).Msg("dedup release failed")
			}
		}
		return nil, fmt.Errorf("submit stock request: %w", err)
	}

	s.log.Info().
		Str("protocol", stored.Protocol).
		Str("user_id", caller.ID).
		Str("medication_id", in.MedicationID).
		Str("facility_id", in.FacilityID).
		Msg("stock request registered")

	return &ports.StockRequestResult{Request: stored}, nil
}

// List returns the caller's own requests; administrators see all of them.
func (s *stockRequestService) List(ctx context.Context, caller *domain.User) ([]*domain.StockRequest, error) {
	if caller == nil {
		return nil, domain.ErrMissingToken
	}
	filter := ports.StockRequestFilter{UserID: caller.ID}
	if caller.Role == domain.RoleAdmin {
		filter.UserID = ""
	}
	return s.requests.List(ctx, filter)
}

func dedupKey(userID, medicationID, facilityID string) string {
	return fmt.Sprintf("stockreq:%s:%s:%s", userID, medicationID, facilityID)
}
