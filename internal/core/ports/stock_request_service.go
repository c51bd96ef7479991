package ports

import (
	"context"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// StockRequestInput is the DTO passed from the transport layer to
// StockRequestService.
type StockRequestInput struct {
	MedicationID string
	FacilityID   string
}

// StockRequestResult is returned after a submission.
type StockRequestResult struct {
	Request *domain.StockRequest
	// Duplicate is true when the same request was already submitted inside
	// the dedup window; Request then describes the original submission.
	Duplicate bool
}

// StockRequestService handles medication requests from identities.
type StockRequestService interface {
	Submit(ctx context.Context, caller *domain.User, input StockRequestInput) (*StockRequestResult, error)
	List(ctx context.Context, caller *domain.User) ([]*domain.StockRequest, error)
}
