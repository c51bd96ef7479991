package ports

import (
	"context"
	"time"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// StockRequestFilter restricts stock request listings. An empty UserID
// lists every request.
type StockRequestFilter struct {
	UserID string
}

// StockRequestRepository persists medication requests.
type StockRequestRepository interface {
	Insert(ctx context.Context, r *domain.StockRequest) (*domain.StockRequest, error)
	List(ctx context.Context, filter StockRequestFilter) ([]*domain.StockRequest, error)
}

// DedupStore remembers recent submissions. Claim stores value under key
// when the key is free and reports false with the already-stored value
// otherwise. Release frees a key whose submission was not persisted.
type DedupStore interface {
	Claim(ctx context.Context, key, value string, ttl time.Duration) (claimed bool, existing string, err error)
	Release(ctx context.Context, key string) error
}
