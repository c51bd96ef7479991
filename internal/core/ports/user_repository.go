package ports

import (
	"context"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// UserRepository defines the persistence operations for identities.
type UserRepository interface {
	// FindByEmail returns the stored user including its password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create stores user and returns it with its assigned ID.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
