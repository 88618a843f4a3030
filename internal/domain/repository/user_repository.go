package repository

import (
	"context"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetCredentialsByEmail selects only id, email, and password digest,
	// which is all the login flow may read.
	GetCredentialsByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteAll(ctx context.Context) error
}
