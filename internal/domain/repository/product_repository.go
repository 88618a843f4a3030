package repository

import (
	"context"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
)

// ProductPatch carries a partial update for a product aggregate. Nil
// pointers mean "leave the field alone". Images follows the same rule:
// nil leaves the owned collection untouched, while a non-nil slice
// (including an empty one) replaces it wholesale.
type ProductPatch struct {
	Title       *string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       []string
	Gender      *string
	Tags        []string
	Images      []string
}

// ProductRepository maintains the product + image aggregate as a single
// consistency unit.
type ProductRepository interface {
	// Create persists the whole aggregate in one transaction; a uniqueness
	// failure leaves no orphan image rows behind.
	Create(ctx context.Context, p *entity.Product) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Product, error)
	// FindByTerm looks up by id when term is a valid uuid; otherwise by
	// case-insensitive title or exact slug, images eagerly joined.
	FindByTerm(ctx context.Context, term string) (*entity.Product, error)
	// Update merges patch onto the stored row, replaces the image set when
	// requested, re-stamps the owner to actingUser, and commits it all in
	// one transaction. The updated aggregate is re-read after commit.
	Update(ctx context.Context, id string, patch ProductPatch, actingUser *entity.User) (*entity.Product, error)
	Remove(ctx context.Context, id string) error
	// DeleteAll wipes every product; reseed flow only.
	DeleteAll(ctx context.Context) error
}
