package postgres

import (
	"context"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	"github.com/teslo-shop/catalog-api/internal/domain/repository"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, full_name, roles)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active
	`, u.Email, u.Password, u.FullName, entity.RolesToStrings(u.Roles))

	if err := row.Scan(&u.ID, &u.IsActive); err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID resolves a token subject. The password digest is deliberately
// not selected; nothing past login needs it.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	var roles []string

	row := r.db.QueryRow(ctx, `
		SELECT id, email, full_name, is_active, roles
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.IsActive, &roles); err != nil {
		return nil, mapError(err)
	}
	u.Roles = entity.RolesFromStrings(roles)
	return u, nil
}

func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}

	row := r.db.QueryRow(ctx, `
		SELECT id, email, password
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.Password); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users`); err != nil {
		return mapError(err)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
