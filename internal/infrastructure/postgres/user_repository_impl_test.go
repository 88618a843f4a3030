package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	"github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/internal/infrastructure/postgres"
)

const userID = "77777777-7777-4777-8777-777777777777"

func TestUserRepository_Create(t *testing.T) {
	t.Run("Should store roles and read back generated fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewUserRepository(mock)

		u := &entity.User{
			Email:    "eve@teslo.com",
			Password: "$2a$10$digest",
			FullName: "Eve Valdes",
			Roles:    []entity.Role{entity.RoleUser},
		}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("eve@teslo.com", "$2a$10$digest", "Eve Valdes", []string{"user"}).
			WillReturnRows(mock.NewRows([]string{"id", "is_active"}).AddRow(userID, true))

		err = repo.Create(context.Background(), u)
		require.NoError(t, err)
		assert.Equal(t, userID, u.ID)
		assert.True(t, u.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map a duplicate email with detail preserved", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewUserRepository(mock)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{
				Code:   "23505",
				Detail: "Key (email)=(eve@teslo.com) already exists.",
			})

		err = repo.Create(context.Background(), &entity.User{Email: "eve@teslo.com"})
		require.Error(t, err)
		assert.True(t, repository.IsDuplicate(err))
		assert.Contains(t, err.Error(), "eve@teslo.com")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("Should resolve a token subject without the digest", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewUserRepository(mock)

		mock.ExpectQuery("SELECT id, email, full_name, is_active, roles FROM users WHERE id = \\$1").
			WithArgs(userID).
			WillReturnRows(mock.NewRows([]string{"id", "email", "full_name", "is_active", "roles"}).
				AddRow(userID, "eve@teslo.com", "Eve Valdes", true, []string{"user", "admin"}))

		u, err := repo.GetByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, u.Password)
		assert.Equal(t, []entity.Role{entity.RoleUser, entity.RoleAdmin}, u.Roles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map missing subject to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewUserRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByID(context.Background(), userID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetCredentialsByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, email, password FROM users WHERE email = \\$1").
		WithArgs("eve@teslo.com").
		WillReturnRows(mock.NewRows([]string{"id", "email", "password"}).
			AddRow(userID, "eve@teslo.com", "$2a$10$digest"))

	u, err := repo.GetCredentialsByEmail(context.Background(), "eve@teslo.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$digest", u.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}
