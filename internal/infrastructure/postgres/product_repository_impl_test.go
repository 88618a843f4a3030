package postgres_test

import (
	"context"
	"errors"
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

const (
	productID = "33333333-3333-4333-8333-333333333333"
	ownerID   = "44444444-4444-4444-8444-444444444444"
	actorID   = "55555555-5555-4555-8555-555555555555"
)

func productColumns() []string {
	return []string{"id", "title", "price", "description", "slug", "stock", "sizes", "gender", "tags", "user_id"}
}

func blazerRow(mock pgxmock.PgxPoolIface, owner string) *pgxmock.Rows {
	return mock.NewRows(productColumns()).
		AddRow(productID, "Women's Blazer", 75.0, "Classic fit", "womens_blazer", 5,
			[]string{"S", "M"}, "women", []string{"jacket"}, owner)
}

func imageColumns() []string {
	return []string{"id", "url", "product_id"}
}

func TestProductRepository_Create(t *testing.T) {
	t.Run("Should persist product and images in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		p := &entity.Product{
			Title:  "Women's Blazer",
			Price:  75.0,
			Stock:  5,
			Sizes:  []string{"S", "M"},
			Gender: "women",
			Tags:   []string{"jacket"},
			Images: []entity.ProductImage{{URL: "1.jpg"}, {URL: "2.jpg"}},
			Owner:  &entity.User{ID: ownerID},
		}

		mock.ExpectBegin()
		// Slug left empty derives from the title, apostrophe stripped.
		mock.ExpectQuery("INSERT INTO products").
			WithArgs("Women's Blazer", 75.0, "", "womens_blazer", 5,
				[]string{"S", "M"}, "women", []string{"jacket"}, ownerID).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(productID))
		mock.ExpectQuery("INSERT INTO product_images").
			WithArgs("1.jpg", productID).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery("INSERT INTO product_images").
			WithArgs("2.jpg", productID).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectCommit()

		err = repo.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, productID, p.ID)
		assert.Equal(t, int64(1), p.Images[0].ID)
		assert.Equal(t, productID, p.Images[1].ProductID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should roll back on duplicate title leaving no orphan images", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		p := &entity.Product{
			Title:  "Women's Blazer",
			Images: []entity.ProductImage{{URL: "1.jpg"}},
			Owner:  &entity.User{ID: ownerID},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO products").
			WillReturnError(&pgconn.PgError{
				Code:   "23505",
				Detail: "Key (title)=(Women's Blazer) already exists.",
			})
		mock.ExpectRollback()

		err = repo.Create(context.Background(), p)
		require.Error(t, err)
		assert.True(t, repository.IsDuplicate(err))
		assert.Contains(t, err.Error(), "already exists")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_FindByTerm(t *testing.T) {
	t.Run("Should look up by id when term is a uuid", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectQuery("SELECT (.+) FROM product_images WHERE product_id = \\$1").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()).
				AddRow(int64(1), "1.jpg", productID).
				AddRow(int64(2), "2.jpg", productID))

		p, err := repo.FindByTerm(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, "womens_blazer", p.Slug)
		assert.Equal(t, ownerID, p.Owner.ID)
		assert.Equal(t, []string{"1.jpg", "2.jpg"}, p.ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should look up by title or slug when term is not a uuid", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE UPPER\\(title\\) = UPPER\\(\\$1\\) OR slug = LOWER\\(\\$1\\)").
			WithArgs("Women's Blazer").
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectQuery("SELECT (.+) FROM product_images").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()))

		p, err := repo.FindByTerm(context.Background(), "Women's Blazer")
		require.NoError(t, err)
		assert.Equal(t, productID, p.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map a missing row to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.FindByTerm(context.Background(), productID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_Update(t *testing.T) {
	title := "Renamed Blazer"

	t.Run("Should leave images untouched when patch omits them", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectBegin()
		// No DELETE FROM product_images: a nil Images field keeps the
		// current collection.
		mock.ExpectExec("UPDATE products").
			WithArgs("Renamed Blazer", 75.0, "Classic fit", "womens_blazer", 5,
				[]string{"S", "M"}, "women", []string{"jacket"}, actorID, productID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(productColumns()).
				AddRow(productID, "Renamed Blazer", 75.0, "Classic fit", "womens_blazer", 5,
					[]string{"S", "M"}, "women", []string{"jacket"}, actorID))
		mock.ExpectQuery("SELECT (.+) FROM product_images").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()).AddRow(int64(1), "1.jpg", productID))

		p, err := repo.Update(context.Background(), productID,
			repository.ProductPatch{Title: &title}, &entity.User{ID: actorID})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Blazer", p.Title)
		// Ownership moved to the acting user.
		assert.Equal(t, actorID, p.Owner.ID)
		assert.Equal(t, []string{"1.jpg"}, p.ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should replace the image set wholesale when patch carries one", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM product_images WHERE product_id = \\$1").
			WithArgs(productID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("UPDATE products").
			WithArgs("Women's Blazer", 75.0, "Classic fit", "womens_blazer", 5,
				[]string{"S", "M"}, "women", []string{"jacket"}, actorID, productID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO product_images").
			WithArgs("new.jpg", productID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, actorID))
		mock.ExpectQuery("SELECT (.+) FROM product_images").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()).AddRow(int64(3), "new.jpg", productID))

		p, err := repo.Update(context.Background(), productID,
			repository.ProductPatch{Images: []string{"new.jpg"}}, &entity.User{ID: actorID})
		require.NoError(t, err)
		assert.Equal(t, []string{"new.jpg"}, p.ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should clear all images on an explicit empty set", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM product_images WHERE product_id = \\$1").
			WithArgs(productID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("UPDATE products").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, actorID))
		mock.ExpectQuery("SELECT (.+) FROM product_images").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()))

		p, err := repo.Update(context.Background(), productID,
			repository.ProductPatch{Images: []string{}}, &entity.User{ID: actorID})
		require.NoError(t, err)
		assert.Empty(t, p.ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should roll back when the row update fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err = repo.Update(context.Background(), productID,
			repository.ProductPatch{Title: &title}, &entity.User{ID: actorID})
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should surface not found before opening a transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.Update(context.Background(), productID,
			repository.ProductPatch{Title: &title}, &entity.User{ID: actorID})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_Remove(t *testing.T) {
	t.Run("Should delete the row after resolving the aggregate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnRows(blazerRow(mock, ownerID))
		mock.ExpectQuery("SELECT (.+) FROM product_images").
			WithArgs(productID).
			WillReturnRows(mock.NewRows(imageColumns()))
		mock.ExpectExec("DELETE FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err = repo.Remove(context.Background(), productID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should report not found without issuing a delete", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(productID).
			WillReturnError(pgx.ErrNoRows)

		err = repo.Remove(context.Background(), productID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_FindAll(t *testing.T) {
	t.Run("Should batch-load images for the page", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		second := "66666666-6666-4666-8666-666666666666"
		mock.ExpectQuery("SELECT (.+) FROM products ORDER BY title LIMIT \\$1 OFFSET \\$2").
			WithArgs(10, 0).
			WillReturnRows(mock.NewRows(productColumns()).
				AddRow(productID, "Women's Blazer", 75.0, "", "womens_blazer", 5,
					[]string{"S"}, "women", []string{}, ownerID).
				AddRow(second, "Men's Hoodie", 50.0, "", "mens_hoodie", 3,
					[]string{"L"}, "men", []string{}, ownerID))
		mock.ExpectQuery("SELECT (.+) FROM product_images WHERE product_id = ANY\\(\\$1\\)").
			WithArgs([]string{productID, second}).
			WillReturnRows(mock.NewRows(imageColumns()).
				AddRow(int64(1), "blazer.jpg", productID).
				AddRow(int64(2), "hoodie.jpg", second))

		products, err := repo.FindAll(context.Background(), 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, []string{"blazer.jpg"}, products[0].ImageURLs())
		assert.Equal(t, []string{"hoodie.jpg"}, products[1].ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should skip the image query on an empty page", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := postgres.NewProductRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM products ORDER BY title").
			WithArgs(10, 50).
			WillReturnRows(mock.NewRows(productColumns()))

		products, err := repo.FindAll(context.Background(), 10, 50)
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
