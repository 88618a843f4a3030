package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	"github.com/teslo-shop/catalog-api/internal/domain/repository"
)

// ProductRepository owns the product + image aggregate. Every multi-row
// mutation runs inside a single transaction so readers never observe a
// half-updated aggregate.
type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	p.PrepareSlugForInsert()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	// No-op after a successful commit; guarantees the connection is
	// released on every exit path.
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO products (title, price, description, slug, stock, sizes, gender, tags, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, p.Title, p.Price, p.Description, p.Slug, p.Stock, p.Sizes, p.Gender, p.Tags, p.Owner.ID)
	if err := row.Scan(&p.ID); err != nil {
		return mapError(err)
	}

	for i := range p.Images {
		img := &p.Images[i]
		img.ProductID = p.ID
		if err := tx.QueryRow(ctx, `
			INSERT INTO product_images (url, product_id)
			VALUES ($1, $2)
			RETURNING id
		`, img.URL, p.ID).Scan(&img.ID); err != nil {
			return mapError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, price, COALESCE(description, ''), slug, stock, sizes, gender, tags, user_id
		FROM products
		ORDER BY title
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var p entity.Product
		var ownerID string
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Slug,
			&p.Stock, &p.Sizes, &p.Gender, &p.Tags, &ownerID); err != nil {
			return nil, mapError(err)
		}
		p.Owner = &entity.User{ID: ownerID}
		index[p.ID] = len(products)
		ids = append(ids, p.ID)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	if len(products) == 0 {
		return products, nil
	}

	imgRows, err := r.db.Query(ctx, `
		SELECT id, url, product_id
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, mapError(err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img entity.ProductImage
		if err := imgRows.Scan(&img.ID, &img.URL, &img.ProductID); err != nil {
			return nil, mapError(err)
		}
		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// FindByTerm runs exactly one lookup strategy per call: by id when term is
// a syntactically valid uuid, otherwise by case-insensitive title or exact
// lowercase slug. The owned image collection is always loaded with the row.
func (r *ProductRepository) FindByTerm(ctx context.Context, term string) (*entity.Product, error) {
	query := `
		SELECT id, title, price, COALESCE(description, ''), slug, stock, sizes, gender, tags, user_id
		FROM products
		WHERE UPPER(title) = UPPER($1) OR slug = LOWER($1)
	`
	if _, err := uuid.Parse(term); err == nil {
		query = `
		SELECT id, title, price, COALESCE(description, ''), slug, stock, sizes, gender, tags, user_id
		FROM products
		WHERE id = $1
	`
	}
	row := r.db.QueryRow(ctx, query, term)

	p := &entity.Product{}
	var ownerID string
	if err := row.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Slug,
		&p.Stock, &p.Sizes, &p.Gender, &p.Tags, &ownerID); err != nil {
		return nil, mapError(err)
	}
	p.Owner = &entity.User{ID: ownerID}

	if err := r.loadImages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) loadImages(ctx context.Context, p *entity.Product) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, url, product_id
		FROM product_images
		WHERE product_id = $1
		ORDER BY id
	`, p.ID)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var img entity.ProductImage
		if err := rows.Scan(&img.ID, &img.URL, &img.ProductID); err != nil {
			return mapError(err)
		}
		p.Images = append(p.Images, img)
	}
	if err := rows.Err(); err != nil {
		return mapError(err)
	}
	return nil
}

// findScalarsByID loads the current scalar fields for a merge, without the
// image collection.
func (r *ProductRepository) findScalarsByID(ctx context.Context, id string) (*entity.Product, error) {
	p := &entity.Product{}
	var ownerID string
	row := r.db.QueryRow(ctx, `
		SELECT id, title, price, COALESCE(description, ''), slug, stock, sizes, gender, tags, user_id
		FROM products
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Slug,
		&p.Stock, &p.Sizes, &p.Gender, &p.Tags, &ownerID); err != nil {
		return nil, mapError(err)
	}
	p.Owner = &entity.User{ID: ownerID}
	return p, nil
}

func applyPatch(p *entity.Product, patch repository.ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		p.Sizes = patch.Sizes
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
}

// Update merges patch onto the stored row, then applies scalar changes,
// image replacement, and ownership re-stamp as one transaction. Ownership
// always moves to actingUser: the caller of record becomes the last editor.
func (r *ProductRepository) Update(ctx context.Context, id string, patch repository.ProductPatch, actingUser *entity.User) (*entity.Product, error) {
	p, err := r.findScalarsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(p, patch)
	// Slug is re-normalized from its own (possibly patched) value.
	p.PrepareSlugForUpdate()
	p.Owner = actingUser

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	// Rollback after commit is a no-op; the transaction resource is
	// released exactly once on every exit path.
	defer tx.Rollback(ctx)

	// A nil Images field leaves the collection untouched; an empty
	// non-nil slice deletes everything and inserts nothing.
	if patch.Images != nil {
		if _, err := tx.Exec(ctx, `
			DELETE FROM product_images WHERE product_id = $1
		`, id); err != nil {
			return nil, mapError(err)
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE products
		SET title = $1, price = $2, description = $3, slug = $4, stock = $5,
		    sizes = $6, gender = $7, tags = $8, user_id = $9
		WHERE id = $10
	`, p.Title, p.Price, p.Description, p.Slug, p.Stock,
		p.Sizes, p.Gender, p.Tags, p.Owner.ID, id); err != nil {
		return nil, mapError(err)
	}

	if patch.Images != nil {
		for _, url := range patch.Images {
			if _, err := tx.Exec(ctx, `
				INSERT INTO product_images (url, product_id) VALUES ($1, $2)
			`, url, id); err != nil {
				return nil, mapError(err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError(err)
	}

	// Re-read the committed aggregate outside the transaction.
	return r.FindByTerm(ctx, id)
}

func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	// Load the full aggregate first so a missing id surfaces as not found.
	if _, err := r.FindByTerm(ctx, id); err != nil {
		return err
	}
	// Images cascade with the product row.
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products`); err != nil {
		return mapError(err)
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
