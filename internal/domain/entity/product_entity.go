package entity

import "strings"

// Product is the aggregate root for the catalog domain. It owns the
// lifecycle of its Images: they are created and destroyed only as part of
// aggregate create/update, never independently.
type Product struct {
	ID          string
	Title       string
	Price       float64
	Description string
	Slug        string
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []ProductImage
	Owner       *User
}

// ProductImage belongs to exactly one product.
type ProductImage struct {
	ID        int64
	URL       string
	ProductID string
}

// NormalizeSlug lowercases, replaces spaces with underscores, and strips
// apostrophes. "Women's Blazer" becomes "womens_blazer".
func NormalizeSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// PrepareSlugForInsert derives the slug at creation time: an empty slug
// falls back to the title, then the normalization rule runs.
func (p *Product) PrepareSlugForInsert() {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = NormalizeSlug(p.Slug)
}

// PrepareSlugForUpdate re-normalizes the slug from its own current value.
// The slug is derived data: a title change alone never moves it.
func (p *Product) PrepareSlugForUpdate() {
	p.Slug = NormalizeSlug(p.Slug)
}

// ImageURLs flattens the owned image collection to its URL strings.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
