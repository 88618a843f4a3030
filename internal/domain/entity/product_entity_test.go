package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Women's Blazer", "womens_blazer"},
		{"T-Shirt Teslo", "t-shirt_teslo"},
		{"already_normalized", "already_normalized"},
		{"UPPER CASE", "upper_case"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSlug(tc.in))
	}
}

func TestPrepareSlugForInsert(t *testing.T) {
	t.Run("DerivesFromTitleWhenEmpty", func(t *testing.T) {
		p := &Product{Title: "Women's Blazer"}
		p.PrepareSlugForInsert()
		assert.Equal(t, "womens_blazer", p.Slug)
	})

	t.Run("NormalizesSeededSlug", func(t *testing.T) {
		p := &Product{Title: "Anything", Slug: "My Custom Slug"}
		p.PrepareSlugForInsert()
		assert.Equal(t, "my_custom_slug", p.Slug)
	})
}

func TestPrepareSlugForUpdate(t *testing.T) {
	t.Run("NormalizesOwnValue", func(t *testing.T) {
		p := &Product{Title: "New Title Entirely", Slug: "Old Slug's Value"}
		p.PrepareSlugForUpdate()
		// The slug derives from its own value, not from the title.
		assert.Equal(t, "old_slugs_value", p.Slug)
	})

	t.Run("Idempotent", func(t *testing.T) {
		p := &Product{Slug: "womens_blazer"}
		p.PrepareSlugForUpdate()
		first := p.Slug
		p.PrepareSlugForUpdate()
		assert.Equal(t, first, p.Slug)
	})
}

func TestImageURLs(t *testing.T) {
	p := &Product{Images: []ProductImage{{URL: "a.jpg"}, {URL: "b.jpg"}}}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.ImageURLs())

	empty := &Product{}
	assert.Empty(t, empty.ImageURLs())
}
