package model_test

import (
	"testing"

	"gearbase/internal/domains/guitar/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestGuitarModel_GetSlug(t *testing.T) {
	tests := []struct {
		name   string
		guitar model.Guitar
		want   string
	}{
		{
			name: "derived from brand, model and year",
			guitar: model.Guitar{
				Brand:         "Fender",
				Model:         "American Strat",
				YearReference: "2024",
			},
			want: "fender-american-strat-2024",
		},
		{
			name: "stored slug wins over derivation",
			guitar: model.Guitar{
				Brand:         "Fender",
				Model:         "American Strat",
				YearReference: "2024",
				Slug:          strPtr("custom-slug"),
			},
			want: "custom-slug",
		},
		{
			name: "empty stored slug falls back to derivation",
			guitar: model.Guitar{
				Brand:         "Gibson",
				Model:         "Les Paul",
				YearReference: "1959",
				Slug:          strPtr(""),
			},
			want: "gibson-les-paul-1959",
		},
		{
			name: "year reference is lowercased but spaces are kept",
			guitar: model.Guitar{
				Brand:         "PRS",
				Model:         "Custom 24",
				YearReference: "Mid 90s",
			},
			want: "prs-custom-24-mid 90s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guitar.GetSlug())
		})
	}
}

func TestGuitarModel_NormalizeRecordID(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "bare fragment gets the table prefix",
			fragment: "abc123",
			want:     "guitars:abc123",
		},
		{
			name:     "qualified id passes through",
			fragment: "guitars:abc123",
			want:     "guitars:abc123",
		},
		{
			name:     "foreign table id passes through unchanged",
			fragment: "other:xyz",
			want:     "other:xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeRecordID(tt.fragment))
		})
	}
}

func TestGuitarModel_SplitRecordID(t *testing.T) {
	table, id := model.SplitRecordID("guitars:abc123")
	assert.Equal(t, "guitars", table)
	assert.Equal(t, "abc123", id)

	table, id = model.SplitRecordID("bare")
	assert.Equal(t, "guitars", table)
	assert.Equal(t, "bare", id)
}

func TestGuitarModel_GetDisplayTitle(t *testing.T) {
	guitar := model.Guitar{Brand: "Fender", Model: "Telecaster"}

	assert.Equal(t, "Fender Telecaster", guitar.GetDisplayTitle())
}

func TestGuitarModel_GetFormattedPrice(t *testing.T) {
	tests := []struct {
		name       string
		priceCents int64
		want       string
	}{
		{
			name:       "positive price in cents",
			priceCents: 469900,
			want:       "$4699.00",
		},
		{
			name:       "price with remainder cents",
			priceCents: 123456,
			want:       "$1234.56",
		},
		{
			name:       "zero price",
			priceCents: 0,
			want:       "Price on request",
		},
		{
			name:       "negative price",
			priceCents: -100,
			want:       "Price on request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guitar := model.Guitar{PriceCents: tt.priceCents}

			assert.Equal(t, tt.want, guitar.GetFormattedPrice())
		})
	}
}

func TestGuitarModel_GetMainImage(t *testing.T) {
	tests := []struct {
		name   string
		guitar model.Guitar
		want   string
	}{
		{
			name:   "hero image url preferred",
			guitar: model.Guitar{HeroImageURL: strPtr("https://cdn.example.com/hero.jpg"), HeroURL: strPtr("https://cdn.example.com/legacy.jpg")},
			want:   "https://cdn.example.com/hero.jpg",
		},
		{
			name:   "legacy hero url fallback",
			guitar: model.Guitar{HeroURL: strPtr("https://cdn.example.com/legacy.jpg")},
			want:   "https://cdn.example.com/legacy.jpg",
		},
		{
			name:   "no image",
			guitar: model.Guitar{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guitar.GetMainImage())
		})
	}
}

func TestGuitarModel_HasImages(t *testing.T) {
	tests := []struct {
		name   string
		guitar model.Guitar
		want   bool
	}{
		{
			name:   "hero image only",
			guitar: model.Guitar{HeroImageURL: strPtr("a.jpg")},
			want:   true,
		},
		{
			name:   "legacy hero only",
			guitar: model.Guitar{HeroURL: strPtr("b.jpg")},
			want:   true,
		},
		{
			name:   "gallery only",
			guitar: model.Guitar{ImageGallery: []string{"c.jpg"}},
			want:   true,
		},
		{
			name:   "no images",
			guitar: model.Guitar{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guitar.HasImages())
		})
	}
}

func TestGuitarModel_GetImageCount(t *testing.T) {
	guitar := model.Guitar{ImageGallery: []string{"a.jpg", "b.jpg"}, HeroImageURL: strPtr("hero.jpg")}

	assert.Equal(t, 2, guitar.GetImageCount())
}

func TestGuitarModel_GetConditionColor(t *testing.T) {
	tests := []struct {
		name      string
		condition *string
		want      string
	}{
		{name: "excellent plus", condition: strPtr("Excellent +"), want: "green"},
		{name: "excellent", condition: strPtr("Excellent"), want: "green"},
		{name: "good", condition: strPtr("Good"), want: "yellow"},
		{name: "fair", condition: strPtr("Fair"), want: "red"},
		{name: "poor", condition: strPtr("Poor"), want: "red"},
		{name: "unknown", condition: strPtr("Mint"), want: "gray"},
		{name: "unset", condition: nil, want: "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guitar := model.Guitar{Condition: tt.condition}

			assert.Equal(t, tt.want, guitar.GetConditionColor())
		})
	}
}

func TestGuitarModel_GetStatusColor(t *testing.T) {
	tests := []struct {
		name   string
		status *string
		want   string
	}{
		{name: "available", status: strPtr("Available"), want: "success"},
		{name: "sold", status: strPtr("Sold"), want: "danger"},
		{name: "on hold", status: strPtr("On Hold"), want: "warning"},
		{name: "pending", status: strPtr("Pending"), want: "info"},
		{name: "unknown", status: strPtr("Archived"), want: "secondary"},
		{name: "unset", status: nil, want: "secondary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guitar := model.Guitar{Status: tt.status}

			assert.Equal(t, tt.want, guitar.GetStatusColor())
		})
	}
}
