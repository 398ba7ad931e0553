package dto_test

import (
	"encoding/json"
	"testing"

	"gearbase/internal/domains/guitar/model"
	"gearbase/internal/domains/guitar/model/dto"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestImageUpdateRequest_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		req  dto.ImageUpdateRequest
		want bool
	}{
		{
			name: "all fields absent",
			req:  dto.ImageUpdateRequest{},
			want: true,
		},
		{
			name: "hero image url present",
			req:  dto.ImageUpdateRequest{HeroImageURL: strPtr("https://cdn.example.com/hero.jpg")},
			want: false,
		},
		{
			name: "present but empty gallery counts as absent",
			req:  dto.ImageUpdateRequest{ImageGallery: []string{}},
			want: true,
		},
		{
			name: "non-empty gallery counts as present",
			req:  dto.ImageUpdateRequest{ImageGallery: []string{"https://cdn.example.com/a.jpg"}},
			want: false,
		},
		{
			name: "status only",
			req:  dto.ImageUpdateRequest{Status: strPtr("Sold")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsEmpty())
		})
	}
}

func TestGuitarResponse_FromModel(t *testing.T) {
	guitar := model.Guitar{
		ID:            "guitars:abc",
		Brand:         "Fender",
		Model:         "American Strat",
		YearReference: "2024",
		PriceCents:    469900,
		HeroImageURL:  strPtr("https://cdn.example.com/hero.jpg"),
		ImageGallery:  []string{"a.jpg", "b.jpg"},
		Condition:     strPtr("Good"),
		Status:        strPtr("Available"),
	}

	res := dto.GuitarResponse{}
	res.FromModel(guitar)

	assert.Equal(t, "fender-american-strat-2024", res.Slug)
	assert.Equal(t, "Fender American Strat", res.DisplayTitle)
	assert.Equal(t, "$4699.00", res.FormattedPrice)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", res.MainImage)
	assert.True(t, res.HasImages)
	assert.Equal(t, 2, res.ImageCount)
	assert.Equal(t, "yellow", res.ConditionColor)
	assert.Equal(t, "success", res.StatusColor)
}

// The response embeds the stored record; the derived slug at the top level
// must win over the embedded optional slug field in the JSON output.
func TestGuitarResponse_JSONShadowsEmbeddedSlug(t *testing.T) {
	guitar := model.Guitar{
		Brand:         "Gibson",
		Model:         "SG",
		YearReference: "1968",
	}

	res := dto.GuitarResponse{}
	res.FromModel(guitar)

	raw, err := json.Marshal(&res)
	assert.NoError(t, err)

	decoded := map[string]any{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "gibson-sg-1968", decoded["slug"])
	assert.Equal(t, "Gibson SG", decoded["display_title"])
	assert.Equal(t, false, decoded["has_images"])
}

func TestGuitarResponsesFromModels(t *testing.T) {
	guitars := []model.Guitar{
		{Brand: "Fender", Model: "Jazzmaster", YearReference: "1962"},
		{Brand: "Gibson", Model: "ES-335", YearReference: "1959"},
	}

	responses := dto.GuitarResponsesFromModels(guitars)

	assert.Len(t, responses, 2)
	assert.Equal(t, "fender-jazzmaster-1962", responses[0].Slug)
	assert.Equal(t, "gibson-es-335-1959", responses[1].Slug)

	empty := dto.GuitarResponsesFromModels(nil)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
