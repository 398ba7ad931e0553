package dto

import (
	"gearbase/internal/domains/guitar/model"
)

// ImageUpdateRequest is the partial patch payload for the image metadata
// update path. Only fields present in the body are touched server-side.
type ImageUpdateRequest struct {
	HeroImageURL *string  `json:"hero_image_url" validate:"omitempty,url"`
	ImageGallery []string `json:"image_gallery"  validate:"omitempty,dive,url"`
	ImageSource  *string  `json:"image_source"   validate:"omitempty"`
	Condition    *string  `json:"condition"      validate:"omitempty"`
	Status       *string  `json:"status"         validate:"omitempty"`
}

// IsEmpty reports whether no recognized field is present. An empty gallery
// counts as absent, so a gallery-only patch with no entries is still empty.
// An empty patch is rejected with a 400 rather than treated as a no-op.
func (r *ImageUpdateRequest) IsEmpty() bool {
	return r.HeroImageURL == nil &&
		len(r.ImageGallery) == 0 &&
		r.ImageSource == nil &&
		r.Condition == nil &&
		r.Status == nil
}

// GuitarResponse is the stored record plus the derived presentation fields.
// The derived fields are computed per response and never persisted.
type GuitarResponse struct {
	model.Guitar

	Slug           string `json:"slug"`
	DisplayTitle   string `json:"display_title"`
	FormattedPrice string `json:"formatted_price"`
	MainImage      string `json:"main_image"`
	HasImages      bool   `json:"has_images"`
	ImageCount     int    `json:"image_count"`
	ConditionColor string `json:"condition_color"`
	StatusColor    string `json:"status_color"`
}

func (r *GuitarResponse) FromModel(guitar model.Guitar) {
	r.Guitar = guitar
	r.Slug = guitar.GetSlug()
	r.DisplayTitle = guitar.GetDisplayTitle()
	r.FormattedPrice = guitar.GetFormattedPrice()
	r.MainImage = guitar.GetMainImage()
	r.HasImages = guitar.HasImages()
	r.ImageCount = guitar.GetImageCount()
	r.ConditionColor = guitar.GetConditionColor()
	r.StatusColor = guitar.GetStatusColor()
}

func GuitarResponsesFromModels(models []model.Guitar) []GuitarResponse {
	responses := make([]GuitarResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
