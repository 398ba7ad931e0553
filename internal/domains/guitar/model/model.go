package model

import (
	"fmt"
	"strings"
)

const (
	TableName  = "guitars"
	EntityName = "guitar"

	// RecordIDSeparator splits the table name from the store-assigned part
	// of a fully-qualified record id ("guitars:abc").
	RecordIDSeparator = ":"
)

// Column names accepted by the image patch path. The SET clause is built from
// this fixed set only; values always travel as bound query variables.
const (
	FieldHeroImageURL = "hero_image_url"
	FieldImageGallery = "image_gallery"
	FieldImageSource  = "image_source"
	FieldCondition    = "condition"
	FieldStatus       = "status"
)

type Guitar struct {
	ID            string  `json:"id,omitempty"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Slug          *string `json:"slug,omitempty"`
	BodyStyle     string  `json:"body_style"`
	Line          string  `json:"line"`
	Variant       string  `json:"variant"`
	YearReference string  `json:"year_reference"`
	Weight        string  `json:"weight"`
	PriceCents    int64   `json:"price_cents"`
	PriceCurrency string  `json:"price_currency"`
	SerialNumber  string  `json:"serial_number"`

	HeroImageURL *string  `json:"hero_image_url,omitempty"`
	ImageGallery []string `json:"image_gallery,omitempty"`
	ImageSource  *string  `json:"image_source,omitempty"`
	Condition    *string  `json:"condition,omitempty"`
	Status       *string  `json:"status,omitempty"`

	ProductionYear  *int `json:"production_year,omitempty"`
	SpecVersionYear *int `json:"spec_version_year,omitempty"`

	ExternalSource *string `json:"external_source,omitempty"`
	ExternalID     *string `json:"external_id,omitempty"`
	ListingURL     *string `json:"listing_url,omitempty"`
	ShopName       *string `json:"shop_name,omitempty"`
	ShopSlug       *string `json:"shop_slug,omitempty"`

	// Legacy hero image field, kept for rows imported before hero_image_url
	// existed.
	HeroURL *string `json:"hero_url,omitempty"`
}

// NormalizeRecordID turns a caller-supplied id fragment into a fully-qualified
// record id. A fragment that already carries the separator passes through
// unchanged; a bare fragment is prefixed with the guitars table. Read, update
// and delete paths must all go through this helper.
func NormalizeRecordID(fragment string) string {
	if strings.Contains(fragment, RecordIDSeparator) {
		return fragment
	}

	return TableName + RecordIDSeparator + fragment
}

// SplitRecordID breaks a fully-qualified record id into its table and id
// parts, for binding as separate query variables.
func SplitRecordID(rid string) (table, id string) {
	table, id, found := strings.Cut(rid, RecordIDSeparator)
	if !found {
		return TableName, rid
	}

	return table, id
}

// GetSlug returns the stored slug, or derives one from brand, model and year
// reference. Two guitars with identical brand/model/year collide under this
// derivation; there is no disambiguation.
func (g *Guitar) GetSlug() string {
	if g.Slug != nil && *g.Slug != "" {
		return *g.Slug
	}

	brand := strings.ReplaceAll(strings.ToLower(g.Brand), " ", "-")
	model := strings.ReplaceAll(strings.ToLower(g.Model), " ", "-")
	year := strings.ToLower(g.YearReference)

	return fmt.Sprintf("%s-%s-%s", brand, model, year)
}

func (g *Guitar) GetDisplayTitle() string {
	return fmt.Sprintf("%s %s", g.Brand, g.Model)
}

// GetFormattedPrice renders price_cents as a dollar amount with two decimal
// places, or "Price on request" when no price is set.
func (g *Guitar) GetFormattedPrice() string {
	if g.PriceCents > 0 {
		return fmt.Sprintf("$%.2f", float64(g.PriceCents)/100)
	}

	return "Price on request"
}

// GetMainImage returns the hero image URL, falling back to the legacy field.
// Empty string means no image.
func (g *Guitar) GetMainImage() string {
	if g.HeroImageURL != nil {
		return *g.HeroImageURL
	}

	if g.HeroURL != nil {
		return *g.HeroURL
	}

	return ""
}

func (g *Guitar) HasImages() bool {
	return g.HeroImageURL != nil || g.HeroURL != nil || len(g.ImageGallery) > 0
}

func (g *Guitar) GetImageCount() int {
	return len(g.ImageGallery)
}

// GetConditionColor maps the condition tag to a frontend badge color.
func (g *Guitar) GetConditionColor() string {
	if g.Condition == nil {
		return "gray"
	}

	switch *g.Condition {
	case "Excellent +", "Excellent":
		return "green"
	case "Good":
		return "yellow"
	case "Fair", "Poor":
		return "red"
	default:
		return "gray"
	}
}

// GetStatusColor maps the status tag to a frontend badge color.
func (g *Guitar) GetStatusColor() string {
	if g.Status == nil {
		return "secondary"
	}

	switch *g.Status {
	case "Available":
		return "success"
	case "Sold":
		return "danger"
	case "On Hold":
		return "warning"
	case "Pending":
		return "info"
	default:
		return "secondary"
	}
}
