package model

import "strings"

const (
	TableName  = "gear"
	EntityName = "gear"

	BrandsTableName     = "brands"
	CategoriesTableName = "categories"

	FieldID        = "id"
	FieldName      = "name"
	FieldSlug      = "slug"
	FieldType      = "gear_type"
	FieldBrandName = "brand_name"
)

const (
	TypeGuitar = "guitar"
	TypeEffect = "effect"
)

type Gear struct {
	ID          string  `db:"id"`
	BrandID     *string `db:"brand_id"`
	CategoryID  *string `db:"category_id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Type        string  `db:"gear_type"`
	YearFrom    *int    `db:"year_from"`
	YearTo      *int    `db:"year_to"`
	Description *string `db:"description"`
}

// GetJoinQuery lets list filters match on the brand's name.
func (Gear) GetJoinQuery() string {
	return "LEFT JOIN brands ON brands.id = gear.brand_id"
}

// Slugify derives a URL-friendly identifier from a display name.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
