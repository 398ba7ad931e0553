package dto

import (
	"gearbase/internal/domains/gear/model"
	"gearbase/shared"

	"github.com/google/uuid"
)

// CreateGearRequest carries the insert payload. Brand and category arrive as
// display names and are resolved to foreign keys at insert time; a name that
// does not resolve leaves the foreign key null without failing the insert.
type CreateGearRequest struct {
	Name         string  `json:"name"          validate:"required,min=1,max=200"`
	Slug         string  `json:"slug"          validate:"omitempty,max=200"`
	Type         string  `json:"gear_type"     validate:"required,oneof=guitar effect"`
	BrandName    *string `json:"brand_name"    validate:"omitempty,max=200"`
	CategoryName *string `json:"category_name" validate:"omitempty,max=200"`
	YearFrom     *int    `json:"year_from"     validate:"omitempty,gte=1800"`
	YearTo       *int    `json:"year_to"       validate:"omitempty,gte=1800"`
	Description  *string `json:"description"   validate:"omitempty"`
}

func (c *CreateGearRequest) ToModel() model.Gear {
	slug := c.Slug
	if slug == "" {
		slug = model.Slugify(c.Name)
	}

	return model.Gear{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        slug,
		Type:        c.Type,
		YearFrom:    c.YearFrom,
		YearTo:      c.YearTo,
		Description: c.Description,
	}
}

type GearResponse struct {
	ID          string  `json:"id"`
	BrandID     *string `json:"brand_id"`
	CategoryID  *string `json:"category_id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Type        string  `json:"gear_type"`
	YearFrom    *int    `json:"year_from"`
	YearTo      *int    `json:"year_to"`
	Description *string `json:"description"`
}

func (r *GearResponse) FromModel(model model.Gear) {
	r.ID = model.ID
	r.BrandID = model.BrandID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Type = model.Type
	r.YearFrom = model.YearFrom
	r.YearTo = model.YearTo
	r.Description = model.Description
}

type GetGearResponse struct {
	Gear      []GearResponse `json:"gear"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetGearResponse) FromModels(models []model.Gear, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Gear = make([]GearResponse, len(models))
	for i, m := range models {
		r.Gear[i].FromModel(m)
	}
}
