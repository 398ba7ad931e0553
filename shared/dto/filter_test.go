package dto_test

import (
	"testing"

	"gearbase/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq",
			filter: dto.Filter{
				Field:    "gear_type",
				Operator: dto.FilterOperatorEq,
				Value:    "guitar",
				Table:    "gear",
			},
			wantClause: "gear.gear_type = :gear_type",
			wantArgs:   map[string]any{"gear_type": "guitar"},
		},
		{
			name: "eq_fold lowercases both sides",
			filter: dto.Filter{
				ArgName:  "brand_name",
				Field:    "name",
				Operator: dto.FilterOperatorEqFold,
				Value:    "Fender",
				Table:    "brands",
			},
			wantClause: "LOWER(brands.name) = LOWER(:brand_name)",
			wantArgs:   map[string]any{"brand_name": "Fender"},
		},
		{
			name: "like wraps the value in wildcards",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "strat",
				Table:    "gear",
			},
			wantClause: "LOWER(gear.name) LIKE LOWER(:name) ",
			wantArgs:   map[string]any{"name": "%strat%"},
		},
		{
			name: "in expands a slice to named parameters",
			filter: dto.Filter{
				Field:    "gear_type",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"guitar", "effect"},
				Table:    "gear",
			},
			wantClause: "gear.gear_type IN (:gear_type_0, :gear_type_1) ",
			wantArgs:   map[string]any{"gear_type_0": "guitar", "gear_type_1": "effect"},
		},
		{
			name: "scalar in still binds a parameter",
			filter: dto.Filter{
				Field:    "gear_type",
				Operator: dto.FilterOperatorIn,
				Value:    "guitar",
				Table:    "gear",
			},
			wantClause: "gear.gear_type IN (:gear_type) ",
			wantArgs:   map[string]any{"gear_type": "guitar"},
		},
		{
			name: "is null takes no argument",
			filter: dto.Filter{
				Field:    "brand_id",
				Operator: dto.FilterIsNull,
				Table:    "gear",
			},
			wantClause: "gear.brand_id IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "no table prefixes nothing",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorEq,
				Value:    "x",
			},
			wantClause: "name = :name",
			wantArgs:   map[string]any{"name": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "strat",
				Table:    "gear",
			},
			dto.Filter{
				ArgName:  "brand_name",
				Field:    "name",
				Operator: dto.FilterOperatorEqFold,
				Value:    "Fender",
				Table:    "brands",
			},
		},
	}

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(gear.name) LIKE LOWER(:name)  AND LOWER(brands.name) = LOWER(:brand_name))", clause)
	assert.Equal(t, map[string]any{"name": "%strat%", "brand_name": "Fender"}, args)
}

func TestFilterGroup_GetWhereClauseEmpty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	assert.Equal(t, "", clause)
	assert.Empty(t, args)
}
