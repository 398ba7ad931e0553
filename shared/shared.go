package shared

import (
	"math"
	"strings"

	"gearbase/shared/dto"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins key segments with ":" for redis lookups.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

// FilterEq builds a single-clause equality filter group, for lookups on an
// identifying column.
func FilterEq(value any, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
