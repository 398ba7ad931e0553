package model

const (
	TableName  = "brands"
	EntityName = "brand"

	FieldID   = "id"
	FieldName = "name"
)

// Brand is a lookup dimension; gear rows reference it by id.
type Brand struct {
	ID          string  `db:"id"   json:"id"`
	Name        string  `db:"name" json:"name"`
	Country     *string `db:"country"      json:"country"`
	FoundedYear *int    `db:"founded_year" json:"founded_year"`
}
