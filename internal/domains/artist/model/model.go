package model

const (
	TableName  = "artists"
	EntityName = "artist"

	FieldID   = "id"
	FieldName = "name"
)

// Artist is a lookup dimension table alongside brands.
type Artist struct {
	ID          string  `db:"id"   json:"id"`
	Name        string  `db:"name" json:"name"`
	Country     *string `db:"country" json:"country"`
	FoundedYear *int    `db:"founded_year" json:"founded_year"`
}
