package model

const (
	TableName  = "images"
	EntityName = "image"
)

type Image struct {
	ID  string  `json:"id,omitempty"`
	Src string  `json:"src"`
	Alt *string `json:"alt"`
	W   int     `json:"w"`
	H   int     `json:"h"`

	// Loose string link to the owning guitar; referential integrity is not
	// enforced by the store.
	GuitarID *string `json:"guitar_id,omitempty"`
}
