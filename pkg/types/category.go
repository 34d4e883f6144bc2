package types

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// DocumentRequirement is one row of the requirement table as stored for reporting.
type DocumentRequirement struct {
	Purpose      Purpose      `db:"purpose"`
	Category     Category     `db:"category"`
	DocumentType DocumentType `db:"document_type"`
	Position     int          `db:"position"`
	Label        string       `db:"label"`
	Expiring     bool         `db:"expiring"`
}
