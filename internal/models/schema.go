package models

// Column is a single column (or field) of a parsed table. Type carries the
// raw type token from the source dialect; Details carries whatever trailed
// it (constraints, attributes, arguments) as opaque text.
type Column struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// Table is one declared table/model/class. Columns keep declaration order.
type Table struct {
	ID      string   `json:"id"`
	Columns []Column `json:"columns"`
}

// Relationship is a directed edge Source -> Target. Column, when known,
// names the column on the source side that carries the reference.
type Relationship struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Column string `json:"column,omitempty"`
}

// SchemaModel is the normalized graph handed to downstream consumers.
// Tables keep first-seen order; explicit relationships precede inferred
// ones; RawContent is the original input, unmodified.
type SchemaModel struct {
	Tables        []Table        `json:"tables"`
	Relationships []Relationship `json:"relationships"`
	RawContent    string         `json:"rawContent"`
}
