package types

// FieldSpec describes one schedulable time field and its inclusive bounds
type FieldSpec struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// FieldValues holds the expanded values of one field, rendered as
// canonical decimal strings in expansion order
type FieldValues struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Schedule is the result of parsing a full cron expression. Fields are kept
// in cron positional order; Command is the trailing command token(s) verbatim.
// Immutable after construction.
type Schedule struct {
	Fields  []FieldValues `json:"fields"`
	Command string        `json:"command"`
}
