package models

import "time"

// PreviewEntry is one before/after pair in a preview report.
type PreviewEntry struct {
	Original string `json:"original"`
	Renamed  string `json:"renamed"`
}

// PreviewReport summarizes a non-destructive batch preview run.
type PreviewReport struct {
	Total       int            `json:"total"`
	Mode        RenameMode     `json:"mode"`
	Template    string         `json:"template,omitempty"`     // set for auto mode
	ActiveRules int            `json:"active_rules,omitempty"` // set for replace mode
	Entries     []PreviewEntry `json:"entries"`
	GeneratedAt time.Time      `json:"generated_at"`
}
