package models

// DefaultTemplate is the template new users start with.
const DefaultTemplate = "{title}"

// RenameConfig is the per-user rename configuration snapshot. The engine
// reads it and never mutates it; ownership stays with the settings store.
type RenameConfig struct {
	Template string     `json:"template"`
	Mode     RenameMode `json:"mode"`
	Rules    RuleSet    `json:"rules,omitempty"`
}

// DefaultRenameConfig returns the configuration applied to users that have
// never customized anything: template rendering with just the title.
func DefaultRenameConfig() RenameConfig {
	return RenameConfig{
		Template: DefaultTemplate,
		Mode:     ModeAuto,
	}
}
