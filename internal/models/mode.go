package models

import "strings"

// RenameMode represents the per-user rename strategy
type RenameMode int

const (
	// ModeAuto renders the user's template against extracted tokens
	ModeAuto RenameMode = iota
	// ModeManual defers to freeform user input collected out-of-band
	ModeManual
	// ModeReplace applies the user's ordered replace rules
	ModeReplace
)

// String returns the string representation of the rename mode
func (m RenameMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeManual:
		return "manual"
	case ModeReplace:
		return "replace"
	default:
		return "auto"
	}
}

// IsValid reports whether the mode is one of the three known strategies
func (m RenameMode) IsValid() bool {
	switch m {
	case ModeAuto, ModeManual, ModeReplace:
		return true
	default:
		return false
	}
}

// ParseRenameMode converts a mode string to RenameMode. Unknown strings
// fall back to ModeAuto, reported through the second return value.
func ParseRenameMode(modeStr string) (RenameMode, bool) {
	switch strings.ToLower(strings.TrimSpace(modeStr)) {
	case "auto":
		return ModeAuto, true
	case "manual":
		return ModeManual, true
	case "replace":
		return ModeReplace, true
	default:
		return ModeAuto, false
	}
}

// MarshalJSON implements json.Marshaler interface
func (m RenameMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (m *RenameMode) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	*m, _ = ParseRenameMode(str)
	return nil
}
