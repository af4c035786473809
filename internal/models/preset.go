package models

// TemplatePreset is a named, ready-made rename template shown to users
// that do not want to write their own.
type TemplatePreset struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Template    string `json:"template"`
	Description string `json:"description"`
	Example     string `json:"example"`
}
