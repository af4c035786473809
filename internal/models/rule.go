package models

// ReplaceRule is a single ordered find/replace instruction. Old is always
// treated as a literal string, never as a regular expression.
type ReplaceRule struct {
	Old           string `json:"old"`
	New           string `json:"new"`
	Enabled       bool   `json:"enabled"`
	CaseSensitive bool   `json:"case_sensitive"`
}

// RuleSet is an ordered sequence of replace rules. Rules apply in list
// order, each against the output of the previous rule.
type RuleSet []ReplaceRule

// ActiveCount returns the number of enabled, structurally valid rules.
func (rs RuleSet) ActiveCount() int {
	count := 0
	for _, rule := range rs {
		if rule.Enabled && rule.Old != "" {
			count++
		}
	}
	return count
}
