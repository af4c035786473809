package render

import (
	"strings"

	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/parser"
)

// validationSample is a fully tokenizable release name: validation renders
// the candidate template against it to prove the template can produce a
// non-empty result.
const validationSample = "Test.Movie.2024.1080p.BluRay.x264-GROUP.mkv"

// Validation messages returned by ValidateTemplate. Callers surface them
// to users verbatim.
const (
	MsgValid                 = "Template is valid"
	MsgUnbalancedBraces      = "Unbalanced braces in template"
	MsgEmptyResult           = "Template produces empty result"
	MsgUnknownVariablePrefix = "Unknown variable: "
)

// ValidateTemplate checks a template before it is stored: brace counts
// must balance, every placeholder must name a known variable, and the
// template must render a non-empty name against a reference sample.
// It returns whether the template is acceptable plus a one-line message.
func ValidateTemplate(template string) (bool, string) {
	if strings.Count(template, "{") != strings.Count(template, "}") {
		return false, MsgUnbalancedBraces
	}

	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if _, known := (models.TokenSet{}).Value(name); !known {
			return false, MsgUnknownVariablePrefix + name
		}
	}

	_, ext := parser.SplitExtension(validationSample)
	if Render(template, parser.Extract(validationSample), ext) == "" {
		return false, MsgEmptyResult
	}
	return true, MsgValid
}
