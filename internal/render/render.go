// Package render turns an extracted token set and a user template into a
// final filename. Rendering is total: every template and token combination
// produces a usable, non-empty name.
package render

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/renamebot/renamed/internal/models"
)

var (
	// placeholderPattern matches {name} placeholders. Empty braces {} are
	// not placeholders; the cleanup pass deletes them instead.
	placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

	whitespaceRuns  = regexp.MustCompile(`\s+`)
	emptyBrackets   = regexp.MustCompile(`\[\s*\]`)
	emptyParens     = regexp.MustCompile(`\(\s*\)`)
	emptyBraces     = regexp.MustCompile(`\{\s*\}`)
	separatorRuns   = regexp.MustCompile(`[-_.]{2,}`)
	digitsOnly      = regexp.MustCompile(`^[0-9]+$`)
	edgeCutset      = " .-_"
	fallbackLiteral = "file"
)

// Render substitutes tokens into template, cleans up the residue left by
// missing tokens and reattaches extension verbatim. Unknown placeholders
// and empty tokens render as the empty string; the cleanup pass then
// removes orphaned separators and empty bracket pairs. A template that
// cleans down to nothing falls back to the title, then the stem, then the
// literal "file", so the result is never just an extension.
func Render(template string, tokens models.TokenSet, extension string) string {
	result := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		value, known := tokens.Value(name)
		if !known {
			return ""
		}
		return formatValue(name, value)
	})

	result = cleanResult(result)
	if result == "" {
		result = fallbackName(tokens)
	}
	if extension != "" {
		result += extension
	}
	return result
}

// formatValue applies the per-variable presentation rules: titles are
// title-cased word by word, years are zero-padded to four digits, every
// other token is substituted as stored.
func formatValue(name, value string) string {
	if value == "" {
		return ""
	}
	switch name {
	case "title":
		return cases.Title(language.English).String(value)
	case "year":
		if digitsOnly.MatchString(value) && len(value) < 4 {
			return strings.Repeat("0", 4-len(value)) + value
		}
		return value
	default:
		return value
	}
}

// cleanResult removes the artifacts missing tokens leave behind. The pass
// order matters: whitespace first so bracket pairs holding only spaces
// become empty, edge trimming before bracket removal, separator collapsing
// last.
func cleanResult(s string) string {
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = strings.Trim(s, edgeCutset)
	s = emptyBrackets.ReplaceAllString(s, "")
	s = emptyParens.ReplaceAllString(s, "")
	s = emptyBraces.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

func fallbackName(tokens models.TokenSet) string {
	if tokens.Title != "" {
		return tokens.Title
	}
	if tokens.Stem != "" {
		return tokens.Stem
	}
	return fallbackLiteral
}
