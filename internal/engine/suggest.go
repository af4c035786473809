package engine

import (
	"github.com/renamebot/renamed/internal/parser"
)

// maxSuggestions caps how many templates SuggestTemplates returns.
const maxSuggestions = 10

// SuggestTemplates proposes templates that fit the tokens actually present
// in filename. The plain title template always leads; season/episode, year
// and quality groups follow in that order. Duplicates are dropped keeping
// the first occurrence, and the list is capped at maxSuggestions.
func SuggestTemplates(filename string) []string {
	tokens := parser.Extract(filename)

	suggestions := []string{"{title}"}

	if tokens.HasSeasonEpisode() {
		suggestions = append(suggestions,
			"{title} - {season}{episode}",
			"{title} {season}{episode}",
			"{title} - {season}{episode} - {quality}",
			"{title} [{season}{episode}] {quality}",
		)
	}

	if tokens.Year != "" {
		suggestions = append(suggestions,
			"{title} ({year})",
			"{title} ({year}) [{quality}]",
			"{title} - {year} - {quality}",
			"{title} ({year}) {quality} {codec}",
		)
	}

	if tokens.Quality != "" {
		suggestions = append(suggestions,
			"{title} [{quality}]",
			"{title} - {quality}",
			"{title} ({year}) [{quality}]",
		)
	}

	return dedupe(suggestions, maxSuggestions)
}

// dedupe drops repeated entries keeping first occurrences, then caps the
// result at limit.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
