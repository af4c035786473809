package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/renamebot/renamed/internal/models"
)

var (
	separatorChars = strings.NewReplacer(".", " ", "_", " ", "-", " ", "+", " ")
	leadingArticle = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)
	numericQuality = regexp.MustCompile(`(?i)^\d{3,4}[pi]$`)
)

// Extract recovers typed tokens from a scene-release-style filename.
// It is total: any input, including the empty string, yields a TokenSet
// with every unrecoverable field left empty.
func Extract(filename string) models.TokenSet {
	stem, _ := SplitExtension(filename)
	norm := normalizeStem(stem)

	tokens := models.TokenSet{Stem: norm}
	tokens.Season, tokens.Episode = extractSeasonEpisode(norm)
	tokens.Year = extractYear(norm)
	tokens.Quality = extractQuality(norm)
	tokens.Resolution = extractResolution(norm)
	tokens.Codec = extractCodec(norm)
	// Group tags hang off the raw stem; normalization erases them.
	tokens.Source = extractSource(norm)
	tokens.Group = extractGroup(stem)
	tokens.Extension = extractExtension(norm)
	tokens.Title = extractTitle(norm)
	return tokens
}

// SplitExtension splits a filename into stem and extension. The extension
// keeps its leading dot. Dotfiles and names with a trailing dot have no
// extension, matching the original application's stem/suffix behavior.
func SplitExtension(filename string) (stem, ext string) {
	i := strings.LastIndex(filename, ".")
	if i <= 0 || i == len(filename)-1 {
		return filename, ""
	}
	return filename[:i], filename[i:]
}

// normalizeStem replaces the separator characters `. _ - +` with spaces and
// collapses whitespace runs. Extraction works on this form except for the
// group table.
func normalizeStem(stem string) string {
	return strings.Join(strings.Fields(separatorChars.Replace(stem)), " ")
}

func extractSeasonEpisode(norm string) (season, episode string) {
	for _, re := range seasonEpisodePatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		s, err1 := strconv.Atoi(m[1])
		e, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		return fmt.Sprintf("S%02d", s), fmt.Sprintf("E%02d", e)
	}
	return extractNumbered(norm, seasonFallbackPatterns, "S"), extractNumbered(norm, episodeFallbackPatterns, "E")
}

func extractNumbered(norm string, patterns []*regexp.Regexp, prefix string) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return fmt.Sprintf("%s%02d", prefix, n)
	}
	return ""
}

func extractYear(norm string) string {
	for _, re := range yearPatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil || year < 1900 || year > 2100 {
			// Only the first match per pattern counts; out of range
			// moves on to the next pattern, not the next match.
			continue
		}
		return m[1]
	}
	return ""
}

func extractQuality(norm string) string {
	for _, re := range qualityPatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			return normalizeQuality(m[1])
		}
	}
	return ""
}

func normalizeQuality(match string) string {
	if numericQuality.MatchString(match) {
		return strings.ToLower(match)
	}
	if canonical, ok := qualityNames[strings.ToUpper(match)]; ok {
		return canonical
	}
	return match
}

func extractResolution(norm string) string {
	for _, re := range resolutionPatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractCodec(norm string) string {
	for _, re := range codecPatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			if canonical, ok := codecNames[strings.ToUpper(m[1])]; ok {
				return canonical
			}
			return strings.ToUpper(m[1])
		}
	}
	return ""
}

func extractSource(norm string) string {
	for _, re := range sourcePatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			if canonical, ok := sourceNames[strings.ToUpper(m[1])]; ok {
				return canonical
			}
			return m[1]
		}
	}
	return ""
}

func extractGroup(rawStem string) string {
	for _, re := range groupPatterns {
		if m := re.FindStringSubmatch(rawStem); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractExtension looks for a suffix on the normalized stem. Normalization
// already turned every dot into a space, so this stays empty for real-world
// input; the quirk is load-bearing for templates like {title}.{extension},
// where the empty placeholder's orphan dot is swept up by render cleanup.
func extractExtension(norm string) string {
	_, ext := SplitExtension(norm)
	return ext
}

// extractTitle takes the text before the first season/episode, year, or
// quality marker, in that priority order. A marker at the very start of the
// stem yields no title and the search keeps going; with no usable marker the
// whole stem is the title.
func extractTitle(norm string) string {
	tables := [][]*regexp.Regexp{seasonEpisodePatterns, yearPatterns, qualityPatterns}
	for _, table := range tables {
		for _, re := range table {
			loc := re.FindStringIndex(norm)
			if loc == nil {
				continue
			}
			if candidate := strings.TrimSpace(norm[:loc[0]]); candidate != "" {
				return cleanTitle(candidate)
			}
		}
	}
	return cleanTitle(norm)
}

func cleanTitle(candidate string) string {
	title := strings.Join(strings.Fields(separatorChars.Replace(candidate)), " ")
	title = leadingArticle.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return cases.Title(language.English).String(title)
}
