package models

// TokenSet holds the typed tokens recovered from a single filename.
// A field is either the empty string (not found) or a normalized
// non-empty value; extraction never stores partial garbage.
type TokenSet struct {
	Title      string `json:"title,omitempty"`
	Season     string `json:"season,omitempty"`     // formatted as S01, S02, ...
	Episode    string `json:"episode,omitempty"`    // formatted as E01, E02, ...
	Year       string `json:"year,omitempty"`       // 4-digit decimal in [1900, 2100]
	Quality    string `json:"quality,omitempty"`    // 1080p, 720p, BluRay, ...
	Resolution string `json:"resolution,omitempty"` // 1920x1080, 1080p, ...
	Codec      string `json:"codec,omitempty"`      // H264, H265, XviD, ...
	Source     string `json:"source,omitempty"`     // BluRay, WEB-DL, HDTV, ...
	Group      string `json:"group,omitempty"`      // release group name
	Extension  string `json:"extension,omitempty"`

	// Stem is the normalized stem the tokens were extracted from,
	// kept for the renderer's empty-result fallback.
	Stem string `json:"stem,omitempty"`
}

// Value returns the token value for a template variable name and whether
// the name is a recognized variable at all.
func (t TokenSet) Value(name string) (string, bool) {
	switch name {
	case "title":
		return t.Title, true
	case "season":
		return t.Season, true
	case "episode":
		return t.Episode, true
	case "year":
		return t.Year, true
	case "quality":
		return t.Quality, true
	case "resolution":
		return t.Resolution, true
	case "codec":
		return t.Codec, true
	case "source":
		return t.Source, true
	case "group":
		return t.Group, true
	case "extension":
		return t.Extension, true
	default:
		return "", false
	}
}

// HasSeasonEpisode reports whether both season and episode were recovered.
func (t TokenSet) HasSeasonEpisode() bool {
	return t.Season != "" && t.Episode != ""
}
