package parser

// VariableNames lists the template variables in their documented order.
var VariableNames = []string{
	"title", "season", "episode", "year", "quality",
	"resolution", "codec", "source", "group", "extension",
}

// Variables returns the template variables with user-facing descriptions.
func Variables() map[string]string {
	return map[string]string{
		"title":      "Original filename without extension",
		"season":     "Season number (S01, S02, etc.)",
		"episode":    "Episode number (E01, E02, etc.)",
		"year":       "Year from filename (2024, 2025, etc.)",
		"quality":    "Quality indicator (1080p, 720p, BluRay, etc.)",
		"resolution": "Video resolution (1920x1080, 1280x720, etc.)",
		"codec":      "Video codec (H264, H265, x264, etc.)",
		"source":     "Source type (BluRay, WEB-DL, HDTV, etc.)",
		"group":      "Release group name",
		"extension":  "File extension (.mkv, .mp4, etc.)",
	}
}
