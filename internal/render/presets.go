package render

import "github.com/renamebot/renamed/internal/models"

// Presets returns the built-in template catalog in display order. Every
// entry validates; callers may hand the templates straight to Render.
func Presets() []models.TemplatePreset {
	return []models.TemplatePreset{
		{
			Key:         "basic",
			Name:        "Basic",
			Template:    "{title}",
			Description: "Just the title",
			Example:     "Movie Name",
		},
		{
			Key:         "series",
			Name:        "TV Series",
			Template:    "{title} - {season}{episode}",
			Description: "Title with season and episode",
			Example:     "Game of Thrones - S01E01",
		},
		{
			Key:         "movie",
			Name:        "Movie",
			Template:    "{title} ({year}) [{quality}]",
			Description: "Title with year and quality",
			Example:     "Inception (2010) [1080p]",
		},
		{
			Key:         "detailed",
			Name:        "Detailed",
			Template:    "{title} - {season}{episode} - {quality}",
			Description: "Full details with quality",
			Example:     "Breaking Bad - S05E14 - 720p",
		},
		{
			Key:         "minimal",
			Name:        "Minimal",
			Template:    "{title}.{extension}",
			Description: "Clean title with extension",
			Example:     "Document Name.pdf",
		},
		{
			Key:         "date",
			Name:        "With Date",
			Template:    "{title} - {year}",
			Description: "Title with year",
			Example:     "Document Name - 2024",
		},
		{
			Key:         "quality",
			Name:        "Quality Focus",
			Template:    "{title} [{quality}] [{codec}]",
			Description: "Focus on quality and codec",
			Example:     "Movie Name [1080p] [x264]",
		},
	}
}
