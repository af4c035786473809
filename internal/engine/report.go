package engine

import (
	"time"

	"github.com/renamebot/renamed/internal/models"
)

// BuildReport previews every filename under cfg and assembles the result
// into a batch report. The header fields depend on the mode: auto reports
// the template in effect, replace reports how many rules are active, manual
// reports neither.
func BuildReport(filenames []string, cfg models.RenameConfig) models.PreviewReport {
	report := models.PreviewReport{
		Total:       len(filenames),
		Mode:        cfg.Mode,
		Entries:     make([]models.PreviewEntry, 0, len(filenames)),
		GeneratedAt: time.Now().UTC(),
	}

	switch cfg.Mode {
	case models.ModeReplace:
		report.ActiveRules = cfg.Rules.ActiveCount()
	case models.ModeManual:
	default:
		report.Template = cfg.Template
	}

	for _, filename := range filenames {
		report.Entries = append(report.Entries, models.PreviewEntry{
			Original: filename,
			Renamed:  Preview(filename, cfg),
		})
	}
	return report
}
