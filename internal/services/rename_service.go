package services

import (
	"context"

	"github.com/renamebot/renamed/internal/engine"
	"github.com/renamebot/renamed/internal/models"
)

// RenameService is the engine facade the transport layers call. It owns
// settings-store orchestration, metrics accounting and filename sanitizing
// so handlers stay thin. No transport types leak into it.
type RenameService interface {
	// Extract parses rename variables out of a filename.
	Extract(filename string) models.TokenSet

	// Render extracts tokens from the filename and renders the template
	// against them, reattaching the filename's extension.
	Render(template, filename string) string

	// Apply runs an ordered rule set over the filename.
	Apply(filename string, rules models.RuleSet) string

	// Preview computes the would-be name under the given configuration.
	// Manual mode yields the literal "[Manual: <filename>]" marker.
	Preview(filename string, cfg models.RenameConfig) string

	// PreviewForUser previews with the user's stored configuration and
	// reports which mode produced the preview.
	PreviewForUser(ctx context.Context, userID int64, filename string) (renamed string, mode models.RenameMode, err error)

	// ComputeForUser resolves the user's stored configuration and computes
	// the new, filesystem-safe name. ok=false means the user's mode defers
	// to freeform input collected out-of-band.
	ComputeForUser(ctx context.Context, userID int64, filename string) (name string, ok bool, err error)

	// Report builds a structured batch preview under the given configuration.
	Report(filenames []string, cfg models.RenameConfig) models.PreviewReport

	// ReportForUser builds a batch preview with the user's stored configuration.
	ReportForUser(ctx context.Context, userID int64, filenames []string) (models.PreviewReport, error)

	// Suggest proposes up to ten templates that fit the filename.
	Suggest(filename string) []string

	// Validate checks a template and returns a user-facing verdict.
	Validate(template string) (bool, string)

	// Variables lists the supported placeholder names with descriptions.
	Variables() map[string]string

	// Presets returns the built-in template catalog.
	Presets() []models.TemplatePreset

	// Samples returns the categorized demo filenames used by preview UIs.
	Samples() []engine.SampleCategory

	// Settings returns the user's stored configuration, or the defaults when
	// nothing is stored.
	Settings(ctx context.Context, userID int64) (models.RenameConfig, error)

	// UpdateSettings validates and stores the user's configuration.
	UpdateSettings(ctx context.Context, userID int64, cfg models.RenameConfig) error

	// DeleteSettings removes the user's stored configuration.
	DeleteSettings(ctx context.Context, userID int64) error
}
