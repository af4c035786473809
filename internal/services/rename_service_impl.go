package services

import (
	"context"
	"strings"
	"time"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/engine"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/names"
	"github.com/renamebot/renamed/internal/parser"
	"github.com/renamebot/renamed/internal/render"
	"github.com/renamebot/renamed/internal/rules"
	"github.com/renamebot/renamed/internal/settings"
)

// DefaultRenameService is the default implementation of RenameService
type DefaultRenameService struct {
	store settings.Store
}

// NewRenameService creates a new RenameService over the given settings store
func NewRenameService(store settings.Store) RenameService {
	return &DefaultRenameService{store: store}
}

// Extract parses rename variables out of a filename
func (s *DefaultRenameService) Extract(filename string) models.TokenSet {
	defer metrics.ObserveEngineOp("extract", time.Now())
	metrics.ExtractionsTotal.Inc()

	return parser.Extract(filename)
}

// Render extracts tokens from the filename and renders the template against them
func (s *DefaultRenameService) Render(template, filename string) string {
	defer metrics.ObserveEngineOp("render", time.Now())
	metrics.RendersTotal.Inc()

	tokens := parser.Extract(filename)
	_, ext := parser.SplitExtension(filename)
	return render.Render(template, tokens, ext)
}

// Apply runs an ordered rule set over the filename
func (s *DefaultRenameService) Apply(filename string, ruleSet models.RuleSet) string {
	defer metrics.ObserveEngineOp("apply", time.Now())
	metrics.RuleApplicationsTotal.Inc()

	return rules.Apply(filename, ruleSet)
}

// Preview computes the would-be name under the given configuration
func (s *DefaultRenameService) Preview(filename string, cfg models.RenameConfig) string {
	defer metrics.ObserveEngineOp("preview", time.Now())
	metrics.PreviewsTotal.WithLabelValues(cfg.Mode.String()).Inc()

	return engine.Preview(filename, cfg)
}

// PreviewForUser previews with the user's stored configuration
func (s *DefaultRenameService) PreviewForUser(ctx context.Context, userID int64, filename string) (string, models.RenameMode, error) {
	cfg, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", models.ModeAuto, err
	}
	return s.Preview(filename, cfg), cfg.Mode, nil
}

// ComputeForUser resolves the user's stored configuration and computes the
// new, filesystem-safe name
func (s *DefaultRenameService) ComputeForUser(ctx context.Context, userID int64, filename string) (string, bool, error) {
	defer metrics.ObserveEngineOp("compute", time.Now())

	cfg, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", false, err
	}

	name, ok := engine.ComputeName(filename, cfg)
	if !ok {
		return "", false, nil
	}
	return names.Sanitize(name), true, nil
}

// Report builds a structured batch preview under the given configuration
func (s *DefaultRenameService) Report(filenames []string, cfg models.RenameConfig) models.PreviewReport {
	defer metrics.ObserveEngineOp("report", time.Now())
	metrics.PreviewsTotal.WithLabelValues(cfg.Mode.String()).Add(float64(len(filenames)))

	return engine.BuildReport(filenames, cfg)
}

// ReportForUser builds a batch preview with the user's stored configuration
func (s *DefaultRenameService) ReportForUser(ctx context.Context, userID int64, filenames []string) (models.PreviewReport, error) {
	cfg, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.PreviewReport{}, err
	}
	return s.Report(filenames, cfg), nil
}

// Suggest proposes up to ten templates that fit the filename
func (s *DefaultRenameService) Suggest(filename string) []string {
	defer metrics.ObserveEngineOp("suggest", time.Now())
	metrics.SuggestionsTotal.Inc()

	return engine.SuggestTemplates(filename)
}

// Validate checks a template and returns a user-facing verdict
func (s *DefaultRenameService) Validate(template string) (bool, string) {
	defer metrics.ObserveEngineOp("validate", time.Now())

	valid, message := render.ValidateTemplate(template)
	if !valid {
		metrics.ValidationFailuresTotal.WithLabelValues(validationReason(message)).Inc()
	}
	return valid, message
}

// Variables lists the supported placeholder names with descriptions
func (s *DefaultRenameService) Variables() map[string]string {
	return parser.Variables()
}

// Presets returns the built-in template catalog
func (s *DefaultRenameService) Presets() []models.TemplatePreset {
	return render.Presets()
}

// Samples returns the categorized demo filenames used by preview UIs
func (s *DefaultRenameService) Samples() []engine.SampleCategory {
	return engine.SampleFiles()
}

// Settings returns the user's stored configuration
func (s *DefaultRenameService) Settings(ctx context.Context, userID int64) (models.RenameConfig, error) {
	return s.store.Get(ctx, userID)
}

// UpdateSettings validates and stores the user's configuration. Templates are
// checked against the renderer before they are persisted; replace and manual
// users may store an empty template since their strategy never reads it.
func (s *DefaultRenameService) UpdateSettings(ctx context.Context, userID int64, cfg models.RenameConfig) error {
	if cfg.Template != "" {
		if valid, message := render.ValidateTemplate(cfg.Template); !valid {
			metrics.ValidationFailuresTotal.WithLabelValues(validationReason(message)).Inc()
			return apperrors.NewValidationError("template", message)
		}
	}

	if err := s.store.Put(ctx, userID, cfg); err != nil {
		return err
	}

	logger := config.GetLogger()
	logger.Info().
		Int64("user_id", userID).
		Str("mode", cfg.Mode.String()).
		Int("rules", cfg.Rules.ActiveCount()).
		Msg("Updated rename settings")
	return nil
}

// DeleteSettings removes the user's stored configuration
func (s *DefaultRenameService) DeleteSettings(ctx context.Context, userID int64) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}

	logger := config.GetLogger()
	logger.Info().
		Int64("user_id", userID).
		Msg("Reset rename settings to defaults")
	return nil
}

// validationReason maps a validation verdict to a bounded metric label.
func validationReason(message string) string {
	switch {
	case message == render.MsgUnbalancedBraces:
		return "unbalanced_braces"
	case strings.HasPrefix(message, render.MsgUnknownVariablePrefix):
		return "unknown_variable"
	case message == render.MsgEmptyResult:
		return "empty_result"
	default:
		return "other"
	}
}
