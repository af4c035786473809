package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/cache"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/render"
	"github.com/renamebot/renamed/internal/settings"
	"github.com/renamebot/renamed/internal/testutil"
)

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func newTestService(t *testing.T) RenameService {
	t.Helper()

	c, err := cache.New("memory", cache.ProviderConfig{
		Size: 64,
		TTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create memory cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	store := settings.NewStore(c, settings.Limits{MaxTemplateLength: 256, MaxRules: 20})
	return NewRenameService(store)
}

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func TestNewRenameService(t *testing.T) {
	svc := newTestService(t)
	if svc == nil {
		t.Fatal("NewRenameService should return a non-nil service")
	}

	// Verify it implements the interface
	var _ RenameService = svc //nolint:staticcheck // explicit interface compliance check
}

func TestRenameService_Extract(t *testing.T) {
	svc := newTestService(t)

	tokens := svc.Extract("Game.of.Thrones.S01E01.1080p.BluRay.x264-GROUP.mkv")
	if tokens.Season != "S01" || tokens.Episode != "E01" {
		t.Errorf("season/episode = %q/%q, want S01/E01", tokens.Season, tokens.Episode)
	}
	if tokens.Title != "Game Of Thrones" {
		t.Errorf("title = %q, want %q", tokens.Title, "Game Of Thrones")
	}
	if tokens.Group != "GROUP" {
		t.Errorf("group = %q, want GROUP", tokens.Group)
	}
}

func TestRenameService_Render(t *testing.T) {
	svc := newTestService(t)

	got := svc.Render("{title} - {season}{episode}", "Game.of.Thrones.S01E01.1080p.BluRay.x264-GROUP.mkv")
	if want := "Game Of Thrones - S01E01.mkv"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenameService_Apply(t *testing.T) {
	svc := newTestService(t)

	ruleSet := models.RuleSet{
		{Old: "_", New: " ", Enabled: true, CaseSensitive: true},
	}
	got := svc.Apply("Movie_Name_2024.mkv", ruleSet)
	if want := "Movie Name 2024.mkv"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestRenameService_PreviewForUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Unknown users preview with the default {title} template.
	got, mode, err := svc.PreviewForUser(ctx, 100, "The.Matrix.1999.1080p.BluRay.x264-YIFY.mp4")
	if err != nil {
		t.Fatalf("PreviewForUser() error = %v", err)
	}
	if want := "Matrix.mp4"; got != want {
		t.Errorf("default preview = %q, want %q", got, want)
	}
	if mode != models.ModeAuto {
		t.Errorf("default mode = %v, want ModeAuto", mode)
	}

	// A stored replace configuration wins over the default.
	cfg := models.RenameConfig{
		Mode: models.ModeReplace,
		Rules: models.RuleSet{
			{Old: ".", New: " ", Enabled: true, CaseSensitive: true},
		},
	}
	if err := svc.UpdateSettings(ctx, 100, cfg); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	got, mode, err = svc.PreviewForUser(ctx, 100, "A.B.mkv")
	if err != nil {
		t.Fatalf("PreviewForUser() error = %v", err)
	}
	if want := "A B mkv"; got != want {
		t.Errorf("replace preview = %q, want %q", got, want)
	}
	if mode != models.ModeReplace {
		t.Errorf("stored mode = %v, want ModeReplace", mode)
	}
}

func TestRenameService_ComputeForUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("auto mode sanitizes the rendered name", func(t *testing.T) {
		cfg := models.RenameConfig{Template: "{title}: {quality}", Mode: models.ModeAuto}
		if err := svc.UpdateSettings(ctx, 200, cfg); err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}

		name, ok, err := svc.ComputeForUser(ctx, 200, "My.Movie.2024.1080p.mkv")
		if err != nil {
			t.Fatalf("ComputeForUser() error = %v", err)
		}
		if !ok {
			t.Fatal("ComputeForUser() ok = false, want true")
		}
		if want := "My Movie_ 1080p.mkv"; name != want {
			t.Errorf("ComputeForUser() = %q, want %q", name, want)
		}
	})

	t.Run("manual mode defers to the caller", func(t *testing.T) {
		cfg := models.RenameConfig{Template: "{title}", Mode: models.ModeManual}
		if err := svc.UpdateSettings(ctx, 201, cfg); err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}

		name, ok, err := svc.ComputeForUser(ctx, 201, "whatever.mkv")
		if err != nil {
			t.Fatalf("ComputeForUser() error = %v", err)
		}
		if ok || name != "" {
			t.Errorf("ComputeForUser() = (%q, %v), want (\"\", false)", name, ok)
		}
	})
}

func TestRenameService_ReportForUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	files := []string{
		"The.Dark.Knight.2008.1080p.BluRay.x264-SPARKS.mkv",
		"Inception.2010.720p.BRRip.x264-YIFY.mp4",
	}

	report, err := svc.ReportForUser(ctx, 300, files)
	if err != nil {
		t.Fatalf("ReportForUser() error = %v", err)
	}
	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
	if report.Mode != models.ModeAuto {
		t.Errorf("Mode = %v, want ModeAuto", report.Mode)
	}
	if report.Template != models.DefaultTemplate {
		t.Errorf("Template = %q, want %q", report.Template, models.DefaultTemplate)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	if want := "Dark Knight.mkv"; report.Entries[0].Renamed != want {
		t.Errorf("Entries[0].Renamed = %q, want %q", report.Entries[0].Renamed, want)
	}
}

func TestRenameService_UpdateSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("rejects templates with unknown variables", func(t *testing.T) {
		cfg := models.RenameConfig{Template: "{artist} - {album}", Mode: models.ModeAuto}
		err := svc.UpdateSettings(ctx, 400, cfg)
		if !errors.Is(err, &apperrors.ErrValidation{}) {
			t.Fatalf("UpdateSettings() error = %v, want ErrValidation", err)
		}
		if !strings.Contains(err.Error(), "Unknown variable: artist") {
			t.Errorf("error message = %q, want it to carry the validation verdict", err.Error())
		}
	})

	t.Run("allows an empty template for replace users", func(t *testing.T) {
		cfg := models.RenameConfig{
			Mode: models.ModeReplace,
			Rules: models.RuleSet{
				{Old: "x264", New: "", Enabled: true},
			},
		}
		if err := svc.UpdateSettings(ctx, 401, cfg); err != nil {
			t.Errorf("UpdateSettings() error = %v", err)
		}
	})

	t.Run("stores and rereads a valid configuration", func(t *testing.T) {
		cfg := models.RenameConfig{Template: "{title} ({year})", Mode: models.ModeAuto}
		if err := svc.UpdateSettings(ctx, 402, cfg); err != nil {
			t.Fatalf("UpdateSettings() error = %v", err)
		}

		got, err := svc.Settings(ctx, 402)
		if err != nil {
			t.Fatalf("Settings() error = %v", err)
		}
		if got.Template != cfg.Template || got.Mode != cfg.Mode {
			t.Errorf("Settings() = %+v, want %+v", got, cfg)
		}
	})
}

func TestRenameService_DeleteSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.DeleteSettings(ctx, 500)
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Errorf("DeleteSettings() on unknown user error = %v, want ErrNotFound", err)
	}

	cfg := models.RenameConfig{Template: "{title} [{quality}]", Mode: models.ModeAuto}
	if err := svc.UpdateSettings(ctx, 500, cfg); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	if err := svc.DeleteSettings(ctx, 500); err != nil {
		t.Fatalf("DeleteSettings() error = %v", err)
	}

	got, err := svc.Settings(ctx, 500)
	if err != nil {
		t.Fatalf("Settings() after delete error = %v", err)
	}
	if got.Template != models.DefaultTemplate {
		t.Errorf("template after delete = %q, want default %q", got.Template, models.DefaultTemplate)
	}
}

func TestRenameService_SuggestAndCatalogs(t *testing.T) {
	svc := newTestService(t)

	suggestions := svc.Suggest("Show.S01E01.1080p.mkv")
	if len(suggestions) == 0 || len(suggestions) > 10 {
		t.Fatalf("len(Suggest()) = %d, want 1..10", len(suggestions))
	}
	if suggestions[0] != "{title}" {
		t.Errorf("first suggestion = %q, want {title}", suggestions[0])
	}

	if valid, msg := svc.Validate("{title} - {unknown}"); valid || msg != "Unknown variable: unknown" {
		t.Errorf("Validate() = (%v, %q), want (false, Unknown variable: unknown)", valid, msg)
	}

	if got := len(svc.Variables()); got != 10 {
		t.Errorf("len(Variables()) = %d, want 10", got)
	}
	if got := len(svc.Presets()); got == 0 {
		t.Error("Presets() is empty")
	}
	if got := len(svc.Samples()); got != 4 {
		t.Errorf("len(Samples()) = %d, want 4", got)
	}
}

func TestRenameService_CountsPreviewsByMode(t *testing.T) {
	svc := newTestService(t)

	before := testutil.CounterVecValue(t, metrics.PreviewsTotal, "manual")

	cfg := models.RenameConfig{Mode: models.ModeManual}
	if got := svc.Preview("file.mkv", cfg); got != "[Manual: file.mkv]" {
		t.Fatalf("Preview() = %q, want manual marker", got)
	}

	if after := testutil.CounterVecValue(t, metrics.PreviewsTotal, "manual"); after != before+1 {
		t.Errorf("manual preview counter = %v, want %v", after, before+1)
	}
}

func TestValidationReason(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"unbalanced", render.MsgUnbalancedBraces, "unbalanced_braces"},
		{"unknown variable", render.MsgUnknownVariablePrefix + "artist", "unknown_variable"},
		{"empty result", render.MsgEmptyResult, "empty_result"},
		{"anything else", "some new verdict", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validationReason(tt.message); got != tt.want {
				t.Errorf("validationReason(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
