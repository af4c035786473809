package settings

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/cache"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/testutil"
)

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func newTestStore(t *testing.T) (Store, cache.Cache) {
	t.Helper()

	c, err := cache.New("memory", cache.ProviderConfig{
		Size: 64,
		TTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create memory cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return NewStore(c, Limits{MaxTemplateLength: 500, MaxRules: 20}), c
}

// brokenCache fails every operation, standing in for an unreachable backend.
type brokenCache struct {
	err error
}

func (b *brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, b.err
}

func (b *brokenCache) Set(context.Context, string, []byte) error {
	return b.err
}

func (b *brokenCache) Delete(context.Context, string) (bool, error) {
	return false, b.err
}

func (b *brokenCache) Len(context.Context) (int, error) {
	return 0, b.err
}

func (b *brokenCache) Close() error {
	return nil
}

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func TestSettingsKey(t *testing.T) {
	if got := settingsKey(42); got != "user:42:rename" {
		t.Errorf("settingsKey(42) = %q, want %q", got, "user:42:rename")
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	want := models.RenameConfig{
		Template: "{title} - {season}{episode}",
		Mode:     models.ModeReplace,
		Rules: models.RuleSet{
			{Old: "x264", New: "", CaseSensitive: false, Enabled: true},
			{Old: "HDTV", New: "TV", CaseSensitive: true, Enabled: false},
		},
	}

	if err := store.Put(ctx, 7, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestStore_GetMissingUserReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	before := testutil.CounterValue(t, metrics.StoreFallbacksTotal)

	got, err := store.Get(context.Background(), 12345)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if want := models.DefaultRenameConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want defaults %+v", got, want)
	}

	// A missing user is not a failure, so the fallback path must stay cold.
	if after := testutil.CounterValue(t, metrics.StoreFallbacksTotal); after != before {
		t.Errorf("fallback counter moved from %v to %v on a plain miss", before, after)
	}
}

func TestStore_UsersAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cfgA := models.RenameConfig{Template: "{title} ({year})", Mode: models.ModeAuto}
	if err := store.Put(ctx, 1, cfgA); err != nil {
		t.Fatalf("Put(1) error = %v", err)
	}

	got, err := store.Get(ctx, 2)
	if err != nil {
		t.Fatalf("Get(2) error = %v", err)
	}
	if got.Template != models.DefaultTemplate {
		t.Errorf("user 2 template = %q, want default %q", got.Template, models.DefaultTemplate)
	}
}

func TestStore_PutValidation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tooManyRules := make(models.RuleSet, 21)
	for i := range tooManyRules {
		tooManyRules[i] = models.ReplaceRule{Old: "a", New: "b", Enabled: true}
	}

	tests := []struct {
		name    string
		cfg     models.RenameConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     models.RenameConfig{Template: "{title}", Mode: models.ModeAuto},
			wantErr: false,
		},
		{
			name:    "unknown mode",
			cfg:     models.RenameConfig{Template: "{title}", Mode: models.RenameMode(99)},
			wantErr: true,
		},
		{
			name:    "template over cap",
			cfg:     models.RenameConfig{Template: strings.Repeat("x", 501), Mode: models.ModeAuto},
			wantErr: true,
		},
		{
			name:    "template at cap",
			cfg:     models.RenameConfig{Template: strings.Repeat("x", 500), Mode: models.ModeAuto},
			wantErr: false,
		},
		{
			name:    "too many rules",
			cfg:     models.RenameConfig{Template: "{title}", Mode: models.ModeReplace, Rules: tooManyRules},
			wantErr: true,
		},
		{
			name:    "rules at cap",
			cfg:     models.RenameConfig{Template: "{title}", Mode: models.ModeReplace, Rules: tooManyRules[:20]},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(ctx, 9, tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, &apperrors.ErrValidation{}) {
					t.Errorf("Put() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Put() error = %v, want nil", err)
			}
		})
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cfg := models.RenameConfig{Template: "{title} [{quality}]", Mode: models.ModeAuto}
	if err := store.Put(ctx, 3, cfg); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// The user is back on defaults after the reset.
	got, err := store.Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if got.Template != models.DefaultTemplate {
		t.Errorf("template after delete = %q, want default %q", got.Template, models.DefaultTemplate)
	}

	// Deleting again reports that nothing was stored.
	err = store.Delete(ctx, 3)
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteUnknownUser(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), 404)
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_BackendFailureFallsBackToDefaults(t *testing.T) {
	backend := &brokenCache{err: errors.New("connection refused")}
	store := NewStore(backend, Limits{})

	before := testutil.CounterValue(t, metrics.StoreFallbacksTotal)

	got, err := store.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get() error = %v, want fallback to defaults", err)
	}
	if want := models.DefaultRenameConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want defaults %+v", got, want)
	}

	if after := testutil.CounterValue(t, metrics.StoreFallbacksTotal); after != before+1 {
		t.Errorf("fallback counter = %v, want %v", after, before+1)
	}
}

func TestStore_CorruptPayloadFallsBackToDefaults(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	if err := backend.Set(ctx, settingsKey(8), []byte("{not json")); err != nil {
		t.Fatalf("failed to plant corrupt payload: %v", err)
	}

	before := testutil.CounterValue(t, metrics.StoreFallbacksTotal)

	got, err := store.Get(ctx, 8)
	if err != nil {
		t.Fatalf("Get() error = %v, want fallback to defaults", err)
	}
	if want := models.DefaultRenameConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want defaults %+v", got, want)
	}

	if after := testutil.CounterValue(t, metrics.StoreFallbacksTotal); after != before+1 {
		t.Errorf("fallback counter = %v, want %v", after, before+1)
	}
}

func TestStore_PutSurfacesBackendErrors(t *testing.T) {
	backend := &brokenCache{err: errors.New("disk full")}
	store := NewStore(backend, Limits{})

	err := store.Put(context.Background(), 5, models.DefaultRenameConfig())
	if !errors.Is(err, &apperrors.ErrStore{}) {
		t.Errorf("Put() error = %v, want ErrStore", err)
	}
}

func TestStore_DeleteSurfacesBackendErrors(t *testing.T) {
	backend := &brokenCache{err: errors.New("disk full")}
	store := NewStore(backend, Limits{})

	err := store.Delete(context.Background(), 5)
	if !errors.Is(err, &apperrors.ErrStore{}) {
		t.Errorf("Delete() error = %v, want ErrStore", err)
	}
}

func TestStore_ZeroLimitsDisableCaps(t *testing.T) {
	c, err := cache.New("memory", cache.ProviderConfig{Size: 8, TTL: time.Minute})
	if err != nil {
		t.Fatalf("failed to create memory cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	store := NewStore(c, Limits{})

	cfg := models.RenameConfig{
		Template: strings.Repeat("{title}", 200),
		Mode:     models.ModeAuto,
	}
	if err := store.Put(context.Background(), 1, cfg); err != nil {
		t.Errorf("Put() with zero limits error = %v", err)
	}
}
