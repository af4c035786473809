// Package settings persists per-user rename configuration in a pluggable
// key-value store. Reads degrade gracefully: when the backend fails, users
// get the default configuration instead of an error, and the incident is
// logged and counted. Writes are strict and validate against the host's
// configured caps before touching the store.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/fallback"
	"github.com/rs/zerolog"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/cache"
	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/models"
)

// Limits caps what a single user may persist. Zero values disable the
// corresponding check.
type Limits struct {
	MaxTemplateLength int
	MaxRules          int
}

// Store reads and writes per-user rename configuration.
type Store interface {
	// Get returns the user's configuration, or the defaults when the user
	// has never stored one. Backend failures also resolve to the defaults.
	Get(ctx context.Context, userID int64) (models.RenameConfig, error)

	// Put validates and persists the user's configuration.
	Put(ctx context.Context, userID int64, cfg models.RenameConfig) error

	// Delete removes the user's configuration, returning ErrNotFound when
	// nothing was stored.
	Delete(ctx context.Context, userID int64) error

	// Close releases the underlying store.
	Close() error
}

type cacheStore struct {
	cache  cache.Cache
	limits Limits
	logger zerolog.Logger
}

var _ Store = (*cacheStore)(nil)

// NewStore builds a Store on top of the given cache backend.
func NewStore(c cache.Cache, limits Limits) Store {
	return &cacheStore{
		cache:  c,
		limits: limits,
		logger: config.GetLogger(),
	}
}

// settingsKey namespaces one user's rename configuration.
func settingsKey(userID int64) string {
	return fmt.Sprintf("user:%d:rename", userID)
}

func (s *cacheStore) Get(ctx context.Context, userID int64) (models.RenameConfig, error) {
	return s.readExecutor(userID).WithContext(ctx).Get(func() (models.RenameConfig, error) {
		data, found, err := s.cache.Get(ctx, settingsKey(userID))
		if err != nil {
			return models.RenameConfig{}, apperrors.NewStoreError("get", err)
		}
		if !found {
			return models.DefaultRenameConfig(), nil
		}

		var cfg models.RenameConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return models.RenameConfig{}, apperrors.NewStoreError("decode", err)
		}
		return cfg, nil
	})
}

// readExecutor wraps reads in a fallback policy: any store failure resolves
// to the default configuration so the rename pipeline keeps working while
// the backend is down.
func (s *cacheStore) readExecutor(userID int64) failsafe.Executor[models.RenameConfig] {
	return failsafe.With[models.RenameConfig](
		fallback.NewWithFunc(func(exec failsafe.Execution[models.RenameConfig]) (models.RenameConfig, error) {
			metrics.StoreFallbacksTotal.Inc()
			s.logger.Warn().
				Err(exec.LastError()).
				Int64("user_id", userID).
				Msg("Settings read failed, serving defaults")
			return models.DefaultRenameConfig(), nil
		}),
	)
}

func (s *cacheStore) Put(ctx context.Context, userID int64, cfg models.RenameConfig) error {
	if err := s.validate(cfg); err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return apperrors.NewStoreError("encode", err)
	}
	if err := s.cache.Set(ctx, settingsKey(userID), data); err != nil {
		return apperrors.NewStoreError("put", err)
	}
	return nil
}

func (s *cacheStore) Delete(ctx context.Context, userID int64) error {
	removed, err := s.cache.Delete(ctx, settingsKey(userID))
	if err != nil {
		return apperrors.NewStoreError("delete", err)
	}
	if !removed {
		return apperrors.NewSettingsNotFoundError(userID)
	}
	return nil
}

func (s *cacheStore) Close() error {
	return s.cache.Close()
}

func (s *cacheStore) validate(cfg models.RenameConfig) error {
	if !cfg.Mode.IsValid() {
		return apperrors.NewValidationError("mode", fmt.Sprintf("unknown rename mode %d", cfg.Mode))
	}
	if s.limits.MaxTemplateLength > 0 && len(cfg.Template) > s.limits.MaxTemplateLength {
		return apperrors.NewValidationError("template",
			fmt.Sprintf("template exceeds %d bytes", s.limits.MaxTemplateLength))
	}
	if s.limits.MaxRules > 0 && len(cfg.Rules) > s.limits.MaxRules {
		return apperrors.NewValidationError("rules",
			fmt.Sprintf("rule count exceeds %d", s.limits.MaxRules))
	}
	return nil
}
