package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/renamebot/renamed/internal/models"
)

func settingsPath(userID int64) string {
	return fmt.Sprintf("/v1/users/%d/settings", userID)
}

// Settings returns the user's stored configuration, or the defaults when
// the user never saved one.
func (c *client) Settings(ctx context.Context, userID int64) (models.RenameConfig, error) {
	var cfg models.RenameConfig
	if err := c.doJSON(ctx, http.MethodGet, settingsPath(userID), nil, &cfg); err != nil {
		return models.RenameConfig{}, err
	}
	return cfg, nil
}

// UpdateSettings validates and stores the user's configuration. Invalid
// templates or out-of-cap payloads come back as a 400 *APIError.
func (c *client) UpdateSettings(ctx context.Context, userID int64, cfg models.RenameConfig) error {
	return c.doJSON(ctx, http.MethodPut, settingsPath(userID), cfg, nil)
}

// DeleteSettings removes the user's stored configuration so later reads
// serve the defaults. Deleting a user without settings yields a 404.
func (c *client) DeleteSettings(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, http.MethodDelete, settingsPath(userID), nil, nil)
}
