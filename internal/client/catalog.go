package client

import (
	"context"
	"net/http"

	"github.com/renamebot/renamed/internal/engine"
	"github.com/renamebot/renamed/internal/models"
)

// Variables lists the supported placeholder names with their descriptions.
func (c *client) Variables(ctx context.Context) (map[string]string, error) {
	var variables map[string]string
	if err := c.doJSON(ctx, http.MethodGet, "/v1/variables", nil, &variables); err != nil {
		return nil, err
	}
	return variables, nil
}

// Presets returns the built-in template catalog.
func (c *client) Presets(ctx context.Context) ([]models.TemplatePreset, error) {
	var presets []models.TemplatePreset
	if err := c.doJSON(ctx, http.MethodGet, "/v1/presets", nil, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// Samples returns the categorized demo filenames used to showcase previews.
func (c *client) Samples(ctx context.Context) ([]engine.SampleCategory, error) {
	var samples []engine.SampleCategory
	if err := c.doJSON(ctx, http.MethodGet, "/v1/samples", nil, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}
