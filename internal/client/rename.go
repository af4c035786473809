package client

import (
	"context"
	"net/http"

	"github.com/renamebot/renamed/internal/models"
)

type resultPayload struct {
	Result string `json:"result"`
}

// Render renders a template against tokens extracted from the filename and
// returns the produced name with the original extension reattached.
func (c *client) Render(ctx context.Context, template, filename string) (string, error) {
	req := struct {
		Template string `json:"template"`
		Filename string `json:"filename"`
	}{Template: template, Filename: filename}

	var result resultPayload
	if err := c.doJSON(ctx, http.MethodPost, "/v1/render", req, &result); err != nil {
		return "", err
	}
	return result.Result, nil
}

// Apply runs an ordered rule set over the filename's stem and returns the
// rewritten name.
func (c *client) Apply(ctx context.Context, filename string, rules models.RuleSet) (string, error) {
	req := struct {
		Filename string         `json:"filename"`
		Rules    models.RuleSet `json:"rules"`
	}{Filename: filename, Rules: rules}

	var result resultPayload
	if err := c.doJSON(ctx, http.MethodPost, "/v1/apply", req, &result); err != nil {
		return "", err
	}
	return result.Result, nil
}
