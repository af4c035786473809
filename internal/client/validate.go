package client

import (
	"context"
	"net/http"
)

// Validate checks a template for balanced braces, known variables and a
// non-empty render, returning the verdict and its diagnostic message.
func (c *client) Validate(ctx context.Context, template string) (bool, string, error) {
	req := struct {
		Template string `json:"template"`
	}{Template: template}

	var result struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/validate", req, &result); err != nil {
		return false, "", err
	}
	return result.Valid, result.Message, nil
}
