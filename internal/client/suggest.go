package client

import (
	"context"
	"net/http"
)

// Suggest proposes up to ten templates that only reference variables the
// filename actually yields, most specific first.
func (c *client) Suggest(ctx context.Context, filename string) ([]string, error) {
	req := struct {
		Filename string `json:"filename"`
	}{Filename: filename}

	var result struct {
		Templates []string `json:"templates"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/suggest", req, &result); err != nil {
		return nil, err
	}
	return result.Templates, nil
}
