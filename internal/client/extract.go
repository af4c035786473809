package client

import (
	"context"
	"net/http"

	"github.com/renamebot/renamed/internal/models"
)

// ExtractResult is the token set parsed from a filename plus the coarse
// file type ("video", "audio", "image", "document", "archive", or "file")
// derived from its extension.
type ExtractResult struct {
	models.TokenSet
	FileType string `json:"file_type"`
}

// Extract parses rename variables out of a filename.
func (c *client) Extract(ctx context.Context, filename string) (*ExtractResult, error) {
	req := struct {
		Filename string `json:"filename"`
	}{Filename: filename}

	var result ExtractResult
	if err := c.doJSON(ctx, http.MethodPost, "/v1/extract", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
