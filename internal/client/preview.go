package client

import (
	"context"
	"net/http"

	"github.com/renamebot/renamed/internal/models"
)

// PreviewRequest describes one preview call. Setting UserID previews with
// that user's stored settings; otherwise Template, Mode and Rules form an
// ad-hoc configuration (an empty template falls back to the default).
type PreviewRequest struct {
	Filename string            `json:"filename"`
	UserID   *int64            `json:"user_id,omitempty"`
	Template string            `json:"template,omitempty"`
	Mode     models.RenameMode `json:"mode,omitempty"`
	Rules    models.RuleSet    `json:"rules,omitempty"`
}

// PreviewResult is the outcome of a preview: the original filename, the
// would-be name, and the mode that produced it.
type PreviewResult struct {
	Original string            `json:"original"`
	Renamed  string            `json:"renamed"`
	Mode     models.RenameMode `json:"mode"`
}

// ReportRequest describes a batch preview over several filenames. The
// configuration fields follow the same rules as PreviewRequest.
type ReportRequest struct {
	Filenames []string          `json:"filenames"`
	UserID    *int64            `json:"user_id,omitempty"`
	Template  string            `json:"template,omitempty"`
	Mode      models.RenameMode `json:"mode,omitempty"`
	Rules     models.RuleSet    `json:"rules,omitempty"`
}

// Preview computes the would-be name for one filename.
func (c *client) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	var result PreviewResult
	if err := c.doJSON(ctx, http.MethodPost, "/v1/preview", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PreviewReport builds a structured batch preview with per-file entries and
// a change count.
func (c *client) PreviewReport(ctx context.Context, req ReportRequest) (*models.PreviewReport, error) {
	var report models.PreviewReport
	if err := c.doJSON(ctx, http.MethodPost, "/v1/preview/report", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
