// Package client is the Go SDK for the rename service HTTP API. It mirrors
// the /v1 endpoints one method per operation, decodes the compressed
// responses the server produces, and retries transient failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"

	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/engine"
	"github.com/renamebot/renamed/internal/models"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the rename service root, e.g. "http://localhost:8080".
	BaseURL string

	// Timeout bounds a whole call including retries. Zero means 30s.
	Timeout time.Duration

	// MaxRetries caps how often transient failures (connection errors,
	// 429s, 5xx answers) are retried. Zero means 2; negative disables
	// retries entirely.
	MaxRetries int
}

// Client defines the interface for calling the rename service.
type Client interface {
	// Extract parses rename variables out of a filename.
	Extract(ctx context.Context, filename string) (*ExtractResult, error)

	// Render renders a template against tokens extracted from the filename.
	Render(ctx context.Context, template, filename string) (string, error)

	// Apply runs an ordered rule set over the filename.
	Apply(ctx context.Context, filename string, rules models.RuleSet) (string, error)

	// Preview computes the would-be name for one filename.
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error)

	// PreviewReport builds a structured batch preview.
	PreviewReport(ctx context.Context, req ReportRequest) (*models.PreviewReport, error)

	// Suggest proposes up to ten templates that fit the filename.
	Suggest(ctx context.Context, filename string) ([]string, error)

	// Validate checks a template and returns the verdict with its message.
	Validate(ctx context.Context, template string) (bool, string, error)

	// Variables lists the supported placeholder names with descriptions.
	Variables(ctx context.Context) (map[string]string, error)

	// Presets returns the built-in template catalog.
	Presets(ctx context.Context) ([]models.TemplatePreset, error)

	// Samples returns the categorized demo filenames.
	Samples(ctx context.Context) ([]engine.SampleCategory, error)

	// Settings returns the user's stored configuration.
	Settings(ctx context.Context, userID int64) (models.RenameConfig, error)

	// UpdateSettings validates and stores the user's configuration.
	UpdateSettings(ctx context.Context, userID int64, cfg models.RenameConfig) error

	// DeleteSettings removes the user's stored configuration.
	DeleteSettings(ctx context.Context, userID int64) error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new client instance for the given service address.
func NewClient(opts Options) Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxRetries := opts.MaxRetries
	if maxRetries == 0 {
		maxRetries = 2
	}

	// Clone DefaultTransport to preserve its settings (timeouts, connection
	// pooling, HTTP/2), then layer decompression and retries on top.
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	transport := newCompressionTransport(baseTransport)

	if maxRetries > 0 {
		retry := failsafehttp.NewRetryPolicyBuilder().
			WithMaxRetries(maxRetries).
			WithBackoff(200*time.Millisecond, 2*time.Second).
			Build()
		transport = failsafehttp.NewRoundTripper(transport, retry)
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

// doJSON executes one API call: body and dst may each be nil. Non-2xx
// answers come back as *APIError with the server's message.
func (c *client) doJSON(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger := config.GetLogger()
	logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("Rename API call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}
	if dst == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
