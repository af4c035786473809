// Package httpapi serves the rename engine over a JSON HTTP API. Handlers
// stay thin: input caps and transport concerns live here, everything else is
// delegated to the service layer.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/services"
)

// NewServer builds the public API server. The handler speaks HTTP/2
// cleartext (h2c) so infra proxies can multiplex requests without TLS
// between them and the service.
func NewServer(cfg *config.Config, svc services.RenameService) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           h2c.NewHandler(NewHandler(cfg, svc), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler wires every route and wraps the mux with request logging,
// response compression and panic recovery (in that order, outermost first).
func NewHandler(cfg *config.Config, svc services.RenameService) http.Handler {
	api := &API{
		svc:               svc,
		maxFilenameLength: cfg.Engine.MaxFilenameLength,
		maxTemplateLength: cfg.Engine.MaxTemplateLength,
		maxRules:          cfg.Engine.MaxRules,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/extract", api.handleExtract)
	mux.HandleFunc("POST /v1/render", api.handleRender)
	mux.HandleFunc("POST /v1/apply", api.handleApply)
	mux.HandleFunc("POST /v1/preview", api.handlePreview)
	mux.HandleFunc("POST /v1/preview/report", api.handlePreviewReport)
	mux.HandleFunc("POST /v1/suggest", api.handleSuggest)
	mux.HandleFunc("POST /v1/validate", api.handleValidate)
	mux.HandleFunc("GET /v1/variables", api.handleVariables)
	mux.HandleFunc("GET /v1/presets", api.handlePresets)
	mux.HandleFunc("GET /v1/samples", api.handleSamples)
	mux.HandleFunc("GET /v1/users/{id}/settings", api.handleGetSettings)
	mux.HandleFunc("PUT /v1/users/{id}/settings", api.handlePutSettings)
	mux.HandleFunc("DELETE /v1/users/{id}/settings", api.handleDeleteSettings)
	mux.HandleFunc("GET /healthz", api.handleHealthz)

	var handler http.Handler = mux
	handler = withRecovery(handler)
	handler = withCompression(handler)
	handler = withRequestLogging(handler)
	return handler
}
