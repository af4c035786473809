package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/names"
	"github.com/renamebot/renamed/internal/services"
)

// maxReportFilenames bounds one batch preview request.
const maxReportFilenames = 100

// API carries the service handle and the input caps enforced before any
// engine call. The engine itself is total and uncapped; oversized input is
// rejected here with a 400.
type API struct {
	svc               services.RenameService
	maxFilenameLength int
	maxTemplateLength int
	maxRules          int
}

// ----------------------------------------------------------------------------
// Request / response payloads
// ----------------------------------------------------------------------------

type extractRequest struct {
	Filename string `json:"filename"`
}

// extractResponse is the token set plus the coarse file type derived from
// the extension.
type extractResponse struct {
	models.TokenSet
	FileType string `json:"file_type"`
}

type renderRequest struct {
	Template string `json:"template"`
	Filename string `json:"filename"`
}

type applyRequest struct {
	Filename string         `json:"filename"`
	Rules    models.RuleSet `json:"rules"`
}

type resultResponse struct {
	Result string `json:"result"`
}

type previewRequest struct {
	Filename string            `json:"filename"`
	UserID   *int64            `json:"user_id,omitempty"`
	Template string            `json:"template,omitempty"`
	Mode     models.RenameMode `json:"mode,omitempty"`
	Rules    models.RuleSet    `json:"rules,omitempty"`
}

type previewResponse struct {
	Original string            `json:"original"`
	Renamed  string            `json:"renamed"`
	Mode     models.RenameMode `json:"mode"`
}

type previewReportRequest struct {
	Filenames []string          `json:"filenames"`
	UserID    *int64            `json:"user_id,omitempty"`
	Template  string            `json:"template,omitempty"`
	Mode      models.RenameMode `json:"mode,omitempty"`
	Rules     models.RuleSet    `json:"rules,omitempty"`
}

type suggestRequest struct {
	Filename string `json:"filename"`
}

type suggestResponse struct {
	Templates []string `json:"templates"`
}

type validateRequest struct {
	Template string `json:"template"`
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// config assembles the ad-hoc configuration carried in a preview request.
// An omitted template falls back to the default so a bare {filename} body
// previews something sensible.
func requestConfig(template string, mode models.RenameMode, rules models.RuleSet) models.RenameConfig {
	cfg := models.DefaultRenameConfig()
	if template != "" {
		cfg.Template = template
	}
	cfg.Mode = mode
	if len(rules) > 0 {
		cfg.Rules = rules
	}
	return cfg
}

// ----------------------------------------------------------------------------
// Input caps
// ----------------------------------------------------------------------------

func (a *API) checkFilename(filename string) error {
	if filename == "" {
		return apperrors.NewValidationError("filename", "filename is required")
	}
	if a.maxFilenameLength > 0 && len(filename) > a.maxFilenameLength {
		return apperrors.NewValidationError("filename",
			fmt.Sprintf("filename exceeds %d bytes", a.maxFilenameLength))
	}
	return nil
}

func (a *API) checkTemplate(template string) error {
	if a.maxTemplateLength > 0 && len(template) > a.maxTemplateLength {
		return apperrors.NewValidationError("template",
			fmt.Sprintf("template exceeds %d bytes", a.maxTemplateLength))
	}
	return nil
}

func (a *API) checkRules(rules models.RuleSet) error {
	if a.maxRules > 0 && len(rules) > a.maxRules {
		return apperrors.NewValidationError("rules",
			fmt.Sprintf("rule count exceeds %d", a.maxRules))
	}
	return nil
}

func parseUserID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("user_id", "must be an integer")
	}
	return id, nil
}

// ----------------------------------------------------------------------------
// Handlers
// ----------------------------------------------------------------------------

func (a *API) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := a.checkFilename(req.Filename); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		TokenSet: a.svc.Extract(req.Filename),
		FileType: names.FileType(req.Filename),
	})
}

func (a *API) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Template == "" {
		writeError(w, apperrors.NewValidationError("template", "template is required"))
		return
	}
	if err := a.checkTemplate(req.Template); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkFilename(req.Filename); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultResponse{Result: a.svc.Render(req.Template, req.Filename)})
}

func (a *API) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := a.checkFilename(req.Filename); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkRules(req.Rules); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultResponse{Result: a.svc.Apply(req.Filename, req.Rules)})
}

func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := a.checkFilename(req.Filename); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkTemplate(req.Template); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkRules(req.Rules); err != nil {
		writeError(w, err)
		return
	}

	resp := previewResponse{Original: req.Filename}
	if req.UserID != nil {
		renamed, mode, err := a.svc.PreviewForUser(r.Context(), *req.UserID, req.Filename)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Renamed, resp.Mode = renamed, mode
	} else {
		cfg := requestConfig(req.Template, req.Mode, req.Rules)
		resp.Renamed, resp.Mode = a.svc.Preview(req.Filename, cfg), cfg.Mode
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handlePreviewReport(w http.ResponseWriter, r *http.Request) {
	var req previewReportRequest
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.Filenames) > maxReportFilenames {
		writeError(w, apperrors.NewValidationError("filenames",
			fmt.Sprintf("batch exceeds %d filenames", maxReportFilenames)))
		return
	}
	for _, filename := range req.Filenames {
		if err := a.checkFilename(filename); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := a.checkTemplate(req.Template); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkRules(req.Rules); err != nil {
		writeError(w, err)
		return
	}

	if req.UserID != nil {
		report, err := a.svc.ReportForUser(r.Context(), *req.UserID, req.Filenames)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
		return
	}

	writeJSON(w, http.StatusOK, a.svc.Report(req.Filenames, requestConfig(req.Template, req.Mode, req.Rules)))
}

func (a *API) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := a.checkFilename(req.Filename); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestResponse{Templates: a.svc.Suggest(req.Filename)})
}

func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := a.checkTemplate(req.Template); err != nil {
		writeError(w, err)
		return
	}

	valid, message := a.svc.Validate(req.Template)
	writeJSON(w, http.StatusOK, validateResponse{Valid: valid, Message: message})
}

func (a *API) handleVariables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Variables())
}

func (a *API) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Presets())
}

func (a *API) handleSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Samples())
}

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	cfg, err := a.svc.Settings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (a *API) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var cfg models.RenameConfig
	if !readJSON(w, r, &cfg) {
		return
	}
	if err := a.checkTemplate(cfg.Template); err != nil {
		writeError(w, err)
		return
	}
	if err := a.checkRules(cfg.Rules); err != nil {
		writeError(w, err)
		return
	}

	if err := a.svc.UpdateSettings(r.Context(), userID, cfg); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := a.svc.DeleteSettings(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
