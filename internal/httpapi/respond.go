package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/renamebot/renamed/internal/apperrors"
	"github.com/renamebot/renamed/internal/config"
)

// maxBodyBytes bounds request bodies before JSON decoding. Rename payloads
// are a few hundred bytes; anything near this limit is abuse.
const maxBodyBytes = 1 << 20

// errorResponse is the uniform error envelope for every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResponse{Error: err.Error()})
}

// statusFromError maps the apperrors taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, &apperrors.ErrValidation{}):
		return http.StatusBadRequest
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// readJSON decodes the request body into dst and writes the 400 itself when
// the payload is unusable, so handlers can simply bail out on false.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, apperrors.NewValidationError("body", "request body too large"))
			return false
		}
		writeError(w, apperrors.NewValidationError("body", "malformed JSON payload"))
		return false
	}
	return true
}
