package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkireev/filedepot/internal/shared"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// validationMessage maps a field-level sentinel to its client-facing text.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrorMissingEmail):
		return "Missing email"
	case errors.Is(err, shared.ErrorMissingPassword):
		return "Missing password"
	case errors.Is(err, shared.ErrorMissingName):
		return "Missing name"
	case errors.Is(err, shared.ErrorMissingType):
		return "Missing type"
	case errors.Is(err, shared.ErrorMissingData):
		return "Missing data"
	case errors.Is(err, shared.ErrorParentNotFound):
		return "Parent not found"
	case errors.Is(err, shared.ErrorFolderHasNoData):
		return "A folder doesn't have content"
	}
	return "Bad request"
}

// writeError translates a sentinel error into the response contract: 400 for
// validation and duplicates, 401 for auth failures, 404 for absent or
// invisible records, 500 for everything else (dependency failures included).
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrorValidation):
		writeErrorMessage(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, shared.ErrorAlreadyExists):
		writeErrorMessage(w, http.StatusBadRequest, "Already exist")
	case errors.Is(err, shared.ErrorUnauthorized):
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, shared.ErrorNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeErrorMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
