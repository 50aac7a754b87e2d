package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wanderplan/backend/internal/domain"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a domain sentinel to its HTTP status and error code.
// Unexpected errors become a generic 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrParse):
		writeErrorBody(w, http.StatusBadRequest, "parse_error", domain.ErrParse.Error())
	case errors.Is(err, domain.ErrSchema):
		writeErrorBody(w, http.StatusUnprocessableEntity, "schema_error", domain.ErrSchema.Error())
	case errors.Is(err, domain.ErrUnavailable):
		writeErrorBody(w, http.StatusServiceUnavailable, "assistant_unavailable", domain.ErrUnavailable.Error())
	default:
		slog.Error("internal error", "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// writeRequestError reports a bad request rejected before reaching any
// service (e.g. malformed body).
func writeRequestError(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusBadRequest, "bad_request", message)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// decodeBody parses the request body as JSON into v.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "store.DocumentStore.AddCategory: validation error: name is
// required" → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotFound.Error(),
	} {
		if i := strings.LastIndex(msg, sentinel); i >= 0 {
			if tail := msg[i+len(sentinel):]; tail != "" {
				return tail
			}
			return strings.TrimSuffix(sentinel, ": ")
		}
	}
	return msg
}
