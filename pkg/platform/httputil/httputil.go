// Package httputil centralizes JSON response rendering so all handlers share
// the same success and error envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "mergington/pkg/domain-errors"
)

// messageResponse is the success envelope for mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error envelope. Clients key off the HTTP status; the
// detail string is human-readable.
type detailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON renders v with the given status. Encoding failures are swallowed;
// by the time encoding runs the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage renders a 200 success envelope.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, messageResponse{Message: message})
}

// WriteError translates a domain error into an HTTP status and detail envelope.
// Internal errors (and non-domain errors) get a generic detail so raw error
// text never reaches clients.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"

	var de *dErrors.Error
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		status = dErrors.ToHTTPStatus(de.Code)
		detail = de.Message
	}

	WriteJSON(w, status, detailResponse{Detail: detail})
}
