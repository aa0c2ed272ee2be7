package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response shape used by every endpoint. Issue
// signals logical failure; the HTTP status stays 200 for logical failures
// because existing clients key off the flag, not the status code.
type Envelope struct {
	Issue bool   `json:"issue"`
	Msg   string `json:"msg"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithIssue writes the uniform envelope with issue set to true.
// The message must already be a safe, client-facing string.
func RespondWithIssue(w http.ResponseWriter, r *http.Request, msg string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending issue response",
		"msg", msg,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusOK, Envelope{Issue: true, Msg: msg})
}

// RespondWithIssueAndLog writes the uniform issue envelope and logs the
// underlying error server-side. The raw error never reaches the client;
// only the sanitized message does.
func RespondWithIssueAndLog(
	w http.ResponseWriter,
	r *http.Request,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	slog.LogAttrs(r.Context(), slog.LevelError, "request failed", logAttrs...)

	RespondWithJSON(w, r, http.StatusOK, Envelope{Issue: true, Msg: userMessage})
}
