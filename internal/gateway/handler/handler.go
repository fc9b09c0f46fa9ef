package handler

import (
	"net/http"

	"vintnerlab/internal/util/jsonutil"
)

// envelope is the uniform response shape for every terminal state. The
// browser app decides between showing generated content, canned sample
// content (fallback) or an error affordance from these fields alone.
type envelope struct {
	Success  bool   `json:"success,omitempty"`
	Result   any    `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	b, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeSuccess(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Result: result})
}

// writeFallback reports a recoverable failure. Always HTTP 200: the UI needs
// a parseable envelope to swap in sample content, never an opaque 5xx.
func writeFallback(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, envelope{Error: msg, Fallback: true})
}

// writeFallbackResult is writeFallback with a canonical placeholder result,
// used by the extractor so the result shape stays uniform even on failure.
func writeFallbackResult(w http.ResponseWriter, msg string, result any) {
	writeJSON(w, http.StatusOK, envelope{Error: msg, Fallback: true, Result: result})
}

func writeClientError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, envelope{Error: msg})
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, envelope{Error: "Method not allowed"})
}
