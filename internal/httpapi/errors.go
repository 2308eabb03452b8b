package httpapi

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in APIError.Error.Code.
const (
	CodeMethodNotAllowed  = "method_not_allowed"
	CodeInvalidJSON       = "invalid_json"
	CodeEmptyMessage      = "empty_message"
	CodeBadCategory       = "bad_category"
	CodeBadFormat         = "bad_format"
	CodeRefreshRunning    = "refresh_running"
	CodeRefreshCancelled  = "refresh_cancelled"
	CodeExportFailed      = "export_failed"
	CodeSaveFailed        = "save_failed"
	CodeReloadFailed      = "reload_failed"
	CodeKeyStoreFailed    = "store_failed"
	CodeKeyDeleteFailed   = "delete_failed"
	CodeStreamUnsupported = "stream_unsupported"
	CodeInternal          = "internal_error"
)

// APIError is the envelope for every non-2xx answer except config validation,
// which returns the config.Validation body directly.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// badCategory answers a query or path naming a category outside the fixed set.
func badCategory(w http.ResponseWriter, r *http.Request, status int, raw string) {
	WriteError(w, r, status, CodeBadCategory, "unknown category "+raw)
}
