package httpapi

import (
	"context"
	"errors"
	"net/http"

	"jobyaari-engine/internal/session"
)

type RefreshHandler struct {
	Session *session.Session
	BaseCtx context.Context
}

func (h RefreshHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Session.Status())
}

// Run starts a refresh in the background. With ?wait=true it blocks and returns the result.
// The session owns the single-refresh slot, so an overlapping call gets 409 either way.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("wait") == "true" {
		res, err := h.Session.Refresh(r.Context())
		switch {
		case errors.Is(err, session.ErrRefreshInProgress):
			WriteError(w, r, http.StatusConflict, CodeRefreshRunning, err.Error())
		case err != nil:
			// the client went away or the server is stopping; the old collection stays
			WriteError(w, r, http.StatusServiceUnavailable, CodeRefreshCancelled, err.Error())
		default:
			WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "result": res})
		}
		return
	}

	if err := h.Session.RefreshAsync(h.BaseCtx); err != nil {
		WriteError(w, r, http.StatusConflict, CodeRefreshRunning, err.Error())
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
