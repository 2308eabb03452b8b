package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/session"
)

type ChatHandler struct {
	Session *session.Session
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Answer string `json:"answer"`
}

func (h ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeInvalidJSON, "invalid json: "+err.Error())
		return
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		WriteError(w, r, http.StatusBadRequest, CodeEmptyMessage, "message is required")
		return
	}
	WriteJSON(w, http.StatusOK, chatResp{Answer: h.Session.Chat(r.Context(), msg)})
}

// Quick expects /chat/quick/{category}.
func (h ChatHandler) Quick(w http.ResponseWriter, r *http.Request) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/chat/quick/"), "/")
	cat, ok := domain.ParseCategory(raw)
	if !ok {
		badCategory(w, r, http.StatusNotFound, raw)
		return
	}
	WriteJSON(w, http.StatusOK, chatResp{Answer: h.Session.QuickAction(r.Context(), cat)})
}

func (h ChatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	tr := h.Session.Transcript()
	if tr == nil {
		tr = []session.Turn{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"turns": tr})
}

func (h ChatHandler) ClearTranscript(w http.ResponseWriter, r *http.Request) {
	h.Session.ClearTranscript()
	w.WriteHeader(http.StatusNoContent)
}
