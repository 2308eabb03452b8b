package httpapi

import (
	"net/http"
	"time"

	"jobyaari-engine/internal/events"
)

type HealthHandler struct {
	Now func() time.Time
	Hub *events.Hub
}

// Health reports liveness plus the number of connected /events listeners.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	subs := 0
	if h.Hub != nil {
		subs = h.Hub.Subscribers()
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"time":        now().UTC().Format(time.RFC3339),
		"subscribers": subs,
	})
}
