package events

import (
	"encoding/json"
	"time"
)

// Event types published on the hub.
const (
	RefreshStarted    = "refresh_started"
	RefreshDone       = "refresh_done"
	ChatTurn          = "chat_turn"
	TranscriptCleared = "transcript_cleared"
)

// Version is the payload schema version carried in every event.
const Version = 1

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent renders one SSE data line. Unmarshalable data is dropped rather than failing the event.
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		Version:   Version,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
