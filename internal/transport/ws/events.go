package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypePostCreated    = "post.created"
	EventTypePostDeleted    = "post.deleted"
	EventTypeCommentCreated = "comment.created"
	EventTypePong           = "pong"
	EventTypeError          = "error"
)

// Event is the base envelope for all feed messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

type PostPayload struct {
	domain.Post
}

type PostDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type CommentPayload struct {
	domain.Comment
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
