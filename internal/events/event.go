package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventDebug   EventType = "debug"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Frontend event names.
const (
	StorageChanged   = "storage:changed"
	CatalogUpdated   = "catalog:updated"
	ControlChanged   = "control:changed"
	LanguageChanged  = "settings:language"
	SettingsSaved    = "settings:saved"
	ProvidersChanged = "providers:changed"
)

// Event is the payload sent to the frontend.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

func CreateEvent(eventType EventType, message string, data any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// NewInfo creates an info Event.
func NewInfo(message string, data any) Event {
	return CreateEvent(EventInfo, message, data)
}

// NewSuccess creates a success Event.
func NewSuccess(message string, data any) Event {
	return CreateEvent(EventSuccess, message, data)
}
