package eventbus

// EventType represents the type of form event
type EventType string

// Event type constants
const (
	EventFieldChanged  EventType = "FieldChanged"
	EventFormSubmitted EventType = "FormSubmitted"
	EventSaveCompleted EventType = "SaveCompleted"
	EventError         EventType = "Error"
)

// Event is the interface for all form events
type Event interface {
	Type() EventType
}

// FieldChangedEvent is published whenever a field's value changes
type FieldChangedEvent struct {
	Field  string
	Text   string   // for text fields
	Values []string // for multi-value fields
}

func (e FieldChangedEvent) Type() EventType { return EventFieldChanged }

// FormSubmittedEvent carries the full form snapshot at submit time
type FormSubmittedEvent struct {
	Fields map[string]any
}

func (e FormSubmittedEvent) Type() EventType { return EventFormSubmitted }

// SaveCompletedEvent is published after a submission has been persisted
type SaveCompletedEvent struct {
	Path string
}

func (e SaveCompletedEvent) Type() EventType { return EventSaveCompleted }

// ErrorEvent carries a non-fatal error for display
type ErrorEvent struct {
	Err error
}

func (e ErrorEvent) Type() EventType { return EventError }
