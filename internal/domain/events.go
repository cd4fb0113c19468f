package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventRowsAdded        EventType = "RowsAdded"
	EventRowsRemoved      EventType = "RowsRemoved"
	EventStepChanged      EventType = "StepChanged"
	EventStepRefused      EventType = "StepRefused"
	EventPiecesImported   EventType = "PiecesImported"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when a list's selected items change
type SelectionChangedEvent struct {
	List  string
	Count int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// RowsAddedEvent is emitted when rows are appended to a list
type RowsAddedEvent struct {
	List string
	Rows []Row
}

func (e RowsAddedEvent) Type() EventType { return EventRowsAdded }

// RowsRemovedEvent is emitted after selected rows are deleted from a list
type RowsRemovedEvent struct {
	List string
	Rows []Row
}

func (e RowsRemovedEvent) Type() EventType { return EventRowsRemoved }

// StepChangedEvent is emitted when the wizard state settles on a step
type StepChangedEvent struct {
	Step  int
	Title string
}

func (e StepChangedEvent) Type() EventType { return EventStepChanged }

// StepRefusedEvent is emitted when the wizard could not reach a requested step
type StepRefusedEvent struct {
	Requested int
	Reached   int
	Reason    string
}

func (e StepRefusedEvent) Type() EventType { return EventStepRefused }

// PiecesImportedEvent is emitted when files are turned into pieces
type PiecesImportedEvent struct {
	Count int
}

func (e PiecesImportedEvent) Type() EventType { return EventPiecesImported }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
