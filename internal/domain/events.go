package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted  EventType = "SearchSubmitted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchSuperseded EventType = "SearchSuperseded"
	EventLinkCopied       EventType = "LinkCopied"
	EventClipboardFailed  EventType = "ClipboardFailed"
	EventFeedbackGiven    EventType = "FeedbackGiven"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a non-blank query enters the searching state
type SearchSubmittedEvent struct {
	RequestID string
	Query     string
	Site      string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SearchCompletedEvent is emitted when the delayed completion lands
type SearchCompletedEvent struct {
	RequestID   string
	Query       string
	ResultCount int
	Err         error
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchSupersededEvent is emitted when a newer submit replaces an in-flight search
type SearchSupersededEvent struct {
	RequestID string
	Query     string
}

func (e SearchSupersededEvent) Type() EventType { return EventSearchSuperseded }

// LinkCopiedEvent is emitted when a result URL is handed to the clipboard
type LinkCopiedEvent struct {
	ResultID string
	URL      string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// ClipboardFailedEvent is emitted when the clipboard rejected a write
type ClipboardFailedEvent struct {
	ResultID string
	Err      error
}

func (e ClipboardFailedEvent) Type() EventType { return EventClipboardFailed }

// FeedbackGivenEvent is emitted when a result is marked helpful or not helpful
type FeedbackGivenEvent struct {
	ResultID string
	Vote     Vote
}

func (e FeedbackGivenEvent) Type() EventType { return EventFeedbackGiven }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Site string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
