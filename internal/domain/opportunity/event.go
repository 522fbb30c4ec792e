package opportunity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType discriminates timeline event payloads.
type EventType string

const (
	EventStatusChanged EventType = "status_changed"
	EventInfoUpdated   EventType = "info_updated"
	EventNoteAdded     EventType = "note_added"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventStatusChanged, EventInfoUpdated, EventNoteAdded:
		return true
	}
	return false
}

// StatusChangedMetadata records a pipeline move. From and To are always
// distinct; same-status updates classify as info_updated instead.
type StatusChangedMetadata struct {
	From Status `json:"from"`
	To   Status `json:"to"`
}

// NoteAddedMetadata carries the raw markdown body of a note.
type NoteAddedMetadata struct {
	Text string `json:"text"`
}

// Event is one timeline entry on an opportunity. Events are append-only;
// there is no update or delete path.
type Event struct {
	id            uint
	opportunityID uint
	agencyID      uint
	actorID       uint
	eventType     EventType
	statusChanged *StatusChangedMetadata
	noteAdded     *NoteAddedMetadata
	createdAt     time.Time
}

func NewStatusChangedEvent(opportunityID, agencyID, actorID uint, from, to Status) (*Event, error) {
	if from == to {
		return nil, fmt.Errorf("status_changed event requires distinct statuses, got %s", from)
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("invalid status in event: from=%s to=%s", from, to)
	}
	e, err := newEvent(opportunityID, agencyID, actorID, EventStatusChanged)
	if err != nil {
		return nil, err
	}
	e.statusChanged = &StatusChangedMetadata{From: from, To: to}
	return e, nil
}

func NewInfoUpdatedEvent(opportunityID, agencyID, actorID uint) (*Event, error) {
	return newEvent(opportunityID, agencyID, actorID, EventInfoUpdated)
}

func NewNoteAddedEvent(opportunityID, agencyID, actorID uint, text string) (*Event, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("note text is required")
	}
	e, err := newEvent(opportunityID, agencyID, actorID, EventNoteAdded)
	if err != nil {
		return nil, err
	}
	e.noteAdded = &NoteAddedMetadata{Text: text}
	return e, nil
}

func newEvent(opportunityID, agencyID, actorID uint, eventType EventType) (*Event, error) {
	if opportunityID == 0 {
		return nil, fmt.Errorf("opportunity ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	return &Event{
		opportunityID: opportunityID,
		agencyID:      agencyID,
		actorID:       actorID,
		eventType:     eventType,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructEvent(id, opportunityID, agencyID, actorID uint, eventType EventType,
	metadata []byte, createdAt time.Time) (*Event, error) {

	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	e := &Event{
		id:            id,
		opportunityID: opportunityID,
		agencyID:      agencyID,
		actorID:       actorID,
		eventType:     eventType,
		createdAt:     createdAt,
	}

	switch eventType {
	case EventStatusChanged:
		var meta StatusChangedMetadata
		if err := json.Unmarshal(metadata, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode status_changed metadata: %w", err)
		}
		e.statusChanged = &meta
	case EventNoteAdded:
		var meta NoteAddedMetadata
		if err := json.Unmarshal(metadata, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode note_added metadata: %w", err)
		}
		e.noteAdded = &meta
	}

	return e, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Event) OpportunityID() uint {
	return e.opportunityID
}

func (e *Event) AgencyID() uint {
	return e.agencyID
}

func (e *Event) ActorID() uint {
	return e.actorID
}

func (e *Event) Type() EventType {
	return e.eventType
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

// StatusChanged returns the payload for status_changed events, nil otherwise.
func (e *Event) StatusChanged() *StatusChangedMetadata {
	return e.statusChanged
}

// NoteAdded returns the payload for note_added events, nil otherwise.
func (e *Event) NoteAdded() *NoteAddedMetadata {
	return e.noteAdded
}

// MarshalMetadata encodes the typed payload for storage. info_updated
// events carry an empty object.
func (e *Event) MarshalMetadata() ([]byte, error) {
	switch e.eventType {
	case EventStatusChanged:
		return json.Marshal(e.statusChanged)
	case EventNoteAdded:
		return json.Marshal(e.noteAdded)
	default:
		return []byte("{}"), nil
	}
}
