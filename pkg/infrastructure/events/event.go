// Package events journals scenario store mutations and fans them out to
// subscribers such as the metrics recorder.
package events

import (
	"time"
)

// Event is a journaled scenario mutation
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	// Version is the 1-based position of the event in its stream, 0 until journaled
	Version() int
}

// EventHandler receives events of the types it was subscribed to
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore journals scenario events per stream and fans them out to subscribers
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// ScenarioEvent is the Event implementation produced by NewEvent and stored
// by the in-memory journal. Stream and Seq are only set once journaled.
type ScenarioEvent struct {
	Kind    string
	Stream  string
	Payload interface{}
	At      time.Time
	Seq     int
}

var _ Event = ScenarioEvent{}

func (e ScenarioEvent) Type() string         { return e.Kind }
func (e ScenarioEvent) StreamID() string     { return e.Stream }
func (e ScenarioEvent) Data() interface{}    { return e.Payload }
func (e ScenarioEvent) Timestamp() time.Time { return e.At }
func (e ScenarioEvent) Version() int         { return e.Seq }

// NewEvent stamps a payload of eventType with the current time. The stream
// and version are assigned by the EventStore it is appended to.
func NewEvent(eventType string, data interface{}) ScenarioEvent {
	return ScenarioEvent{
		Kind:    eventType,
		Payload: data,
		At:      time.Now(),
	}
}

// journaled copies event into streamID at version
func journaled(event Event, streamID string, version int) ScenarioEvent {
	return ScenarioEvent{
		Kind:    event.Type(),
		Stream:  streamID,
		Payload: event.Data(),
		At:      event.Timestamp(),
		Seq:     version,
	}
}

// Payload returns the event data as T, e.g. Payload[ValueItemUpdated](e)
func Payload[T any](event Event) (T, bool) {
	data, ok := event.Data().(T)
	return data, ok
}
