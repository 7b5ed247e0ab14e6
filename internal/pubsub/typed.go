package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Event[T] wraps a topic name and provides type-safe publishing and decoding.
type Event[T any] struct {
	topicName   string
	description string
}

var (
	catalogMu sync.RWMutex
	catalog   = map[string]string{}
)

// NewEvent creates a typed event and records it in the topic catalog.
// Events are defined at package level, so a duplicate name is a programming
// error and panics.
func NewEvent[T any](name string, description string) Event[T] {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, dup := catalog[name]; dup {
		panic(fmt.Sprintf("pubsub: event %q registered twice", name))
	}
	catalog[name] = description
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Description returns the human-readable purpose of the topic.
func (e Event[T]) Description() string {
	return e.description
}

// Decode unmarshals a received message into T.
func (e Event[T]) Decode(msg Message) (T, error) {
	var out T
	if err := json.Unmarshal(msg.Payload, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", e.topicName, err)
	}
	return out, nil
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], pageID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		PageID:  pageID,
		Payload: data,
	})
}

// Topic describes a registered event.
type Topic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Topics lists every registered event, sorted by name.
func Topics() []Topic {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	out := make([]Topic, 0, len(catalog))
	for name, desc := range catalog {
		out = append(out, Topic{Name: name, Description: desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
