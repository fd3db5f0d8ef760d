package gigawall

import "sync"

// EventType identifies what part of the store changed.
type EventType string

const (
	// EventContentChanged fires after the content catalog is mutated.
	EventContentChanged EventType = "content-changed"
	// EventNotificationsChanged fires after a notification is added.
	EventNotificationsChanged EventType = "notifications-changed"
	// EventCommentAdded fires after a comment is appended to a thread.
	// ContentID carries the affected thread.
	EventCommentAdded EventType = "comment-added"
)

// Event is a store change notification.
type Event struct {
	Type      EventType
	ContentID string
}

// Bus is a minimal in-process publish/subscribe mechanism for store change
// events. Subscribers are invoked synchronously on the publishing goroutine.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a func that removes the subscription.
// Unsubscribing twice is safe.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers ev to every current subscriber.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
