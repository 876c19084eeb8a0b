package events

import "sync"

// Topic names one kind of client-state change. The values mirror the event
// names the mobile client listens for.
type Topic string

const (
	TopicCartUpdated         Topic = "cartUpdated"
	TopicFavoritesUpdated    Topic = "favoritesUpdated"
	TopicUserCarsUpdated     Topic = "userCarsUpdated"
	TopicUserUpdated         Topic = "userUpdated"
	TopicSelectedCityUpdated Topic = "selectedCityUpdated"
)

// Event is one state-change notification addressed to a single user.
type Event struct {
	Topic   Topic       `json:"event"`
	UserID  int         `json:"-"`
	Payload interface{} `json:"payload,omitempty"`
}

const subscriberBuffer = 8

// Bus is a small in-process pub/sub hub. Mutating services publish; the
// WebSocket layer subscribes per connected user. Publish never blocks: a
// subscriber that cannot keep up loses frames, and the client re-reads the
// store on the next event anyway.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]map[chan Event]struct{})}
}

// Subscribe registers a listener for one user's events. The returned cancel
// function must be called when the listener goes away.
func (b *Bus) Subscribe(userID int) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan Event]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(b.subs, userID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber of its user.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[e.UserID] {
		select {
		case ch <- e:
		default:
		}
	}
}
