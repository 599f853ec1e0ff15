// Package notify simulates a real-time notification channel. There is
// no live push upstream; a connected simulator emits synthetic
// new-content and content-update events on fixed intervals, the way a
// websocket feed would.
package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

// event types
const (
	EventConnectionStatus = "connection_status"
	EventNewContent       = "new_content"
	EventContentUpdate    = "content_update"
)

// Event is a single notification delivered to listeners
type Event struct {
	Type      string              `json:"type"`
	Message   string              `json:"message,omitempty"`
	Connected bool                `json:"connected,omitempty"`
	Item      *domain.ContentItem `json:"item,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// Simulator produces the synthetic event stream
type Simulator struct {
	contentInterval time.Duration
	updateInterval  time.Duration
	now             func() time.Time

	mu        sync.Mutex
	listeners map[int]func(Event)
	nextID    int
	connected bool
	cancel    context.CancelFunc
	seq       int
}

// Option configures the simulator
type Option func(*Simulator)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New creates a simulator emitting new-content events every
// contentInterval and content-update events every updateInterval.
func New(contentInterval, updateInterval time.Duration, opts ...Option) *Simulator {
	s := &Simulator{
		contentInterval: contentInterval,
		updateInterval:  updateInterval,
		now:             time.Now,
		listeners:       map[int]func(Event){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a listener and returns an unsubscribe token
func (s *Simulator) Subscribe(fn func(Event)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners[s.nextID] = fn
	return s.nextID
}

// Unsubscribe removes a listener; unknown tokens are a no-op
func (s *Simulator) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, token)
}

// Connected reports whether the simulated channel is up
func (s *Simulator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Connect brings the simulated channel up and starts the tickers.
// Connecting twice is a no-op.
func (s *Simulator) Connect() {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		return
	}
	s.connected = true
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	s.emit(Event{Type: EventConnectionStatus, Connected: true, Message: "connected"})
	go s.run(ctx)
}

// Disconnect stops the tickers and announces the drop
func (s *Simulator) Disconnect() {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.connected = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	s.emit(Event{Type: EventConnectionStatus, Connected: false, Message: "disconnected"})
}

// TriggerRefresh emits an immediate new-content event, used when the
// user forces a refresh.
func (s *Simulator) TriggerRefresh() {
	item := s.nextItem()
	s.emit(Event{Type: EventNewContent, Message: "new content available", Item: &item})
}

func (s *Simulator) run(ctx context.Context) {
	contentTicker := time.NewTicker(s.contentInterval)
	defer contentTicker.Stop()
	updateTicker := time.NewTicker(s.updateInterval)
	defer updateTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-contentTicker.C:
			item := s.nextItem()
			s.emit(Event{Type: EventNewContent, Message: "new content available", Item: &item})
		case <-updateTicker.C:
			s.emit(Event{Type: EventContentUpdate, Message: "content updated"})
		}
	}
}

// emit delivers an event to a snapshot of the listeners. A panicking
// listener is logged and skipped, the rest still get the event.
func (s *Simulator) emit(ev Event) {
	ev.Timestamp = s.now()

	s.mu.Lock()
	listeners := make(map[int]func(Event), len(s.listeners))
	for token, fn := range s.listeners {
		listeners[token] = fn
	}
	s.mu.Unlock()

	for token, fn := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[WARN] notification listener %d panicked on %s: %v", token, ev.Type, r)
				}
			}()
			fn(ev)
		}()
	}
}

// breaking is the rotation of synthetic new-content headlines
var breaking = []struct {
	title    string
	category string
}{
	{"Breaking: Quantum Computing Milestone Reached", "technology"},
	{"Markets Rally on Surprise Earnings", "business"},
	{"Underdog Takes the Championship", "sports"},
	{"Surprise Album Drop Tops the Charts", "entertainment"},
	{"Global Summit Reaches Historic Agreement", "news"},
}

// nextItem generates the synthetic item carried by a new-content event
func (s *Simulator) nextItem() domain.ContentItem {
	s.mu.Lock()
	idx := s.seq % len(breaking)
	s.seq++
	s.mu.Unlock()

	batch := s.now()
	b := breaking[idx]
	return domain.ContentItem{
		ID:          domain.BatchID("live", batch, idx),
		Title:       b.title,
		Description: "Live update from your subscribed sources.",
		ImageURL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", 70+idx),
		Category:    b.category,
		Source:      "Live Feed",
		PublishedAt: batch,
		URL:         "#",
		Type:        domain.TypeNews,
	}
}
