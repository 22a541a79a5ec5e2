// Package live subscribes to the backend change feed over WebSocket so a
// long-running console can refresh its page snapshots when another admin
// edits a record. The subscriber reconnects on its own after a dropped
// connection; a page that misses an event simply stays stale until the
// next manual refresh, so delivery here is best effort.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultCheckInterval is how long the subscriber waits after a dropped
// connection before dialing again, unless configured otherwise.
const DefaultCheckInterval = 5 * time.Second

// Change is one mutation event from the feed.
type Change struct {
	// Entity is the resource path segment the change belongs to, for
	// example "projects" or "materials".
	Entity string `json:"entity"`
	// Action is "created", "updated" or "deleted".
	Action string `json:"action"`
	ID     int64  `json:"id"`
}

// Handler receives every change for one entity, in arrival order.
type Handler func(Change)

// Subscriber maintains the feed connection and fans events out to the
// handlers registered per entity.
type Subscriber struct {
	url      string
	interval time.Duration
	logger   zerolog.Logger
	dialer   *websocket.Dialer
	header   http.Header

	mu       sync.Mutex
	handlers map[string][]Handler
}

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithCheckInterval sets the delay between reconnection attempts.
func WithCheckInterval(d time.Duration) Option {
	return func(s *Subscriber) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger for connection lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Subscriber) { s.logger = l }
}

// WithHeader adds a header to the dial request, typically the bearer
// token of the signed-in admin.
func WithHeader(key, value string) Option {
	return func(s *Subscriber) { s.header.Set(key, value) }
}

// NewSubscriber prepares a subscriber for the feed at url. Nothing is
// dialed until Run is called.
func NewSubscriber(url string, opts ...Option) *Subscriber {
	s := &Subscriber{
		url:      url,
		interval: DefaultCheckInterval,
		logger:   zerolog.Nop(),
		dialer:   websocket.DefaultDialer,
		header:   http.Header{},
		handlers: map[string][]Handler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn for every change whose Entity equals entity.
// Registration must happen before Run.
func (s *Subscriber) OnChange(entity string, fn Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[entity] = append(s.handlers[entity], fn)
}

// Run dials the feed and dispatches events until ctx is cancelled. A
// failed dial or a dropped connection is retried after the check
// interval; Run itself only returns ctx.Err().
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		if err := s.connectAndRead(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Str("url", s.url).Msg("change feed disconnected, retrying")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.interval):
		}
	}
}

func (s *Subscriber) connectAndRead(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
	if err != nil {
		return fmt.Errorf("live: dial %s: %w", s.url, err)
	}

	s.logger.Debug().Str("url", s.url).Msg("change feed connected")

	// Reads block without a deadline, so cancellation closes the socket
	// out from under ReadMessage.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			return fmt.Errorf("live: read: %w", err)
		}
		s.dispatch(data)
	}
}

func (s *Subscriber) dispatch(data []byte) {
	var ev Change
	if err := json.Unmarshal(data, &ev); err != nil {
		s.logger.Warn().Err(err).Msg("dropping malformed change event")
		return
	}

	s.mu.Lock()
	fns := append([]Handler(nil), s.handlers[ev.Entity]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
