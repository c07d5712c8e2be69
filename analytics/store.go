// Package analytics is a volatile in-process store: everything here resets
// on restart, by design. Only the event log is capped; pageview and session
// data grow for the life of the process. That is an accepted demo-scale
// tradeoff, not something this package tries to fix.
package analytics

import (
	"sync"
	"time"
)

type Event struct {
	Event     string            `json:"event"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Store aggregates pageviews per day and page, keeps a bounded ordered event
// log (oldest dropped first), and tracks distinct session IDs. It is built
// explicitly in main and injected; teardown is a no-op since nothing is
// flushed anywhere.
type Store struct {
	mu        sync.Mutex
	maxEvents int

	pageviews map[string]map[string]int
	events    []Event
	sessions  map[string]struct{}
}

func NewStore(maxEvents int) *Store {
	return &Store{
		maxEvents: maxEvents,
		pageviews: make(map[string]map[string]int),
		sessions:  make(map[string]struct{}),
	}
}

func (s *Store) RecordPageview(page, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := time.Now().Format("2006-01-02")
	if s.pageviews[day] == nil {
		s.pageviews[day] = make(map[string]int)
	}
	s.pageviews[day][page]++

	if sessionID != "" {
		s.sessions[sessionID] = struct{}{}
	}
}

func (s *Store) RecordEvent(name string, data map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, Event{Event: name, Data: data, Timestamp: time.Now()})
	if len(s.events) > s.maxEvents {
		s.events = s.events[len(s.events)-s.maxEvents:]
	}
}

type Summary struct {
	Pageviews map[string]map[string]int `json:"pageviews"`
	Events    []Event                   `json:"events"`
	Sessions  int                       `json:"sessions"`
}

// Snapshot copies the aggregate for the admin panel.
func (s *Store) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	pageviews := make(map[string]map[string]int, len(s.pageviews))
	for day, pages := range s.pageviews {
		copied := make(map[string]int, len(pages))
		for page, count := range pages {
			copied[page] = count
		}
		pageviews[day] = copied
	}
	events := make([]Event, len(s.events))
	copy(events, s.events)

	return Summary{
		Pageviews: pageviews,
		Events:    events,
		Sessions:  len(s.sessions),
	}
}
