package logger

import (
	"encoding/json"
	"sync"
)

const defaultStreamSize = 500

// Broadcaster pushes typed messages to connected clients.
type Broadcaster interface {
	Broadcast(msgType string, payload interface{}) error
}

// Entry is a parsed log entry kept for the recent-logs API and live
// streaming.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Component string         `json:"component,omitempty"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Stream is an io.Writer receiving zerolog JSON lines. It keeps the most
// recent entries in a fixed-size ring and, when a hub is attached, pushes
// each entry as a logs:entry event.
type Stream struct {
	mu      sync.RWMutex
	hub     Broadcaster
	entries []Entry
	next    int
	filled  bool
}

// NewStream creates a stream keeping up to size recent entries.
func NewStream(size int) *Stream {
	if size <= 0 {
		size = defaultStreamSize
	}
	return &Stream{entries: make([]Entry, size)}
}

// SetHub attaches the broadcaster to push entries to. May be nil.
func (s *Stream) SetHub(hub Broadcaster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hub = hub
}

// Write implements io.Writer for zerolog output. Malformed lines are dropped
// silently; logging must never fail the caller.
func (s *Stream) Write(p []byte) (int, error) {
	entry, err := parseEntry(p)
	if err != nil {
		return len(p), nil
	}

	s.mu.Lock()
	s.entries[s.next] = entry
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.filled = true
	}
	hub := s.hub
	s.mu.Unlock()

	if hub != nil {
		_ = hub.Broadcast("logs:entry", entry)
	}
	return len(p), nil
}

// Recent returns buffered entries from oldest to newest.
func (s *Stream) Recent() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.filled {
		return append([]Entry(nil), s.entries[:s.next]...)
	}

	out := make([]Entry, 0, len(s.entries))
	out = append(out, s.entries[s.next:]...)
	out = append(out, s.entries[:s.next]...)
	return out
}

func parseEntry(data []byte) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Entry{}, err
	}

	entry := Entry{Fields: make(map[string]any)}
	for key, value := range raw {
		switch key {
		case "time":
			entry.Timestamp, _ = value.(string)
		case "level":
			entry.Level, _ = value.(string)
		case "component":
			entry.Component, _ = value.(string)
		case "message":
			entry.Message, _ = value.(string)
		default:
			entry.Fields[key] = value
		}
	}
	if len(entry.Fields) == 0 {
		entry.Fields = nil
	}
	return entry, nil
}
