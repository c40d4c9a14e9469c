package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

type captureBroadcaster struct {
	types    []string
	payloads []interface{}
}

func (c *captureBroadcaster) Broadcast(msgType string, payload interface{}) error {
	c.types = append(c.types, msgType)
	c.payloads = append(c.payloads, payload)
	return nil
}

func TestStream_CapturesZerologOutput(t *testing.T) {
	stream := NewStream(10)
	log := zerolog.New(stream).With().Str("component", "test").Logger()

	log.Info().Str("title", "Inception").Msg("added to watchlist")

	entries := stream.Recent()
	if len(entries) != 1 {
		t.Fatalf("Recent() len = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Level != "info" {
		t.Errorf("Level = %q, want %q", entry.Level, "info")
	}
	if entry.Component != "test" {
		t.Errorf("Component = %q, want %q", entry.Component, "test")
	}
	if entry.Message != "added to watchlist" {
		t.Errorf("Message = %q, want %q", entry.Message, "added to watchlist")
	}
	if entry.Fields["title"] != "Inception" {
		t.Errorf("Fields[title] = %v, want %q", entry.Fields["title"], "Inception")
	}
}

func TestStream_RingEvictsOldest(t *testing.T) {
	stream := NewStream(3)
	log := zerolog.New(stream)

	for _, msg := range []string{"one", "two", "three", "four"} {
		log.Info().Msg(msg)
	}

	entries := stream.Recent()
	if len(entries) != 3 {
		t.Fatalf("Recent() len = %d, want 3", len(entries))
	}
	want := []string{"two", "three", "four"}
	for i, entry := range entries {
		if entry.Message != want[i] {
			t.Errorf("Recent()[%d].Message = %q, want %q", i, entry.Message, want[i])
		}
	}
}

func TestStream_MalformedLineDropped(t *testing.T) {
	stream := NewStream(10)

	n, err := stream.Write([]byte("not json\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len("not json\n") {
		t.Errorf("Write() n = %d, want %d", n, len("not json\n"))
	}
	if len(stream.Recent()) != 0 {
		t.Errorf("Recent() len = %d, want 0", len(stream.Recent()))
	}
}

func TestStream_BroadcastsWhenHubAttached(t *testing.T) {
	stream := NewStream(10)
	hub := &captureBroadcaster{}
	stream.SetHub(hub)

	log := zerolog.New(stream)
	log.Info().Msg("hello")

	if len(hub.types) != 1 || hub.types[0] != "logs:entry" {
		t.Fatalf("broadcast types = %v, want [logs:entry]", hub.types)
	}
	entry, ok := hub.payloads[0].(Entry)
	if !ok {
		t.Fatalf("payload type = %T, want Entry", hub.payloads[0])
	}
	if entry.Message != "hello" {
		t.Errorf("payload message = %q, want %q", entry.Message, "hello")
	}
}
