package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewEmitter_CreatesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter(%q): %v", path, err)
	}
	defer em.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist at %q: %v", path, err)
	}
}

func TestNewEmitter_ErrorOnBadPath(t *testing.T) {
	t.Parallel()
	_, err := NewEmitter("/nonexistent/dir/runs.jsonl")
	if err == nil {
		t.Fatal("expected error for bad path, got nil")
	}
	if !strings.Contains(err.Error(), "telemetry: open") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestEmit_WritesValidJSONL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	events := []Event{
		{Timestamp: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Kind: KindAnalyzeDone, Strategy: "smart_balance", Tasks: 5},
		{Timestamp: time.Date(2026, 8, 26, 0, 1, 0, 0, time.UTC), Kind: KindSuggestDone, Strategy: "fastest_wins", Tasks: 3, Invalid: 1},
	}

	for _, evt := range events {
		if err := em.Emit(evt); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		if evt.Kind != events[lines].Kind || evt.Strategy != events[lines].Strategy {
			t.Errorf("line %d round-trip mismatch: %+v", lines+1, evt)
		}
		lines++
	}
	if lines != len(events) {
		t.Errorf("got %d lines, want %d", lines, len(events))
	}
}

func TestEmit_NilEmitterIsNoop(t *testing.T) {
	t.Parallel()
	var em *Emitter
	if err := em.Emit(Event{Kind: KindRequest}); err != nil {
		t.Errorf("nil emitter Emit should be a no-op, got %v", err)
	}
	if err := em.Close(); err != nil {
		t.Errorf("nil emitter Close should be a no-op, got %v", err)
	}
}

func TestEmit_ConcurrentWriters(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	em, err := NewEmitter(path)
	if err != nil {
		t.Fatal(err)
	}

	const writers = 8
	const perWriter = 20
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				_ = em.Emit(Event{Timestamp: time.Now(), Kind: KindRequest})
			}
		}()
	}
	wg.Wait()
	if err := em.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Count(string(data), "\n")
	if got != writers*perWriter {
		t.Errorf("got %d events, want %d", got, writers*perWriter)
	}
}
