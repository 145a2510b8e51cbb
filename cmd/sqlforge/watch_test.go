package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	other := filepath.Join(dir, "other.json")
	writeFile(t, path, "{}")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)), func() {
			changes <- struct{}{}
		})
	}()

	// The watcher registers asynchronously; keep writing until it sees one.
	// Writes are spaced beyond the debounce so each one can settle.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(3 * watchDebounce)
	defer tick.Stop()
	for seen := false; !seen; {
		select {
		case <-changes:
			seen = true
		case <-tick.C:
			if err := os.WriteFile(path, []byte(`{"dbms":"mysql"}`), 0644); err != nil {
				t.Fatal(err)
			}
		case err := <-done:
			t.Fatalf("watchFile returned early: %v", err)
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	// Siblings are ignored.
	for len(changes) > 0 {
		<-changes
	}
	time.Sleep(2 * watchDebounce)
	for len(changes) > 0 {
		<-changes
	}
	writeFile(t, other, "{}")
	select {
	case <-changes:
		t.Error("change reported for another file")
	case <-time.After(4 * watchDebounce):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("watchFile did not stop on cancel")
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "project.json")
	err := watchFile(context.Background(), path, slog.New(slog.NewTextHandler(io.Discard, nil)), func() {})
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}
