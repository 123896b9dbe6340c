package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("combo:\n  duration: 180\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, "next.tmp")
	if err := os.WriteFile(tmp, []byte("combo:\n  duration: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			if cfg.Combo.Duration == 90 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("combo:\n  duration: 180\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	for _, d := range []int{10, 20, 30, 40, 50} {
		data := []byte("combo:\n  duration: " + strconv.Itoa(d) + "\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Combo.Duration != 50 {
			t.Errorf("Combo.Duration = %v, expected 50", cfg.Combo.Duration)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}

	select {
	case cfg := <-w.Configs:
		t.Errorf("extra reload with Combo.Duration = %v, expected one reload per burst", cfg.Combo.Duration)
	case <-time.After(4 * w.debounce):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Error("Configs should be closed")
	}
}
