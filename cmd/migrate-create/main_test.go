package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	upPath, downPath, err := create(dir, "add_events", now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if want := filepath.Join(dir, "20260301120000_add_events.up.sql"); upPath != want {
		t.Fatalf("expected %s, got %s", want, upPath)
	}
	if _, err := os.Stat(downPath); err != nil {
		t.Fatalf("expected down migration: %v", err)
	}
	if _, _, err := create(dir, "add_events", now); err == nil {
		t.Fatalf("expected existing migration to be rejected")
	}
	if _, _, err := create(dir, "bad name", now); err == nil {
		t.Fatalf("expected spaces to be rejected")
	}
}
