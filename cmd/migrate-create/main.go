package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	name := flag.String("name", "", "migration name")
	dir := flag.String("dir", filepath.Join("db", "migrations"), "migrations directory")
	flag.Parse()

	upPath, downPath, err := create(*dir, *name, time.Now().UTC())
	if err != nil {
		slog.Error("create migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("created migration", "up", upPath, "down", downPath)
}

func create(dir, name string, now time.Time) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("migration name is required")
	}
	if strings.ContainsAny(name, " ") {
		return "", "", fmt.Errorf("migration name must not contain spaces")
	}

	base := fmt.Sprintf("%s_%s", now.Format("20060102150405"), name)
	upPath := filepath.Join(dir, base+".up.sql")
	downPath := filepath.Join(dir, base+".down.sql")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create migrations dir: %w", err)
	}
	if err := writeFile(upPath, "-- up migration\n"); err != nil {
		return "", "", fmt.Errorf("create up migration: %w", err)
	}
	if err := writeFile(downPath, "-- down migration\n"); err != nil {
		return "", "", fmt.Errorf("create down migration: %w", err)
	}
	return upPath, downPath, nil
}

func writeFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
