package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(cwd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Limit != 100 {
		t.Errorf("Limit: want 100, got %d", cfg.Limit)
	}
	if cfg.InitialText != "" {
		t.Errorf("InitialText: want empty, got %q", cfg.InitialText)
	}
	if !cfg.Color {
		t.Errorf("Color: want true by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "undoplay.yaml")
	contents := "limit: 5\ninitial_text: hi\ncolor: false\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Limit != 5 {
		t.Errorf("Limit: want 5, got %d", cfg.Limit)
	}
	if cfg.InitialText != "hi" {
		t.Errorf("InitialText: want hi, got %q", cfg.InitialText)
	}
	if cfg.Color {
		t.Errorf("Color: want false")
	}
}

func TestLoadConfigClampsLimitBelowOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "undoplay.yaml")
	if err := os.WriteFile(path, []byte("limit: 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Limit != 1 {
		t.Errorf("Limit: want clamped to 1, got %d", cfg.Limit)
	}
}
