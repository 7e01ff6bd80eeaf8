package internal

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Output.Version != "1.0.0" {
		t.Errorf("version = %q, want %q", cfg.Output.Version, "1.0.0")
	}
	if cfg.Output.Note == "" {
		t.Error("default note must not be empty")
	}
}

func TestLinksConfig_DirRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Links.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty links dir should fail validation")
	}
}

func TestOutputConfig_PathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty output path should fail validation")
	}
}

func TestOutputConfig_VersionRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Version = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty version should fail validation")
	}
}

func TestWatchConfig_DebounceBounds(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Watch.Debounce = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero debounce should fail validation")
	}
	cfg.Watch.Debounce = 5 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("sub-10ms debounce should fail validation")
	}
	cfg.Watch.Debounce = 200 * time.Millisecond
	if err := cfg.Validate(); err != nil {
		t.Fatalf("200ms debounce should pass: %v", err)
	}
}
