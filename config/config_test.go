package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vulkanite.toml")
	body := `
library_path = "/opt/vulkan/libvulkan.so.1"
log_level = "debug"

[validation]
enabled = true
features = ["gpu-assisted", "best-practices"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LibraryPath != "/opt/vulkan/libvulkan.so.1" {
		t.Errorf("LibraryPath = %q", cfg.LibraryPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.Validation.Enabled || len(cfg.Validation.Features) != 2 {
		t.Errorf("Validation = %+v", cfg.Validation)
	}
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vulkanite.toml")
	if err := os.WriteFile(path, []byte("library_path = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want the default", cfg.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load of a missing file did not fail")
	}
}
