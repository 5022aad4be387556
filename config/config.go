// Package config holds the runtime configuration of the binding: where to
// find the native library and which validation behavior to request. The only
// knob that may change after startup is the log level.
package config

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/vulkanite/core"
)

type Validation struct {
	Enabled  bool     `toml:"enabled"`
	Features []string `toml:"features"`
}

type Config struct {
	// LibraryPath overrides the platform's default library search.
	LibraryPath string     `toml:"library_path"`
	LogLevel    string     `toml:"log_level"`
	Validation  Validation `toml:"validation"`
}

func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load reads a TOML config file and applies its log level.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		core.SetLogLevel(cfg.LogLevel)
	}
	return cfg, nil
}

// Watch re-reads the config whenever the file changes and re-applies the log
// level. All other fields are fixed at startup. Closing done stops the
// watcher.
func Watch(path string, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}
				if e.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if _, err := Load(path); err != nil {
						core.LogWarn("reloading config %s: %v", path, err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				core.LogWarn("config watcher: %v", err)
			case <-done:
				return
			}
		}
	}()

	return nil
}
