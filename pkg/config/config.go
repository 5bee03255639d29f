// Package config loads optional gaze settings from a yaml file, so test
// suites can tune matching behavior without touching code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the settings file looked up when no path is given.
const DefaultFileName = "gaze.yaml"

// Settings mirrors the gaze.yaml file.
type Settings struct {
	// MatchingTimeoutMS bounds assertion polling, in milliseconds.
	MatchingTimeoutMS int `yaml:"matching_timeout_ms"`

	// PollIntervalMS is the pause between assertion checks, in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// Headless controls whether browsers run without a visible window.
	Headless bool `yaml:"headless"`

	// Browser selects the engine: chromium, firefox or webkit.
	Browser string `yaml:"browser"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		MatchingTimeoutMS: 10000,
		PollIntervalMS:    100,
		Headless:          false,
		Browser:           "chromium",
	}
}

// Load reads settings from path, which defaults to gaze.yaml in the working
// directory. A missing file is not an error; it yields the defaults. Keys
// absent from the file keep their default values.
func Load(path string) (Settings, error) {
	if path == "" {
		path = DefaultFileName
	}

	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := settings.validate(); err != nil {
		return Default(), err
	}
	return settings, nil
}

func (s Settings) validate() error {
	switch s.Browser {
	case "", "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unsupported browser in config: %s", s.Browser)
	}
	return nil
}
