// Package cliconfig loads the optional YAML configuration for the CLI.
package cliconfig

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// path is given.
const DefaultFileName = "initializr.yaml"

// Config carries the CLI-level settings. Everything has a usable zero-ish
// default; the file only overrides.
type Config struct {
	// Server is the generator service base URL.
	Server string `yaml:"server"`

	// MetadataPath is the capability schema endpoint path.
	MetadataPath string `yaml:"metadataPath"`

	// OnboardingPath overrides the onboarding submission path.
	OnboardingPath string `yaml:"onboardingPath"`

	// Renderer names the default summary renderer.
	Renderer string `yaml:"renderer"`

	// Timeout caps remote requests.
	Timeout Duration `yaml:"timeout"`
}

// Duration parses human-readable durations ("15s", "1m") from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("cliconfig: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:       "http://localhost:8080",
		MetadataPath: "/metadata/client",
		Renderer:     "text",
		Timeout:      Duration(15 * time.Second),
	}
}

// Load merges the YAML file at path over the defaults. A missing file at the
// default location is not an error; a missing explicit path is. Unknown keys
// are rejected so typos surface instead of silently doing nothing.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("cliconfig: read %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("cliconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// MetadataURL joins the server base and metadata path.
func (c Config) MetadataURL() string {
	return joinURL(c.Server, c.MetadataPath)
}

func joinURL(base, path string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if len(path) > 0 && path[0] != '/' {
		path = "/" + path
	}
	return base + path
}
