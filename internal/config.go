package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultNote is the advisory header stamped into generated catalogs.
const DefaultNote = "DO NOT EDIT: generated from the links/*.yaml sources. Edit the YAML files instead."

// Config represents the builder configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Links  LinksConfig       `yaml:"links"`
	Output OutputConfig      `yaml:"output"`
	Watch  WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Links.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// LinksConfig holds the path to the directory of category YAML files.
type LinksConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the links configuration.
func (c *LinksConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// OutputConfig controls the generated catalog document.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Version string `yaml:"version"`
	Note    string `yaml:"note"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Version, validation.Required),
	)
}

// WatchConfig controls watch-mode rebuild behaviour.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Required, validation.Min(10*time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Links: LinksConfig{
			Dir: "./links",
		},
		Output: OutputConfig{
			Path:    "./links.json",
			Version: "1.0.0",
			Note:    DefaultNote,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}
