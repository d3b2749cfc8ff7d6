package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/handiism/book-catalog/internal/catalog"
	"github.com/handiism/book-catalog/internal/cover"
	ioutils "github.com/handiism/book-catalog/internal/io"
	"github.com/handiism/book-catalog/internal/render"
)

// Environment variables read by ApplyEnv.
const (
	EnvSourceURL      = "BOOKSHELF_SOURCE_URL"
	EnvImageBaseURL   = "BOOKSHELF_IMAGE_BASE_URL"
	EnvPlaceholderURL = "BOOKSHELF_PLACEHOLDER_URL"
	EnvLogLevel       = "BOOKSHELF_LOG_LEVEL"
	EnvProbeImages    = "BOOKSHELF_PROBE_IMAGES"
)

// DefaultEnvFile is loaded by LoadEnvFile when present.
const DefaultEnvFile = ".env.local"

// Duration is a time.Duration that reads and writes as "1.5s" style text
// in both JSON and YAML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Settings holds all configuration options.
type Settings struct {
	// Data source
	SourceURL    string `json:"source_url" yaml:"source_url"`
	ImageBaseURL string `json:"image_base_url" yaml:"image_base_url"`
	UserAgent    string `json:"user_agent" yaml:"user_agent"`

	// RequestTimeout bounds the books fetch. Zero leaves it to the transport.
	RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`

	// Rendering
	PlaceholderImageURL string `json:"placeholder_image_url" yaml:"placeholder_image_url"`
	ClassicCutoffYear   int    `json:"classic_cutoff_year" yaml:"classic_cutoff_year"`

	// Cover probing
	ProbeImages            bool     `json:"probe_images" yaml:"probe_images"`
	ImageTimeout           Duration `json:"image_timeout" yaml:"image_timeout"`
	ImageConcurrency       int      `json:"image_concurrency" yaml:"image_concurrency"`
	ImageRequestsPerSecond float64  `json:"image_requests_per_second" yaml:"image_requests_per_second"`
	ShowThumbnails         bool     `json:"show_thumbnails" yaml:"show_thumbnails"`
	ThumbWidth             int      `json:"thumb_width" yaml:"thumb_width"`
	ThumbHeight            int      `json:"thumb_height" yaml:"thumb_height"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SourceURL:    catalog.DefaultSourceURL,
		ImageBaseURL: catalog.DefaultImageBaseURL,
		UserAgent:    "BookCatalog",

		PlaceholderImageURL: render.DefaultPlaceholderURL,
		ClassicCutoffYear:   catalog.ClassicCutoff,

		ProbeImages:            true,
		ImageTimeout:           Duration(10 * time.Second),
		ImageConcurrency:       8,
		ImageRequestsPerSecond: 0,
		ShowThumbnails:         false,
		ThumbWidth:             16,
		ThumbHeight:            16,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or YAML file.
//
// The format is picked from the extension: .yaml and .yml are YAML,
// anything else is JSON. Fields absent from the file keep their defaults.
// A missing file yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen like Load.
// Missing parent directories are created.
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(context.Background(), path, data)
}

// Validate reports settings that cannot work.
func (s *Settings) Validate() error {
	if s.SourceURL == "" {
		return fmt.Errorf("source_url must not be empty")
	}
	if s.ImageConcurrency < 1 {
		return fmt.Errorf("image_concurrency must be at least 1, got %d", s.ImageConcurrency)
	}
	if s.ImageRequestsPerSecond < 0 {
		return fmt.Errorf("image_requests_per_second must not be negative")
	}
	if s.ShowThumbnails && (s.ThumbWidth < 1 || s.ThumbHeight < 1) {
		return fmt.Errorf("thumbnail size must be positive, got %dx%d", s.ThumbWidth, s.ThumbHeight)
	}
	return nil
}

// Resolve returns the effective settings: the file at path (defaults when
// path is empty or missing), then DefaultEnvFile and BOOKSHELF_* variables.
// The result is validated.
func Resolve(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path != "" {
		var err error
		settings, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	if err := LoadEnvFile(DefaultEnvFile); err != nil {
		return nil, fmt.Errorf("%s: %w", DefaultEnvFile, err)
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadEnvFile loads path into the process environment if it exists.
// Variables that are already set are left alone.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides settings from BOOKSHELF_* environment variables.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvSourceURL); v != "" {
		s.SourceURL = v
	}
	if v := os.Getenv(EnvImageBaseURL); v != "" {
		s.ImageBaseURL = v
	}
	if v := os.Getenv(EnvPlaceholderURL); v != "" {
		s.PlaceholderImageURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvProbeImages); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProbeImages, err)
		}
		s.ProbeImages = b
	}
	return nil
}

// ToCoverOptions converts settings to cover.Options.
func (s *Settings) ToCoverOptions() cover.Options {
	if !s.ShowThumbnails {
		return cover.Options{}
	}
	return cover.Options{
		ThumbWidth:  s.ThumbWidth,
		ThumbHeight: s.ThumbHeight,
	}
}

// ToRenderOptions converts settings to render.Options. The loader is left
// for the caller to attach since it needs an HTTP client.
func (s *Settings) ToRenderOptions() render.Options {
	return render.Options{
		PlaceholderURL: s.PlaceholderImageURL,
		Concurrency:    s.ImageConcurrency,
		ImageTimeout:   time.Duration(s.ImageTimeout),
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
