// seehuhn.de/go/nssdoc - paginated PDF reports for community-service programs
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config handles loading the report configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/xdg-go/stringprep"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/nssdoc/layout"
)

// Config is the root configuration structure.
type Config struct {
	Title    string         `yaml:"title"`
	Footer   string         `yaml:"footer"`
	Logos    LogosConfig    `yaml:"logos"`
	Photos   PhotosConfig   `yaml:"photos"`
	Page     PageConfig     `yaml:"page"`
	Metadata MetadataConfig `yaml:"metadata"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
}

// LogosConfig describes the two cover page logos.
type LogosConfig struct {
	Left     string        `yaml:"left"`
	Right    string        `yaml:"right"`
	Initials string        `yaml:"initials"` // shown on placeholder logos
	Timeout  time.Duration `yaml:"timeout"`
}

// PhotosConfig holds settings for program photos.
type PhotosConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	MaxBytes int64         `yaml:"max_bytes"`
	MaxSide  int           `yaml:"max_side"` // longer side in pixels, larger images are scaled down

	// MaxPixels is the largest width times height accepted for decoding.
	MaxPixels int `yaml:"max_pixels"`
}

// PageConfig holds page settings.
type PageConfig struct {
	Paper string `yaml:"paper"` // "A4", "A5" or "Letter"
	Font  string `yaml:"font"`  // optional TrueType/OpenType file for body text
}

// MetadataConfig holds the document information written to the PDF file.
type MetadataConfig struct {
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
	Language string `yaml:"language"`
}

// SecurityConfig holds optional passwords for encrypting the output.
type SecurityConfig struct {
	UserPassword  string `yaml:"user_password"`
	OwnerPassword string `yaml:"owner_password"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title:  "National Service Scheme Unit 191",
		Footer: "National Service Scheme Unit 191",
		Logos: LogosConfig{
			Left:     "https://yt3.googleusercontent.com/ytc/AIdro_lzHUWs5hpEZDwYhzrGHYS3oqMR1DaFd7KhnIJlpru_ew=s900-c-k-c0x00ffffff-no-rj",
			Right:    "https://scontent.fcok6-1.fna.fbcdn.net/v/t39.30808-1/306933248_384058177267822_6165528847654932546_n.png?stp=dst-png_s200x200",
			Initials: "NSS",
			Timeout:  15 * time.Second,
		},
		Photos: PhotosConfig{
			Timeout:   10 * time.Second,
			MaxBytes:  32 << 20,
			MaxSide:   2000,
			MaxPixels: 40_000_000,
		},
		Page: PageConfig{
			Paper: "A4",
		},
		Metadata: MetadataConfig{
			Subject:  "Program documentation",
			Language: "en",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a file.
// Settings missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default
// configuration if path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

var (
	errNoTitle   = errors.New("title must not be empty")
	errTimeout   = errors.New("timeouts must be positive")
	errPhotoSize = errors.New("photo size limits must be positive")
)

// Validate checks the configuration for consistency.  Passwords are
// replaced by their SASLprep-prepared form.
func (c *Config) Validate() error {
	if c.Title == "" {
		return errNoTitle
	}
	if c.Logos.Timeout <= 0 || c.Photos.Timeout <= 0 {
		return errTimeout
	}
	if c.Photos.MaxBytes <= 0 || c.Photos.MaxSide <= 0 || c.Photos.MaxPixels <= 0 {
		return errPhotoSize
	}
	if _, err := c.Paper(); err != nil {
		return err
	}

	var err error
	c.Security.UserPassword, err = preparePassword("user", c.Security.UserPassword)
	if err != nil {
		return err
	}
	c.Security.OwnerPassword, err = preparePassword("owner", c.Security.OwnerPassword)
	if err != nil {
		return err
	}
	return nil
}

func preparePassword(which, passwd string) (string, error) {
	if passwd == "" {
		return "", nil
	}
	prepared, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return "", fmt.Errorf("invalid %s password: %w", which, err)
	}
	return prepared, nil
}

// Paper returns the configured paper size.
func (c *Config) Paper() (layout.Paper, error) {
	switch c.Page.Paper {
	case "", "A4", "a4":
		return layout.A4, nil
	case "A5", "a5":
		return layout.A5, nil
	case "Letter", "letter":
		return layout.Letter, nil
	default:
		return layout.Paper{}, fmt.Errorf("unknown paper size %q", c.Page.Paper)
	}
}

// LogoRefs returns the references of the cover page logos, left to right.
func (c *Config) LogoRefs() []string {
	return []string{c.Logos.Left, c.Logos.Right}
}
