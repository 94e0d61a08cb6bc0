package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Color is an RGB colour written as "#rrggbb" in the config file.
type Color color.RGBA

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 {
		return fmt.Errorf("colour %q: want #rrggbb", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("colour %q: %w", text, err)
	}
	*c = Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Distance from the model centre in multiples of its bounding radius.
	Distance    float64 `toml:"distance"`
	FieldOfView float64 `toml:"field_of_view"`
	EdgeWidth   float32 `toml:"edge_width"`
	Fill        bool    `toml:"fill"`

	Background    Color `toml:"background"`
	FaceColor     Color `toml:"face_color"`
	EdgeColor     Color `toml:"edge_color"`
	BoundaryColor Color `toml:"boundary_color"`
}

func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		Distance:      3,
		FieldOfView:   45,
		EdgeWidth:     1,
		Fill:          true,
		Background:    Color{A: 255},
		FaceColor:     Color{R: 200, G: 200, B: 210, A: 255},
		EdgeColor:     Color{R: 100, G: 100, B: 100, A: 255},
		BoundaryColor: Color{R: 255, G: 40, B: 40, A: 255},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data into cfg, leaving keys it does not set alone.
func ParseConfig(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown setting: %s", strict.String())
		}
		return err
	}
	return cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.Distance <= 1:
		return fmt.Errorf("distance %g must be greater than 1", c.Distance)
	case c.FieldOfView <= 0 || c.FieldOfView >= 180:
		return fmt.Errorf("field of view %g must be between 0 and 180 degrees", c.FieldOfView)
	case c.EdgeWidth <= 0:
		return fmt.Errorf("edge width %g must be positive", c.EdgeWidth)
	}
	return nil
}
