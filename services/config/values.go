package config

import (
	"time"

	"gopkg.in/yaml.v3"

	"motionlight/types"
)

// Duration is a wrapper around time.Duration for YAML and env decoding.
type Duration time.Duration

// UnmarshalYAML accepts "250ms" style strings.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.Decode(s)
}

func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

// Decode implements envconfig.Decoder.
func (d *Duration) Decode(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// Color decodes a color name or "#rrggbb".
type Color types.Color

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.Decode(s)
}

func (c Color) MarshalYAML() (any, error) { return types.Color(c).Hex(), nil }

// Decode implements envconfig.Decoder.
func (c *Color) Decode(s string) error {
	v, err := types.ParseColor(s)
	if err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

// RGB returns the color as a types.Color.
func (c Color) RGB() types.Color { return types.Color(c) }
