package config

import "motionlight/errcode"

// -----------------------------------------------------------------------------
// Embedded profiles
//
// One profile per board program. Each overlays Default().
// -----------------------------------------------------------------------------

// Motion light: gold fade in on motion or button, hold, fade out.
const profileDefault = `
mode: motion
color: gold
min_on: 10m
motion_timeout: 60s
pins:
  pir_pull: none
`

// Showcase of the strip primitives with the PIR wired but unused.
const profileExample = `
mode: showcase
color: purple
pins:
  pir_pull: down
`

// Button and PIR wiring check.
const profilePIROnly = `
mode: pir_test
pir_wait: 10s
pins:
  pir_pull: down
`

// Classic walk-through with a 100 pixel chase strip on D9.
const profileDemo = `
mode: classic
color: purple
pins:
  pixel_strip: 9
  strip_count: 100
`

var embeddedProfiles = map[string]string{
	"default":  profileDefault,
	"example":  profileExample,
	"pir-only": profilePIROnly,
	"demo":     profileDemo,
}

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(name string) ([]byte, bool) {
	s, ok := embeddedProfiles[name]
	return []byte(s), ok
}

// Profile parses the named embedded profile.
func Profile(name string) (Config, error) {
	raw, ok := EmbeddedProfileLookup(name)
	if !ok {
		return Config{}, errcode.New(errcode.InvalidParams, "config", "no embedded profile: "+name)
	}
	return Parse(raw)
}

// ProfileNames lists the embedded profiles.
func ProfileNames() []string {
	return []string{"default", "example", "pir-only", "demo"}
}
