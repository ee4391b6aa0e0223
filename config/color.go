package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/hovergrid"
)

// ParseHexColor parses "#rrggbb" (or "#rgb") into an opaque color.
func ParseHexColor(s string) (hovergrid.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return hovergrid.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return hovergrid.Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// BackgroundColor returns the parsed window background. Call Validate first;
// an unparsable value yields opaque black.
func (w WindowConfig) BackgroundColor() hovergrid.Color {
	c, err := ParseHexColor(w.Background)
	if err != nil {
		return hovergrid.Color{A: 1}
	}
	return c
}
