package light

import (
	"fmt"

	"github.com/jmylchreest/keylab/internal/errors"
)

// RGBSpotlight is a programmable spotlight driven by channel values. The
// channels always equal the palette triple of the current color.
type RGBSpotlight struct {
	base
	rgb RGB
}

var _ Device = (*RGBSpotlight)(nil)

// NewRGBSpotlight creates an RGB spotlight. The triple given with WithRGB
// must be exactly the palette triple of the color given with WithColor.
func NewRGBSpotlight(identifyNumber int, opts ...Option) (*RGBSpotlight, error) {
	o := buildOptions(opts)
	want, ok := RGBFor(o.color)
	if !ok {
		return nil, errors.Valuef("color %q has no RGB triple", o.color)
	}
	if err := checkChannels(o.color, want, o.rgb); err != nil {
		return nil, err
	}
	b, err := newBase(KindRGB, identifyNumber, o)
	if err != nil {
		return nil, err
	}
	return &RGBSpotlight{base: b, rgb: o.rgb}, nil
}

func checkChannels(color string, want, got RGB) error {
	switch {
	case want.Red != got.Red:
		return errors.Valuef("red channel %d does not match color %q", got.Red, color)
	case want.Green != got.Green:
		return errors.Valuef("green channel %d does not match color %q", got.Green, color)
	case want.Blue != got.Blue:
		return errors.Valuef("blue channel %d does not match color %q", got.Blue, color)
	}
	return nil
}

// RGB returns the current channel values
func (s *RGBSpotlight) RGB() RGB { return s.rgb }

// ChangeColor adopts the palette color whose triple equals (red, green, blue)
// exactly. There is no nearest-color matching.
func (s *RGBSpotlight) ChangeColor(red, green, blue int) error {
	rgb := RGB{red, green, blue}
	name, ok := NameForRGB(rgb)
	if !ok {
		return errors.Valuef("no palette color has channels (%d, %d, %d)", red, green, blue)
	}
	if err := s.setColor(name); err != nil {
		return err
	}
	s.rgb = rgb
	return nil
}

// DebugString reconstructs the constructor call
func (s *RGBSpotlight) DebugString() (string, error) {
	head, err := s.debugHead()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s, red=%d, green=%d, blue=%d)", s.kind, head, s.rgb.Red, s.rgb.Green, s.rgb.Blue), nil
}

// GoString implements fmt.GoStringer
func (s *RGBSpotlight) GoString() string {
	return goString(s)
}
