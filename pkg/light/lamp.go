package light

import (
	"fmt"

	"github.com/jmylchreest/keylab/internal/errors"
)

// LampSpotlight is a non-programmable spotlight: its color comes from a
// physical filter, so the filter and the color always match.
type LampSpotlight struct {
	base
	filter string
}

var _ Device = (*LampSpotlight)(nil)

// NewLampSpotlight creates a lamp spotlight. The filter given with
// WithColorFilter must equal the color given with WithColor.
func NewLampSpotlight(identifyNumber int, opts ...Option) (*LampSpotlight, error) {
	o := buildOptions(opts)
	if o.filter != o.color {
		return nil, errors.Valuef("color filter %q must match color %q", o.filter, o.color)
	}
	b, err := newBase(KindLamp, identifyNumber, o)
	if err != nil {
		return nil, err
	}
	return &LampSpotlight{base: b, filter: o.filter}, nil
}

// ColorFilter returns the filter currently fitted
func (l *LampSpotlight) ColorFilter() string { return l.filter }

// ChangeColor swaps the filter, which also changes the light color
func (l *LampSpotlight) ChangeColor(filter string) error {
	if err := l.setColor(filter); err != nil {
		return errors.Valuef("unknown color filter %q", filter)
	}
	l.filter = filter
	return nil
}

// DebugString reconstructs the constructor call
func (l *LampSpotlight) DebugString() (string, error) {
	head, err := l.debugHead()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s, color_filter=%q)", l.kind, head, l.filter), nil
}

// GoString implements fmt.GoStringer
func (l *LampSpotlight) GoString() string {
	return goString(l)
}
