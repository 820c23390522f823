package light

import (
	"fmt"

	"github.com/jmylchreest/keylab/internal/errors"
)

// options collects constructor arguments for every variant
type options struct {
	on     bool
	color  string
	filter string
	rgb    RGB
}

func defaultOptions() options {
	white, _ := RGBFor(DefaultColor)
	return options{
		color:  DefaultColor,
		filter: DefaultColor,
		rgb:    white,
	}
}

// Option configures a device at construction
type Option func(*options)

// WithOn sets the initial power state (default off)
func WithOn(on bool) Option {
	return func(o *options) { o.on = on }
}

// WithColor sets the initial color name (default white)
func WithColor(name string) Option {
	return func(o *options) { o.color = name }
}

// WithColorFilter sets the filter of a LampSpotlight (default white).
// Other variants ignore it.
func WithColorFilter(name string) Option {
	return func(o *options) { o.filter = name }
}

// WithRGB sets the channels of an RGBSpotlight (default 255,255,255).
// Other variants ignore it.
func WithRGB(red, green, blue int) Option {
	return func(o *options) { o.rgb = RGB{red, green, blue} }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base holds the state shared by all variants
type base struct {
	kind           Kind
	identifyNumber int
	on             bool
	hex            string
}

// newBase reserves the identify-number and resolves the color. An unknown
// color name is not rejected: hex stays empty and DebugString fails later.
func newBase(kind Kind, identifyNumber int, o options) (base, error) {
	if err := defaultRegistry.Reserve(identifyNumber); err != nil {
		return base{}, err
	}
	hex, _ := HexFor(o.color)
	return base{
		kind:           kind,
		identifyNumber: identifyNumber,
		on:             o.on,
		hex:            hex,
	}, nil
}

// Kind returns the device variant
func (b *base) Kind() Kind { return b.kind }

// IdentifyNumber returns the permanent identify-number
func (b *base) IdentifyNumber() int { return b.identifyNumber }

// IsOn returns the power state
func (b *base) IsOn() bool { return b.on }

// Hex returns the stored hex code, empty when the color is undefined
func (b *base) Hex() string { return b.hex }

// ColorName resolves the stored hex back to its palette name
func (b *base) ColorName() string {
	name, _ := NameForHex(b.hex)
	return name
}

// TurnOn switches the device on. It fails if the device is already on.
func (b *base) TurnOn() error {
	if b.on {
		return errors.Valuef("light device number %d is already on", b.identifyNumber)
	}
	b.on = true
	return nil
}

// TurnOff switches the device off. It fails if the device is already off.
func (b *base) TurnOff() error {
	if !b.on {
		return errors.Valuef("light device number %d is already off", b.identifyNumber)
	}
	b.on = false
	return nil
}

func (b *base) String() string {
	return fmt.Sprintf("%s device number %d", b.kind, b.identifyNumber)
}

// debugHead renders the constructor arguments shared by all variants
func (b *base) debugHead() (string, error) {
	name, ok := NameForHex(b.hex)
	if !ok {
		return "", errors.Valuef("%s has no palette color for hex %q", b.String(), b.hex)
	}
	return fmt.Sprintf("identify_number=%d, on=%t, color=%q", b.identifyNumber, b.on, name), nil
}

func (b *base) setColor(name string) error {
	hex, ok := HexFor(name)
	if !ok {
		return errors.Valuef("unknown color %q", name)
	}
	b.hex = hex
	return nil
}

// LightDevice is the plain controllable light
type LightDevice struct {
	base
}

var _ Device = (*LightDevice)(nil)

// NewLightDevice creates a light and reserves its identify-number for the
// life of the process.
func NewLightDevice(identifyNumber int, opts ...Option) (*LightDevice, error) {
	b, err := newBase(KindLight, identifyNumber, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &LightDevice{base: b}, nil
}

// ChangeColor sets the light to a palette color
func (d *LightDevice) ChangeColor(name string) error {
	return d.setColor(name)
}

// DebugString reconstructs the constructor call
func (d *LightDevice) DebugString() (string, error) {
	head, err := d.debugHead()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", d.kind, head), nil
}

// GoString implements fmt.GoStringer
func (d *LightDevice) GoString() string {
	return goString(d)
}

func goString(d Device) string {
	s, err := d.DebugString()
	if err != nil {
		return fmt.Sprintf("%s(identify_number=%d, <undefined color>)", d.Kind(), d.IdentifyNumber())
	}
	return s
}
