// Package light models controllable light devices: a base LightDevice and
// the LampSpotlight and RGBSpotlight variants, with power state and a color
// drawn from a fixed palette.
package light

// Kind names a device variant
type Kind string

const (
	KindLight Kind = "LightDevice"
	KindLamp  Kind = "LampSpotlight"
	KindRGB   Kind = "RGBSpotlight"
)

// Device is the capability surface shared by every variant. Changing color
// takes different arguments per variant, so ChangeColor lives on the
// concrete types.
type Device interface {
	Kind() Kind
	IdentifyNumber() int
	IsOn() bool
	// ColorName is empty when the stored color is not in the palette
	ColorName() string
	Hex() string
	TurnOn() error
	TurnOff() error
	String() string
	// DebugString reconstructs the constructor call
	DebugString() (string, error)
}

// Snapshot is a flat, serializable view of a device
type Snapshot struct {
	Kind           Kind   `json:"kind" yaml:"kind"`
	IdentifyNumber int    `json:"identify_number" yaml:"identify_number"`
	On             bool   `json:"on" yaml:"on"`
	Color          string `json:"color" yaml:"color"`
	Hex            string `json:"hex" yaml:"hex"`
	ColorFilter    string `json:"color_filter,omitempty" yaml:"color_filter,omitempty"`
	RGB            *RGB   `json:"rgb,omitempty" yaml:"rgb,omitempty"`
}

// Snap builds the snapshot of a device
func Snap(d Device) Snapshot {
	s := Snapshot{
		Kind:           d.Kind(),
		IdentifyNumber: d.IdentifyNumber(),
		On:             d.IsOn(),
		Color:          d.ColorName(),
		Hex:            d.Hex(),
	}
	switch v := d.(type) {
	case *LampSpotlight:
		s.ColorFilter = v.ColorFilter()
	case *RGBSpotlight:
		rgb := v.RGB()
		s.RGB = &rgb
	}
	return s
}
