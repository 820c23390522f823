package light

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/keylab/internal/decode"
	"github.com/jmylchreest/keylab/internal/errors"
)

// PropertyName represents valid device property names
type PropertyName string

const (
	// PropertyOn represents the power state
	PropertyOn PropertyName = "on"

	// PropertyColor represents a palette color name (the filter on a lamp spotlight)
	PropertyColor PropertyName = "color"

	// PropertyRGB represents the channel triple of an RGB spotlight
	PropertyRGB PropertyName = "rgb"
)

// PropertyValue is an interface for all possible device property values
type PropertyValue interface {
	// PropertyName returns the name of the property this value is for
	PropertyName() PropertyName

	// Value returns the raw value
	Value() any

	// Validate checks if the value is valid for the property
	Validate() error
}

// OnValue represents an on/off state value
type OnValue bool

// PropertyName returns the name of the property
func (v OnValue) PropertyName() PropertyName {
	return PropertyOn
}

// Value returns the underlying bool value
func (v OnValue) Value() any {
	return bool(v)
}

// Validate always returns nil for OnValue as any bool is valid
func (v OnValue) Validate() error {
	return nil
}

// ColorValue represents a palette color name
type ColorValue string

// PropertyName returns the name of the property
func (v ColorValue) PropertyName() PropertyName {
	return PropertyColor
}

// Value returns the underlying string value
func (v ColorValue) Value() any {
	return string(v)
}

// Validate ensures the color is in the palette
func (v ColorValue) Validate() error {
	if !IsColor(string(v)) {
		return errors.Valuef("unknown color %q", string(v))
	}
	return nil
}

// RGBValue represents a channel triple
type RGBValue RGB

// PropertyName returns the name of the property
func (v RGBValue) PropertyName() PropertyName {
	return PropertyRGB
}

// Value returns the underlying RGB value
func (v RGBValue) Value() any {
	return RGB(v)
}

// Validate ensures the triple is an exact palette entry
func (v RGBValue) Validate() error {
	if _, ok := NameForRGB(RGB(v)); !ok {
		return errors.Valuef("no palette color has channels (%d, %d, %d)", v.Red, v.Green, v.Blue)
	}
	return nil
}

// ValidateProperty validates if the provided property name is valid
func ValidateProperty(property PropertyName) error {
	switch property {
	case PropertyOn, PropertyColor, PropertyRGB:
		return nil
	default:
		return errors.Valuef("unknown property: %s", property)
	}
}

// ParseProperty converts an untyped value into the typed value of the named
// property. Values of the wrong dynamic type fail with ErrType.
func ParseProperty(property PropertyName, raw any) (PropertyValue, error) {
	if err := ValidateProperty(property); err != nil {
		return nil, err
	}

	switch property {
	case PropertyOn:
		on, ok := raw.(bool)
		if !ok {
			return nil, errors.Typef("invalid value type for on: %T", raw)
		}
		return OnValue(on), nil
	case PropertyColor:
		name, ok := raw.(string)
		if !ok {
			return nil, errors.Typef("invalid value type for color: %T", raw)
		}
		return ColorValue(name), nil
	default:
		rgb, err := asRGB(raw)
		if err != nil {
			return nil, err
		}
		return RGBValue(rgb), nil
	}
}

// ParsePropertyString parses command-line text for the named property.
// on accepts true/false/on/off, rgb accepts "r,g,b".
func ParsePropertyString(property PropertyName, text string) (PropertyValue, error) {
	text = strings.TrimSpace(text)
	switch property {
	case PropertyOn:
		switch strings.ToLower(text) {
		case "on":
			return ParseProperty(property, true)
		case "off":
			return ParseProperty(property, false)
		}
		on, err := strconv.ParseBool(text)
		if err != nil {
			return nil, errors.Typef("invalid value for on: %q is not a bool", text)
		}
		return ParseProperty(property, on)
	case PropertyRGB:
		parts := strings.Split(text, ",")
		channels := make([]any, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, errors.Typef("invalid value for rgb: %q is not an integer", p)
			}
			channels[i] = n
		}
		return ParseProperty(property, channels)
	default:
		return ParseProperty(property, text)
	}
}

func asRGB(raw any) (RGB, error) {
	var channels []any
	switch v := raw.(type) {
	case RGB:
		return v, nil
	case RGBValue:
		return RGB(v), nil
	case [3]int:
		return RGB{v[0], v[1], v[2]}, nil
	case []int:
		for _, n := range v {
			channels = append(channels, n)
		}
	case []any:
		channels = v
	default:
		return RGB{}, errors.Typef("invalid value type for rgb: %T", raw)
	}

	if len(channels) != 3 {
		return RGB{}, errors.Valuef("rgb needs 3 channels, got %d", len(channels))
	}
	var out [3]int
	for i, c := range channels {
		n, err := decode.Int(c)
		if err != nil {
			return RGB{}, errors.WrapErrorf(err, "rgb channel %d", i)
		}
		out[i] = n
	}
	return RGB{out[0], out[1], out[2]}, nil
}

// FormatValue renders a property value for display
func FormatValue(v PropertyValue) string {
	if rgb, ok := v.(RGBValue); ok {
		return fmt.Sprintf("%d,%d,%d", rgb.Red, rgb.Green, rgb.Blue)
	}
	return fmt.Sprintf("%v", v.Value())
}
