package light

import (
	"strings"

	"github.com/jmylchreest/keylab/internal/decode"
	"github.com/jmylchreest/keylab/internal/errors"
)

// fixtureKinds maps the kind names accepted in fixture records
var fixtureKinds = map[string]Kind{
	"light":         KindLight,
	"lightdevice":   KindLight,
	"lamp":          KindLamp,
	"lampspotlight": KindLamp,
	"rgb":           KindRGB,
	"rgbspotlight":  KindRGB,
}

// ParseFixture builds a device from an untyped record, e.g. an entry of the
// devices list in the configuration file. Recognized keys: kind,
// identify_number, on, color, color_filter, red, green, blue. Every key is
// decoded before the identify-number is reserved, so a type error never
// consumes a number. As a consequence a type error in any key takes
// precedence over a duplicate identify-number.
func ParseFixture(raw map[string]any) (Device, error) {
	kind := KindLight
	if v, present := raw["kind"]; present {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Typef("kind must be a string, got %T", v)
		}
		k, known := fixtureKinds[strings.ToLower(s)]
		if !known {
			return nil, errors.Valuef("unknown device kind %q", s)
		}
		kind = k
	}

	n, err := decode.Int(raw["identify_number"])
	if err != nil {
		return nil, errors.WrapErrorf(err, "identify_number")
	}

	var opts []Option
	if v, present := raw["on"]; present {
		on, ok := v.(bool)
		if !ok {
			return nil, errors.Typef("on must be a bool, got %T", v)
		}
		opts = append(opts, WithOn(on))
	}
	if v, present := raw["color"]; present {
		color, ok := v.(string)
		if !ok {
			return nil, errors.Typef("color must be a string, got %T", v)
		}
		opts = append(opts, WithColor(color))
	}

	switch kind {
	case KindLamp:
		if v, present := raw["color_filter"]; present {
			filter, ok := v.(string)
			if !ok {
				return nil, errors.Typef("color_filter must be a string, got %T", v)
			}
			opts = append(opts, WithColorFilter(filter))
		}
		return NewLampSpotlight(n, opts...)
	case KindRGB:
		white, _ := RGBFor(DefaultColor)
		channels := [3]int{white.Red, white.Green, white.Blue}
		for i, key := range []string{"red", "green", "blue"} {
			v, present := raw[key]
			if !present {
				continue
			}
			c, err := decode.Int(v)
			if err != nil {
				return nil, errors.WrapErrorf(err, "%s", key)
			}
			channels[i] = c
		}
		opts = append(opts, WithRGB(channels[0], channels[1], channels[2]))
		return NewRGBSpotlight(n, opts...)
	default:
		return NewLightDevice(n, opts...)
	}
}

// ParseFixtures decodes a list of fixture records. It stops at the first
// error and releases the identify-numbers claimed by the records before it,
// so a failed load can be corrected and retried.
func ParseFixtures(raw any) ([]Device, error) {
	var items []any
	switch seq := raw.(type) {
	case []any:
		items = seq
	case []map[string]any:
		for _, rec := range seq {
			items = append(items, rec)
		}
	default:
		return nil, errors.Typef("devices must be a list, got %T", raw)
	}

	devices := make([]Device, 0, len(items))
	for i, item := range items {
		rec, err := decode.StringMap(item)
		if err != nil {
			releaseDevices(devices)
			return nil, errors.WrapErrorf(err, "devices[%d]", i)
		}
		d, err := ParseFixture(rec)
		if err != nil {
			releaseDevices(devices)
			return nil, errors.WrapErrorf(err, "devices[%d]", i)
		}
		devices = append(devices, d)
	}
	return devices, nil
}
