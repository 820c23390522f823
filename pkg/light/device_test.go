package light

import (
	"fmt"
	"testing"

	"github.com/jmylchreest/keylab/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freshRegistry clears the process-wide registry before and after a test
func freshRegistry(t *testing.T) {
	t.Helper()
	ResetRegistry()
	t.Cleanup(ResetRegistry)
}

func TestNewLightDeviceDefaults(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(986)
	require.NoError(t, err)
	assert.Equal(t, KindLight, d.Kind())
	assert.Equal(t, 986, d.IdentifyNumber())
	assert.False(t, d.IsOn())
	assert.Equal(t, ColorWhite, d.ColorName())
	assert.Equal(t, "#ffffff", d.Hex())
}

func TestNewLightDeviceWithOptions(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(987, WithOn(false), WithColor(ColorBlue))
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", d.Hex())

	d, err = NewLightDevice(988, WithOn(true))
	require.NoError(t, err)
	assert.True(t, d.IsOn())
}

func TestDuplicateIdentifyNumber(t *testing.T) {
	freshRegistry(t)

	_, err := NewLightDevice(705)
	require.NoError(t, err)

	_, err = NewLightDevice(705, WithOn(true))
	assert.ErrorIs(t, err, errors.ErrValue)

	// Numbers are shared across variants
	_, err = NewLampSpotlight(705)
	assert.ErrorIs(t, err, errors.ErrValue)
	_, err = NewRGBSpotlight(705)
	assert.ErrorIs(t, err, errors.ErrValue)
}

func TestIdentifyNumberSurvivesDiscardedDevice(t *testing.T) {
	freshRegistry(t)

	// the first device is discarded immediately
	_, err := NewLightDevice(1)
	require.NoError(t, err)

	_, err = NewLightDevice(1)
	assert.ErrorIs(t, err, errors.ErrValue)

	ResetRegistry()
	_, err = NewLightDevice(1)
	assert.NoError(t, err, "reset releases every number")
}

func TestTurnOnTurnOff(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(1)
	require.NoError(t, err)

	require.NoError(t, d.TurnOn())
	assert.True(t, d.IsOn())
	assert.ErrorIs(t, d.TurnOn(), errors.ErrValue)
	assert.True(t, d.IsOn())

	require.NoError(t, d.TurnOff())
	assert.False(t, d.IsOn())
	assert.ErrorIs(t, d.TurnOff(), errors.ErrValue)
	assert.False(t, d.IsOn())
}

func TestTurnOffConstructedOn(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(705, WithOn(true))
	require.NoError(t, err)
	assert.NoError(t, d.TurnOff())
}

func TestStateMachineAllVariants(t *testing.T) {
	freshRegistry(t)

	lamp, err := NewLampSpotlight(10)
	require.NoError(t, err)
	spot, err := NewRGBSpotlight(11)
	require.NoError(t, err)

	for _, d := range []Device{lamp, spot} {
		t.Run(string(d.Kind()), func(t *testing.T) {
			assert.ErrorIs(t, d.TurnOff(), errors.ErrValue)
			require.NoError(t, d.TurnOn())
			assert.ErrorIs(t, d.TurnOn(), errors.ErrValue)
			require.NoError(t, d.TurnOff())
		})
	}
}

func TestLightDeviceChangeColor(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(802)
	require.NoError(t, err)

	require.NoError(t, d.ChangeColor(ColorRed))
	assert.Equal(t, "#ff0000", d.Hex())
	assert.Equal(t, ColorRed, d.ColorName())

	err = d.ChangeColor("purple")
	assert.ErrorIs(t, err, errors.ErrValue)
	assert.Equal(t, ColorRed, d.ColorName(), "failed change leaves state unchanged")
}

func TestLightDeviceUnknownColorAtConstruction(t *testing.T) {
	freshRegistry(t)

	// Accepted at construction; the color is undefined until changed
	d, err := NewLightDevice(50, WithColor("purple"))
	require.NoError(t, err)
	assert.Empty(t, d.Hex())
	assert.Empty(t, d.ColorName())

	_, err = d.DebugString()
	assert.ErrorIs(t, err, errors.ErrValue)
	assert.Equal(t, "LightDevice(identify_number=50, <undefined color>)", fmt.Sprintf("%#v", d))

	require.NoError(t, d.ChangeColor(ColorYellow))
	s, err := d.DebugString()
	require.NoError(t, err)
	assert.Equal(t, `LightDevice(identify_number=50, on=false, color="yellow")`, s)
}

func TestDeviceStrings(t *testing.T) {
	freshRegistry(t)

	d, err := NewLightDevice(987, WithColor(ColorBlue))
	require.NoError(t, err)
	lamp, err := NewLampSpotlight(605, WithOn(true), WithColor(ColorGreen), WithColorFilter(ColorGreen))
	require.NoError(t, err)
	spot, err := NewRGBSpotlight(100)
	require.NoError(t, err)

	assert.Equal(t, "LightDevice device number 987", d.String())
	assert.Equal(t, "LampSpotlight device number 605", lamp.String())
	assert.Equal(t, "RGBSpotlight device number 100", spot.String())

	assert.Equal(t, `LightDevice(identify_number=987, on=false, color="blue")`, fmt.Sprintf("%#v", d))
	assert.Equal(t, `LampSpotlight(identify_number=605, on=true, color="green", color_filter="green")`, fmt.Sprintf("%#v", lamp))
	assert.Equal(t, `RGBSpotlight(identify_number=100, on=false, color="white", red=255, green=255, blue=255)`, fmt.Sprintf("%#v", spot))
}

func TestLampSpotlight(t *testing.T) {
	freshRegistry(t)

	t.Run("defaults", func(t *testing.T) {
		l, err := NewLampSpotlight(402)
		require.NoError(t, err)
		assert.Equal(t, ColorWhite, l.ColorFilter())
		assert.Equal(t, ColorWhite, l.ColorName())
	})

	t.Run("matching filter", func(t *testing.T) {
		l, err := NewLampSpotlight(605, WithOn(true), WithColor(ColorGreen), WithColorFilter(ColorGreen))
		require.NoError(t, err)
		assert.True(t, l.IsOn())
		assert.Equal(t, ColorGreen, l.ColorFilter())
	})

	t.Run("mismatched filter", func(t *testing.T) {
		l, err := NewLampSpotlight(2, WithColor(ColorGreen), WithColorFilter(ColorRed))
		assert.Nil(t, l)
		assert.ErrorIs(t, err, errors.ErrValue)
		assert.False(t, DefaultRegistry().Contains(2), "failed construction does not reserve the number")
	})

	t.Run("filter without color", func(t *testing.T) {
		_, err := NewLampSpotlight(4, WithColorFilter(ColorRed))
		assert.ErrorIs(t, err, errors.ErrValue)
	})

	t.Run("change color moves filter", func(t *testing.T) {
		l, err := NewLampSpotlight(3)
		require.NoError(t, err)
		require.NoError(t, l.ChangeColor(ColorRed))
		assert.Equal(t, ColorRed, l.ColorFilter())
		assert.Equal(t, ColorRed, l.ColorName())
		assert.Equal(t, "#ff0000", l.Hex())

		assert.ErrorIs(t, l.ChangeColor("ultraviolet"), errors.ErrValue)
		assert.Equal(t, ColorRed, l.ColorFilter())
		assert.Equal(t, ColorRed, l.ColorName())
	})
}

func TestRGBSpotlight(t *testing.T) {
	freshRegistry(t)

	t.Run("defaults", func(t *testing.T) {
		s, err := NewRGBSpotlight(100)
		require.NoError(t, err)
		assert.Equal(t, RGB{255, 255, 255}, s.RGB())
		assert.Equal(t, ColorWhite, s.ColorName())
	})

	t.Run("triple checked against table", func(t *testing.T) {
		want, ok := RGBFor(ColorRed)
		require.True(t, ok)

		s, err := NewRGBSpotlight(4, WithColor(ColorRed), WithRGB(255, 0, 0))
		if want == (RGB{255, 0, 0}) {
			require.NoError(t, err)
			assert.Equal(t, ColorRed, s.ColorName())
		} else {
			assert.ErrorIs(t, err, errors.ErrValue)
		}
	})

	t.Run("mismatched channels", func(t *testing.T) {
		for i, rgb := range []RGB{{0, 0, 0}, {255, 1, 0}, {255, 0, 1}} {
			_, err := NewRGBSpotlight(200+i, WithColor(ColorRed), WithRGB(rgb.Red, rgb.Green, rgb.Blue))
			assert.ErrorIs(t, err, errors.ErrValue, "rgb=%v", rgb)
			assert.False(t, DefaultRegistry().Contains(200+i))
		}
	})

	t.Run("color without triple", func(t *testing.T) {
		// default channels are white's
		_, err := NewRGBSpotlight(210, WithColor(ColorBlue))
		assert.ErrorIs(t, err, errors.ErrValue)

		_, err = NewRGBSpotlight(211, WithColor("purple"))
		assert.ErrorIs(t, err, errors.ErrValue)
	})

	t.Run("navy uses its table triple", func(t *testing.T) {
		s, err := NewRGBSpotlight(212, WithColor(ColorNavy), WithRGB(233, 150, 122))
		require.NoError(t, err)
		assert.Equal(t, "#000080", s.Hex())
	})

	t.Run("change color", func(t *testing.T) {
		s, err := NewRGBSpotlight(5)
		require.NoError(t, err)

		green, _ := RGBFor(ColorGreen)
		err = s.ChangeColor(0, 255, 0)
		if green == (RGB{0, 255, 0}) {
			require.NoError(t, err)
			assert.Equal(t, ColorGreen, s.ColorName())
			assert.Equal(t, RGB{0, 255, 0}, s.RGB())
		} else {
			assert.ErrorIs(t, err, errors.ErrValue)
		}
	})

	t.Run("no nearest match", func(t *testing.T) {
		s, err := NewRGBSpotlight(102)
		require.NoError(t, err)

		assert.ErrorIs(t, s.ChangeColor(0, 254, 0), errors.ErrValue)
		assert.ErrorIs(t, s.ChangeColor(0, 0, 128), errors.ErrValue, "navy's hex is not its triple")
		assert.Equal(t, ColorWhite, s.ColorName())
		assert.Equal(t, RGB{255, 255, 255}, s.RGB())
	})
}

func TestSnap(t *testing.T) {
	freshRegistry(t)

	lamp, err := NewLampSpotlight(1, WithColor(ColorRed), WithColorFilter(ColorRed))
	require.NoError(t, err)
	spot, err := NewRGBSpotlight(2, WithOn(true))
	require.NoError(t, err)

	s := Snap(lamp)
	assert.Equal(t, KindLamp, s.Kind)
	assert.Equal(t, ColorRed, s.ColorFilter)
	assert.Nil(t, s.RGB)

	s = Snap(spot)
	assert.True(t, s.On)
	require.NotNil(t, s.RGB)
	assert.Equal(t, RGB{255, 255, 255}, *s.RGB)
	assert.Empty(t, s.ColorFilter)
}
