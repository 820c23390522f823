package light

import (
	"context"
	"log/slog"

	"github.com/jmylchreest/keylab/internal/errors"
	"github.com/jmylchreest/keylab/internal/events"
)

// Manager holds a set of devices keyed by identify-number and applies
// property changes to them. It is not safe for concurrent use.
type Manager struct {
	devices map[int]Device
	order   []int
	bus     *events.Bus
	logger  *slog.Logger
}

// NewManager creates a new manager. bus may be nil.
func NewManager(logger *slog.Logger, bus *events.Bus) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		devices: make(map[int]Device),
		bus:     bus,
		logger:  logger,
	}
}

// Add adds a constructed device to the manager
func (m *Manager) Add(d Device) error {
	n := d.IdentifyNumber()
	if _, exists := m.devices[n]; exists {
		return errors.Valuef("device %d is already managed", n)
	}
	m.devices[n] = d
	m.order = append(m.order, n)

	m.logDevice(slog.LevelInfo, "device: added", d)
	m.publish(events.DeviceAdded, d)
	return nil
}

// LoadFixtures decodes fixture records (see ParseFixtures) and adds them.
// Either every record is added or none is, and a failed load gives back
// the identify-numbers it claimed.
func (m *Manager) LoadFixtures(raw any) error {
	devices, err := ParseFixtures(raw)
	if err != nil {
		return errors.LogErrorAndReturn(m.logger, err, "failed to load device fixtures")
	}
	for i, d := range devices {
		if _, exists := m.devices[d.IdentifyNumber()]; exists {
			releaseDevices(devices)
			err := errors.Valuef("devices[%d]: device %d is already managed", i, d.IdentifyNumber())
			return errors.LogErrorAndReturn(m.logger, err, "failed to load device fixtures")
		}
	}
	for _, d := range devices {
		if err := m.Add(d); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a device by identify-number
func (m *Manager) Get(n int) (Device, error) {
	d, exists := m.devices[n]
	if !exists {
		return nil, errors.Valuef("device %d not found", n)
	}
	return d, nil
}

// Devices returns the managed devices in the order they were added
func (m *Manager) Devices() []Device {
	out := make([]Device, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, m.devices[n])
	}
	return out
}

// Apply validates a property value and applies it to a device.
// on maps to TurnOn/TurnOff, so a redundant switch fails like the device
// methods do. color is refused by RGB spotlights and rgb by everything else.
func (m *Manager) Apply(n int, value PropertyValue) error {
	d, err := m.Get(n)
	if err != nil {
		return err
	}
	if err := value.Validate(); err != nil {
		return err
	}

	switch v := value.(type) {
	case OnValue:
		if v {
			err = d.TurnOn()
		} else {
			err = d.TurnOff()
		}
	case ColorValue:
		err = changeColor(d, string(v))
	case RGBValue:
		spot, ok := d.(*RGBSpotlight)
		if !ok {
			return errors.Valuef("%s does not take rgb values", d)
		}
		err = spot.ChangeColor(v.Red, v.Green, v.Blue)
	default:
		return errors.Valuef("unknown property: %s", value.PropertyName())
	}
	if err != nil {
		return errors.LogErrorAndReturn(m.logger, err, "failed to apply property",
			"identify_number", n,
			"property", value.PropertyName(),
		)
	}

	m.logDevice(slog.LevelDebug, "device: state changed", d)
	m.publish(events.DeviceStateChanged, d)
	return nil
}

func changeColor(d Device, name string) error {
	switch v := d.(type) {
	case *LightDevice:
		return v.ChangeColor(name)
	case *LampSpotlight:
		return v.ChangeColor(name)
	default:
		return errors.Valuef("%s takes rgb values, not a color name", d)
	}
}

// SetPower sets the power state of a device
func (m *Manager) SetPower(n int, on bool) error {
	return m.Apply(n, OnValue(on))
}

// SetColor sets a palette color (the filter on a lamp spotlight)
func (m *Manager) SetColor(n int, name string) error {
	return m.Apply(n, ColorValue(name))
}

// SetRGB sets the channels of an RGB spotlight
func (m *Manager) SetRGB(n int, red, green, blue int) error {
	return m.Apply(n, RGBValue{red, green, blue})
}

func (m *Manager) publish(t events.EventType, d Device) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(events.NewEvent(t, Snap(d)))
}

// logDevice logs detailed information about a device
func (m *Manager) logDevice(level slog.Level, message string, d Device) {
	m.logger.Log(context.Background(), level, message,
		slog.String("kind", string(d.Kind())),
		slog.Int("identify_number", d.IdentifyNumber()),
		slog.Bool("on", d.IsOn()),
		slog.String("color", d.ColorName()),
		slog.String("hex", d.Hex()),
	)
}
