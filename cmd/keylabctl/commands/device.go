package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/keylab/pkg/light"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewDeviceCommand creates the device command
func NewDeviceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Manage light devices",
	}

	cmd.AddCommand(
		newDeviceDemoCommand(),
		newDeviceListCommand(),
		newDeviceApplyCommand(),
		newDevicePaletteCommand(),
	)

	return cmd
}

// loadManager builds a manager holding the configured device fixtures
func loadManager(cmd *cobra.Command) (*light.Manager, error) {
	app, ok := appFromCmd(cmd)
	if !ok {
		return nil, fmt.Errorf("command is not initialised")
	}
	m := light.NewManager(app.Logger, app.Bus)
	if err := m.LoadFixtures(app.Config.Devices()); err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}
	return m, nil
}

// deviceExample is one scripted call sequence checked by the demo
type deviceExample struct {
	name string
	run  func() error
}

var deviceExamples = []deviceExample{
	{"LightDevice construction", func() error {
		if _, err := light.NewLightDevice(987, light.WithOn(false), light.WithColor(light.ColorBlue)); err != nil {
			return err
		}
		_, err := light.NewLightDevice(986)
		return err
	}},
	{"LightDevice turn on", func() error {
		d, err := light.NewLightDevice(705)
		if err != nil {
			return err
		}
		return d.TurnOn()
	}},
	{"LightDevice turn off", func() error {
		d, err := light.NewLightDevice(705, light.WithOn(true))
		if err != nil {
			return err
		}
		return d.TurnOff()
	}},
	{"LightDevice change color", func() error {
		d, err := light.NewLightDevice(802)
		if err != nil {
			return err
		}
		return d.ChangeColor(light.ColorRed)
	}},
	{"LampSpotlight construction", func() error {
		if _, err := light.NewLampSpotlight(402); err != nil {
			return err
		}
		_, err := light.NewLampSpotlight(605, light.WithOn(true), light.WithColor(light.ColorGreen), light.WithColorFilter(light.ColorGreen))
		return err
	}},
	{"LampSpotlight change color", func() error {
		l, err := light.NewLampSpotlight(305)
		if err != nil {
			return err
		}
		return l.ChangeColor(light.ColorRed)
	}},
	{"RGBSpotlight construction", func() error {
		_, err := light.NewRGBSpotlight(100)
		return err
	}},
	{"RGBSpotlight change color", func() error {
		s, err := light.NewRGBSpotlight(102)
		if err != nil {
			return err
		}
		return s.ChangeColor(0, 255, 0)
	}},
}

// runDeviceExamples runs every example against an empty registry and
// returns the number of failures
func runDeviceExamples(examples []deviceExample) int {
	defer light.ResetRegistry()

	failed := 0
	for _, ex := range examples {
		light.ResetRegistry()
		if err := ex.run(); err != nil {
			failed++
			pterm.Error.Printf("%s: %v\n", ex.name, err)
			continue
		}
		pterm.Success.Println(ex.name)
	}
	return failed
}

// newDeviceDemoCommand creates the device demo command
func newDeviceDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the device examples and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failed := runDeviceExamples(deviceExamples); failed > 0 {
				return fmt.Errorf("%d of %d examples failed", failed, len(deviceExamples))
			}
			return nil
		},
	}
}

// newDeviceListCommand creates the device list command
func newDeviceListCommand() *cobra.Command {
	var (
		parseable bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}

			devices := m.Devices()
			snaps := make([]light.Snapshot, 0, len(devices))
			for _, d := range devices {
				snaps = append(snaps, light.Snap(d))
			}

			if output == outputYAML {
				return printYAML(snaps)
			}

			if len(snaps) == 0 {
				if parseable {
					return nil
				}
				pterm.Info.Println("No devices configured")
				return nil
			}

			if parseable {
				for _, s := range snaps {
					fmt.Println(DeviceParseable(s))
				}
				return nil
			}

			for _, s := range snaps {
				if err := pterm.DefaultTable.WithData(DeviceTableData(s)).Render(); err != nil {
					return err
				}
				pterm.Println()
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&parseable, "parseable", "p", false, "Output in parseable format (key=value)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, yaml)")
	return cmd
}

// newDeviceApplyCommand creates the device apply command
func newDeviceApplyCommand() *cobra.Command {
	var parseable bool
	cmd := &cobra.Command{
		Use:   "apply [identify_number] [property] [value]",
		Short: "Set a device property (on, color, rgb)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid identify number %q: %w", args[0], err)
			}
			property := light.PropertyName(strings.ToLower(args[1]))
			value, err := light.ParsePropertyString(property, args[2])
			if err != nil {
				return err
			}

			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if err := m.Apply(n, value); err != nil {
				return err
			}

			d, err := m.Get(n)
			if err != nil {
				return err
			}
			if parseable {
				fmt.Println(DeviceParseable(light.Snap(d)))
				return nil
			}
			pterm.Success.Printf("Set %s=%s on %s\n", property, light.FormatValue(value), d)
			return pterm.DefaultTable.WithData(DeviceTableData(light.Snap(d))).Render()
		},
	}
	cmd.Flags().BoolVarP(&parseable, "parseable", "p", false, "Output in parseable format (key=value)")
	return cmd
}

// newDevicePaletteCommand creates the device palette command
func newDevicePaletteCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the known colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if output == outputYAML {
				return printYAML(light.Palette())
			}
			return pterm.DefaultTable.WithHasHeader().WithData(PaletteTableData(light.Palette())).Render()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, yaml)")
	return cmd
}
