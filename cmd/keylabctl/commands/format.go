package commands

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/keylab/pkg/catalog"
	"github.com/jmylchreest/keylab/pkg/light"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// bookRecord is the serializable form of a book
type bookRecord struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Pages int    `yaml:"pages"`
}

func bookRecords(lib *catalog.Library) []bookRecord {
	records := make([]bookRecord, 0, len(lib.Books))
	for _, b := range lib.Books {
		records = append(records, bookRecord{ID: b.ID(), Name: b.Name(), Pages: b.Pages()})
	}
	return records
}

// validateOutput checks the --output flag value
func validateOutput(output string) error {
	switch output {
	case outputTable, outputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s. Must be one of: %s, %s", output, outputTable, outputYAML)
	}
}

// printYAML writes v to stdout as a YAML document
func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// BookTableData returns the table data for a library, one row per book
func BookTableData(lib *catalog.Library) pterm.TableData {
	data := pterm.TableData{{"Index", "ID", "Name", "Pages"}}
	for i, b := range lib.Books {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", b.ID()),
			b.Name(),
			fmt.Sprintf("%d", b.Pages()),
		})
	}
	return data
}

// BookParseable returns the parseable key=value string for a book
func BookParseable(index int, b *catalog.Book) string {
	return fmt.Sprintf("index=%d id=%d name=%q pages=%d", index, b.ID(), b.Name(), b.Pages())
}

// DeviceTableData returns the table data for a device, with bold number and kind
func DeviceTableData(s light.Snapshot) pterm.TableData {
	data := pterm.TableData{
		[]string{pterm.Bold.Sprint("Number"), pterm.Bold.Sprint(s.IdentifyNumber)},
		[]string{"Kind", string(s.Kind)},
		[]string{"On", fmt.Sprintf("%v", s.On)},
		[]string{"Color", displayColor(s.Color)},
		[]string{"Hex", displayColor(s.Hex)},
	}
	if s.Kind == light.KindLamp {
		data = append(data, []string{"Color Filter", s.ColorFilter})
	}
	if s.RGB != nil {
		data = append(data, []string{"RGB", formatRGB(*s.RGB)})
	}
	return data
}

// DeviceParseable returns the parseable key=value string for a device
func DeviceParseable(s light.Snapshot) string {
	parts := []string{
		fmt.Sprintf("identify_number=%d", s.IdentifyNumber),
		fmt.Sprintf("kind=%q", s.Kind),
		fmt.Sprintf("on=%v", s.On),
		fmt.Sprintf("color=%q", s.Color),
		fmt.Sprintf("hex=%q", s.Hex),
	}
	if s.Kind == light.KindLamp {
		parts = append(parts, fmt.Sprintf("color_filter=%q", s.ColorFilter))
	}
	if s.RGB != nil {
		parts = append(parts, fmt.Sprintf("rgb=%q", formatRGB(*s.RGB)))
	}
	return strings.Join(parts, " ")
}

// PaletteTableData returns the table data for the color palette
func PaletteTableData(entries []light.PaletteEntry) pterm.TableData {
	data := pterm.TableData{{"Name", "Hex", "RGB"}}
	for _, e := range entries {
		data = append(data, []string{e.Name, e.Hex, formatRGB(e.RGB)})
	}
	return data
}

func formatRGB(rgb light.RGB) string {
	return fmt.Sprintf("%d,%d,%d", rgb.Red, rgb.Green, rgb.Blue)
}

func displayColor(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
