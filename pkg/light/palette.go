package light

// Color names accepted by every device
const (
	ColorWhite     = "white"
	ColorRed       = "red"
	ColorGreen     = "green"
	ColorBlue      = "blue"
	ColorYellow    = "yellow"
	ColorNavy      = "navy"
	ColorOrangeRed = "orange_red"
	ColorFuchsia   = "fuchsia"
)

// DefaultColor is the color a device starts with when none is given
const DefaultColor = ColorWhite

// RGB is a red/green/blue channel triple
type RGB struct {
	Red   int `json:"red" yaml:"red"`
	Green int `json:"green" yaml:"green"`
	Blue  int `json:"blue" yaml:"blue"`
}

// PaletteEntry is one color of the fixed palette in its three representations
type PaletteEntry struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
	RGB  RGB    `json:"rgb" yaml:"rgb"`
}

// palette is ordered; RGB matching takes the first exact entry.
// The navy RGB triple does not correspond to its hex code and is kept as is:
// it is what RGBSpotlight matches against.
var palette = []PaletteEntry{
	{ColorWhite, "#ffffff", RGB{255, 255, 255}},
	{ColorRed, "#ff0000", RGB{255, 0, 0}},
	{ColorGreen, "#00ff00", RGB{0, 255, 0}},
	{ColorBlue, "#0000ff", RGB{0, 0, 255}},
	{ColorYellow, "#ffff00", RGB{255, 255, 0}},
	{ColorNavy, "#000080", RGB{233, 150, 122}},
	{ColorOrangeRed, "#ff4500", RGB{255, 69, 0}},
	{ColorFuchsia, "#ff00ff", RGB{255, 0, 255}},
}

// Palette returns a copy of the palette in table order
func Palette() []PaletteEntry {
	out := make([]PaletteEntry, len(palette))
	copy(out, palette)
	return out
}

// IsColor reports whether name is in the palette
func IsColor(name string) bool {
	_, ok := lookupName(name)
	return ok
}

// HexFor returns the hex code of a named color
func HexFor(name string) (string, bool) {
	e, ok := lookupName(name)
	return e.Hex, ok
}

// RGBFor returns the RGB triple of a named color
func RGBFor(name string) (RGB, bool) {
	e, ok := lookupName(name)
	return e.RGB, ok
}

// NameForHex is the reverse lookup of HexFor
func NameForHex(hex string) (string, bool) {
	for _, e := range palette {
		if e.Hex == hex {
			return e.Name, true
		}
	}
	return "", false
}

// NameForRGB returns the first palette color whose triple equals rgb exactly
func NameForRGB(rgb RGB) (string, bool) {
	for _, e := range palette {
		if e.RGB == rgb {
			return e.Name, true
		}
	}
	return "", false
}

func lookupName(name string) (PaletteEntry, bool) {
	for _, e := range palette {
		if e.Name == name {
			return e, true
		}
	}
	return PaletteEntry{}, false
}
