package legend

import "strings"

// Palette is an ordered list of CSS colours cycled by item index.
type Palette []string

var (
	// Category10 is the classic ten-colour categorical scheme.
	Category10 = hexPalette("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	// Tableau10 is the Tableau 10 categorical scheme.
	Tableau10 = hexPalette("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	// Tol is Paul Tol's colour-blind safe qualitative scheme.
	Tol = Palette{
		"#4477AA", "#EE6677", "#228833", "#CCBB44", "#66CCEE",
		"#AA3377", "#BBBBBB", "#EE8866", "#44BB99", "#FFAABB",
	}
)

// Palettes maps palette names to palettes.
var Palettes = map[string]Palette{
	"category10": Category10,
	"tableau10":  Tableau10,
	"tol":        Tol,
}

// PaletteNames lists the keys of Palettes in display order.
var PaletteNames = []string{"category10", "tableau10", "tol"}

// ParsePalette looks up a palette by case-insensitive name.
func ParsePalette(name string) (Palette, bool) {
	p, ok := Palettes[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Color returns the colour for index i, cycling through the palette.
// An empty palette behaves like Category10.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		p = Category10
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func hexPalette(s string) Palette {
	p := make(Palette, 0, len(s)/6)
	for i := 0; i+6 <= len(s); i += 6 {
		p = append(p, "#"+s[i:i+6])
	}
	return p
}
