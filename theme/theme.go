// Package theme holds the named accent palettes. The maps are
// process-wide read-only state; mutation after init is not supported.
package theme

import "sort"

// Palette is an 11-step accent scale, lightest to darkest for dark
// themes and inverted for light ones.
type Palette struct {
	Accent50  string `json:"accent50"`
	Accent100 string `json:"accent100"`
	Accent200 string `json:"accent200"`
	Accent300 string `json:"accent300"`
	Accent400 string `json:"accent400"`
	Accent500 string `json:"accent500"`
	Accent600 string `json:"accent600"`
	Accent700 string `json:"accent700"`
	Accent800 string `json:"accent800"`
	Accent850 string `json:"accent850"`
	Accent900 string `json:"accent900"`
}

var themes = map[string]Palette{
	"obsidian": {
		Accent50: "#f6f7f9", Accent100: "#eceef2", Accent200: "#d5d9e2",
		Accent300: "#b0b7c9", Accent400: "#8590ab", Accent500: "#657292",
		Accent600: "#515b78", Accent700: "#424a62", Accent800: "#394053",
		Accent850: "#333847", Accent900: "#0d0e12",
	},
	"eclipse": {
		Accent50: "#f6f6f6", Accent100: "#e7e7e7", Accent200: "#d1d1d1",
		Accent300: "#b0b0b0", Accent400: "#888888", Accent500: "#6d6d6d",
		Accent600: "#5d5d5d", Accent700: "#4f4f4f", Accent800: "#454545",
		Accent850: "#3d3d3d", Accent900: "#171717",
	},
	"phantom": {
		Accent50: "#f7f6f9", Accent100: "#eeecf2", Accent200: "#dad5e2",
		Accent300: "#b9b0c9", Accent400: "#9385ab", Accent500: "#756592",
		Accent600: "#5f5178", Accent700: "#4e4262", Accent800: "#423953",
		Accent850: "#3a3347", Accent900: "#0e0d12",
	},
	"emerald": {
		Accent50: "#f6f9f7", Accent100: "#ecf2ee", Accent200: "#d5e2da",
		Accent300: "#b0c9b9", Accent400: "#85ab96", Accent500: "#65927b",
		Accent600: "#517863", Accent700: "#426251", Accent800: "#395345",
		Accent850: "#33473c", Accent900: "#0d120f",
	},
	"daybreak": {
		Accent900: "#f6f7f9", Accent850: "#eceef2", Accent800: "#d5d9e2",
		Accent700: "#b0b7c9", Accent600: "#8590ab", Accent500: "#657292",
		Accent400: "#515b78", Accent300: "#424a62", Accent200: "#394053",
		Accent100: "#333847", Accent50: "#0d0e12",
	},
	"frost": {
		Accent900: "#f6f9f9", Accent850: "#ecf2f2", Accent800: "#b0c9c9",
		Accent700: "#93b5b4", Accent600: "#85abab", Accent500: "#659292",
		Accent400: "#517878", Accent300: "#426262", Accent200: "#394545",
		Accent100: "#333d3d", Accent50: "#0d1212",
	},
}

var lightThemes = map[string]bool{
	"daybreak": true,
	"frost":    true,
}

// Get looks up a palette by theme name.
func Get(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Default is the theme used when none is configured.
func Default() string { return "obsidian" }

// IsLight reports whether the named theme is a light theme.
func IsLight(name string) bool { return lightThemes[name] }

// Names lists all theme names in stable order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
