package style

import (
	"cmp"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	UIActive string // focused panel border
	UIDim    string // unfocused panel border
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// ThemeNames returns every theme variant, base names in BaseThemeNames order
// with the dark variant first.
func ThemeNames() []string {
	names := make([]string, 0, len(BaseThemeNames)*2)
	for _, base := range BaseThemeNames {
		names = append(names, base+"-dark", base+"-light")
	}
	return names
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:  "10",  // bright green
		Warning:  "11",  // bright yellow
		Error:    "9",   // bright red
		Info:     "14",  // bright cyan
		Muted:    "245", // medium gray
		Header:   "bold",
		UIActive: "14",
		UIDim:    "240",
	},
	"default-light": {
		Success:  "28",  // dark green
		Warning:  "130", // dark orange
		Error:    "124", // dark red
		Info:     "27",  // dark blue
		Muted:    "243",
		Header:   "bold",
		UIActive: "27",
		UIDim:    "252",
	},

	// Grayscale, for terminals where colors clash with the palette.
	"mono-dark": {
		Success:  "255",
		Warning:  "250",
		Error:    "bold",
		Info:     "252",
		Muted:    "242",
		Header:   "bold",
		UIActive: "255",
		UIDim:    "238",
	},
	"mono-light": {
		Success:  "232",
		Warning:  "238",
		Error:    "bold",
		Info:     "235",
		Muted:    "245",
		Header:   "bold",
		UIActive: "232",
		UIDim:    "250",
	},

	"ocean-dark": {
		Success:  "79",  // aquamarine
		Warning:  "222", // sand
		Error:    "210", // coral
		Info:     "75",  // sky blue
		Muted:    "67",  // steel blue
		Header:   "bold",
		UIActive: "75",
		UIDim:    "24",
	},
	"ocean-light": {
		Success:  "30",  // teal
		Warning:  "136", // dark gold
		Error:    "160", // red
		Info:     "25",  // deep blue
		Muted:    "66",  // slate
		Header:   "bold",
		UIActive: "25",
		UIDim:    "152",
	},
}

// overrides lists the keys that replace a single role of the theme. Each
// is read from $SHELLSHELL_<KEY> first, then from the config.
var overrides = []struct {
	key   string
	field func(*ColorConfig) *string
}{
	{"color_success", func(c *ColorConfig) *string { return &c.Success }},
	{"color_warning", func(c *ColorConfig) *string { return &c.Warning }},
	{"color_error", func(c *ColorConfig) *string { return &c.Error }},
	{"color_info", func(c *ColorConfig) *string { return &c.Info }},
	{"color_muted", func(c *ColorConfig) *string { return &c.Muted }},
	{"color_header", func(c *ColorConfig) *string { return &c.Header }},
}

// darkBackground queries the terminal; it reports dark when detection fails.
var darkBackground = termenv.HasDarkBackground

// ResolveThemeName completes a base name with -dark or -light from the
// terminal background. Names that already carry a variant are returned as is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if darkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme from $SHELLSHELL_THEME or cfg["theme"]
// (default "default"), falls back to default-dark for unknown names, then
// applies the per-role overrides.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := cmp.Or(os.Getenv("SHELLSHELL_THEME"), cfg["theme"], "default")

	colors, ok := Themes[ResolveThemeName(name)]
	if !ok {
		colors = Themes["default-dark"]
	}

	for _, o := range overrides {
		if v := cmp.Or(os.Getenv("SHELLSHELL_"+strings.ToUpper(o.key)), cfg[o.key]); v != "" {
			*o.field(&colors) = v
		}
	}
	return colors
}
