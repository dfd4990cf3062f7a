package landing

import (
	"fmt"
	"sort"
	"strings"
)

// Theme is the visual configuration one template renders with
type Theme struct {
	Name       string
	Accent     string
	AccentDark string
	Background string
	Surface    string
	Text       string
	Muted      string
	Hero       string // CSS background of the hero section
	Radius     string
	ShowStats  bool
}

const DefaultTheme = "classic"

var themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Accent:     "#059669",
		AccentDark: "#047857",
		Background: "#ffffff",
		Surface:    "#f8fafc",
		Text:       "#0f172a",
		Muted:      "#475569",
		Hero:       "linear-gradient(135deg, #ecfdf5 0%, #ffffff 50%, #f0fdfa 100%)",
		Radius:     "12px",
		ShowStats:  true,
	},
	"aurora": {
		Name:       "aurora",
		Accent:     "#7c3aed",
		AccentDark: "#5b21b6",
		Background: "#0b1020",
		Surface:    "#151b31",
		Text:       "#e2e8f0",
		Muted:      "#94a3b8",
		Hero:       "radial-gradient(circle at 20% 20%, #312e81 0%, #0b1020 60%)",
		Radius:     "18px",
		ShowStats:  true,
	},
	"minimal": {
		Name:       "minimal",
		Accent:     "#111827",
		AccentDark: "#000000",
		Background: "#ffffff",
		Surface:    "#ffffff",
		Text:       "#111827",
		Muted:      "#6b7280",
		Hero:       "#ffffff",
		Radius:     "4px",
		ShowStats:  false,
	},
}

// LookupTheme returns the named theme. Names are case-insensitive.
func LookupTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultTheme
	}
	theme, ok := themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// ThemeNames lists the available themes in sorted order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
