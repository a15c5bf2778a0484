package config

import "sort"

var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"full":    fullConfig,
}

// fullConfig enables every per-cell quantity the grid dump can carry.
func fullConfig() *Config {
	cfg := DefaultConfig()
	cfg.Panels = []PanelConfig{
		{Title: "Velocity", Series: []SeriesConfig{
			{Column: "data.velocity.x", Label: "Velocity X"},
			{Column: "data.velocity.y", Label: "Velocity Y"},
		}},
		{Title: "External Force", Series: []SeriesConfig{
			{Column: "data.externalForce.x", Label: "External Force X"},
			{Column: "data.externalForce.y", Label: "External Force Y"},
		}},
		{Title: "Pressure and Density", Series: []SeriesConfig{
			{Column: "data.pressure", Label: "Pressure"},
			{Column: "data.density", Label: "Density"},
		}},
		{Title: "Temperature", Series: []SeriesConfig{
			{Column: "data.temperature", Label: "Temperature"},
		}},
	}
	return cfg
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
