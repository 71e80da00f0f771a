package config

import "sort"

var Presets = map[string]Config{
	"default": {Length: DefaultLength, InitValue: DefaultInitValue},
	"short":   {Length: 50, InitValue: DefaultInitValue},
	"long":    {Length: 5000, InitValue: DefaultInitValue},
	"origin":  {Length: DefaultLength, InitValue: 0.0},
	"high":    {Length: DefaultLength, InitValue: 50.0},
}

// GetPreset returns the named walk parameters on top of the default chart
// settings, or nil if no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Length = p.Length
	cfg.InitValue = p.InitValue
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
