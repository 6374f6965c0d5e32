package subplot

import (
	"bytes"
	_ "embed"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

var loadPresets = sync.OnceValues(func() (map[string]map[string]any, error) {
	presets := map[string]map[string]any{}
	if err := yaml.NewDecoder(bytes.NewReader(presetsYAML)).Decode(&presets); err != nil {
		return nil, wrapError(InvalidConfig, err, "presets", "cannot parse")
	}
	return presets, nil
})

// Presets returns the names of the built-in layouts in sorted order.
func Presets() []string {
	presets, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns the built-in layout called name.
func Preset(name string) (Layout, error) {
	presets, err := loadPresets()
	if err != nil {
		return Layout{}, err
	}
	m, ok := presets[name]
	if !ok {
		return Layout{}, newError(InvalidConfig, name,
			"unknown preset, available: %s", strings.Join(Presets(), ", "))
	}
	return LayoutFromMap(m)
}
