// Package presets defines named render scenarios: a simulation
// configuration plus animation settings and an output filename.
package presets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mudk-ux/emergence-lab/internal/sims/strategic"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Preset couples an automaton configuration with animation settings.
type Preset struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`

	Size int    `yaml:"size"`
	Game string `yaml:"game"`
	Init string `yaml:"init"`
	// Density is a pointer so a preset can express an explicit zero
	// (all-defector random start) distinctly from "use the default".
	Density     *float64 `yaml:"density"`
	InvaderSize int      `yaml:"invader_size"`
	Seed        int64    `yaml:"seed"`

	Frames      int    `yaml:"frames"`
	FPS         int    `yaml:"fps"`
	PauseFrames int    `yaml:"pause_frames"`
	Scale       int    `yaml:"scale"`
	Output      string `yaml:"output"`
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

// Config translates the preset into an automaton configuration. Defaults
// fill any field the preset leaves at its zero value, so a preset only has
// to name what it changes.
func (p Preset) Config() strategic.Config {
	cfg := strategic.DefaultConfig()
	if p.Size > 0 {
		cfg.Size = p.Size
	}
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
	if p.Game != "" {
		cfg.Params.Game = strategic.Game(p.Game)
	}
	if p.Init != "" {
		cfg.Params.Init = strategic.Init(p.Init)
	}
	if p.Density != nil {
		cfg.Params.CoopDensity = *p.Density
	}
	if p.InvaderSize > 0 {
		cfg.Params.InvaderSize = p.InvaderSize
	}
	return cfg
}

// Defaults returns the built-in preset set.
func Defaults() ([]Preset, error) {
	return parse(defaultsYAML)
}

// Load reads a preset file from disk, replacing the built-in set.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Preset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("parsing presets: no presets defined")
	}
	for _, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("parsing presets: preset without a name")
		}
		if p.Output == "" {
			return nil, fmt.Errorf("parsing presets: preset %q has no output file", p.Name)
		}
	}
	return f.Presets, nil
}

// Find looks up a preset by name.
func Find(list []Preset, name string) (Preset, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
