package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle         = "Cell Index Method"
	DefaultParticlesFile = "output.txt"
	DefaultOutput        = "animation.png"
	DefaultDPI           = 300
	DefaultSize          = 6.0
	DefaultViewer        = ViewerWindow
	DefaultTheme         = "classic"
	DefaultRadius        = 0.25

	ViewerWindow   = "window"
	ViewerTerminal = "terminal"
)

type Config struct {
	PlaneLength       float64         `yaml:"plane_length" validate:"gt=0"`
	InteractionRadius float64         `yaml:"interaction_radius" validate:"gte=0"`
	SelectedIndex     int             `yaml:"selected_index" validate:"gte=0"`
	ParticlesFile     string          `yaml:"particles_file" validate:"required"`
	Render            RenderConfig    `yaml:"render"`
	Generator         GeneratorConfig `yaml:"generator"`
}

// RenderConfig controls how the scene is displayed or saved.
type RenderConfig struct {
	Title  string  `yaml:"title"`
	Save   bool    `yaml:"save"`
	Output string  `yaml:"output" validate:"required"`
	DPI    int     `yaml:"dpi" validate:"gt=0"`
	Size   float64 `yaml:"size" validate:"gt=0"`
	Viewer string  `yaml:"viewer" validate:"oneof=window terminal"`
	// Theme names the terminal viewer palette.
	Theme string `yaml:"theme"`
}

// GeneratorConfig drives the cell index method run that produces a particle table.
// CellCount 0 selects the optimum cell count. Radii, when set, overrides
// ParticleCount and Radius.
type GeneratorConfig struct {
	ParticleCount int       `yaml:"particle_count" validate:"gte=0"`
	CellCount     int       `yaml:"cell_count" validate:"gte=0"`
	Periodic      bool      `yaml:"periodic"`
	Radius        float64   `yaml:"radius" validate:"gte=0"`
	Radii         []float64 `yaml:"radii" validate:"dive,gte=0"`
	Seed          int64     `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		ParticlesFile: DefaultParticlesFile,
		Render: RenderConfig{
			Title:  DefaultTitle,
			Output: DefaultOutput,
			DPI:    DefaultDPI,
			Size:   DefaultSize,
			Viewer: DefaultViewer,
			Theme:  DefaultTheme,
		},
		Generator: GeneratorConfig{
			Radius: DefaultRadius,
		},
	}
}

// Load reads a configuration file. Files ending in .yaml or .yml are decoded
// as YAML; anything else is read in the legacy line-oriented input format.
func Load(path string) (*Config, error) {
	if IsYAML(path) {
		return LoadYAML(path)
	}
	return LoadLegacy(path)
}

func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParticleRadii returns the radius of every particle the generator should create.
func (g GeneratorConfig) ParticleRadii() []float64 {
	if len(g.Radii) > 0 {
		return append([]float64(nil), g.Radii...)
	}
	radii := make([]float64, g.ParticleCount)
	for i := range radii {
		radii[i] = g.Radius
	}
	return radii
}
