package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir = "figures"
	DefaultSeed      = 42
	DefaultSamples   = 500
	DefaultGridSize  = 80
)

type Config struct {
	OutputDir string       `yaml:"output_dir"`
	Formats   []string     `yaml:"formats"`
	Seed      int64        `yaml:"seed"`
	EOS       EOSConfig    `yaml:"eos"`
	Cutoff    CutoffConfig `yaml:"cutoff"`
	Valley    ValleyConfig `yaml:"valley"`
}

type EOSConfig struct {
	Omega      float64   `yaml:"omega"`
	Delta      float64   `yaml:"delta"`
	ZTau       float64   `yaml:"z_tau"`
	ZMax       float64   `yaml:"z_max"`
	Samples    int       `yaml:"samples"`
	Amplitudes []float64 `yaml:"amplitudes"`
}

type CutoffConfig struct {
	Center   float64   `yaml:"center"`
	Width    float64   `yaml:"width"`
	Variants []float64 `yaml:"variants"` // alternative centers drawn dashed
	ZMax     float64   `yaml:"z_max"`
	Samples  int       `yaml:"samples"`
}

type ValleyConfig struct {
	TauMin    float64 `yaml:"tau_min"`
	TauMax    float64 `yaml:"tau_max"`
	OmegaMin  float64 `yaml:"omega_min"`
	OmegaMax  float64 `yaml:"omega_max"`
	GridSize  int     `yaml:"grid_size"`
	Amplitude float64 `yaml:"amplitude"`
}

// DefaultConfig reproduces the parameter literals of the published
// figures: 500-sample curves, an 80x80 grid, seed 42.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Formats:   []string{"pdf", "png"},
		Seed:      DefaultSeed,
		EOS: EOSConfig{
			Omega:      2.5,
			Delta:      0.0,
			ZTau:       2.0,
			ZMax:       2.5,
			Samples:    DefaultSamples,
			Amplitudes: []float64{0.0, 0.01, 0.02, 0.03},
		},
		Cutoff: CutoffConfig{
			Center:   4.0,
			Width:    0.5,
			Variants: []float64{3.0, 5.0},
			ZMax:     10.0,
			Samples:  DefaultSamples,
		},
		Valley: ValleyConfig{
			TauMin:    0.2,
			TauMax:    5.0,
			OmegaMin:  0.5,
			OmegaMax:  5.5,
			GridSize:  DefaultGridSize,
			Amplitude: 0.02,
		},
	}
}

func Load(path string) (*Config, error) {
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
