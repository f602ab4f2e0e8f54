package config

// Presets bundle the sampling densities used at different stages of
// manuscript preparation. Figure parameters themselves stay at the
// published values unless overridden in a config file.
var Presets = map[string]*Config{
	"paper": DefaultConfig(),
	"draft": {
		OutputDir: DefaultOutputDir,
		Formats:   []string{"png"},
		Seed:      DefaultSeed,
		EOS: EOSConfig{
			Omega: 2.5, Delta: 0.0, ZTau: 2.0, ZMax: 2.5,
			Samples:    120,
			Amplitudes: []float64{0.0, 0.01, 0.02, 0.03},
		},
		Cutoff: CutoffConfig{
			Center: 4.0, Width: 0.5, Variants: []float64{3.0, 5.0},
			ZMax: 10.0, Samples: 120,
		},
		Valley: ValleyConfig{
			TauMin: 0.2, TauMax: 5.0, OmegaMin: 0.5, OmegaMax: 5.5,
			GridSize: 32, Amplitude: 0.02,
		},
	},
	"poster": {
		OutputDir: DefaultOutputDir,
		Formats:   []string{"pdf", "png"},
		Seed:      DefaultSeed,
		EOS: EOSConfig{
			Omega: 2.5, Delta: 0.0, ZTau: 2.0, ZMax: 2.5,
			Samples:    1000,
			Amplitudes: []float64{0.0, 0.01, 0.02, 0.03},
		},
		Cutoff: CutoffConfig{
			Center: 4.0, Width: 0.5, Variants: []float64{3.0, 5.0},
			ZMax: 10.0, Samples: 1000,
		},
		Valley: ValleyConfig{
			TauMin: 0.2, TauMax: 5.0, OmegaMin: 0.5, OmegaMax: 5.5,
			GridSize: 160, Amplitude: 0.02,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
