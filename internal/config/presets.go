package config

// Presets are named starting points for common state points of the
// reduced LJ fluid.
var Presets = map[string]*Config{
	"liquid": {
		Particles: 500, BoxLength: 8.55, Cutoff: 3.0,
		Epsilon: 1.0, Sigma: 1.0, Temperature: 0.9,
		Steps: 200000, MaxDisplacement: 0.1, AdjustEvery: 1000, SampleEvery: 100,
		Seed: 1, Replicas: 1, Init: Init{Method: "lattice"},
	},
	"dilute": {
		Particles: 125, BoxLength: 15.0, Cutoff: 3.0,
		Epsilon: 1.0, Sigma: 1.0, Temperature: 2.0,
		Steps: 100000, MaxDisplacement: 0.5, AdjustEvery: 1000, SampleEvery: 100,
		Seed: 1, Replicas: 1, Init: Init{Method: "random"},
	},
	"dense": {
		Particles: 800, BoxLength: 10.0, Cutoff: 3.0,
		Epsilon: 1.0, Sigma: 1.0, Temperature: 0.85,
		Steps: 400000, MaxDisplacement: 0.05, AdjustEvery: 2000, SampleEvery: 200,
		Seed: 1, Replicas: 1, Init: Init{Method: "lattice"},
	},
	"quick": {
		Particles: 64, BoxLength: 6.8, Cutoff: 3.0,
		Epsilon: 1.0, Sigma: 1.0, Temperature: 1.0,
		Steps: 10000, MaxDisplacement: 0.1, AdjustEvery: 500, SampleEvery: 50,
		Seed: 1, Replicas: 1, Init: Init{Method: "lattice"},
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
