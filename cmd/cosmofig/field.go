package main

import (
	"github.com/ecisneros/cosmofig/internal/config"
	"github.com/ecisneros/cosmofig/internal/figures"
	"github.com/ecisneros/cosmofig/internal/storage"
	"github.com/ecisneros/cosmofig/internal/valley"
)

// Stored runs keep only the sampled grid; overlays and provenance for
// re-display use the published attractor parameters.
func attractorForRun() *valley.Attractor {
	return valley.NewAttractor()
}

func valleyCurve(a *valley.Attractor) []valley.CurvePoint {
	return valley.ValleyCurve(a, a.ValleyCenter, 0.3, 4.0, 100)
}

// resolveField loads a stored run when an id is given, otherwise
// evaluates a fresh surface from the active config.
func resolveField(cfg *config.Config, args []string) (*valley.Field, *valley.Attractor, int64, error) {
	if len(args) == 0 {
		field, attractor, err := figures.EvaluateValley(cfg.Valley, cfg.Seed)
		return field, attractor, cfg.Seed, err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return nil, nil, 0, err
	}
	field, err := st.LoadField(args[0])
	if err != nil {
		return nil, nil, 0, err
	}
	return field, attractorForRun(), meta.Seed, nil
}
