// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Options holds every configuration knob the solver exposes externally.
// Defaults match the classic MiniSat reference values.
type Options struct {
	VarDecay    float64 `mapstructure:"var-decay"`
	ClaDecay    float64 `mapstructure:"cla-decay"`
	RndFreq     float64 `mapstructure:"rnd-freq"`
	RndSeed     int64   `mapstructure:"rnd-seed"`
	CCMinMode   int     `mapstructure:"ccmin-mode"`
	PhaseSaving int     `mapstructure:"phase-saving"`
	RndInit     bool    `mapstructure:"rnd-init"`
	Luby        bool    `mapstructure:"luby"`
	RFirst      int     `mapstructure:"rfirst"`
	RInc        float64 `mapstructure:"rinc"`
	GCFrac      float64 `mapstructure:"gc-frac"`
	Valid       bool    `mapstructure:"valid"`

	// LearntSizeFactor/Inc govern the max_learnts growth schedule in
	// search; defaults follow the classic MiniSat schedule the
	// restart/reduce code here is built around.
	LearntSizeFactor float64
	LearntSizeInc    float64

	// ConflictBudget/PropagationBudget are <0 for "infinite".
	ConflictBudget    int64
	PropagationBudget int64
}

// DefaultOptions returns the classic MiniSat reference defaults.
func DefaultOptions() Options {
	return Options{
		VarDecay:          0.95,
		ClaDecay:          0.999,
		RndFreq:           0,
		RndSeed:           91648253,
		CCMinMode:         0,
		PhaseSaving:       1,
		RndInit:           false,
		Luby:              true,
		RFirst:            100,
		RInc:              2,
		GCFrac:            0.20,
		Valid:             true,
		LearntSizeFactor:  1.0 / 3.0,
		LearntSizeInc:     1.1,
		ConflictBudget:    -1,
		PropagationBudget: -1,
	}
}

// OptionsFromMap decodes a loosely-typed configuration map (e.g. parsed
// from TOML/YAML/JSON by an external collaborator) onto the defaults,
// using mapstructure the way the rest of the pack hydrates option structs
// from map[string]interface{}.
func OptionsFromMap(m map[string]interface{}) (Options, error) {
	opts := DefaultOptions()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return opts, errors.Wrap(err, "xo: building options decoder")
	}
	if err := dec.Decode(m); err != nil {
		return opts, errors.Wrap(err, "xo: decoding options")
	}
	return opts, nil
}

// Validate checks the domain constraints each option must satisfy.
func (o Options) Validate() error {
	if o.VarDecay <= 0 || o.VarDecay >= 1 {
		return errors.Errorf("xo: var-decay must be in (0,1), got %v", o.VarDecay)
	}
	if o.ClaDecay <= 0 || o.ClaDecay >= 1 {
		return errors.Errorf("xo: cla-decay must be in (0,1), got %v", o.ClaDecay)
	}
	if o.RndFreq < 0 || o.RndFreq > 1 {
		return errors.Errorf("xo: rnd-freq must be in [0,1], got %v", o.RndFreq)
	}
	if o.RndSeed <= 0 {
		return errors.Errorf("xo: rnd-seed must be > 0, got %v", o.RndSeed)
	}
	if o.CCMinMode < 0 || o.CCMinMode > 2 {
		return errors.Errorf("xo: ccmin-mode must be in {0,1,2}, got %v", o.CCMinMode)
	}
	if o.PhaseSaving < 0 || o.PhaseSaving > 2 {
		return errors.Errorf("xo: phase-saving must be in {0,1,2}, got %v", o.PhaseSaving)
	}
	if o.RFirst < 1 {
		return errors.Errorf("xo: rfirst must be >= 1, got %v", o.RFirst)
	}
	if o.RInc <= 1 {
		return errors.Errorf("xo: rinc must be > 1, got %v", o.RInc)
	}
	if o.GCFrac <= 0 {
		return errors.Errorf("xo: gc-frac must be > 0, got %v", o.GCFrac)
	}
	return nil
}

// restartBase computes rest_base for the k'th restart; Solve multiplies it
// by rfirst to get search's next restart interval.
func (o Options) restartBase(k int) float64 {
	if o.Luby {
		return lubySeq(o.RInc, k)
	}
	base := 1.0
	for i := 0; i < k; i++ {
		base *= o.RInc
	}
	return base
}
