package epanet

import (
	"context"
	"errors"
	"time"
)

// SolveQ runs a complete water quality simulation using hydraulics from a
// prior SolveH or UseHydFile.
func (p *Project) SolveQ() error {
	return p.call("solve quality", func(eng engine, ph uintptr) int32 {
		return eng.SolveQ(ph)
	})
}

func (p *Project) OpenQ() error {
	return p.call("open quality", func(eng engine, ph uintptr) int32 {
		return eng.OpenQ(ph)
	})
}

// InitQ initializes a water quality analysis. Pass Save to write results to
// the binary output file for later reporting.
func (p *Project) InitQ(opt InitHydOption) error {
	return p.call("init quality", func(eng engine, ph uintptr) int32 {
		return eng.InitQ(ph, int32(opt))
	})
}

// RunQ makes hydraulic and quality results available at the start of the next
// time period and returns that time.
func (p *Project) RunQ() (time.Duration, error) {
	t, err := get(p, "run quality", func(eng engine, ph uintptr) (int64, int32) {
		return eng.RunQ(ph)
	})
	return seconds(t), err
}

// NextQ advances the quality simulation to the start of the next hydraulic
// period and returns the step taken. A zero step means the simulation is over.
func (p *Project) NextQ() (time.Duration, error) {
	t, err := get(p, "next quality", func(eng engine, ph uintptr) (int64, int32) {
		return eng.NextQ(ph)
	})
	return seconds(t), err
}

// StepQ advances the quality simulation by a single quality time step and
// returns the simulation time left.
func (p *Project) StepQ() (time.Duration, error) {
	t, err := get(p, "step quality", func(eng engine, ph uintptr) (int64, int32) {
		return eng.StepQ(ph)
	})
	return seconds(t), err
}

func (p *Project) CloseQ() error {
	return p.call("close quality", func(eng engine, ph uintptr) int32 {
		return eng.CloseQ(ph)
	})
}

// RunQuality performs a step-by-step water quality analysis over hydraulics
// that were already computed (SolveH or UseHydFile). fn is called after each
// period with the current simulation time; see RunHydraulics for the locking
// and warning rules.
func (p *Project) RunQuality(ctx context.Context, opt InitHydOption, fn func(t time.Duration) error) (err error) {
	if err := p.OpenQ(); err != nil {
		return err
	}
	defer func() {
		if cerr := p.CloseQ(); cerr != nil && !IsWarning(cerr) {
			err = errors.Join(err, cerr)
		}
	}()

	var w warnings
	if err := w.keep(p.InitQ(opt)); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := p.RunQ()
		if err := w.keep(err); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(t); err != nil {
				return err
			}
		}
		step, err := p.NextQ()
		if err := w.keep(err); err != nil {
			return err
		}
		if step <= 0 {
			return w.first
		}
	}
}
