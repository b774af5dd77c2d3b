package epanet

import (
	"context"
	"errors"
	"time"
)

// SolveH runs a complete hydraulic simulation, saving results to the
// project's scratch hydraulics file.
func (p *Project) SolveH() error {
	return p.call("solve hydraulics", func(eng engine, ph uintptr) int32 {
		return eng.SolveH(ph)
	})
}

// OpenH opens the hydraulic solver for step-by-step analysis.
func (p *Project) OpenH() error {
	return p.call("open hydraulics", func(eng engine, ph uintptr) int32 {
		return eng.OpenH(ph)
	})
}

// InitH initializes tank levels, link status and settings, and the simulation
// clock before a hydraulic analysis.
func (p *Project) InitH(opt InitHydOption) error {
	return p.call("init hydraulics", func(eng engine, ph uintptr) int32 {
		return eng.InitH(ph, int32(opt))
	})
}

// RunH computes a hydraulic solution for the current point in time and returns
// that time.
func (p *Project) RunH() (time.Duration, error) {
	t, err := get(p, "run hydraulics", func(eng engine, ph uintptr) (int64, int32) {
		return eng.RunH(ph)
	})
	return seconds(t), err
}

// NextH advances the simulation to the next hydraulic event and returns the
// length of the step taken. A zero step means the simulation is over.
func (p *Project) NextH() (time.Duration, error) {
	t, err := get(p, "next hydraulics", func(eng engine, ph uintptr) (int64, int32) {
		return eng.NextH(ph)
	})
	return seconds(t), err
}

// SaveH transfers the results of a hydraulic simulation to the binary output
// file so a report can be written.
func (p *Project) SaveH() error {
	return p.call("save hydraulics", func(eng engine, ph uintptr) int32 {
		return eng.SaveH(ph)
	})
}

// SaveHydFile copies the scratch hydraulics file to filename.
func (p *Project) SaveHydFile(filename string) error {
	if err := checkStrings(filename); err != nil {
		return err
	}
	return p.call("save hydraulics file", func(eng engine, ph uintptr) int32 {
		return eng.SaveHydFile(ph, filename)
	})
}

// UseHydFile uses a previously saved hydraulics file instead of solving.
func (p *Project) UseHydFile(filename string) error {
	if err := checkStrings(filename); err != nil {
		return err
	}
	return p.call("use hydraulics file", func(eng engine, ph uintptr) int32 {
		return eng.UseHydFile(ph, filename)
	})
}

// CloseH closes the hydraulic solver.
func (p *Project) CloseH() error {
	return p.call("close hydraulics", func(eng engine, ph uintptr) int32 {
		return eng.CloseH(ph)
	})
}

// RunHydraulics performs a step-by-step hydraulic analysis: it opens and
// initializes the solver, calls fn after each solved time step and closes the
// solver when the simulation ends, fn fails or ctx is done.
//
// fn runs without the project lock held, so it may query the project. Toolkit
// warnings do not stop the run; the first one is returned when the run
// otherwise succeeds.
func (p *Project) RunHydraulics(ctx context.Context, opt InitHydOption, fn func(t time.Duration) error) (err error) {
	if err := p.OpenH(); err != nil {
		return err
	}
	defer func() {
		if cerr := p.CloseH(); cerr != nil && !IsWarning(cerr) {
			err = errors.Join(err, cerr)
		}
	}()

	var w warnings
	if err := w.keep(p.InitH(opt)); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := p.RunH()
		if err := w.keep(err); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(t); err != nil {
				return err
			}
		}
		step, err := p.NextH()
		if err := w.keep(err); err != nil {
			return err
		}
		if step <= 0 {
			return w.first
		}
	}
}

// warnings absorbs toolkit warnings during a multi-step run and remembers the
// first one.
type warnings struct {
	first error
}

func (w *warnings) keep(err error) error {
	if err == nil || !IsWarning(err) {
		return err
	}
	if w.first == nil {
		w.first = err
	}
	return nil
}

func seconds(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
