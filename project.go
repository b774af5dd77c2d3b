package epanet

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Project owns one native EPANET project handle.
//
// A Project is safe for concurrent use: every toolkit call on the handle is
// serialized. Independent projects share no state and may run in parallel.
// Close must be called to release the native handle; a project that becomes
// unreachable without Close is released by the garbage collector and a
// warning is logged.
type Project struct {
	mu      sync.Mutex
	h       *nativeHandle
	closed  bool
	id      string
	log     *zap.Logger
	cleanup runtime.Cleanup
}

// nativeHandle is the part of a project the leak cleanup needs. It must not
// point back at the Project.
type nativeHandle struct {
	eng    engine
	ph     uintptr
	opened bool
}

// release closes the project's files (if any) and deletes the handle.
func (h *nativeHandle) release() error {
	var errs []error
	if h.opened {
		if code := h.eng.Close(h.ph); code != 0 {
			errs = append(errs, opError(h.eng, "close", code))
		}
		h.opened = false
	}
	if code := h.eng.DeleteProject(h.ph); code != 0 {
		errs = append(errs, opError(h.eng, "delete project", code))
	}
	h.ph = 0
	return errors.Join(errs...)
}

type leakedProject struct {
	h   *nativeHandle
	log *zap.Logger
}

func releaseLeaked(l leakedProject) {
	l.log.Warn("project was not closed; releasing native handle")
	if err := l.h.release(); err != nil {
		l.log.Warn("release leaked project", zap.Error(err))
	}
}

// NewProject creates an empty project. Populate it with Open, Init or
// RunProject.
func NewProject(opts ...ProjectOption) (*Project, error) {
	cfg := buildConfig(opts)

	eng := cfg.eng
	if eng == nil {
		var err error
		if eng, err = loadEngine(); err != nil {
			return nil, err
		}
	}

	ph, code := eng.CreateProject()
	if code != 0 {
		return nil, opError(eng, "create project", code)
	}

	id := uuid.NewString()
	p := &Project{
		h:   &nativeHandle{eng: eng, ph: ph},
		id:  id,
		log: cfg.logger.With(zap.String("project", id)),
	}
	p.cleanup = runtime.AddCleanup(p, releaseLeaked, leakedProject{h: p.h, log: p.log})
	p.log.Debug("project created")
	return p, nil
}

// OpenProject creates a project and reads the network in inpFile. Report and
// binary output go to rptFile and outFile; outFile may be empty. If the input
// cannot be opened the native handle is released before returning. A warning
// is returned together with the open project.
func OpenProject(inpFile, rptFile, outFile string, opts ...ProjectOption) (*Project, error) {
	p, err := NewProject(opts...)
	if err != nil {
		return nil, err
	}
	err = p.Open(inpFile, rptFile, outFile)
	if err != nil && !IsWarning(err) {
		if cerr := p.Close(); cerr != nil {
			p.log.Warn("release project after failed open", zap.Error(cerr))
		}
		return nil, err
	}
	return p, err
}

// InitProject creates a project with an empty network that is built through
// the API rather than read from a file. Like OpenProject, a warning is
// returned together with the project.
func InitProject(rptFile, outFile string, units FlowUnits, headLoss HeadLossType, opts ...ProjectOption) (*Project, error) {
	p, err := NewProject(opts...)
	if err != nil {
		return nil, err
	}
	err = p.Init(rptFile, outFile, units, headLoss)
	if err != nil && !IsWarning(err) {
		if cerr := p.Close(); cerr != nil {
			p.log.Warn("release project after failed init", zap.Error(cerr))
		}
		return nil, err
	}
	return p, err
}

// ID returns the identifier this project logs under.
func (p *Project) ID() string {
	return p.id
}

// Open reads an input file into the project.
func (p *Project) Open(inpFile, rptFile, outFile string) error {
	if err := checkStrings(inpFile, rptFile, outFile); err != nil {
		return err
	}
	err := p.call("open", func(eng engine, ph uintptr) int32 {
		return eng.Open(ph, inpFile, rptFile, outFile)
	})
	p.markOpened(err)
	if err == nil {
		p.log.Debug("project opened", zap.String("inp", inpFile))
	}
	return err
}

// Init sets up an empty network with the given units and head loss formula.
func (p *Project) Init(rptFile, outFile string, units FlowUnits, headLoss HeadLossType) error {
	if err := checkStrings(rptFile, outFile); err != nil {
		return err
	}
	err := p.call("init", func(eng engine, ph uintptr) int32 {
		return eng.Init(ph, rptFile, outFile, int32(units), int32(headLoss))
	})
	p.markOpened(err)
	if err == nil {
		p.log.Debug("project initialized", zap.Stringer("units", units), zap.Stringer("headloss", headLoss))
	}
	return err
}

// markOpened records that the toolkit considers the project open, so that
// release knows to close it first.
func (p *Project) markOpened(err error) {
	if err != nil && !IsWarning(err) {
		return
	}
	p.mu.Lock()
	if !p.closed {
		p.h.opened = true
	}
	p.mu.Unlock()
}

// Close releases the native handle. It is safe to call more than once; only
// the first call does any work and later calls return nil.
func (p *Project) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.cleanup.Stop()

	err := p.h.release()
	if err != nil {
		p.log.Warn("project closed with errors", zap.Error(err))
	} else {
		p.log.Debug("project closed")
	}
	return err
}

// Closed reports whether Close has been called.
func (p *Project) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// RunProject reads inpFile, runs a complete hydraulic and water quality
// simulation and writes the report and binary output. progress, when not nil,
// receives the toolkit's progress messages. It runs while the project is
// locked and must not call back into the project.
func (p *Project) RunProject(inpFile, rptFile, outFile string, progress func(string)) error {
	if err := checkStrings(inpFile, rptFile, outFile); err != nil {
		return err
	}
	err := p.call("run project", func(eng engine, ph uintptr) int32 {
		return eng.RunProject(ph, inpFile, rptFile, outFile, progress)
	})
	p.markOpened(err)
	return err
}

// SaveInpFile writes the project's network to an input file.
func (p *Project) SaveInpFile(filename string) error {
	if err := checkStrings(filename); err != nil {
		return err
	}
	return p.call("save input file", func(eng engine, ph uintptr) int32 {
		return eng.SaveInpFile(ph, filename)
	})
}

// Title returns the three title lines.
func (p *Project) Title() ([3]string, error) {
	return get(p, "get title", func(eng engine, ph uintptr) ([3]string, int32) {
		return eng.Title(ph)
	})
}

// SetTitle replaces the three title lines. Each is truncated by the toolkit to
// MaxTitleSize characters.
func (p *Project) SetTitle(line1, line2, line3 string) error {
	if err := checkStrings(line1, line2, line3); err != nil {
		return err
	}
	return p.call("set title", func(eng engine, ph uintptr) int32 {
		return eng.SetTitle(ph, line1, line2, line3)
	})
}

// Comment returns the descriptive comment attached to an object.
func (p *Project) Comment(object ObjectType, index int) (string, error) {
	return get(p, "get comment", func(eng engine, ph uintptr) (string, int32) {
		return eng.Comment(ph, int32(object), int32(index))
	})
}

func (p *Project) SetComment(object ObjectType, index int, comment string) error {
	if err := checkStrings(comment); err != nil {
		return err
	}
	return p.call("set comment", func(eng engine, ph uintptr) int32 {
		return eng.SetComment(ph, int32(object), int32(index), comment)
	})
}

// Count returns the number of objects of a given type in the network.
func (p *Project) Count(object CountType) (int, error) {
	n, err := get(p, "get count", func(eng engine, ph uintptr) (int32, int32) {
		return eng.Count(ph, int32(object))
	})
	return int(n), err
}

// Version returns the version number of the toolkit driving this project.
func (p *Project) Version() (int, error) {
	v, err := get(p, "get version", func(eng engine, _ uintptr) (int32, int32) {
		return eng.Version()
	})
	return int(v), err
}

// call runs fn with the native handle while holding the project lock.
func (p *Project) call(op string, fn func(eng engine, ph uintptr) int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if code := fn(p.h.eng, p.h.ph); code != 0 {
		err := opError(p.h.eng, op, code)
		p.log.Debug("toolkit call failed", zap.String("op", op), zap.Int32("code", code))
		return err
	}
	return nil
}

// get is call for toolkit functions that produce a value. The value is kept
// when the toolkit reports only a warning.
func get[T any](p *Project, op string, fn func(eng engine, ph uintptr) (T, int32)) (T, error) {
	var v T
	err := p.call(op, func(eng engine, ph uintptr) (code int32) {
		v, code = fn(eng, ph)
		return code
	})
	if err != nil && !IsWarning(err) {
		var zero T
		return zero, err
	}
	return v, err
}

// checkStrings rejects strings that cannot cross into C.
func checkStrings(ss ...string) error {
	for _, s := range ss {
		if strings.IndexByte(s, 0) >= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidString, s)
		}
	}
	return nil
}
