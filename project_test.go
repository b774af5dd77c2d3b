package epanet

import (
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestProject(t *testing.T, f *fakeEngine) *Project {
	t.Helper()
	p, err := NewProject(withEngine(f))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestNewProject(t *testing.T) {
	f := newFakeEngine()
	p, err := NewProject(withEngine(f))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID())
	assert.False(t, p.Closed())
	assert.Equal(t, 1, f.created)

	require.NoError(t, p.Close())
	assert.True(t, p.Closed())
}

func TestNewProjectCreateFails(t *testing.T) {
	f := newFakeEngine()
	f.createCode = 101

	p, err := NewProject(withEngine(f))
	require.Error(t, err)
	assert.Nil(t, p)

	code, ok := ErrorCode(err)
	require.True(t, ok)
	assert.Equal(t, 101, code)
	assert.Contains(t, err.Error(), "insufficient memory available")
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	tests := []struct {
		name       string
		open       bool
		wantClosed int // EN_close calls
	}{
		{name: "never opened", open: false, wantClosed: 0},
		{name: "opened", open: true, wantClosed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeEngine()
			p, err := NewProject(withEngine(f))
			require.NoError(t, err)
			ph := p.h.ph

			if tt.open {
				require.NoError(t, p.Open("net.inp", "net.rpt", ""))
			}

			require.NoError(t, p.Close())
			require.NoError(t, p.Close())
			require.NoError(t, p.Close())

			closed, deleted := f.releaseCounts(ph)
			assert.Equal(t, tt.wantClosed, closed)
			assert.Equal(t, 1, deleted)
		})
	}
}

func TestConcurrentCloseReleasesOnce(t *testing.T) {
	f := newFakeEngine()
	p, err := NewProject(withEngine(f))
	require.NoError(t, err)
	ph := p.h.ph
	require.NoError(t, p.Open("net.inp", "net.rpt", ""))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Close())
		}()
	}
	wg.Wait()

	closed, deleted := f.releaseCounts(ph)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, deleted)
}

func TestOpenProjectFailureReleasesHandle(t *testing.T) {
	f := newFakeEngine()
	f.openCode = 302

	p, err := OpenProject("missing.inp", "missing.rpt", "", withEngine(f))
	require.Error(t, err)
	assert.Nil(t, p)

	var tkErr *Error
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, 302, tkErr.Code)
	assert.Equal(t, "open", tkErr.Op)
	assert.Equal(t, "cannot open input file", tkErr.Message)
	assert.False(t, tkErr.Warning())

	_, deleted := f.releaseCounts(1)
	assert.Equal(t, 1, deleted)
}

func TestOpenProjectKeepsWarnings(t *testing.T) {
	f := newFakeEngine()
	f.openCode = 2

	p, err := OpenProject("net.inp", "net.rpt", "", withEngine(f))
	require.Error(t, err)
	require.True(t, IsWarning(err))
	require.NotNil(t, p)
	defer p.Close()

	code, _ := ErrorCode(err)
	assert.Equal(t, 2, code)
	assert.False(t, p.Closed())

	// The project counts as opened, so Close also closes it.
	ph := p.h.ph
	require.NoError(t, p.Close())
	closed, deleted := f.releaseCounts(ph)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, deleted)
}

func TestInitProjectKeepsWarnings(t *testing.T) {
	f := newFakeEngine()
	f.initCode = 6

	p, err := InitProject("", "", LPS, DarcyWeisbach, withEngine(f))
	require.Error(t, err)
	require.True(t, IsWarning(err))
	require.NotNil(t, p)
	defer p.Close()

	assert.False(t, p.Closed())
	_, deleted := f.releaseCounts(p.h.ph)
	assert.Equal(t, 0, deleted)
}

func TestInitProjectFailureReleasesHandle(t *testing.T) {
	f := newFakeEngine()
	f.initCode = 251

	p, err := InitProject("", "", LPS, DarcyWeisbach, withEngine(f))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.False(t, IsWarning(err))

	closed, deleted := f.releaseCounts(1)
	assert.Equal(t, 0, closed)
	assert.Equal(t, 1, deleted)
}

func TestInitProject(t *testing.T) {
	f := newFakeEngine()
	p, err := InitProject("", "", GPM, HazenWilliams, withEngine(f))
	require.NoError(t, err)
	ph := p.h.ph

	require.NoError(t, p.Close())
	closed, deleted := f.releaseCounts(ph)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, deleted)
}

func TestClosedProjectReturnsErrClosed(t *testing.T) {
	f := newFakeEngine()
	p, err := NewProject(withEngine(f))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	before := f.callCount()

	ops := map[string]func() error{
		"Open":        func() error { return p.Open("a.inp", "a.rpt", "") },
		"Init":        func() error { return p.Init("", "", LPS, DarcyWeisbach) },
		"RunProject":  func() error { return p.RunProject("a.inp", "a.rpt", "", nil) },
		"SolveH":      p.SolveH,
		"OpenQ":       p.OpenQ,
		"Report":      p.Report,
		"SetTitle":    func() error { return p.SetTitle("a", "b", "c") },
		"AddNode":     func() error { _, err := p.AddNode("J1", Junction); return err },
		"NodeValue":   func() error { _, err := p.NodeValue(1, NodePressure); return err },
		"NodeValues":  func() error { _, err := p.NodeValues(NodeHead); return err },
		"LinkNodes":   func() error { _, _, err := p.LinkNodes(1); return err },
		"AddPattern":  func() error { _, err := p.AddPattern("P1"); return err },
		"CurveByID":   func() error { _, err := p.CurveByID("C1"); return err },
		"Control":     func() error { _, err := p.Control(1); return err },
		"Rule":        func() error { _, err := p.Rule(1); return err },
		"QualityType": func() error { _, _, err := p.QualityType(); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(), ErrClosed)
		})
	}

	assert.Equal(t, before, f.callCount(), "closed project must not reach the toolkit")
}

func TestInvalidStringIsRejected(t *testing.T) {
	f := newFakeEngine()
	p := newTestProject(t, f)
	before := f.callCount()

	_, err := p.AddNode("J\x001", Junction)
	assert.ErrorIs(t, err, ErrInvalidString)

	err = p.Open("net\x00.inp", "", "")
	assert.ErrorIs(t, err, ErrInvalidString)

	err = p.SetTitle("ok", "also ok", "not\x00ok")
	assert.ErrorIs(t, err, ErrInvalidString)

	assert.Equal(t, before, f.callCount())
}

func TestToolkitMessagePreferred(t *testing.T) {
	f := newFakeEngine()
	f.messages[203] = "Error 203: function call refers to undefined node."
	p := newTestProject(t, f)

	_, err := p.NodeID(9)
	require.Error(t, err)

	var tkErr *Error
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, 203, tkErr.Code)
	assert.Equal(t, "get node id", tkErr.Op)
	assert.Equal(t, "Error 203: function call refers to undefined node.", tkErr.Message)
	assert.ErrorIs(t, err, &Error{Code: 203})
}

func TestConcurrentCallsAreSerialized(t *testing.T) {
	f := newFakeEngine()
	p := newTestProject(t, f)

	idx, err := p.AddNode("J1", Junction)
	require.NoError(t, err)
	require.NoError(t, p.SetNodeValue(idx, NodeElevation, 12.5))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				v, err := p.NodeValue(idx, NodeElevation)
				if !assert.NoError(t, err) {
					return
				}
				assert.InDelta(t, 12.5, v, 1e-9)
			}
		}()
	}
	wg.Wait()

	assert.False(t, f.overlap.Load(), "toolkit was entered concurrently on one handle")
}

func TestDistinctProjectsAreIndependent(t *testing.T) {
	a := newTestProject(t, newFakeEngine())
	b := newTestProject(t, newFakeEngine())

	_, err := a.AddNode("J1", Junction)
	require.NoError(t, err)

	n, err := b.Count(NodeCount)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, a.Close())
	_, err = b.AddNode("J1", Junction)
	assert.NoError(t, err)
}

func TestLeakedProjectIsReleased(t *testing.T) {
	f := newFakeEngine()
	core, logs := observer.New(zap.WarnLevel)

	func() {
		p, err := NewProject(withEngine(f), WithLogger(zap.New(core)))
		require.NoError(t, err)
		require.NoError(t, p.Open("net.inp", "net.rpt", ""))
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		_, deleted := f.releaseCounts(1)
		return deleted == 1
	}, 5*time.Second, 10*time.Millisecond)

	closed, _ := f.releaseCounts(1)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, logs.FilterMessage("project was not closed; releasing native handle").Len())
}

func TestClosedProjectIsNotReleasedAgainByGC(t *testing.T) {
	f := newFakeEngine()

	func() {
		p, err := NewProject(withEngine(f))
		require.NoError(t, err)
		require.NoError(t, p.Close())
	}()

	for range 5 {
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}

	_, deleted := f.releaseCounts(1)
	assert.Equal(t, 1, deleted)
}

func TestProjectLogsWithID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p, err := NewProject(withEngine(newFakeEngine()), WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	entries := logs.FilterMessage("project created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, p.ID(), entries[0].ContextMap()["project"])
	assert.Equal(t, 1, logs.FilterMessage("project closed").Len())
}

func TestTitleRoundTrip(t *testing.T) {
	p := newTestProject(t, newFakeEngine())

	require.NoError(t, p.SetTitle("Net", "test network", ""))
	title, err := p.Title()
	require.NoError(t, err)
	assert.Equal(t, [3]string{"Net", "test network", ""}, title)
}

func TestRunProjectProgress(t *testing.T) {
	f := newFakeEngine()
	p := newTestProject(t, f)

	var msgs []string
	err := p.RunProject("net.inp", "net.rpt", "net.out", func(msg string) {
		msgs = append(msgs, msg)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Solving hydraulics", "Solving quality"}, msgs)

	ph := p.h.ph
	require.NoError(t, p.Close())
	closed, _ := f.releaseCounts(ph)
	assert.Equal(t, 1, closed)
}

func TestVersion(t *testing.T) {
	p := newTestProject(t, newFakeEngine())
	v, err := p.Version()
	require.NoError(t, err)
	assert.Equal(t, 20300, v)
}

func TestCountUnknownType(t *testing.T) {
	p := newTestProject(t, newFakeEngine())
	_, err := p.Count(CountType(42))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrClosed))
	code, _ := ErrorCode(err)
	assert.Equal(t, 251, code)
}
