// Package epanet is a Go binding for the EPANET water distribution toolkit.
//
// The toolkit itself (libepanet2) is loaded at run time without cgo. All
// hydraulic and water quality computation happens in the native library;
// this package maps its functions onto typed Go methods and manages the
// lifetime of the native project handle.
//
// A Project owns exactly one native handle:
//
//	p, err := epanet.OpenProject("net1.inp", "net1.rpt", "")
//	if err != nil {
//		return err
//	}
//	defer p.Close()
//
//	if err := p.SolveH(); err != nil {
//		return err
//	}
//	pressure, err := p.NodeValue(1, epanet.NodePressure)
//
// Close releases the handle exactly once. After Close every method returns
// ErrClosed. A Project may be shared between goroutines; calls on the same
// project are serialized, distinct projects run in parallel.
//
// Indices are 1-based, as in the toolkit. Non-zero toolkit status codes are
// returned as *Error; codes below 100 are warnings (see IsWarning).
//
// The library is looked up in EPANET_LIB_PATH, next to the executable and in
// a few conventional build directories, then by its bare name. Call
// LoadLibrary to choose a path explicitly.
package epanet
