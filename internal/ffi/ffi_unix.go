//go:build !windows

package ffi

import (
	"github.com/ebitengine/purego"
)

// cLong mirrors C long, which is 64 bits on LP64 Unix targets.
type cLong = int64

// openLibrary loads a dynamic library on Unix-like systems
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

// getSymbol retrieves a symbol from the loaded library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
