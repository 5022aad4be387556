// Package loader resolves named entry points from the native library at
// runtime. It is invoked only while a scope object loads its function tables.
package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Resolver resolves a named entry point from a loaded native library.
type Resolver interface {
	Resolve(name string) (Proc, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Proc, error)

func (f ResolverFunc) Resolve(name string) (Proc, error) {
	return f(name)
}

// SymbolNotFoundError reports that a required entry point could not be
// resolved. It is fatal to the construction of the owning scope object.
type SymbolNotFoundError struct {
	Name string
	Err  error
}

func (e *SymbolNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("symbol %q not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("symbol %q not found", e.Name)
}

func (e *SymbolNotFoundError) Unwrap() error {
	return e.Err
}

// Proc is one resolved entry point. The zero Proc is unresolved; calling it
// is a programming-contract violation and panics rather than dereferencing
// an unset pointer.
type Proc struct {
	name string
	fn   func(args ...uintptr) uintptr
}

// NewProc wraps an entry point with an explicit dispatch function.
func NewProc(name string, fn func(args ...uintptr) uintptr) Proc {
	return Proc{name: name, fn: fn}
}

// ProcFromAddr wraps a raw native address.
func ProcFromAddr(name string, addr uintptr) Proc {
	if addr == 0 {
		return Proc{name: name}
	}
	return Proc{
		name: name,
		fn: func(args ...uintptr) uintptr {
			r1, _, _ := purego.SyscallN(addr, args...)
			return r1
		},
	}
}

func (p Proc) Name() string {
	return p.name
}

// Valid reports whether the entry point has been resolved.
func (p Proc) Valid() bool {
	return p.fn != nil
}

// Call invokes the entry point. It panics if the Proc was never resolved,
// which signals a broken capability contract in the caller.
func (p Proc) Call(args ...uintptr) uintptr {
	if p.fn == nil {
		name := p.name
		if name == "" {
			name = "<unnamed>"
		}
		panic(fmt.Sprintf("vulkanite: %s invoked but its capability was never loaded", name))
	}
	return p.fn(args...)
}
