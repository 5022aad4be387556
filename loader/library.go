package loader

import (
	"fmt"

	"github.com/spaghettifunk/vulkanite/core"
)

// Library is a loaded native Vulkan library. It implements Resolver.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the native library. An empty path walks the platform's default
// candidates (driver name differs per OS); a non-empty path is used verbatim,
// which is how a config override points at a specific ICD build.
func Open(path string) (*Library, error) {
	candidates := defaultCandidates()
	if path != "" {
		candidates = []string{path}
	}

	var firstErr error
	for _, candidate := range candidates {
		handle, err := openLibrary(candidate)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		core.LogDebug("loaded native library %s", candidate)
		return &Library{handle: handle, path: candidate}, nil
	}
	return nil, fmt.Errorf("vulkan library not found (tried %v): %w", candidates, firstErr)
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Resolve looks up a named entry point.
func (l *Library) Resolve(name string) (Proc, error) {
	addr, err := resolveSymbol(l.handle, name)
	if err != nil || addr == 0 {
		return Proc{}, &SymbolNotFoundError{Name: name, Err: err}
	}
	return ProcFromAddr(name, addr), nil
}

// Close unloads the library. Resolved Procs must not be called afterwards.
func (l *Library) Close() error {
	return closeLibrary(l.handle)
}
