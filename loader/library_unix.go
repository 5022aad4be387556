//go:build linux || freebsd || darwin

package loader

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func defaultCandidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
	}
	return []string{"libvulkan.so.1", "libvulkan.so"}
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
