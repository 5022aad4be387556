//go:build windows

package loader

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func defaultCandidates() []string {
	candidates := []string{"vulkan-1.dll"}
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		candidates = append(candidates, filepath.Join(sdk, "Bin", "vulkan-1.dll"))
	}
	if root := os.Getenv("SystemRoot"); root != "" {
		candidates = append(candidates, filepath.Join(root, "System32", "vulkan-1.dll"))
	}
	return candidates
}

func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	return uintptr(handle), err
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
