//go:build windows

package platform

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func monitorHandle(m *glfw.Monitor) uintptr {
	return uintptr(unsafe.Pointer(m.GetWin32Monitor()))
}
