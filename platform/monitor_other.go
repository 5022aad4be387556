//go:build !windows

package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// Full-screen exclusive handles only exist on Windows.
func monitorHandle(_ *glfw.Monitor) uintptr {
	return 0
}
