// Package platform is the windowing collaborator. It owns the GLFW window
// and hands the binding the opaque handles certain feature blocks and
// surface calls consume; it never interprets them.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/vulkanite/core"
	"github.com/spaghettifunk/vulkanite/driver"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window
}

func New() (*Platform, error) {
	return &Platform{
		Window: nil,
	}, nil
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Required for Vulkan.

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		return err
	}
	p.Window = window
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// GetRequiredExtensionNames returns the instance extensions the windowing
// system needs for surface creation on this platform.
func (p *Platform) GetRequiredExtensionNames() []string {
	return p.Window.GetRequiredInstanceExtensions()
}

// CreateSurface creates a window surface on the instance and returns the
// opaque surface handle.
func (p *Platform) CreateSurface(instance *driver.Instance) (uintptr, error) {
	return p.Window.CreateWindowSurface(instance.Handle(), nil)
}

// PrimaryMonitorHandle returns the opaque native handle of the primary
// monitor, for feature blocks that target a specific display.
func (p *Platform) PrimaryMonitorHandle() uintptr {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return 0
	}
	return monitorHandle(monitor)
}
