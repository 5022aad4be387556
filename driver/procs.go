package driver

import (
	"fmt"

	"github.com/spaghettifunk/vulkanite/extension"
	"github.com/spaghettifunk/vulkanite/loader"
)

// Per-scope entry-point tables. A table is built exactly once, right after
// the owning scope object is created, and is never mutated afterwards.
// Extension tables are nil unless the extension was part of the negotiated
// set; reaching for a nil table is a contract violation, not a runtime error.

// SurfaceProcs is the VK_KHR_surface entry-point table.
type SurfaceProcs struct {
	DestroySurface                       loader.Proc
	GetPhysicalDeviceSurfaceSupport      loader.Proc
	GetPhysicalDeviceSurfaceCapabilities loader.Proc
	GetPhysicalDeviceSurfaceFormats      loader.Proc
	GetPhysicalDeviceSurfacePresentModes loader.Proc
}

// DebugReportProcs is the VK_EXT_debug_report entry-point table.
type DebugReportProcs struct {
	CreateDebugReportCallback  loader.Proc
	DestroyDebugReportCallback loader.Proc
	DebugReportMessage         loader.Proc
}

// Properties2Procs is the VK_KHR_get_physical_device_properties2 table.
type Properties2Procs struct {
	GetPhysicalDeviceFeatures2   loader.Proc
	GetPhysicalDeviceProperties2 loader.Proc
}

// InstanceProcs holds the instance-scope entry points.
type InstanceProcs struct {
	DestroyInstance                    loader.Proc
	EnumeratePhysicalDevices           loader.Proc
	GetPhysicalDeviceProperties        loader.Proc
	GetPhysicalDeviceFeatures          loader.Proc
	EnumerateDeviceExtensionProperties loader.Proc
	CreateDevice                       loader.Proc

	Surface     *SurfaceProcs
	DebugReport *DebugReportProcs
	Properties2 *Properties2Procs
}

// SwapchainProcs is the VK_KHR_swapchain entry-point table.
type SwapchainProcs struct {
	CreateSwapchain    loader.Proc
	DestroySwapchain   loader.Proc
	GetSwapchainImages loader.Proc
	AcquireNextImage   loader.Proc
	QueuePresent       loader.Proc
}

// DisplaySwapchainProcs is the VK_KHR_display_swapchain table.
type DisplaySwapchainProcs struct {
	CreateSharedSwapchains loader.Proc
}

// DeviceProcs holds the device-scope entry points.
type DeviceProcs struct {
	DestroyDevice  loader.Proc
	GetDeviceQueue loader.Proc
	DeviceWaitIdle loader.Proc

	Swapchain        *SwapchainProcs
	DisplaySwapchain *DisplaySwapchainProcs
}

// procLoader accumulates the first resolution failure so tables read as a
// flat list of assignments.
type procLoader struct {
	resolver loader.Resolver
	err      error
}

func (pl *procLoader) proc(name string) loader.Proc {
	if pl.err != nil {
		return loader.Proc{}
	}
	p, err := pl.resolver.Resolve(name)
	if err != nil {
		pl.err = err
		return loader.Proc{}
	}
	return p
}

func loadInstanceProcs(r loader.Resolver, extensions *extension.Set) (*InstanceProcs, error) {
	pl := &procLoader{resolver: r}
	procs := &InstanceProcs{
		DestroyInstance:                    pl.proc("vkDestroyInstance"),
		EnumeratePhysicalDevices:           pl.proc("vkEnumeratePhysicalDevices"),
		GetPhysicalDeviceProperties:        pl.proc("vkGetPhysicalDeviceProperties"),
		GetPhysicalDeviceFeatures:          pl.proc("vkGetPhysicalDeviceFeatures"),
		EnumerateDeviceExtensionProperties: pl.proc("vkEnumerateDeviceExtensionProperties"),
		CreateDevice:                       pl.proc("vkCreateDevice"),
	}

	if extensions.Has(extension.KhrSurface) {
		procs.Surface = &SurfaceProcs{
			DestroySurface:                       pl.proc("vkDestroySurfaceKHR"),
			GetPhysicalDeviceSurfaceSupport:      pl.proc("vkGetPhysicalDeviceSurfaceSupportKHR"),
			GetPhysicalDeviceSurfaceCapabilities: pl.proc("vkGetPhysicalDeviceSurfaceCapabilitiesKHR"),
			GetPhysicalDeviceSurfaceFormats:      pl.proc("vkGetPhysicalDeviceSurfaceFormatsKHR"),
			GetPhysicalDeviceSurfacePresentModes: pl.proc("vkGetPhysicalDeviceSurfacePresentModesKHR"),
		}
	}

	if extensions.Has(extension.ExtDebugReport) {
		procs.DebugReport = &DebugReportProcs{
			CreateDebugReportCallback:  pl.proc("vkCreateDebugReportCallbackEXT"),
			DestroyDebugReportCallback: pl.proc("vkDestroyDebugReportCallbackEXT"),
			DebugReportMessage:         pl.proc("vkDebugReportMessageEXT"),
		}
	}

	if extensions.Has(extension.KhrGetPhysicalDeviceProperties2) {
		procs.Properties2 = &Properties2Procs{
			GetPhysicalDeviceFeatures2:   pl.proc("vkGetPhysicalDeviceFeatures2KHR"),
			GetPhysicalDeviceProperties2: pl.proc("vkGetPhysicalDeviceProperties2KHR"),
		}
	}

	return procs, pl.err
}

func loadDeviceProcs(r loader.Resolver, extensions *extension.Set) (*DeviceProcs, error) {
	pl := &procLoader{resolver: r}
	procs := &DeviceProcs{
		DestroyDevice:  pl.proc("vkDestroyDevice"),
		GetDeviceQueue: pl.proc("vkGetDeviceQueue"),
		DeviceWaitIdle: pl.proc("vkDeviceWaitIdle"),
	}

	if extensions.Has(extension.KhrSwapchain) {
		procs.Swapchain = &SwapchainProcs{
			CreateSwapchain:    pl.proc("vkCreateSwapchainKHR"),
			DestroySwapchain:   pl.proc("vkDestroySwapchainKHR"),
			GetSwapchainImages: pl.proc("vkGetSwapchainImagesKHR"),
			AcquireNextImage:   pl.proc("vkAcquireNextImageKHR"),
			QueuePresent:       pl.proc("vkQueuePresentKHR"),
		}
	}

	if extensions.Has(extension.KhrDisplaySwapchain) {
		procs.DisplaySwapchain = &DisplaySwapchainProcs{
			CreateSharedSwapchains: pl.proc("vkCreateSharedSwapchainsKHR"),
		}
	}

	return procs, pl.err
}

func (p *InstanceProcs) surface() *SurfaceProcs {
	if p.Surface == nil {
		panic(fmt.Sprintf("vulkanite: %s was not requested for this instance", extension.KhrSurface))
	}
	return p.Surface
}

func (p *InstanceProcs) debugReport() *DebugReportProcs {
	if p.DebugReport == nil {
		panic(fmt.Sprintf("vulkanite: %s was not requested for this instance", extension.ExtDebugReport))
	}
	return p.DebugReport
}

func (p *InstanceProcs) properties2() *Properties2Procs {
	if p.Properties2 == nil {
		panic(fmt.Sprintf("vulkanite: %s was not requested for this instance", extension.KhrGetPhysicalDeviceProperties2))
	}
	return p.Properties2
}

func (p *DeviceProcs) swapchain() *SwapchainProcs {
	if p.Swapchain == nil {
		panic(fmt.Sprintf("vulkanite: %s was not requested for this device", extension.KhrSwapchain))
	}
	return p.Swapchain
}
