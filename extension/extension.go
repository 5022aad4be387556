package extension

// Extension identifies an optional Vulkan feature this binding knows at
// compile time. Extensions discovered only at runtime are carried by name
// instead (see Set.AddNamed).
type Extension uint8

const (
	KhrSurface Extension = iota
	KhrSwapchain
	KhrDisplay
	KhrDisplaySwapchain
	KhrXlibSurface
	KhrWaylandSurface
	KhrWin32Surface
	KhrGetPhysicalDeviceProperties2
	ExtDebugReport
	ExtValidationFeatures
	ExtFullScreenExclusive

	extensionCount
)

// Scope says which kind of scope object an extension attaches to.
type Scope uint8

const (
	InstanceScope Scope = iota
	DeviceScope
)

type info struct {
	name  string
	scope Scope
}

// Registration names must match the Vulkan registry exactly, case-sensitive.
var registry = [extensionCount]info{
	KhrSurface:                      {"VK_KHR_surface", InstanceScope},
	KhrSwapchain:                    {"VK_KHR_swapchain", DeviceScope},
	KhrDisplay:                      {"VK_KHR_display", InstanceScope},
	KhrDisplaySwapchain:             {"VK_KHR_display_swapchain", DeviceScope},
	KhrXlibSurface:                  {"VK_KHR_xlib_surface", InstanceScope},
	KhrWaylandSurface:               {"VK_KHR_wayland_surface", InstanceScope},
	KhrWin32Surface:                 {"VK_KHR_win32_surface", InstanceScope},
	KhrGetPhysicalDeviceProperties2: {"VK_KHR_get_physical_device_properties2", InstanceScope},
	ExtDebugReport:                  {"VK_EXT_debug_report", InstanceScope},
	ExtValidationFeatures:           {"VK_EXT_validation_features", InstanceScope},
	ExtFullScreenExclusive:          {"VK_EXT_full_screen_exclusive", DeviceScope},
}

// Name returns the canonical Vulkan registration string.
func (e Extension) Name() string {
	if e >= extensionCount {
		return "VK_UNKNOWN"
	}
	return registry[e].name
}

// Scope reports whether the extension is instance- or device-level.
// Out-of-range values report InstanceScope, matching Name's sentinel.
func (e Extension) Scope() Scope {
	if e >= extensionCount {
		return InstanceScope
	}
	return registry[e].scope
}

func (e Extension) String() string {
	return e.Name()
}

// ByName resolves a registration string back to a known extension.
func ByName(name string) (Extension, bool) {
	for e := Extension(0); e < extensionCount; e++ {
		if registry[e].name == name {
			return e, true
		}
	}
	return extensionCount, false
}
