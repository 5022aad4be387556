package driver

import (
	"runtime"
	"unsafe"

	"github.com/spaghettifunk/vulkanite/chain"
	"github.com/spaghettifunk/vulkanite/extension"
)

// PhysicalDevice is enumerated from an instance and destroyed implicitly with
// it. It carries no reference count of its own; keep the instance alive while
// using it.
type PhysicalDevice struct {
	raw      uintptr
	instance *instanceHandle
}

// Handle returns the native physical device handle.
func (pd PhysicalDevice) Handle() uintptr {
	return pd.raw
}

// EnumerateExtensionProperties queries the device-level extensions this
// physical device supports, used to negotiate before CreateDevice.
func (pd PhysicalDevice) EnumerateExtensionProperties() (*extension.Properties, error) {
	proc := pd.instance.procs.EnumerateDeviceExtensionProperties

	var count uint32
	if err := Result(proc.Call(pd.raw, 0, uintptr(unsafe.Pointer(&count)), 0)).Err(); err != nil {
		return nil, err
	}

	props := extension.NewProperties()
	if count == 0 {
		return props, nil
	}

	buf := make([]rawExtensionProperties, count)
	if err := Result(proc.Call(pd.raw, 0, uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&buf[0])))).Err(); err != nil {
		return nil, err
	}
	for i := range buf[:count] {
		props.AddNamed(cToString(buf[i].ExtensionName[:]), buf[i].SpecVersion)
	}
	runtime.KeepAlive(buf)
	return props, nil
}

// Features2 fills the selected feature blocks through a features2 query
// chain (VK_KHR_get_physical_device_properties2). The instance must have
// been created with that extension; otherwise this is a contract violation.
func (pd PhysicalDevice) Features2(query *chain.QueryChain) *chain.Chain {
	procs := pd.instance.procs.properties2()

	head, arena := chain.EncodeQuery(query)
	raw := rawPhysicalDeviceFeatures2{
		SType: chain.StructureTypePhysicalDeviceFeatures2,
		Next:  head,
	}
	procs.GetPhysicalDeviceFeatures2.Call(pd.raw, uintptr(unsafe.Pointer(&raw)))
	filled := chain.Decode(head)
	runtime.KeepAlive(arena)
	return filled
}

// SurfaceSupport asks whether the queue family can present to the surface
// (VK_KHR_surface).
func (pd PhysicalDevice) SurfaceSupport(queueFamilyIndex uint32, surface uintptr) (bool, error) {
	procs := pd.instance.procs.surface()

	var supported chain.Bool32
	if err := Result(procs.GetPhysicalDeviceSurfaceSupport.Call(pd.raw, uintptr(queueFamilyIndex), surface, uintptr(unsafe.Pointer(&supported)))).Err(); err != nil {
		return false, err
	}
	return supported != 0, nil
}
