package driver

import (
	"unsafe"

	"github.com/spaghettifunk/vulkanite/chain"
)

// Raw structs mirror the native layouts bit-for-bit on 64-bit targets. They
// exist only for the handful of calls the core itself performs; per-call
// wrappers elsewhere bring their own.

const extensionNameSize = 256
const descriptionSize = 256

type rawApplicationInfo struct {
	SType              chain.StructureType
	Next               unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	APIVersion         uint32
}

type rawInstanceCreateInfo struct {
	SType                   chain.StructureType
	Next                    unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *rawApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

type rawDeviceQueueCreateInfo struct {
	SType            chain.StructureType
	Next             unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

type rawDeviceCreateInfo struct {
	SType                   chain.StructureType
	Next                    unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *rawDeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
	PEnabledFeatures        unsafe.Pointer
}

type rawExtensionProperties struct {
	ExtensionName [extensionNameSize]byte
	SpecVersion   uint32
}

type rawLayerProperties struct {
	LayerName             [extensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [descriptionSize]byte
}

// rawPhysicalDeviceFeatures matches VkPhysicalDeviceFeatures: 55 consecutive
// 32-bit booleans. The per-field wrappers are mechanical glue outside this
// core, so the block is kept opaque here.
type rawPhysicalDeviceFeatures struct {
	fields [55]chain.Bool32
}

type rawPhysicalDeviceFeatures2 struct {
	SType    chain.StructureType
	Next     unsafe.Pointer
	Features rawPhysicalDeviceFeatures
}

type rawDebugReportCallbackCreateInfo struct {
	SType       chain.StructureType
	Next        unsafe.Pointer
	Flags       chain.DebugReportFlags
	PfnCallback uintptr
	PUserData   uintptr
}

// cstr returns a null-terminated copy of s. Keep the result alive across the
// native call that consumes it.
func cstr(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// cstrArray marshals a string slice into null-terminated strings plus the
// pointer array the ABI expects. Both returned values must stay alive across
// the call.
func cstrArray(names []string) ([]*byte, **byte) {
	if len(names) == 0 {
		return nil, nil
	}
	ptrs := make([]*byte, len(names))
	for i, name := range names {
		ptrs[i] = cstr(name)
	}
	return ptrs, &ptrs[0]
}

// cToString reads a fixed-size, null-terminated native char array.
func cToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
