package chain

import "unsafe"

// The raw structs below mirror the Vulkan C layouts bit-for-bit on 64-bit
// targets; Go's natural alignment inserts the same padding the C compiler
// does. They are the single compatibility-critical surface of the codec.

// Offset2D / Extent2D / Rect2D follow VkRect2D.
type Offset2D struct {
	X int32
	Y int32
}

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// DebugReportFlags follows VkDebugReportFlagsEXT.
type DebugReportFlags uint32

const (
	DebugReportInformation        DebugReportFlags = 1 << 0
	DebugReportWarning            DebugReportFlags = 1 << 1
	DebugReportPerformanceWarning DebugReportFlags = 1 << 2
	DebugReportError              DebugReportFlags = 1 << 3
	DebugReportDebug              DebugReportFlags = 1 << 4
)

// DebugReportCallbackCreateInfo attaches a debug report callback to an
// instance create call (VK_EXT_debug_report). Callback and UserData are
// opaque native handles owned elsewhere; the block only references them.
type DebugReportCallbackCreateInfo struct {
	Flags    DebugReportFlags
	Callback uintptr
	UserData uintptr
}

type rawDebugReportCallbackCreateInfo struct {
	Header
	Flags       DebugReportFlags
	PfnCallback uintptr
	PUserData   uintptr
}

func (b *DebugReportCallbackCreateInfo) StructureType() StructureType {
	return StructureTypeDebugReportCallbackCreateInfo
}

func (b *DebugReportCallbackCreateInfo) encode(a *Arena) *Header {
	raw := &rawDebugReportCallbackCreateInfo{
		Header:      Header{SType: b.StructureType()},
		Flags:       b.Flags,
		PfnCallback: b.Callback,
		PUserData:   b.UserData,
	}
	a.pin(raw)
	return &raw.Header
}

// ValidationFeature selects a validation behavior (VkValidationFeatureEnableEXT /
// VkValidationFeatureDisableEXT values share the int32 representation).
type ValidationFeature int32

// ValidationFeatures toggles validation layer behavior at instance creation
// (VK_EXT_validation_features).
type ValidationFeatures struct {
	Enabled  []ValidationFeature
	Disabled []ValidationFeature
}

type rawValidationFeatures struct {
	Header
	EnabledValidationFeatureCount  uint32
	PEnabledValidationFeatures     unsafe.Pointer
	DisabledValidationFeatureCount uint32
	PDisabledValidationFeatures    unsafe.Pointer
}

func (b *ValidationFeatures) StructureType() StructureType {
	return StructureTypeValidationFeatures
}

func (b *ValidationFeatures) encode(a *Arena) *Header {
	raw := &rawValidationFeatures{
		Header:                         Header{SType: b.StructureType()},
		EnabledValidationFeatureCount:  uint32(len(b.Enabled)),
		DisabledValidationFeatureCount: uint32(len(b.Disabled)),
	}
	if len(b.Enabled) > 0 {
		enabled := append([]ValidationFeature(nil), b.Enabled...)
		a.pin(enabled)
		raw.PEnabledValidationFeatures = unsafe.Pointer(&enabled[0])
	}
	if len(b.Disabled) > 0 {
		disabled := append([]ValidationFeature(nil), b.Disabled...)
		a.pin(disabled)
		raw.PDisabledValidationFeatures = unsafe.Pointer(&disabled[0])
	}
	a.pin(raw)
	return &raw.Header
}

// SurfaceFullScreenExclusiveWin32Info carries the opaque monitor handle the
// windowing collaborator supplies for VK_EXT_full_screen_exclusive. The
// handle is consumed by the native side, never interpreted here.
type SurfaceFullScreenExclusiveWin32Info struct {
	Monitor uintptr
}

type rawSurfaceFullScreenExclusiveWin32Info struct {
	Header
	HMonitor uintptr
}

func (b *SurfaceFullScreenExclusiveWin32Info) StructureType() StructureType {
	return StructureTypeSurfaceFullScreenExclusiveWin32Info
}

func (b *SurfaceFullScreenExclusiveWin32Info) encode(a *Arena) *Header {
	raw := &rawSurfaceFullScreenExclusiveWin32Info{
		Header:   Header{SType: b.StructureType()},
		HMonitor: b.Monitor,
	}
	a.pin(raw)
	return &raw.Header
}

// DisplayPresentInfo extends a present call for VK_KHR_display_swapchain.
type DisplayPresentInfo struct {
	SrcRect    Rect2D
	DstRect    Rect2D
	Persistent bool
}

type rawDisplayPresentInfo struct {
	Header
	SrcRect    Rect2D
	DstRect    Rect2D
	Persistent Bool32
}

func (b *DisplayPresentInfo) StructureType() StructureType {
	return StructureTypeDisplayPresentInfo
}

func (b *DisplayPresentInfo) encode(a *Arena) *Header {
	raw := &rawDisplayPresentInfo{
		Header:     Header{SType: b.StructureType()},
		SrcRect:    b.SrcRect,
		DstRect:    b.DstRect,
		Persistent: toBool32(b.Persistent),
	}
	a.pin(raw)
	return &raw.Header
}

// PhysicalDevice16BitStorageFeatures reports 16-bit storage support. Query it
// through a features2 chain or supply it at device creation.
type PhysicalDevice16BitStorageFeatures struct {
	StorageBuffer16BitAccess           bool
	UniformAndStorageBuffer16BitAccess bool
	StoragePushConstant16              bool
	StorageInputOutput16               bool
}

type rawPhysicalDevice16BitStorageFeatures struct {
	Header
	StorageBuffer16BitAccess           Bool32
	UniformAndStorageBuffer16BitAccess Bool32
	StoragePushConstant16              Bool32
	StorageInputOutput16               Bool32
}

func (b *PhysicalDevice16BitStorageFeatures) StructureType() StructureType {
	return StructureTypePhysicalDevice16BitStorageFeatures
}

func (b *PhysicalDevice16BitStorageFeatures) encode(a *Arena) *Header {
	raw := &rawPhysicalDevice16BitStorageFeatures{
		Header:                             Header{SType: b.StructureType()},
		StorageBuffer16BitAccess:           toBool32(b.StorageBuffer16BitAccess),
		UniformAndStorageBuffer16BitAccess: toBool32(b.UniformAndStorageBuffer16BitAccess),
		StoragePushConstant16:              toBool32(b.StoragePushConstant16),
		StorageInputOutput16:               toBool32(b.StorageInputOutput16),
	}
	a.pin(raw)
	return &raw.Header
}

// PhysicalDeviceMultiviewFeatures reports multiview support.
type PhysicalDeviceMultiviewFeatures struct {
	Multiview                   bool
	MultiviewGeometryShader     bool
	MultiviewTessellationShader bool
}

type rawPhysicalDeviceMultiviewFeatures struct {
	Header
	Multiview                   Bool32
	MultiviewGeometryShader     Bool32
	MultiviewTessellationShader Bool32
}

func (b *PhysicalDeviceMultiviewFeatures) StructureType() StructureType {
	return StructureTypePhysicalDeviceMultiviewFeatures
}

func (b *PhysicalDeviceMultiviewFeatures) encode(a *Arena) *Header {
	raw := &rawPhysicalDeviceMultiviewFeatures{
		Header:                      Header{SType: b.StructureType()},
		Multiview:                   toBool32(b.Multiview),
		MultiviewGeometryShader:     toBool32(b.MultiviewGeometryShader),
		MultiviewTessellationShader: toBool32(b.MultiviewTessellationShader),
	}
	a.pin(raw)
	return &raw.Header
}

// PhysicalDeviceVariablePointersFeatures reports variable pointer support.
type PhysicalDeviceVariablePointersFeatures struct {
	VariablePointersStorageBuffer bool
	VariablePointers              bool
}

type rawPhysicalDeviceVariablePointersFeatures struct {
	Header
	VariablePointersStorageBuffer Bool32
	VariablePointers              Bool32
}

func (b *PhysicalDeviceVariablePointersFeatures) StructureType() StructureType {
	return StructureTypePhysicalDeviceVariablePointersFeatures
}

func (b *PhysicalDeviceVariablePointersFeatures) encode(a *Arena) *Header {
	raw := &rawPhysicalDeviceVariablePointersFeatures{
		Header:                        Header{SType: b.StructureType()},
		VariablePointersStorageBuffer: toBool32(b.VariablePointersStorageBuffer),
		VariablePointers:              toBool32(b.VariablePointers),
	}
	a.pin(raw)
	return &raw.Header
}
