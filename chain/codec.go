package chain

import (
	"unsafe"

	"github.com/spaghettifunk/vulkanite/core"
)

// Arena owns the foreign cells of one encoded chain. It exists for exactly
// one native call: keep it reachable until the call returns, then drop it.
// The serialized list must never outlive its arena.
type Arena struct {
	cells []any
}

func (a *Arena) pin(cell any) {
	a.cells = append(a.cells, cell)
}

// Encode serializes an input chain into the foreign singly linked list.
// It returns the list head and the arena owning the cells. An empty chain
// yields a nil head and no arena.
func Encode(c *Chain) (unsafe.Pointer, *Arena) {
	if c.Len() == 0 {
		return nil, nil
	}
	a := &Arena{cells: make([]any, 0, c.Len())}
	var head unsafe.Pointer
	var prev *Header
	for _, b := range c.blocks {
		h := b.encode(a)
		if prev == nil {
			head = unsafe.Pointer(h)
		} else {
			prev.Next = unsafe.Pointer(h)
		}
		prev = h
	}
	return head, a
}

// EncodeQuery allocates one zeroed cell per selected kind and links them for
// the callee to fill. Decode the same head afterwards to read the results.
func EncodeQuery(q *QueryChain) (unsafe.Pointer, *Arena) {
	if q.Len() == 0 {
		return nil, nil
	}
	a := &Arena{cells: make([]any, 0, q.Len())}
	var head unsafe.Pointer
	var prev *Header
	for _, st := range q.selected {
		h, ok := newQueryCell(a, st)
		if !ok {
			core.LogWarn("no query cell registered for structure type %d, skipping", st)
			continue
		}
		if prev == nil {
			head = unsafe.Pointer(h)
		} else {
			prev.Next = unsafe.Pointer(h)
		}
		prev = h
	}
	return head, a
}

// Decode walks a foreign list until its null terminator and reconstructs the
// recognized cells into typed blocks. Unrecognized tags are skipped so that
// chains written by a newer native library still decode. A nil head decodes
// to an empty chain. Decode never fails; a non-terminating or corrupt list is
// undefined behavior on the native side, not detected here.
func Decode(head unsafe.Pointer) *Chain {
	c := New()
	for p := head; p != nil; {
		h := (*Header)(p)
		if b, ok := decodeCell(p); ok {
			c.Add(b)
		}
		p = h.Next
	}
	return c
}

func newQueryCell(a *Arena, st StructureType) (*Header, bool) {
	switch st {
	case StructureTypePhysicalDevice16BitStorageFeatures:
		raw := &rawPhysicalDevice16BitStorageFeatures{Header: Header{SType: st}}
		a.pin(raw)
		return &raw.Header, true
	case StructureTypePhysicalDeviceMultiviewFeatures:
		raw := &rawPhysicalDeviceMultiviewFeatures{Header: Header{SType: st}}
		a.pin(raw)
		return &raw.Header, true
	case StructureTypePhysicalDeviceVariablePointersFeatures:
		raw := &rawPhysicalDeviceVariablePointersFeatures{Header: Header{SType: st}}
		a.pin(raw)
		return &raw.Header, true
	default:
		return nil, false
	}
}

func decodeCell(p unsafe.Pointer) (FeatureBlock, bool) {
	switch (*Header)(p).SType {
	case StructureTypeDebugReportCallbackCreateInfo:
		raw := (*rawDebugReportCallbackCreateInfo)(p)
		return &DebugReportCallbackCreateInfo{
			Flags:    raw.Flags,
			Callback: raw.PfnCallback,
			UserData: raw.PUserData,
		}, true

	case StructureTypeValidationFeatures:
		raw := (*rawValidationFeatures)(p)
		b := &ValidationFeatures{}
		if raw.EnabledValidationFeatureCount > 0 && raw.PEnabledValidationFeatures != nil {
			src := unsafe.Slice((*ValidationFeature)(raw.PEnabledValidationFeatures), raw.EnabledValidationFeatureCount)
			b.Enabled = append([]ValidationFeature(nil), src...)
		}
		if raw.DisabledValidationFeatureCount > 0 && raw.PDisabledValidationFeatures != nil {
			src := unsafe.Slice((*ValidationFeature)(raw.PDisabledValidationFeatures), raw.DisabledValidationFeatureCount)
			b.Disabled = append([]ValidationFeature(nil), src...)
		}
		return b, true

	case StructureTypeSurfaceFullScreenExclusiveWin32Info:
		raw := (*rawSurfaceFullScreenExclusiveWin32Info)(p)
		return &SurfaceFullScreenExclusiveWin32Info{Monitor: raw.HMonitor}, true

	case StructureTypeDisplayPresentInfo:
		raw := (*rawDisplayPresentInfo)(p)
		return &DisplayPresentInfo{
			SrcRect:    raw.SrcRect,
			DstRect:    raw.DstRect,
			Persistent: raw.Persistent.bool(),
		}, true

	case StructureTypePhysicalDevice16BitStorageFeatures:
		raw := (*rawPhysicalDevice16BitStorageFeatures)(p)
		return &PhysicalDevice16BitStorageFeatures{
			StorageBuffer16BitAccess:           raw.StorageBuffer16BitAccess.bool(),
			UniformAndStorageBuffer16BitAccess: raw.UniformAndStorageBuffer16BitAccess.bool(),
			StoragePushConstant16:              raw.StoragePushConstant16.bool(),
			StorageInputOutput16:               raw.StorageInputOutput16.bool(),
		}, true

	case StructureTypePhysicalDeviceMultiviewFeatures:
		raw := (*rawPhysicalDeviceMultiviewFeatures)(p)
		return &PhysicalDeviceMultiviewFeatures{
			Multiview:                   raw.Multiview.bool(),
			MultiviewGeometryShader:     raw.MultiviewGeometryShader.bool(),
			MultiviewTessellationShader: raw.MultiviewTessellationShader.bool(),
		}, true

	case StructureTypePhysicalDeviceVariablePointersFeatures:
		raw := (*rawPhysicalDeviceVariablePointersFeatures)(p)
		return &PhysicalDeviceVariablePointersFeatures{
			VariablePointersStorageBuffer: raw.VariablePointersStorageBuffer.bool(),
			VariablePointers:              raw.VariablePointers.bool(),
		}, true

	default:
		return nil, false
	}
}
