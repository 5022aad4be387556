package driver

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/spaghettifunk/vulkanite/chain"
	"github.com/spaghettifunk/vulkanite/core"
)

// DebugReportCallbackCreateInfo describes a debug report callback
// registration (VK_EXT_debug_report). Callback and UserData are opaque
// native values; the binding never interprets them.
type DebugReportCallbackCreateInfo struct {
	Flags    chain.DebugReportFlags
	Callback uintptr
	UserData uintptr
	Chain    *chain.Chain
}

// DebugReportCallback is the scope-owned callback registration. It keeps its
// instance alive for as long as any handle exists; chain blocks referencing
// it only borrow it.
type DebugReportCallback struct {
	handle *debugReportHandle
}

type debugReportHandle struct {
	raw      uintptr
	instance *instanceHandle
	refs     atomic.Int64
}

// CreateDebugReportCallback registers a debug report callback. The instance
// must have been created with VK_EXT_debug_report; otherwise this is a
// contract violation.
func (i *Instance) CreateDebugReportCallback(info *DebugReportCallbackCreateInfo) (*DebugReportCallback, error) {
	procs := i.handle.procs.debugReport()

	head, arena := chain.Encode(info.Chain)
	rawInfo := rawDebugReportCallbackCreateInfo{
		SType:       chain.StructureTypeDebugReportCallbackCreateInfo,
		Next:        head,
		Flags:       info.Flags,
		PfnCallback: info.Callback,
		PUserData:   info.UserData,
	}

	var raw uintptr
	res := Result(procs.CreateDebugReportCallback.Call(i.handle.raw, uintptr(unsafe.Pointer(&rawInfo)), 0, uintptr(unsafe.Pointer(&raw))))
	runtime.KeepAlive(arena)
	if err := res.Err(); err != nil {
		return nil, err
	}

	i.handle.refs.Add(1)
	h := &debugReportHandle{raw: raw, instance: i.handle}
	h.refs.Store(1)
	core.LogDebug("registered debug report callback on instance %s", i.handle.id)
	return &DebugReportCallback{handle: h}, nil
}

// Handle returns the native callback handle, e.g. for a chain block that
// references the registration during another call.
func (c *DebugReportCallback) Handle() uintptr {
	return c.handle.raw
}

// Clone returns a new handle sharing the same registration.
func (c *DebugReportCallback) Clone() *DebugReportCallback {
	c.handle.refs.Add(1)
	return &DebugReportCallback{handle: c.handle}
}

// Release drops this handle, unregistering the callback when it is the last.
func (c *DebugReportCallback) Release() {
	if c.handle.refs.Add(-1) == 0 {
		c.handle.destroy()
	}
}

// TryDestroy unregisters the callback if the caller holds the only handle;
// otherwise it returns an InUseError and nothing changes.
func (c *DebugReportCallback) TryDestroy() error {
	if !c.handle.refs.CompareAndSwap(1, 0) {
		return &InUseError{Refs: c.handle.refs.Load()}
	}
	c.handle.destroy()
	return nil
}

func (h *debugReportHandle) destroy() {
	h.instance.procs.debugReport().DestroyDebugReportCallback.Call(h.instance.raw, h.raw, 0)
	if h.instance.refs.Add(-1) == 0 {
		h.instance.destroy()
	}
}
