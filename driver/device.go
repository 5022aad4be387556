package driver

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"

	"github.com/spaghettifunk/vulkanite/chain"
	"github.com/spaghettifunk/vulkanite/core"
	"github.com/spaghettifunk/vulkanite/extension"
)

// DeviceQueueCreateInfo requests queues from one queue family.
type DeviceQueueCreateInfo struct {
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo describes the logical device to create. EnabledExtensions
// is negotiated against what the physical device reports before creation.
type DeviceCreateInfo struct {
	QueueCreateInfos  []DeviceQueueCreateInfo
	EnabledExtensions *extension.Properties
	Chain             *chain.Chain
}

// Device is the device-level scope object. Like Instance, handles share the
// native device through reference counting. A device keeps its instance
// alive for as long as any device handle exists.
type Device struct {
	handle *deviceHandle
}

type deviceHandle struct {
	id         uuid.UUID
	raw        uintptr
	procs      *DeviceProcs
	extensions *extension.Set
	instance   *instanceHandle
	refs       atomic.Int64
}

// CreateDevice negotiates the requested device extensions against the
// physical device, creates the logical device and loads its entry-point
// tables. Negotiation or symbol failures surface as typed errors and tear
// down anything already created.
func (pd PhysicalDevice) CreateDevice(info *DeviceCreateInfo) (*Device, error) {
	required := info.EnabledExtensions
	if required == nil {
		required = extension.NewProperties()
	}

	supported, err := pd.EnumerateExtensionProperties()
	if err != nil {
		return nil, err
	}
	if err := Negotiate(required, supported); err != nil {
		return nil, err
	}

	queueInfos := make([]rawDeviceQueueCreateInfo, len(info.QueueCreateInfos))
	for i, q := range info.QueueCreateInfos {
		queueInfos[i] = rawDeviceQueueCreateInfo{
			SType:            structureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueueCount:       uint32(len(q.QueuePriorities)),
		}
		if len(q.QueuePriorities) > 0 {
			queueInfos[i].PQueuePriorities = &q.QueuePriorities[0]
		}
	}

	head, arena := chain.Encode(info.Chain)
	extPtrs, extNames := cstrArray(required.ToSet().Names())

	rawInfo := rawDeviceCreateInfo{
		SType:                   structureTypeDeviceCreateInfo,
		Next:                    head,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		EnabledExtensionCount:   uint32(len(extPtrs)),
		PpEnabledExtensionNames: extNames,
	}
	if len(queueInfos) > 0 {
		rawInfo.PQueueCreateInfos = &queueInfos[0]
	}

	var raw uintptr
	res := Result(pd.instance.procs.CreateDevice.Call(pd.raw, uintptr(unsafe.Pointer(&rawInfo)), 0, uintptr(unsafe.Pointer(&raw))))
	runtime.KeepAlive(arena)
	runtime.KeepAlive(queueInfos)
	runtime.KeepAlive(extPtrs)
	if err := res.Err(); err != nil {
		return nil, err
	}

	enabled := required.ToSet()
	procs, err := loadDeviceProcs(pd.instance.resolver, enabled)
	if err != nil {
		if destroy, derr := pd.instance.resolver.Resolve("vkDestroyDevice"); derr == nil {
			destroy.Call(raw, 0)
		}
		return nil, err
	}

	pd.instance.refs.Add(1)
	h := &deviceHandle{
		id:         uuid.New(),
		raw:        raw,
		procs:      procs,
		extensions: enabled,
		instance:   pd.instance,
	}
	h.refs.Store(1)
	core.LogInfo("created device %s with extensions %v", h.id, enabled.Names())
	return &Device{handle: h}, nil
}

// Handle returns the native device handle.
func (d *Device) Handle() uintptr {
	return d.handle.raw
}

// Procs returns the device entry-point tables. Read-only after creation.
func (d *Device) Procs() *DeviceProcs {
	return d.handle.procs
}

// Extensions returns the negotiated extension set. It must not be mutated.
func (d *Device) Extensions() *extension.Set {
	return d.handle.extensions
}

// Clone returns a new handle sharing the same native device.
func (d *Device) Clone() *Device {
	d.handle.refs.Add(1)
	return &Device{handle: d.handle}
}

// Release drops this handle. The native device is destroyed exactly when the
// last handle goes away, and the instance reference taken at creation is
// dropped with it.
func (d *Device) Release() {
	if d.handle.refs.Add(-1) == 0 {
		d.handle.destroy()
	}
}

// TryDestroy destroys the native device if the caller holds the only handle;
// otherwise it returns an InUseError and nothing changes.
func (d *Device) TryDestroy() error {
	if !d.handle.refs.CompareAndSwap(1, 0) {
		return &InUseError{Refs: d.handle.refs.Load()}
	}
	d.handle.destroy()
	return nil
}

func (h *deviceHandle) destroy() {
	h.procs.DestroyDevice.Call(h.raw, 0)
	core.LogDebug("destroyed device %s", h.id)
	if h.instance.refs.Add(-1) == 0 {
		h.instance.destroy()
	}
}

// Queue returns a device queue handle.
func (d *Device) Queue(queueFamilyIndex, queueIndex uint32) uintptr {
	var queue uintptr
	d.handle.procs.GetDeviceQueue.Call(d.handle.raw, uintptr(queueFamilyIndex), uintptr(queueIndex), uintptr(unsafe.Pointer(&queue)))
	return queue
}

// WaitIdle blocks until the device finishes outstanding work.
func (d *Device) WaitIdle() error {
	return Result(d.handle.procs.DeviceWaitIdle.Call(d.handle.raw)).Err()
}
