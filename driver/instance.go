package driver

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"

	"github.com/spaghettifunk/vulkanite/chain"
	"github.com/spaghettifunk/vulkanite/core"
	"github.com/spaghettifunk/vulkanite/extension"
	"github.com/spaghettifunk/vulkanite/loader"
)

const (
	structureTypeApplicationInfo       chain.StructureType = 0
	structureTypeInstanceCreateInfo    chain.StructureType = 1
	structureTypeDeviceQueueCreateInfo chain.StructureType = 2
	structureTypeDeviceCreateInfo      chain.StructureType = 3
)

// ApplicationInfo names the application to the implementation.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         core.Version
	Chain              *chain.Chain
}

// InstanceCreateInfo describes the instance to create. EnabledExtensions is
// the required set, with spec versions; it is negotiated against what the
// implementation reports before anything is created.
type InstanceCreateInfo struct {
	ApplicationInfo   *ApplicationInfo
	EnabledLayers     []string
	EnabledExtensions *extension.Properties
	Chain             *chain.Chain
}

// Instance is the instance-level scope object. Handles share the underlying
// native instance through reference counting; the native object is destroyed
// when the last handle is released.
type Instance struct {
	handle *instanceHandle
}

type instanceHandle struct {
	id         uuid.UUID
	raw        uintptr
	resolver   loader.Resolver
	procs      *InstanceProcs
	extensions *extension.Set
	refs       atomic.Int64
}

// Negotiate verifies every required extension is supported at the required
// spec version or newer. The returned error lists what is missing or
// outdated.
func Negotiate(required, supported *extension.Properties) error {
	missing := required.Difference(supported)
	if !missing.IsEmpty() {
		return &MissingExtensionsError{Missing: missing}
	}
	return nil
}

// EnumerateInstanceExtensionProperties queries the extensions the
// implementation supports before any instance exists.
func EnumerateInstanceExtensionProperties(r loader.Resolver) (*extension.Properties, error) {
	proc, err := r.Resolve("vkEnumerateInstanceExtensionProperties")
	if err != nil {
		return nil, err
	}

	var count uint32
	if err := Result(proc.Call(0, uintptr(unsafe.Pointer(&count)), 0)).Err(); err != nil {
		return nil, err
	}

	props := extension.NewProperties()
	if count == 0 {
		return props, nil
	}

	buf := make([]rawExtensionProperties, count)
	if err := Result(proc.Call(0, uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&buf[0])))).Err(); err != nil {
		return nil, err
	}
	for i := range buf[:count] {
		props.AddNamed(cToString(buf[i].ExtensionName[:]), buf[i].SpecVersion)
	}
	runtime.KeepAlive(buf)
	return props, nil
}

// LayerProperties describes one instance layer.
type LayerProperties struct {
	LayerName             string
	SpecVersion           core.Version
	ImplementationVersion uint32
	Description           string
}

// EnumerateInstanceLayerProperties queries the layers the implementation
// supports before any instance exists.
func EnumerateInstanceLayerProperties(r loader.Resolver) ([]LayerProperties, error) {
	proc, err := r.Resolve("vkEnumerateInstanceLayerProperties")
	if err != nil {
		return nil, err
	}

	var count uint32
	if err := Result(proc.Call(uintptr(unsafe.Pointer(&count)), 0)).Err(); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	buf := make([]rawLayerProperties, count)
	if err := Result(proc.Call(uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&buf[0])))).Err(); err != nil {
		return nil, err
	}

	layers := make([]LayerProperties, count)
	for i := range buf[:count] {
		layers[i] = LayerProperties{
			LayerName:             cToString(buf[i].LayerName[:]),
			SpecVersion:           core.VersionFromUint32(buf[i].SpecVersion),
			ImplementationVersion: buf[i].ImplementationVersion,
			Description:           cToString(buf[i].Description[:]),
		}
	}
	runtime.KeepAlive(buf)
	return layers, nil
}

// CreateInstance negotiates the requested extensions, creates the native
// instance and loads its entry-point tables. Negotiation or symbol failures
// surface as typed errors and leave nothing behind.
func CreateInstance(info *InstanceCreateInfo, r loader.Resolver) (*Instance, error) {
	required := info.EnabledExtensions
	if required == nil {
		required = extension.NewProperties()
	}

	supported, err := EnumerateInstanceExtensionProperties(r)
	if err != nil {
		return nil, err
	}
	if err := Negotiate(required, supported); err != nil {
		return nil, err
	}

	createProc, err := r.Resolve("vkCreateInstance")
	if err != nil {
		return nil, err
	}

	// Everything referenced from rawInfo stays in scope until KeepAlive.
	var appInfo *rawApplicationInfo
	var appKeep []*byte
	if a := info.ApplicationInfo; a != nil {
		appChain, appArena := chain.Encode(a.Chain)
		appInfo = &rawApplicationInfo{
			SType:              structureTypeApplicationInfo,
			Next:               appChain,
			ApplicationVersion: a.ApplicationVersion,
			EngineVersion:      a.EngineVersion,
			APIVersion:         a.APIVersion.Uint32(),
		}
		if a.ApplicationName != "" {
			appInfo.PApplicationName = cstr(a.ApplicationName)
			appKeep = append(appKeep, appInfo.PApplicationName)
		}
		if a.EngineName != "" {
			appInfo.PEngineName = cstr(a.EngineName)
			appKeep = append(appKeep, appInfo.PEngineName)
		}
		defer runtime.KeepAlive(appArena)
	}

	head, arena := chain.Encode(info.Chain)
	layerPtrs, layerNames := cstrArray(info.EnabledLayers)
	extPtrs, extNames := cstrArray(required.ToSet().Names())

	rawInfo := rawInstanceCreateInfo{
		SType:                   structureTypeInstanceCreateInfo,
		Next:                    head,
		PApplicationInfo:        appInfo,
		EnabledLayerCount:       uint32(len(layerPtrs)),
		PpEnabledLayerNames:     layerNames,
		EnabledExtensionCount:   uint32(len(extPtrs)),
		PpEnabledExtensionNames: extNames,
	}

	var raw uintptr
	res := Result(createProc.Call(uintptr(unsafe.Pointer(&rawInfo)), 0, uintptr(unsafe.Pointer(&raw))))
	runtime.KeepAlive(arena)
	runtime.KeepAlive(appKeep)
	runtime.KeepAlive(layerPtrs)
	runtime.KeepAlive(extPtrs)
	if err := res.Err(); err != nil {
		return nil, err
	}

	enabled := required.ToSet()
	procs, err := loadInstanceProcs(r, enabled)
	if err != nil {
		// Never expose a half-loaded instance. Destruction goes through a
		// direct resolve because the table itself may be the broken part.
		if destroy, derr := r.Resolve("vkDestroyInstance"); derr == nil {
			destroy.Call(raw, 0)
		}
		return nil, err
	}

	h := &instanceHandle{
		id:         uuid.New(),
		raw:        raw,
		resolver:   r,
		procs:      procs,
		extensions: enabled,
	}
	h.refs.Store(1)
	core.LogInfo("created instance %s with extensions %v", h.id, enabled.Names())
	return &Instance{handle: h}, nil
}

// Handle returns the native instance handle.
func (i *Instance) Handle() uintptr {
	return i.handle.raw
}

// Procs returns the instance entry-point tables. Read-only after creation.
func (i *Instance) Procs() *InstanceProcs {
	return i.handle.procs
}

// Extensions returns the negotiated extension set. It must not be mutated.
func (i *Instance) Extensions() *extension.Set {
	return i.handle.extensions
}

// Clone returns a new handle sharing the same native instance.
func (i *Instance) Clone() *Instance {
	i.handle.refs.Add(1)
	return &Instance{handle: i.handle}
}

// Release drops this handle. The native instance is destroyed exactly when
// the last handle goes away.
func (i *Instance) Release() {
	if i.handle.refs.Add(-1) == 0 {
		i.handle.destroy()
	}
}

// TryDestroy destroys the native instance if the caller holds the only
// handle; otherwise it returns an InUseError and nothing changes.
func (i *Instance) TryDestroy() error {
	if !i.handle.refs.CompareAndSwap(1, 0) {
		return &InUseError{Refs: i.handle.refs.Load()}
	}
	i.handle.destroy()
	return nil
}

func (h *instanceHandle) destroy() {
	h.procs.DestroyInstance.Call(h.raw, 0)
	core.LogDebug("destroyed instance %s", h.id)
}

// EnumeratePhysicalDevices lists the physical devices of this instance.
func (i *Instance) EnumeratePhysicalDevices() ([]PhysicalDevice, error) {
	h := i.handle

	var count uint32
	if err := Result(h.procs.EnumeratePhysicalDevices.Call(h.raw, uintptr(unsafe.Pointer(&count)), 0)).Err(); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	raws := make([]uintptr, count)
	if err := Result(h.procs.EnumeratePhysicalDevices.Call(h.raw, uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&raws[0])))).Err(); err != nil {
		return nil, err
	}

	devices := make([]PhysicalDevice, count)
	for j := range raws[:count] {
		devices[j] = PhysicalDevice{raw: raws[j], instance: h}
	}
	return devices, nil
}
