package core

import "fmt"

// Version is a Vulkan API version triple.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// APIVersion10 is the lowest API version the binding targets.
var APIVersion10 = Version{Major: 1, Minor: 0, Patch: 0}

// Uint32 packs the version the way VK_MAKE_VERSION does.
func (v Version) Uint32() uint32 {
	return v.Major<<22 | v.Minor<<12 | v.Patch
}

// VersionFromUint32 unpacks a packed API version.
func VersionFromUint32(version uint32) Version {
	return Version{
		Major: version >> 22,
		Minor: (version >> 12) & 0x3ff,
		Patch: version & 0xfff,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
