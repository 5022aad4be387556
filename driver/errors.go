package driver

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/vulkanite/extension"
)

// Result mirrors VkResult. Negative values are errors.
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
)

// Err converts a native result code into an error, nil on success codes.
func (r Result) Err() error {
	if r >= 0 {
		return nil
	}
	return &ResultError{Code: r}
}

// ResultError wraps a failing native result code.
type ResultError struct {
	Code Result
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("vulkan call failed with result %d", e.Code)
}

// MissingExtensionsError reports required extensions the implementation does
// not support, or supports only at an older spec version. It is returned
// before any scope object is created.
type MissingExtensionsError struct {
	Missing *extension.Properties
}

func (e *MissingExtensionsError) Error() string {
	members := e.Missing.Members()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = fmt.Sprintf("%s (revision %d)", m.Name, m.SpecVersion)
	}
	return fmt.Sprintf("missing or outdated extensions: %s", strings.Join(parts, ", "))
}

// InUseError reports a failed TryDestroy: other handles still share the
// object. The caller keeps its handle and may retry later.
type InUseError struct {
	Refs int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("object still has %d reference(s) and can not be destroyed", e.Refs)
}
