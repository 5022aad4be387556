package chain

import "unsafe"

// StructureType is the discriminator tag Vulkan writes as the first field of
// every extensible structure. Values must match the Vulkan registry.
type StructureType uint32

const (
	StructureTypeDisplayPresentInfo                     StructureType = 1000003000
	StructureTypeDebugReportCallbackCreateInfo          StructureType = 1000011000
	StructureTypePhysicalDeviceMultiviewFeatures        StructureType = 1000053001
	StructureTypePhysicalDeviceFeatures2                StructureType = 1000059000
	StructureTypePhysicalDevice16BitStorageFeatures     StructureType = 1000083000
	StructureTypePhysicalDeviceVariablePointersFeatures StructureType = 1000120000
	StructureTypeValidationFeatures                     StructureType = 1000247000
	StructureTypeSurfaceFullScreenExclusiveWin32Info    StructureType = 1000255001
)

// Bool32 is Vulkan's 32-bit boolean.
type Bool32 uint32

func toBool32(b bool) Bool32 {
	if b {
		return 1
	}
	return 0
}

func (b Bool32) bool() bool {
	return b != 0
}

// Header mirrors VkBaseOutStructure: the discriminator first, then the next
// pointer at the offset the native library expects. Every raw cell embeds it
// as its first field, so a pointer to the cell is a pointer to its Header.
type Header struct {
	SType StructureType
	Next  unsafe.Pointer
}

// FeatureBlock is one optional, independently typed payload attachable to a
// base structure. The set of kinds is closed: each implementation lives in
// this package and knows how to write itself into the foreign layout.
type FeatureBlock interface {
	StructureType() StructureType

	// encode allocates the block's foreign cell in the arena and returns its
	// header for linking.
	encode(a *Arena) *Header
}

// Chain is the ordered set of FeatureBlocks attached to one base structure
// for one call. It holds at most one block per kind; no ordering between
// kinds is meaningful to the application.
type Chain struct {
	blocks []FeatureBlock
	index  map[StructureType]int
}

func New() *Chain {
	return &Chain{index: make(map[StructureType]int)}
}

// Add attaches a block, replacing any existing block of the same kind.
func (c *Chain) Add(b FeatureBlock) *Chain {
	if i, ok := c.index[b.StructureType()]; ok {
		c.blocks[i] = b
		return c
	}
	c.index[b.StructureType()] = len(c.blocks)
	c.blocks = append(c.blocks, b)
	return c
}

// Has reports whether a block of the given kind is attached.
func (c *Chain) Has(st StructureType) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[st]
	return ok
}

// Get returns the attached block of the given kind.
func (c *Chain) Get(st StructureType) (FeatureBlock, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[st]
	if !ok {
		return nil, false
	}
	return c.blocks[i], true
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.blocks)
}

// Blocks returns the attached blocks in insertion order.
func (c *Chain) Blocks() []FeatureBlock {
	if c == nil {
		return nil
	}
	return c.blocks
}

// QueryChain records which block kinds the caller wants the callee to fill,
// independent of any payload. Encode it with EncodeQuery, pass the head to
// the native call, then Decode the head into a filled Chain.
type QueryChain struct {
	selected []StructureType
	index    map[StructureType]struct{}
}

func NewQuery() *QueryChain {
	return &QueryChain{index: make(map[StructureType]struct{})}
}

// Select requests a fill of the given kind without supplying data.
func (q *QueryChain) Select(st StructureType) *QueryChain {
	if _, ok := q.index[st]; ok {
		return q
	}
	q.index[st] = struct{}{}
	q.selected = append(q.selected, st)
	return q
}

// Selected reports whether the kind was requested.
func (q *QueryChain) Selected(st StructureType) bool {
	if q == nil {
		return false
	}
	_, ok := q.index[st]
	return ok
}

func (q *QueryChain) Len() int {
	if q == nil {
		return 0
	}
	return len(q.selected)
}
