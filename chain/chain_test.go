package chain

import "testing"

func TestChain_AddReplacesSameKind(t *testing.T) {
	first := &PhysicalDeviceMultiviewFeatures{Multiview: true}
	second := &PhysicalDeviceMultiviewFeatures{Multiview: false, MultiviewGeometryShader: true}

	c := New().
		Add(first).
		Add(&PhysicalDevice16BitStorageFeatures{StoragePushConstant16: true}).
		Add(second)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got, ok := c.Get(StructureTypePhysicalDeviceMultiviewFeatures)
	if !ok {
		t.Fatal("replaced kind missing")
	}
	if got != FeatureBlock(second) {
		t.Fatal("Add did not keep the later block")
	}
	// Replacement keeps the original slot, not a new one.
	if c.Blocks()[0] != FeatureBlock(second) {
		t.Fatal("replacement moved the block out of its slot")
	}
}

func TestChain_HasGet(t *testing.T) {
	c := New().Add(&SurfaceFullScreenExclusiveWin32Info{Monitor: 0xbeef})

	if !c.Has(StructureTypeSurfaceFullScreenExclusiveWin32Info) {
		t.Fatal("Has() = false for attached kind")
	}
	if c.Has(StructureTypeValidationFeatures) {
		t.Fatal("Has() = true for absent kind")
	}
	if _, ok := c.Get(StructureTypeValidationFeatures); ok {
		t.Fatal("Get() found an absent kind")
	}

	var nilChain *Chain
	if nilChain.Has(StructureTypeValidationFeatures) || nilChain.Len() != 0 {
		t.Fatal("nil chain is not empty")
	}
}

// Discriminator values must match the Vulkan registry: extension number N
// owns the base 1000000000 + 1000*(N-1), plus the per-struct offset.
func TestStructureTypeRegistryValues(t *testing.T) {
	tests := []struct {
		st   StructureType
		want uint32
	}{
		{StructureTypeDisplayPresentInfo, 1000003000},
		{StructureTypeDebugReportCallbackCreateInfo, 1000011000},
		{StructureTypePhysicalDeviceMultiviewFeatures, 1000053001},
		{StructureTypePhysicalDeviceFeatures2, 1000059000},
		{StructureTypePhysicalDevice16BitStorageFeatures, 1000083000},
		{StructureTypePhysicalDeviceVariablePointersFeatures, 1000120000},
		{StructureTypeValidationFeatures, 1000247000},
		// Extension 256, offset 1. Offset 2 is the capabilities struct,
		// a different layout.
		{StructureTypeSurfaceFullScreenExclusiveWin32Info, 1000255001},
	}
	for _, tt := range tests {
		if uint32(tt.st) != tt.want {
			t.Errorf("structure type = %d, want %d", tt.st, tt.want)
		}
	}
}

func TestQueryChain_Select(t *testing.T) {
	q := NewQuery().
		Select(StructureTypePhysicalDevice16BitStorageFeatures).
		Select(StructureTypePhysicalDevice16BitStorageFeatures).
		Select(StructureTypePhysicalDeviceMultiviewFeatures)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	if !q.Selected(StructureTypePhysicalDevice16BitStorageFeatures) {
		t.Fatal("Selected() = false for selected kind")
	}
	if q.Selected(StructureTypeValidationFeatures) {
		t.Fatal("Selected() = true for unselected kind")
	}
}
