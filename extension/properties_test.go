package extension

import (
	"reflect"
	"testing"
)

func TestProperties_AddKeepsHighestVersion(t *testing.T) {
	p := NewProperties().Add(KhrSwapchain, 67).Add(KhrSwapchain, 42)
	if v, _ := p.Get(KhrSwapchain); v != 67 {
		t.Fatalf("version = %d, want 67", v)
	}
	p.AddNamed("VK_KHR_swapchain", 70)
	if v, _ := p.Get(KhrSwapchain); v != 70 {
		t.Fatalf("version after AddNamed = %d, want 70", v)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
}

func TestProperties_Intersection(t *testing.T) {
	a := NewProperties().Add(KhrSurface, 25).Add(KhrSwapchain, 67).AddNamed("VK_NV_glsl_shader", 3)
	b := NewProperties().Add(KhrSurface, 20).AddNamed("VK_NV_glsl_shader", 5).Add(ExtDebugReport, 9)

	got := a.Intersection(b)

	if v, ok := got.Get(KhrSurface); !ok || v != 20 {
		t.Errorf("intersection KhrSurface = (%d, %v), want (20, true)", v, ok)
	}
	if v, ok := got.GetNamed("VK_NV_glsl_shader"); !ok || v != 3 {
		t.Errorf("intersection named = (%d, %v), want (3, true)", v, ok)
	}
	if got.Has(KhrSwapchain) || got.Has(ExtDebugReport) {
		t.Error("intersection contains one-sided members")
	}
}

func TestProperties_Union(t *testing.T) {
	a := NewProperties().Add(KhrSurface, 25).AddNamed("VK_NV_glsl_shader", 3)
	b := NewProperties().Add(KhrSurface, 20).Add(KhrSwapchain, 67).AddNamed("VK_NV_glsl_shader", 5)

	got := a.Union(b)

	if v, _ := got.Get(KhrSurface); v != 25 {
		t.Errorf("union KhrSurface = %d, want max 25", v)
	}
	if v, _ := got.Get(KhrSwapchain); v != 67 {
		t.Errorf("union KhrSwapchain = %d, want 67", v)
	}
	if v, _ := got.GetNamed("VK_NV_glsl_shader"); v != 5 {
		t.Errorf("union named = %d, want max 5", v)
	}
}

func TestProperties_DifferenceReportsMissingOrOutdated(t *testing.T) {
	required := NewProperties().
		Add(KhrSurface, 25).
		Add(KhrSwapchain, 67).
		AddNamed("VK_NV_glsl_shader", 3)
	supported := NewProperties().
		Add(KhrSurface, 25).
		Add(KhrSwapchain, 42). // outdated
		AddNamed("VK_AMD_gcn_shader", 1)

	missing := required.Difference(supported)

	if missing.Has(KhrSurface) {
		t.Error("satisfied extension reported missing")
	}
	if v, ok := missing.Get(KhrSwapchain); !ok || v != 67 {
		t.Errorf("outdated extension = (%d, %v), want (67, true)", v, ok)
	}
	if !missing.HasNamed("VK_NV_glsl_shader") {
		t.Error("unsupported named extension not reported")
	}
	if missing.Len() != 2 {
		t.Fatalf("missing.Len() = %d, want 2", missing.Len())
	}
}

func TestProperties_AlgebraWithNil(t *testing.T) {
	p := NewProperties().Add(KhrSurface, 25).AddNamed("VK_NV_glsl_shader", 3)

	if d := p.Difference(nil); d.Len() != p.Len() {
		t.Fatalf("Difference(nil).Len() = %d, want %d", d.Len(), p.Len())
	}
	if i := p.Intersection(nil); !i.IsEmpty() {
		t.Fatalf("Intersection(nil) not empty: %v", i.Members())
	}
	u := p.Union(nil)
	if v, ok := u.Get(KhrSurface); !ok || v != 25 {
		t.Fatalf("Union(nil) lost KhrSurface: (%d, %v)", v, ok)
	}
}

func TestProperties_ToSet(t *testing.T) {
	p := NewProperties().Add(KhrSurface, 25).AddNamed("VK_NV_glsl_shader", 3)
	s := p.ToSet()
	if !s.Has(KhrSurface) || !s.HasNamed("VK_NV_glsl_shader") || s.Len() != 2 {
		t.Fatalf("ToSet() = %v", s.Names())
	}
}

func TestProperties_Members(t *testing.T) {
	p := NewProperties().Add(KhrSwapchain, 67).AddNamed("VK_AMD_gcn_shader", 1)
	want := []Property{
		{Name: "VK_AMD_gcn_shader", SpecVersion: 1},
		{Name: "VK_KHR_swapchain", SpecVersion: 67},
	}
	if got := p.Members(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Members() = %v, want %v", got, want)
	}
}
