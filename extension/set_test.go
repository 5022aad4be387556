package extension

import (
	"reflect"
	"testing"
)

func TestSet_AddHas(t *testing.T) {
	s := NewSet()
	if s.Has(KhrSurface) {
		t.Fatal("empty set reports KhrSurface")
	}
	s.Add(KhrSurface)
	if !s.Has(KhrSurface) {
		t.Fatal("Add(KhrSurface) not visible through Has")
	}
	if !s.HasNamed("VK_KHR_surface") {
		t.Fatal("Add(KhrSurface) not visible through HasNamed")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestSet_NamedKnownReconciliation(t *testing.T) {
	// Adding a known extension by its canonical name must be
	// indistinguishable from adding it through the typed path.
	byName := NewSet().AddNamed("VK_KHR_swapchain")
	typed := NewSet().Add(KhrSwapchain)

	if !reflect.DeepEqual(byName, typed) {
		t.Fatalf("AddNamed(canonical) = %#v, want %#v", byName, typed)
	}
	if !byName.Has(KhrSwapchain) {
		t.Fatal("AddNamed(canonical) not visible through typed Has")
	}
	if len(byName.named) != 0 {
		t.Fatalf("canonical name leaked into the named set: %v", byName.named)
	}
}

func TestSet_Algebra(t *testing.T) {
	a := NewSet().Add(KhrSurface).Add(KhrSwapchain).AddNamed("VK_NV_glsl_shader")
	b := NewSet().Add(KhrSwapchain).Add(ExtDebugReport).AddNamed("VK_NV_glsl_shader").AddNamed("VK_AMD_gcn_shader")

	probes := []struct {
		known Extension
		name  string
	}{
		{known: KhrSurface},
		{known: KhrSwapchain},
		{known: ExtDebugReport},
		{known: KhrDisplay},
		{name: "VK_NV_glsl_shader"},
		{name: "VK_AMD_gcn_shader"},
		{name: "VK_IMG_filter_cubic"},
	}

	union := a.Union(b)
	intersection := a.Intersection(b)
	difference := a.Difference(b)

	has := func(s *Set, p struct {
		known Extension
		name  string
	}) bool {
		if p.name != "" {
			return s.HasNamed(p.name)
		}
		return s.Has(p.known)
	}

	for _, p := range probes {
		inA, inB := has(a, p), has(b, p)
		if got := has(union, p); got != (inA || inB) {
			t.Errorf("union.has(%v) = %v, want %v", p, got, inA || inB)
		}
		if got := has(intersection, p); got != (inA && inB) {
			t.Errorf("intersection.has(%v) = %v, want %v", p, got, inA && inB)
		}
		if got := has(difference, p); got != (inA && !inB) {
			t.Errorf("difference.has(%v) = %v, want %v", p, got, inA && !inB)
		}
	}
}

func TestSet_AlgebraWithNil(t *testing.T) {
	a := NewSet().Add(KhrSurface).AddNamed("VK_NV_glsl_shader")

	if d := a.Difference(nil); d.Len() != a.Len() {
		t.Fatalf("Difference(nil).Len() = %d, want %d", d.Len(), a.Len())
	}
	if i := a.Intersection(nil); !i.IsEmpty() {
		t.Fatalf("Intersection(nil) not empty: %v", i.Names())
	}
	if u := a.Union(nil); !u.Has(KhrSurface) || !u.HasNamed("VK_NV_glsl_shader") {
		t.Fatalf("Union(nil) lost members: %v", u.Names())
	}
}

func TestSet_Names(t *testing.T) {
	s := NewSet().Add(KhrSwapchain).AddNamed("VK_AMD_gcn_shader").Add(KhrSurface)
	want := []string{"VK_AMD_gcn_shader", "VK_KHR_surface", "VK_KHR_swapchain"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestExtension_OutOfRange(t *testing.T) {
	bogus := extensionCount + 7
	if got := bogus.Name(); got != "VK_UNKNOWN" {
		t.Errorf("Name() = %q, want the sentinel", got)
	}
	if got := bogus.Scope(); got != InstanceScope {
		t.Errorf("Scope() = %v, want InstanceScope", got)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want Extension
		ok   bool
	}{
		{"VK_KHR_surface", KhrSurface, true},
		{"VK_KHR_display_swapchain", KhrDisplaySwapchain, true},
		{"VK_EXT_validation_features", ExtValidationFeatures, true},
		{"vk_khr_surface", 0, false}, // case-sensitive
		{"VK_NV_glsl_shader", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ByName(tt.name)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("ByName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
