package core

import "testing"

func TestVersionPacking(t *testing.T) {
	tests := []struct {
		version Version
		packed  uint32
	}{
		{Version{1, 0, 0}, 1 << 22},
		{Version{1, 3, 280}, 1<<22 | 3<<12 | 280},
		{Version{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.version.Uint32(); got != tt.packed {
			t.Errorf("%s.Uint32() = %#x, want %#x", tt.version, got, tt.packed)
		}
		if got := VersionFromUint32(tt.packed); got != tt.version {
			t.Errorf("VersionFromUint32(%#x) = %s, want %s", tt.packed, got, tt.version)
		}
	}
}

func TestVersionString(t *testing.T) {
	if s := (Version{1, 2, 3}).String(); s != "1.2.3" {
		t.Errorf("String() = %q", s)
	}
}
