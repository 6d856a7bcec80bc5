package testutil

import "testing"

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	RequireInRange(t, s, -1, 1, 0)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	RequireBitIdentical(t, a, b)
	RequireInRange(t, a, -1, 1, 0)
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.25, 5) {
		if v != 0.25 {
			t.Fatalf("DC[%d] = %v, want 0.25", i, v)
		}
	}
}
