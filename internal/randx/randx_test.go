package randx

import "testing"

func TestIntnRange(t *testing.T) {
	for range 1000 {
		v := Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", v)
		}
	}
}

func TestIntnOne(t *testing.T) {
	for range 10 {
		if v := Intn(1); v != 0 {
			t.Fatalf("Intn(1) = %d, want 0", v)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	for range 1000 {
		f := Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", f)
		}
	}
}

func TestPickCoversAll(t *testing.T) {
	s := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for range 200 {
		seen[Pick(s)] = true
	}
	if len(seen) != len(s) {
		t.Errorf("Pick saw %d of %d elements over 200 draws", len(seen), len(s))
	}
}

func TestDigit(t *testing.T) {
	for range 200 {
		d := Digit()
		if d < '0' || d > '9' {
			t.Fatalf("Digit() = %q, not a decimal digit", d)
		}
	}
}
