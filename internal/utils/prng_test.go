package utils

import "testing"

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestRange(t *testing.T) {
	p := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := p.Range(18, 68)
		if v < 18 || v >= 68 {
			t.Fatalf("value %v out of [18, 68)", v)
		}
	}
}

func TestCadence(t *testing.T) {
	cases := map[float64]int64{15: 15, 13.636: 14, 0.2: 1, 0: 1}
	for in, want := range cases {
		if got := Cadence(in); got != want {
			t.Errorf("Cadence(%v) = %d, want %d", in, got, want)
		}
	}
}
