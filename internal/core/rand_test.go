package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	r1 := NewRNG(42)
	r2 := NewRNG(42)

	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	r1 := NewRNG(1)
	r2 := NewRNG(2)

	same := true
	for i := 0; i < 10; i++ {
		if r1.Next() != r2.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestRNGZeroSeedUsable(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 && r.Next() == 0 {
		t.Error("zero seed should fall back to a usable default")
	}
}

func TestRNGFloatRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		f := r.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %f, expected [0, 1)", f)
		}
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		n := r.Intn(13)
		if n < 0 || n >= 13 {
			t.Fatalf("Intn(13) = %d, out of range", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := NewRNG(99)
	vals := make([]int, 20)
	for i := range vals {
		vals[i] = i
	}

	r.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})

	seen := make(map[int]bool)
	for _, v := range vals {
		if seen[v] {
			t.Fatalf("value %d duplicated after shuffle", v)
		}
		seen[v] = true
	}
	if len(seen) != 20 {
		t.Errorf("shuffle lost elements: %d of 20", len(seen))
	}
}
