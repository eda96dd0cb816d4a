package gradient

import "testing"

func TestLerp(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	tests := []struct {
		name     string
		a, b     RGB
		t        float64
		expected RGB
	}{
		{"t=0 returns a", black, white, 0, black},
		{"t=1 returns b", black, white, 1, white},
		{"midpoint rounds up", black, white, 0.5, RGB{128, 128, 128}},
		{"t clamped below", black, white, -3, black},
		{"t clamped above", black, white, 7, white},
		{"per channel", RGB{100, 0, 200}, RGB{200, 100, 0}, 0.5, RGB{150, 50, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
				t.Errorf("Lerp = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBilinearCorners(t *testing.T) {
	tl := RGB{255, 0, 0}
	tr := RGB{0, 255, 0}
	bl := RGB{0, 0, 255}
	br := RGB{255, 255, 0}

	corners := []struct {
		x, y     float64
		expected RGB
	}{
		{0, 0, tl},
		{1, 0, tr},
		{0, 1, bl},
		{1, 1, br},
	}
	for _, c := range corners {
		if got := Bilinear(tl, tr, bl, br, c.x, c.y); got != c.expected {
			t.Errorf("Bilinear(%v, %v) = %v, expected %v", c.x, c.y, got, c.expected)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 0x1a, G: 0xb2, B: 0x3c}
	if c.Hex() != "#1ab23c" {
		t.Errorf("Hex = %q", c.Hex())
	}

	parsed, ok := ParseHex(c.Hex())
	if !ok || parsed != c {
		t.Errorf("ParseHex(%q) = %v, %v", c.Hex(), parsed, ok)
	}

	if _, ok := ParseHex("2193b0"); !ok {
		t.Error("ParseHex should accept a missing '#'")
	}

	bad := []string{"", "#12345", "#1234567", "#gg0000", "nothex"}
	for _, s := range bad {
		if _, ok := ParseHex(s); ok {
			t.Errorf("ParseHex(%q) should fail", s)
		}
	}
}
