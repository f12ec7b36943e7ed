package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same centre",
			a:        BoxAt(0, 0, 32, 32),
			b:        BoxAt(0, 0, 3.6, 21.6),
			expected: true,
		},
		{
			name:     "far apart",
			a:        BoxAt(100, 100, 3.6, 21.6),
			b:        BoxAt(-100, -100, 32, 32),
			expected: false,
		},
		{
			name:     "touching horizontal edges",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edges",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "separated on x only",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated on y only",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(0, -10.5, 10, 10),
			expected: false,
		},
		{
			name:     "corner overlap",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
