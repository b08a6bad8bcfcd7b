package goose

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3_Creation(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"positive", 1, 2, 3},
		{"negative", -1, -2, -3},
		{"mixed", -5, 10, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V3(tt.x, tt.y, tt.z)
			if v.X != tt.x || v.Y != tt.y || v.Z != tt.z {
				t.Errorf("V3(%v, %v, %v) = %v", tt.x, tt.y, tt.z, v)
			}
		})
	}
}

func TestVec3_AddSub(t *testing.T) {
	tests := []struct {
		name     string
		v, w     Vec3
		sum, dif Vec3
	}{
		{"zero", V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0)},
		{"positive", V3(1, 2, 3), V3(4, 5, 6), V3(5, 7, 9), V3(-3, -3, -3)},
		{"mixed", V3(1, -2, 3), V3(-4, 5, -6), V3(-3, 3, -3), V3(5, -7, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Add(tt.w); !got.Approx(tt.sum, 1e-6) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.sum)
			}
			if got := tt.v.Sub(tt.w); !got.Approx(tt.dif, 1e-6) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.v, tt.w, got, tt.dif)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect float32
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 0},
		{"parallel", V3(0, 0, 1), V3(0, 0, 1), 1},
		{"opposite", V3(0, 1, 0), V3(0, -1, 0), -1},
		{"general", V3(1, 2, 3), V3(4, 5, 6), 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Dot(tt.w); math32.Abs(got-tt.expect) > 1e-6 {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"parallel", V3(1, 1, 1), V3(2, 2, 2), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); !got.Approx(tt.expect, 1e-6) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_LengthNormalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		length float32
	}{
		{"unit x", V3(1, 0, 0), 1},
		{"pythagorean", V3(3, 4, 0), 5},
		{"diagonal", V3(1, 1, 1), math32.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math32.Abs(got-tt.length) > 1e-6 {
				t.Errorf("%v.Length() = %v, want %v", tt.v, got, tt.length)
			}
			n := tt.v.Normalize()
			if math32.Abs(n.Length()-1) > 1e-6 {
				t.Errorf("%v.Normalize().Length() = %v, want 1", tt.v, n.Length())
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(2, 4, 6)

	if got := a.Lerp(b, 0); !got.Approx(a, 1e-6) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !got.Approx(b, 1e-6) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !got.Approx(V3(1, 2, 3), 1e-6) {
		t.Errorf("Lerp(0.5) = %v, want (1, 2, 3)", got)
	}
}

func TestVec4_Arithmetic(t *testing.T) {
	v := V4(1, 2, 3, 4)
	w := V4(5, 6, 7, 8)

	if got := v.Add(w); !got.Approx(V4(6, 8, 10, 12), 1e-6) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(w); !got.Approx(V4(-4, -4, -4, -4), 1e-6) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(2); !got.Approx(V4(2, 4, 6, 8), 1e-6) {
		t.Errorf("Mul = %v", got)
	}
	if got := v.Dot(w); math32.Abs(got-70) > 1e-6 {
		t.Errorf("Dot = %v, want 70", got)
	}
}

func TestVec4_XYZ(t *testing.T) {
	if got := V4(1, 2, 3, 4).XYZ(); got != V3(1, 2, 3) {
		t.Errorf("XYZ() = %v, want (1, 2, 3)", got)
	}
}

func TestVec4_Lerp(t *testing.T) {
	a := V4(0, 0, 0, 0)
	b := V4(1, 2, 3, 4)

	if got := a.Lerp(b, 0.25); !got.Approx(V4(0.25, 0.5, 0.75, 1), 1e-6) {
		t.Errorf("Lerp(0.25) = %v", got)
	}
}
