package goose

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestShadeVertex_ClipPositionPassthrough(t *testing.T) {
	tests := []struct {
		name     string
		position Vec3
	}{
		{"origin", V3(0, 0, 0)},
		{"positive", V3(0.5, 0.25, 0.75)},
		{"negative", V3(-1, -0.5, -0.25)},
		{"outside clip volume", V3(10, -20, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ShadeVertex(VertexInput{Position: tt.position})
			want := V4(tt.position.X, tt.position.Y, tt.position.Z, 1)
			if out.ClipPosition != want {
				t.Errorf("ClipPosition = %v, want %v", out.ClipPosition, want)
			}
			if out.ClipPosition.W != 1 {
				t.Errorf("ClipPosition.W = %v, want exactly 1", out.ClipPosition.W)
			}
		})
	}
}

func TestShadeVertex_AttributePassthrough(t *testing.T) {
	// Color and normal must pass through bit-identical: no transform,
	// no renormalization.
	in := VertexInput{
		Position: V3(0.1, 0.2, 0.3),
		Color:    V4(0.9, 0.8, 0.7, 0.6),
		Normal:   V3(3, 4, 0), // deliberately not unit length
	}

	out := ShadeVertex(in)
	if out.Color != in.Color {
		t.Errorf("Color = %v, want %v unchanged", out.Color, in.Color)
	}
	if out.Normal != in.Normal {
		t.Errorf("Normal = %v, want %v unchanged (no renormalization)", out.Normal, in.Normal)
	}
}

func TestLightDirection_IsNormalizedDiagonal(t *testing.T) {
	l := LightDirection()
	if math32.Abs(l.Length()-1) > 1e-6 {
		t.Errorf("LightDirection length = %v, want 1", l.Length())
	}
	inv := 1 / math32.Sqrt(3)
	if !l.Approx(V3(inv, inv, inv), 1e-6) {
		t.Errorf("LightDirection = %v, want normalize(1,1,1)", l)
	}
}

func TestShadeFragment_AmbientOnly(t *testing.T) {
	// Any normal facing away from (or perpendicular to) the light
	// contributes zero diffuse: RGB is exactly color * 0.1.
	tests := []struct {
		name   string
		normal Vec3
	}{
		{"opposite the light", V3(-1, -1, -1).Normalize()},
		{"zero normal", V3(0, 0, 0)},
		{"perpendicular", V3(1, -1, 0).Normalize()},
		{"facing away x", V3(-1, 0, 0)},
	}

	color := V4(0.5, 0.25, 1, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ShadeFragment(VertexOutput{Color: color, Normal: tt.normal})
			want := V4(color.X*0.1, color.Y*0.1, color.Z*0.1, color.W)
			if !out.Approx(want, 1e-6) {
				t.Errorf("ShadeFragment = %v, want ambient-only %v", out, want)
			}
		})
	}
}

func TestShadeFragment_FullDiffuse(t *testing.T) {
	// Normal aligned with the light direction: diff = 1, so RGB scales
	// by 1.1. No clamping happens in this stage.
	color := V4(1, 0.5, 0.25, 1)
	out := ShadeFragment(VertexOutput{Color: color, Normal: LightDirection()})

	want := V4(color.X*1.1, color.Y*1.1, color.Z*1.1, 1)
	if !out.Approx(want, 1e-6) {
		t.Errorf("ShadeFragment = %v, want %v (RGB may exceed 1 here)", out, want)
	}
	if out.X <= 1 {
		t.Errorf("red channel = %v, want > 1 (saturation is downstream's job)", out.X)
	}
}

func TestShadeFragment_AlphaPassthrough(t *testing.T) {
	tests := []struct {
		name  string
		alpha float32
	}{
		{"opaque", 1},
		{"transparent", 0},
		{"half", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ShadeFragment(VertexOutput{
				Color:  V4(0.3, 0.6, 0.9, tt.alpha),
				Normal: V3(0, 1, 0),
			})
			if out.W != tt.alpha {
				t.Errorf("alpha = %v, want %v exactly", out.W, tt.alpha)
			}
		})
	}
}

func TestShadeFragment_NoRenormalization(t *testing.T) {
	// An interpolated normal shorter than unit length scales the
	// diffuse term down proportionally; the stage must not normalize
	// it back. Half-length light-direction normal gives diff = 0.5.
	short := LightDirection().Mul(0.5)
	out := ShadeFragment(VertexOutput{Color: V4(1, 1, 1, 1), Normal: short})

	want := float32(0.5 + Ambient)
	if math32.Abs(out.X-want) > 1e-6 {
		t.Errorf("intensity with half-length normal = %v, want %v", out.X, want)
	}
}

func TestShadingPipeline_RedVertexScenario(t *testing.T) {
	// The reference scenario: a red vertex at the origin with a +Z
	// normal, run through both stages.
	in := VertexInput{
		Position: V3(0, 0, 0),
		Color:    V4(1, 0, 0, 1),
		Normal:   V3(0, 0, 1),
	}

	out := ShadeVertex(in)
	if out.ClipPosition != V4(0, 0, 0, 1) {
		t.Fatalf("ClipPosition = %v, want (0, 0, 0, 1)", out.ClipPosition)
	}

	rgba := ShadeFragment(out)
	// diff = dot((0,0,1), normalize(1,1,1)) = 1/sqrt(3) ~ 0.577
	wantR := 1/math32.Sqrt(3) + Ambient
	want := V4(wantR, 0, 0, 1)
	if !rgba.Approx(want, 1e-5) {
		t.Errorf("final color = %v, want ~%v", rgba, want)
	}
}

func TestShaderSource_EntryPoints(t *testing.T) {
	src := ShaderSource()
	if src == "" {
		t.Fatal("ShaderSource() is empty")
	}
	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(src, "fn "+entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}
