package goose

import _ "embed"

// Embedded WGSL source for the render pipeline's shader module.
// The Go functions in this file are the same two stages expressed on
// the CPU; ShadeVertex mirrors vs_main and ShadeFragment mirrors
// fs_main exactly.
//
//go:embed shader.wgsl
var shaderSource string

// Shader entry point names within ShaderSource.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShaderSource returns the WGSL source of the vertex and fragment
// stages for hosts that run them on a GPU device.
func ShaderSource() string {
	return shaderSource
}

// Lighting constants baked into the fragment stage. They are part of
// the shader, not configuration.
const (
	// Ambient is the constant ambient contribution added to the
	// Lambertian diffuse term.
	Ambient = 0.1
)

// lightDir is the fixed light direction, normalize((1,1,1)).
// Computed once at init so the Go stages and the WGSL stages agree on
// the same 32-bit value.
var lightDir = V3(1, 1, 1).Normalize()

// LightDirection returns the fixed light direction used by the
// fragment stage.
func LightDirection() Vec3 {
	return lightDir
}

// ShadeVertex runs the vertex stage on one vertex. It is a pure
// function: clip position is the input position with w=1 (no
// model/view/projection transform), and color and normal pass through
// unmodified. The normal is not renormalized or run through a normal
// matrix; the caller must supply normals already correct for the space
// the fragment stage assumes.
func ShadeVertex(in VertexInput) VertexOutput {
	return VertexOutput{
		ClipPosition: V4(in.Position.X, in.Position.Y, in.Position.Z, 1),
		Color:        in.Color,
		Normal:       in.Normal,
	}
}

// ShadeFragment runs the fragment stage on one interpolated vertex
// record and returns the RGBA color written to render target 0.
//
// The diffuse term is the standard Lambertian clamp max(dot(N, L), 0)
// against the fixed light direction, plus the constant ambient term.
// Alpha passes through untouched; lighting does not affect
// transparency.
//
// The interpolated normal is assumed, not enforced, to be unit length.
// Interpolation across a triangle can denormalize a unit normal and
// this stage does not renormalize it, so intensity drifts slightly
// toward triangle interiors. That matches the shipped shader.
func ShadeFragment(in VertexOutput) Vec4 {
	diff := in.Normal.Dot(lightDir)
	if diff < 0 {
		diff = 0
	}
	intensity := diff + Ambient
	return V4(
		in.Color.X*intensity,
		in.Color.Y*intensity,
		in.Color.Z*intensity,
		in.Color.W,
	)
}
