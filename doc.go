// Package goose implements the shading core of the silly-goose renderer
// as plain Go: the per-vertex and per-fragment stages, the vertex layout
// contract the host pipeline binds against, and the host-side scene,
// physics, and buffer plumbing around them.
//
// # Overview
//
// The shading core is two pure, stateless functions:
//
//	out := goose.ShadeVertex(in)     // per vertex
//	rgba := goose.ShadeFragment(out) // per fragment, after interpolation
//
// ShadeVertex passes position through as clip-space position with w=1
// and forwards color and normal untouched. ShadeFragment applies a
// fixed-direction Lambertian diffuse term plus a constant ambient term.
// Rasterization sits between the two stages and is owned by the host
// pipeline, not by this package; InterpolateOutput models the attribute
// interpolation that the rasterizer performs so hosts and tests can
// reproduce the boundary.
//
// # Batch execution
//
// Stage invocations are independent, so whole buffers can be shaded in
// parallel:
//
//	outs := make([]goose.VertexOutput, len(ins))
//	goose.ShadeVertices(outs, ins)
//
// # GPU hosts
//
// The same two stages exist as embedded WGSL (ShaderSource) for hosts
// that run them on a device; the gpu subpackage compiles that source to
// SPIR-V. This package does not manage devices, pipelines, or surfaces.
package goose

// Version is the current version of the library.
const Version = "0.2.0"
