package goose

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexInput is one vertex record as the host supplies it in the
// bound vertex buffer. It is read-only input to the vertex stage.
type VertexInput struct {
	Position Vec3
	Color    Vec4
	Normal   Vec3
}

// VertexOutput is the record the vertex stage produces. The host
// rasterizer interpolates it across a primitive's surface before each
// fragment invocation consumes it.
type VertexOutput struct {
	// ClipPosition is the homogeneous clip-space position. The vertex
	// stage writes (position.xyz, 1); no projection is applied.
	ClipPosition Vec4
	Color        Vec4
	Normal       Vec3
}

// Shader locations for the vertex attributes. The host must bind its
// vertex buffer with exactly this slot numbering and these formats.
const (
	PositionLocation = 0 // float32x3
	ColorLocation    = 1 // float32x4
	NormalLocation   = 2 // float32x3
)

// VertexStride is the byte stride per vertex in the bound buffer.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0, offset 0)
//	color    (vec4<f32>) = 16 bytes (location 1, offset 12)
//	normal   (vec3<f32>) = 12 bytes (location 2, offset 28)
//
// Total = 40 bytes per vertex, tightly packed, little-endian.
const VertexStride = 40

// Attribute byte offsets within one vertex record.
const (
	positionOffset = 0
	colorOffset    = 12
	normalOffset   = 28
)

// VertexLayout returns the vertex buffer layout the render pipeline
// binds against. Slot numbering and formats are a binding contract:
// the host's buffers must match this exactly.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: positionOffset, ShaderLocation: PositionLocation},
			{Format: gputypes.VertexFormatFloat32x4, Offset: colorOffset, ShaderLocation: ColorLocation},
			{Format: gputypes.VertexFormatFloat32x3, Offset: normalOffset, ShaderLocation: NormalLocation},
		},
	}
}

// PutVertex packs one vertex into buf, which must be at least
// VertexStride bytes. The byte layout matches VertexLayout.
func PutVertex(buf []byte, v VertexInput) {
	_ = buf[VertexStride-1]
	putFloat32(buf[0:], v.Position.X)
	putFloat32(buf[4:], v.Position.Y)
	putFloat32(buf[8:], v.Position.Z)
	putFloat32(buf[12:], v.Color.X)
	putFloat32(buf[16:], v.Color.Y)
	putFloat32(buf[20:], v.Color.Z)
	putFloat32(buf[24:], v.Color.W)
	putFloat32(buf[28:], v.Normal.X)
	putFloat32(buf[32:], v.Normal.Y)
	putFloat32(buf[36:], v.Normal.Z)
}

// AppendVertex appends the packed form of one vertex to buf and returns
// the extended slice.
func AppendVertex(buf []byte, v VertexInput) []byte {
	var tmp [VertexStride]byte
	PutVertex(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
