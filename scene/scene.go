package scene

import (
	goose "github.com/jeff-pow/silly-goose"
)

// Scene holds the meshes the host uploads: a static half written once
// (the border) and a dynamic half re-written every frame (the balls).
// Each half flattens into one shared vertex buffer and one shared index
// buffer; per-mesh BufferOffset records where each mesh's indices land.
type Scene struct {
	StaticMeshes  []Mesh
	DynamicMeshes []Mesh
	Balls         []Ball

	// borderRadius and borderCenter describe the collision shell.
	// CreateBorder overrides the defaults.
	borderRadius float32
	borderCenter goose.Vec3
}

// NewScene returns an empty scene with the default border shell for
// collisions (CreateBorder only adds the visible mesh).
func NewScene() *Scene {
	return &Scene{
		borderRadius: BorderRadius,
		borderCenter: BorderCenter,
	}
}

// AddStatic appends a mesh to the static half and returns its index.
// The mesh's indices are rebased onto the static vertex buffer and its
// BufferOffset is set to its position in the flattened index buffer.
func (s *Scene) AddStatic(m Mesh) int {
	rebase(&m, s.StaticMeshes)
	s.StaticMeshes = append(s.StaticMeshes, m)
	return len(s.StaticMeshes) - 1
}

// AddDynamic appends a mesh to the dynamic half and returns its index.
func (s *Scene) AddDynamic(m Mesh) int {
	rebase(&m, s.DynamicMeshes)
	s.DynamicMeshes = append(s.DynamicMeshes, m)
	return len(s.DynamicMeshes) - 1
}

// rebase offsets m's local indices by the vertex count of the meshes
// already packed before it, and records its index-buffer offset, so the
// flattened buffers can be drawn with a base vertex of zero.
func rebase(m *Mesh, packed []Mesh) {
	vertexBase := uint32(0)
	indexBase := 0
	for i := range packed {
		vertexBase += uint32(len(packed[i].Vertices))
		indexBase += len(packed[i].Indices)
	}

	if vertexBase != 0 {
		rebased := make([]uint32, len(m.Indices))
		for i, idx := range m.Indices {
			rebased[i] = idx + vertexBase
		}
		m.Indices = rebased
	}
	m.BufferOffset = indexBase
}

// StaticVertices returns the static halves' vertices flattened in mesh
// order, the layout the static vertex buffer is packed in.
func (s *Scene) StaticVertices() []goose.VertexInput {
	return flattenVertices(s.StaticMeshes)
}

// StaticIndices returns the static halves' indices flattened in mesh
// order, already rebased onto the flattened vertex buffer.
func (s *Scene) StaticIndices() []uint32 {
	return flattenIndices(s.StaticMeshes)
}

// DynamicVertices returns the dynamic halves' vertices flattened in
// mesh order. Call UpdateDynamicVertices first to fold in the latest
// physics state.
func (s *Scene) DynamicVertices() []goose.VertexInput {
	return flattenVertices(s.DynamicMeshes)
}

// DynamicIndices returns the dynamic halves' indices flattened in mesh
// order. The index data never changes after scene construction; only
// the vertices move.
func (s *Scene) DynamicIndices() []uint32 {
	return flattenIndices(s.DynamicMeshes)
}

func flattenVertices(meshes []Mesh) []goose.VertexInput {
	n := 0
	for i := range meshes {
		n += len(meshes[i].Vertices)
	}
	out := make([]goose.VertexInput, 0, n)
	for i := range meshes {
		out = append(out, meshes[i].Vertices...)
	}
	return out
}

func flattenIndices(meshes []Mesh) []uint32 {
	n := 0
	for i := range meshes {
		n += len(meshes[i].Indices)
	}
	out := make([]uint32, 0, n)
	for i := range meshes {
		out = append(out, meshes[i].Indices...)
	}
	return out
}

// CreateBorder adds the spherical arena shell the balls bounce inside
// of: an interior-facing sphere so its inside surface catches the
// light. segments maps to the shell's latitude band count.
func (s *Scene) CreateBorder(radius float32, segments int, center goose.Vec3) {
	s.borderRadius = radius
	s.borderCenter = center
	white := goose.V4(1, 1, 1, 1)
	s.AddStatic(InteriorSphere(radius, segments, center, white))
}
