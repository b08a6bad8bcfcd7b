// Package render packs scene data into the byte buffers a host
// pipeline uploads, and computes the per-mesh draw ranges the host
// walks when recording a render pass. It touches no GPU device; the
// output is plain bytes in the layout goose.VertexLayout describes.
package render

import (
	"encoding/binary"

	goose "github.com/jeff-pow/silly-goose"
	"github.com/jeff-pow/silly-goose/scene"
)

// BufferSet holds the packed vertex and index data for one scene,
// split the way the host binds it: static buffers written once,
// dynamic buffers re-written every frame.
type BufferSet struct {
	StaticVertexData []byte
	StaticIndexData  []byte

	DynamicVertexData []byte
	DynamicIndexData  []byte
}

// NewBufferSet packs all four buffers from the scene's current state.
func NewBufferSet(s *scene.Scene) *BufferSet {
	b := &BufferSet{
		StaticVertexData: PackVertices(nil, s.StaticVertices()),
		StaticIndexData:  PackIndices(nil, s.StaticIndices()),
	}
	b.DynamicVertexData = PackVertices(nil, s.DynamicVertices())
	b.DynamicIndexData = PackIndices(nil, s.DynamicIndices())

	goose.Logger().Debug("buffers packed",
		"static_vertex_bytes", len(b.StaticVertexData),
		"static_index_bytes", len(b.StaticIndexData),
		"dynamic_vertex_bytes", len(b.DynamicVertexData),
		"dynamic_index_bytes", len(b.DynamicIndexData))
	return b
}

// UpdateDynamic re-packs the dynamic vertex buffer from the scene,
// reusing the existing allocation when the size is unchanged. This is
// the per-frame path after physics moves the balls; index data is
// stable after construction and is left alone.
func (b *BufferSet) UpdateDynamic(s *scene.Scene) {
	b.DynamicVertexData = PackVertices(b.DynamicVertexData[:0], s.DynamicVertices())
}

// PackVertices appends vertices to buf in the layout
// goose.VertexLayout describes and returns the extended slice.
func PackVertices(buf []byte, vertices []goose.VertexInput) []byte {
	for _, v := range vertices {
		buf = goose.AppendVertex(buf, v)
	}
	return buf
}

// PackIndices appends indices to buf as little-endian uint32 and
// returns the extended slice. The pipeline binds index buffers with a
// 32-bit index format.
func PackIndices(buf []byte, indices []uint32) []byte {
	for _, idx := range indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

// DrawRange is one indexed draw within a shared index buffer:
// indices [First, First+Count) with a base vertex of zero, since mesh
// indices are rebased at scene-assembly time.
type DrawRange struct {
	First int
	Count int
}

// DrawRanges returns the draw range for each mesh, in mesh order. The
// host replays these against the bound vertex and index buffers, one
// draw call per mesh.
func DrawRanges(meshes []scene.Mesh) []DrawRange {
	ranges := make([]DrawRange, len(meshes))
	for i := range meshes {
		ranges[i] = DrawRange{
			First: meshes[i].BufferOffset,
			Count: meshes[i].IndexCount(),
		}
	}
	return ranges
}
