// Package scene assembles the vertex data the shading stages consume:
// tessellated meshes, a scene split into static and dynamic halves, and
// the fixed-step physics that moves the dynamic half.
package scene

import (
	"github.com/chewxy/math32"

	goose "github.com/jeff-pow/silly-goose"
)

// Mesh is one tessellated shape: a vertex list plus triangle-list
// indices into it. Indices are local to the mesh; BufferOffset is
// assigned when the mesh joins a Scene and locates the mesh's index
// range within the scene's flattened index buffer.
type Mesh struct {
	Vertices     []goose.VertexInput
	Indices      []uint32
	BufferOffset int
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int { return len(m.Indices) }

// Circle tessellates a filled circle of the given radius in the z=0
// plane as a triangle fan around a center vertex. All vertices are
// white with +Z normals. segments must be >= 3.
func Circle(radius float32, segments int) Mesh {
	white := goose.V4(1, 1, 1, 1)
	normal := goose.V3(0, 0, 1)

	vertices := make([]goose.VertexInput, 0, segments+1)
	indices := make([]uint32, 0, segments*3)

	// Center vertex
	vertices = append(vertices, goose.VertexInput{
		Position: goose.V3(0, 0, 0),
		Color:    white,
		Normal:   normal,
	})

	for i := range segments {
		angle := float32(i) * 2 * math32.Pi / float32(segments)
		vertices = append(vertices, goose.VertexInput{
			Position: goose.V3(radius*math32.Cos(angle), radius*math32.Sin(angle), 0),
			Color:    white,
			Normal:   normal,
		})

		if i < segments-1 {
			indices = append(indices, 0, uint32(i+1), uint32(i+2))
		} else {
			// Close the fan back to the first ring vertex
			indices = append(indices, 0, uint32(segments), 1)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices}
}

// Sphere tessellates a UV sphere around center. segments sets the
// latitude band count; longitude uses twice as many sectors. Normals
// are outward unit vectors, already correct for the fragment stage.
// segments must be >= 2.
func Sphere(radius float32, segments int, center goose.Vec3, color goose.Vec4) Mesh {
	return sphere(radius, segments, center, color, false)
}

// InteriorSphere is a Sphere with inward-facing normals and reversed
// winding, for shells viewed from the inside such as the scene border.
func InteriorSphere(radius float32, segments int, center goose.Vec3, color goose.Vec4) Mesh {
	return sphere(radius, segments, center, color, true)
}

func sphere(radius float32, segments int, center goose.Vec3, color goose.Vec4, interior bool) Mesh {
	rings := segments
	sectors := segments * 2

	vertices := make([]goose.VertexInput, 0, (rings+1)*(sectors+1))
	indices := make([]uint32, 0, rings*sectors*6)

	for r := 0; r <= rings; r++ {
		phi := float32(r) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for s := 0; s <= sectors; s++ {
			theta := float32(s) * 2 * math32.Pi / float32(sectors)
			sinTheta, cosTheta := math32.Sincos(theta)

			dir := goose.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			normal := dir
			if interior {
				normal = dir.Neg()
			}

			vertices = append(vertices, goose.VertexInput{
				Position: center.Add(dir.Mul(radius)),
				Color:    color,
				Normal:   normal,
			})
		}
	}

	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			if interior {
				indices = append(indices, a, b, a+1, a+1, b, b+1)
			} else {
				indices = append(indices, a, a+1, b, b, a+1, b+1)
			}
		}
	}

	return Mesh{Vertices: vertices, Indices: indices}
}

// translate rewrites dst's positions as src's positions plus delta.
// dst and src may alias.
func translate(dst, src []goose.VertexInput, delta goose.Vec3) {
	for i := range src {
		dst[i] = src[i]
		dst[i].Position = src[i].Position.Add(delta)
	}
}
