package scene

import (
	goose "github.com/jeff-pow/silly-goose"
)

// Simulation constants. DT is the fixed physics timestep; the border is
// the spherical arena every ball stays inside.
const (
	DT           float32 = 1e-3
	BorderRadius float32 = 0.85
)

// BorderCenter is the center of the spherical arena.
var BorderCenter = goose.V3(0, 0, 0)

// Gravity is the constant acceleration applied to every ball.
var Gravity = goose.V3(0, -9.81, 0)

// ballSegments is the tessellation density for ball meshes.
const ballSegments = 16

// Ball is one simulated ball: kinematic state plus the dynamic mesh it
// drives. The mesh's vertices are kept in object space in template and
// re-translated into the scene's dynamic mesh each frame.
type Ball struct {
	Radius   float32
	Position goose.Vec3
	Velocity goose.Vec3
	Color    goose.Vec4

	// mesh indexes the ball's entry in Scene.DynamicMeshes.
	mesh int

	// template holds the ball's vertices centered at the origin.
	template []goose.VertexInput
}

// AddBall adds a ball of the given radius at center and returns its
// index. The ball starts at rest; gravity takes it from there.
func (s *Scene) AddBall(radius float32, center goose.Vec3, color goose.Vec4) int {
	m := Sphere(radius, ballSegments, goose.V3(0, 0, 0), color)

	template := make([]goose.VertexInput, len(m.Vertices))
	copy(template, m.Vertices)

	// Place the mesh at the starting position before first upload.
	translate(m.Vertices, template, center)

	meshIdx := s.AddDynamic(m)
	s.Balls = append(s.Balls, Ball{
		Radius:   radius,
		Position: center,
		Color:    color,
		mesh:     meshIdx,
		template: template,
	})
	return len(s.Balls) - 1
}

// UpdatePhysics advances every ball by one timestep: explicit Euler
// integration under gravity, then an elastic reflection off the
// spherical border for any ball whose surface crossed it.
func (s *Scene) UpdatePhysics(dt float32) {
	for i := range s.Balls {
		b := &s.Balls[i]

		b.Velocity = b.Velocity.Add(Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		// Border collision: the ball's surface may not cross the shell.
		offset := b.Position.Sub(s.borderCenter)
		limit := s.borderRadius - b.Radius
		if offset.LengthSquared() > limit*limit {
			n := offset.Normalize()
			// Clamp back onto the shell, reflect the outward velocity.
			b.Position = s.borderCenter.Add(n.Mul(limit))
			vn := b.Velocity.Dot(n)
			if vn > 0 {
				b.Velocity = b.Velocity.Sub(n.Mul(2 * vn))
			}
		}
	}
}

// UpdateDynamicVertices folds the physics state back into the dynamic
// meshes: each ball's vertices are re-translated to its position, and
// every color channel brightens by 0.01 per step, saturating at 1.
// Alpha is untouched.
func (s *Scene) UpdateDynamicVertices() {
	for i := range s.Balls {
		b := &s.Balls[i]

		b.Color.X = brighten(b.Color.X)
		b.Color.Y = brighten(b.Color.Y)
		b.Color.Z = brighten(b.Color.Z)

		m := &s.DynamicMeshes[b.mesh]
		translate(m.Vertices, b.template, b.Position)
		for j := range m.Vertices {
			m.Vertices[j].Color = b.Color
		}
	}
}

func brighten(c float32) float32 {
	c += 0.01
	if c > 1 {
		return 1
	}
	return c
}
