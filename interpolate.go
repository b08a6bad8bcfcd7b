package goose

// LerpOutput linearly interpolates every attribute of two vertex-stage
// outputs. t=0 returns a, t=1 returns b.
//
// This models the attribute interpolation the host rasterizer performs
// between the vertex and fragment stages; it is not invoked by either
// stage. The normal is interpolated like any other attribute and NOT
// renormalized, so interpolating two unit normals generally yields a
// shorter-than-unit normal. ShadeFragment consumes it as is.
func LerpOutput(a, b VertexOutput, t float32) VertexOutput {
	return VertexOutput{
		ClipPosition: a.ClipPosition.Lerp(b.ClipPosition, t),
		Color:        a.Color.Lerp(b.Color, t),
		Normal:       a.Normal.Lerp(b.Normal, t),
	}
}

// InterpolateOutput combines three vertex-stage outputs with
// barycentric weights u, v, w (u+v+w should be 1 for a point inside
// the triangle). Like LerpOutput it models the rasterizer's attribute
// interpolation and applies no renormalization.
func InterpolateOutput(a, b, c VertexOutput, u, v, w float32) VertexOutput {
	return VertexOutput{
		ClipPosition: baryVec4(a.ClipPosition, b.ClipPosition, c.ClipPosition, u, v, w),
		Color:        baryVec4(a.Color, b.Color, c.Color, u, v, w),
		Normal:       baryVec3(a.Normal, b.Normal, c.Normal, u, v, w),
	}
}

func baryVec3(a, b, c Vec3, u, v, w float32) Vec3 {
	return Vec3{
		X: a.X*u + b.X*v + c.X*w,
		Y: a.Y*u + b.Y*v + c.Y*w,
		Z: a.Z*u + b.Z*v + c.Z*w,
	}
}

func baryVec4(a, b, c Vec4, u, v, w float32) Vec4 {
	return Vec4{
		X: a.X*u + b.X*v + c.X*w,
		Y: a.Y*u + b.Y*v + c.Y*w,
		Z: a.Z*u + b.Z*v + c.Z*w,
		W: a.W*u + b.W*v + c.W*w,
	}
}
