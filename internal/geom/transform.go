package geom

// Matrix4Translate returns a translation by v.
func Matrix4Translate(v Vector3) Matrix4 {
	M := Matrix4Identity
	M.M[0][3], M.M[1][3], M.M[2][3] = v.X, v.Y, v.Z
	return M
}

// Matrix4ScaleVector returns a per-axis scale.
func Matrix4ScaleVector(v Vector3) Matrix4 {
	M := Matrix4Identity
	M.M[0][0], M.M[1][1], M.M[2][2] = v.X, v.Y, v.Z
	return M
}

// Matrix4ScaleUniform scales every axis by s.
func Matrix4ScaleUniform(s Real) Matrix4 { return Matrix4ScaleVector(Splat3(s)) }

// Rotations about the principal axes, counterclockwise looking down the
// axis toward the origin.
func Matrix4RotateX(a Angle) Matrix4 {
	s, c := a.SinCos()
	M := Matrix4Identity
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func Matrix4RotateY(a Angle) Matrix4 {
	s, c := a.SinCos()
	M := Matrix4Identity
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}
func Matrix4RotateZ(a Angle) Matrix4 {
	s, c := a.SinCos()
	M := Matrix4Identity
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Matrix4Rotate returns a rotation by angle about axis. The axis is
// normalized first; a zero axis gives the identity.
func Matrix4Rotate(angle Angle, axis Vector3) Matrix4 {
	k := axis.Normalize()
	if k == (Vector3{}) {
		return Matrix4Identity
	}
	s, c := angle.SinCos()
	t := 1 - c
	M := Matrix4Identity
	M.M[0][0] = c + t*k.X*k.X
	M.M[0][1] = t*k.X*k.Y - s*k.Z
	M.M[0][2] = t*k.X*k.Z + s*k.Y
	M.M[1][0] = t*k.X*k.Y + s*k.Z
	M.M[1][1] = c + t*k.Y*k.Y
	M.M[1][2] = t*k.Y*k.Z - s*k.X
	M.M[2][0] = t*k.X*k.Z - s*k.Y
	M.M[2][1] = t*k.Y*k.Z + s*k.X
	M.M[2][2] = c + t*k.Z*k.Z
	return M
}

// Matrix4FromQuaternion returns the rotation of unit quaternion q.
func Matrix4FromQuaternion(q Quaternion) Matrix4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, yw, zw := q.X*q.W, q.Y*q.W, q.Z*q.W
	M := Matrix4Identity
	M.M[0][0], M.M[0][1], M.M[0][2] = 1-2*(yy+zz), 2*(xy-zw), 2*(xz+yw)
	M.M[1][0], M.M[1][1], M.M[1][2] = 2*(xy+zw), 1-2*(xx+zz), 2*(yz-xw)
	M.M[2][0], M.M[2][1], M.M[2][2] = 2*(xz-yw), 2*(yz+xw), 1-2*(xx+yy)
	return M
}

// Matrix4FromEuler composes yaw about Y, pitch about X and roll about Z.
func Matrix4FromEuler(yaw, pitch, roll Angle) Matrix4 {
	return Matrix4FromQuaternion(QuaternionFromEuler(yaw, pitch, roll))
}

// Matrix4Model returns T * R * S.
func Matrix4Model(scale Vector3, rotation Quaternion, translation Vector3) Matrix4 {
	M := Matrix4FromQuaternion(rotation).Mul(Matrix4ScaleVector(scale))
	M.M[0][3], M.M[1][3], M.M[2][3] = translation.X, translation.Y, translation.Z
	return M
}

// Matrix4LookAt returns a right-handed view matrix: the camera at eye looks
// toward target along -Z with up roughly along +Y.
func Matrix4LookAt(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Matrix4{M: [4][4]Real{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}}
}

// Matrix4Perspective returns a right-handed projection mapping the view
// frustum to clip space with z in [-1, 1].
func Matrix4Perspective(fovY Angle, aspect, near, far Real) Matrix4 {
	f := 1 / fovY.Div(2).Tan()
	nf := 1 / (near - far)
	return Matrix4{M: [4][4]Real{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, 2 * far * near * nf},
		{0, 0, -1, 0},
	}}
}

// Matrix4PerspectiveOffCenter is the frustum form of Matrix4Perspective.
func Matrix4PerspectiveOffCenter(left, right, bottom, top, near, far Real) Matrix4 {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)
	return Matrix4{M: [4][4]Real{
		{2 * near * rl, 0, (right + left) * rl, 0},
		{0, 2 * near * tb, (top + bottom) * tb, 0},
		{0, 0, -(far + near) * fn, -2 * far * near * fn},
		{0, 0, -1, 0},
	}}
}

// Matrix4Orthographic returns a centered orthographic projection.
func Matrix4Orthographic(width, height, near, far Real) Matrix4 {
	return Matrix4OrthographicOffCenter(-width/2, width/2, -height/2, height/2, near, far)
}

func Matrix4OrthographicOffCenter(left, right, bottom, top, near, far Real) Matrix4 {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)
	return Matrix4{M: [4][4]Real{
		{2 * rl, 0, 0, -(right + left) * rl},
		{0, 2 * tb, 0, -(top + bottom) * tb},
		{0, 0, -2 * fn, -(far + near) * fn},
		{0, 0, 0, 1},
	}}
}

// Matrix4Billboard orients an object at position so its +Z faces the
// camera. forward is used when the camera sits on the object.
func Matrix4Billboard(position, camera, up, forward Vector3) Matrix4 {
	look := camera.Sub(position).Normalize()
	if look == (Vector3{}) {
		look = forward.Neg().Normalize()
	}
	right := up.Cross(look).Normalize()
	u := look.Cross(right)
	return Matrix4FromColumns(right.Vector4(0), u.Vector4(0), look.Vector4(0), position.Vector4(1))
}

// Matrix4Reflection mirrors points across plane p.
func Matrix4Reflection(p Plane) Matrix4 {
	p = p.Normalize()
	n := [3]Real{p.A, p.B, p.C}
	M := Matrix4Identity
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M.M[i][j] -= 2 * n[i] * n[j]
		}
		M.M[i][3] = -2 * p.D * n[i]
	}
	return M
}

// Matrix4Shadow flattens geometry onto plane p along the light direction;
// w is 0 for a directional light and 1 for a point light at light.
func Matrix4Shadow(light Vector4, p Plane) Matrix4 {
	p = p.Normalize()
	pl := [4]Real{p.A, p.B, p.C, p.D}
	l := light.Components()
	d := p.A*light.X + p.B*light.Y + p.C*light.Z + p.D*light.W
	var M Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			M.M[r][c] = -l[r] * pl[c]
		}
		M.M[r][r] += d
	}
	return M
}
