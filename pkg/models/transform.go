package models

import (
	"github.com/qmuntal/gltf"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

var identityGLTF = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// matrixFromGLTF converts a column-major glTF matrix.
func matrixFromGLTF(m [16]float64) sbmath.Mat4 {
	var out sbmath.Mat4
	for c := range 4 {
		out[0].Set(c, float32(m[c*4]))
		out[1].Set(c, float32(m[c*4+1]))
		out[2].Set(c, float32(m[c*4+2]))
		out[3].Set(c, float32(m[c*4+3]))
	}
	return out
}

// quatFromGLTF converts a glTF rotation (x, y, z, w) into a Quat whose
// RotateVec and ToMat4 apply the same rotation the glTF node does.
func quatFromGLTF(r [4]float64) sbmath.Quat {
	if r == [4]float64{} {
		return sbmath.QuatIdentity
	}
	return sbmath.Quat{
		X: -float32(r[0]),
		Y: -float32(r[1]),
		Z: -float32(r[2]),
		W: float32(r[3]),
	}.Normalize()
}

// composeTRS builds T * R * S.
func composeTRS(t sbmath.Vec3, r sbmath.Quat, s sbmath.Vec3) sbmath.Mat4 {
	return sbmath.NewMat4Translation(t).Mul(r.ToMat4()).Mul(sbmath.NewMat4Scale(s))
}

// decompose splits an affine transform without shear into translation,
// rotation and scale. A mirrored transform gets a negative X scale.
func decompose(m sbmath.Mat4) (t sbmath.Vec3, r sbmath.Quat, s sbmath.Vec3) {
	t = m.Translation()
	basis := m.ToMat3()
	s = sbmath.V3(basis[0].Length(), basis[1].Length(), basis[2].Length())
	if basis.Determinant() < 0 {
		s.X = -s.X
	}
	if s.X == 0 || s.Y == 0 || s.Z == 0 {
		return t, sbmath.QuatIdentity, s
	}
	basis[0] = basis[0].Scale(1 / s.X)
	basis[1] = basis[1].Scale(1 / s.Y)
	basis[2] = basis[2].Scale(1 / s.Z)
	return t, basis.OrthoNormalize().ToQuat().Normalize(), s
}

// nodeTransform returns the local transform of n and its components.
// Nodes decoded by gltf.Open always carry defaults; zero-valued Rotation
// and Scale in documents built in memory are treated as unset.
func nodeTransform(n *gltf.Node) (local sbmath.Mat4, t sbmath.Vec3, r sbmath.Quat, s sbmath.Vec3) {
	if n.Matrix != [16]float64{} && n.Matrix != identityGLTF {
		local = matrixFromGLTF(n.Matrix)
		t, r, s = decompose(local)
		return local, t, r, s
	}

	t = sbmath.V3(float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]))
	r = quatFromGLTF(n.Rotation)
	s = sbmath.V3(1, 1, 1)
	if n.Scale != [3]float64{} {
		s = sbmath.V3(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	}
	return composeTRS(t, r, s), t, r, s
}

// orientation returns the Euler angles of the rotation part of m, ignoring
// scale. Singular transforms have no orientation and yield zero angles.
func orientation(m sbmath.Mat4) sbmath.Angles {
	basis := m.ToMat3()
	det := basis.Determinant()
	if det == 0 {
		return sbmath.AngZero
	}
	if det < 0 {
		basis[0] = basis[0].Neg()
	}
	return basis.OrthoNormalize().ToAngles()
}
