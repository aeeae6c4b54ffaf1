package model

import "math"

// Vec3 is a point or direction in world space.
// Y is up; X and Z span the ground plane.
type Vec3 struct {
	X float64 `yaml:"x" msgpack:"x"`
	Y float64 `yaml:"y" msgpack:"y"`
	Z float64 `yaml:"z" msgpack:"z"`
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

func (v Vec3) Add(o Vec3) Vec3         { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3         { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3    { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64      { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64            { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Flat() Vec3              { return Vec3{X: v.X, Z: v.Z} }
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Len() }

// FlatDistance returns the distance between v and o projected on the ground plane.
func (v Vec3) FlatDistance(o Vec3) float64 {
	return v.Sub(o).Flat().Len()
}

// Norm returns v scaled to unit length, or the zero vector when v has no length.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Transform is a spawn or placement pose. Yaw is in degrees, 0 faces +Z.
type Transform struct {
	Position Vec3    `yaml:"position" msgpack:"position"`
	Yaw      float64 `yaml:"yaw" msgpack:"yaw"`
}

// YawTo returns the yaw (degrees) that faces from -> to on the ground plane.
func YawTo(from, to Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(d.X, d.Z) * 180 / math.Pi
}

// Forward returns the unit ground-plane direction for yaw degrees.
func Forward(yaw float64) Vec3 {
	r := yaw * math.Pi / 180
	return Vec3{X: math.Sin(r), Z: math.Cos(r)}
}

// SmoothYaw moves current toward desired along the shortest arc by fraction t (clamped to [0,1]).
func SmoothYaw(current, desired, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	delta := math.Mod(desired-current+540, 360) - 180
	return NormalizeYaw(current + delta*t)
}

// NormalizeYaw wraps degrees into [0, 360).
func NormalizeYaw(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
