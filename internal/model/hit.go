package model

// HitKind tells weapons how to resolve a hit on a collider.
type HitKind int32

const (
	HitNone HitKind = iota
	HitSurface
	HitMelee
	HitTurret
	HitFlying
	HitPlayer
)

func (k HitKind) String() string {
	switch k {
	case HitSurface:
		return "SURFACE"
	case HitMelee:
		return "MELEE"
	case HitTurret:
		return "TURRET"
	case HitFlying:
		return "FLYING"
	case HitPlayer:
		return "PLAYER"
	default:
		return "NONE"
	}
}

// Layer is a collision layer bitmask.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerLevel
	LayerPlayer
	LayerWeapon
	LayerEnemy
	LayerProjectile

	LayerAll Layer = ^Layer(0)
)

// Has reports whether every bit of o is set in l.
func (l Layer) Has(o Layer) bool { return l&o == o }

// Collider is the gameplay owner of a collision volume.
type Collider interface {
	HitKind() HitKind
}

// Hit is the first contact of a ray or swept volume.
type Hit struct {
	Collider Collider
	Point    Vec3
	Normal   Vec3
	Distance float64
}
