package model

// Kind identifies an enemy archetype.
type Kind int32

const (
	KindZombie Kind = iota
	KindDrone
	KindTurret
)

func (k Kind) String() string {
	switch k {
	case KindZombie:
		return "ZOMBIE"
	case KindDrone:
		return "DRONE"
	case KindTurret:
		return "TURRET"
	default:
		return "UNKNOWN"
	}
}

// GroundState is the state of a ground melee enemy.
type GroundState int32

const (
	GroundIdle GroundState = iota
	GroundChasing
	GroundAttacking
	GroundDying
	GroundDespawned
)

func (s GroundState) String() string {
	switch s {
	case GroundIdle:
		return "IDLE"
	case GroundChasing:
		return "CHASING"
	case GroundAttacking:
		return "ATTACKING"
	case GroundDying:
		return "DYING"
	case GroundDespawned:
		return "DESPAWNED"
	default:
		return "UNKNOWN"
	}
}

// FlyerState is the state of a flying ranged enemy.
type FlyerState int32

const (
	FlyerIdle FlyerState = iota
	FlyerApproaching
	FlyerOrbiting
	FlyerAttacking
	FlyerFalling
	FlyerExploded
)

func (s FlyerState) String() string {
	switch s {
	case FlyerIdle:
		return "IDLE"
	case FlyerApproaching:
		return "APPROACHING"
	case FlyerOrbiting:
		return "ORBITING"
	case FlyerAttacking:
		return "ATTACKING"
	case FlyerFalling:
		return "FALLING"
	case FlyerExploded:
		return "EXPLODED"
	default:
		return "UNKNOWN"
	}
}

// TurretState is the state of a stationary turret.
type TurretState int32

const (
	TurretDormant TurretState = iota
	TurretTracking
	TurretAttacking
	TurretDestroyed
)

func (s TurretState) String() string {
	switch s {
	case TurretDormant:
		return "DORMANT"
	case TurretTracking:
		return "TRACKING"
	case TurretAttacking:
		return "ATTACKING"
	case TurretDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}
