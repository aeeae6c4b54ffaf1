package engine

import "github.com/udisondev/deadzone/internal/model"

// Cue names an audio clip.
type Cue string

const (
	CueZombieWalk    Cue = "zombie_walk"
	CueZombieAttack  Cue = "zombie_attack"
	CueZombieHurt    Cue = "zombie_hurt"
	CueZombieDeath   Cue = "zombie_death"
	CueDroneAttack   Cue = "drone_attack"
	CueDroneHurt     Cue = "drone_hurt"
	CueDroneFalling  Cue = "drone_falling"
	CueExplosion     Cue = "explosion"
	CueTurretAttack  Cue = "turret_attack"
	CueTurretHurt    Cue = "turret_hurt"
	CueTurretDestroy Cue = "turret_destroy"
	CueKeyPickup     Cue = "key_pickup"
)

// Effect names a visual effect prefab.
type Effect string

const (
	EffectBlood     Effect = "blood"
	EffectDecal     Effect = "decal"
	EffectExplosion Effect = "explosion"
)

// FX is the fire-and-forget audio/VFX sink.
type FX interface {
	Play(cue Cue, at model.Vec3)
	Spawn(effect Effect, at, normal model.Vec3)
}

// NopFX discards everything.
type NopFX struct{}

func (NopFX) Play(Cue, model.Vec3)                 {}
func (NopFX) Spawn(Effect, model.Vec3, model.Vec3) {}

// OrNop returns fx, or NopFX when fx is nil.
func OrNop(fx FX) FX {
	if fx == nil {
		return NopFX{}
	}
	return fx
}
