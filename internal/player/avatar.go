package player

import "github.com/udisondev/deadzone/internal/model"

// Avatar is the player in the scene: the target enemies track and the
// collider their projectiles damage.
type Avatar struct {
	id        uint32
	pos       model.Vec3
	yaw       float64
	eyeHeight float64
	spawn     model.Transform
	health    *Health
}

// NewAvatar places the player at spawn with the given health pool.
func NewAvatar(spawn model.Transform, eyeHeight float64, health *Health) *Avatar {
	return &Avatar{
		id:        model.IDGenerator().NextPlayerID(),
		pos:       spawn.Position,
		yaw:       spawn.Yaw,
		eyeHeight: eyeHeight,
		spawn:     spawn,
		health:    health,
	}
}

func (a *Avatar) ObjectID() uint32         { return a.id }
func (a *Avatar) Tag() string              { return model.TagPlayer }
func (a *Avatar) Position() model.Vec3     { return a.pos }
func (a *Avatar) SetPosition(p model.Vec3) { a.pos = p }
func (a *Avatar) Yaw() float64             { return a.yaw }
func (a *Avatar) SetYaw(yaw float64)       { a.yaw = model.NormalizeYaw(yaw) }
func (a *Avatar) Health() *Health          { return a.health }
func (a *Avatar) HitKind() model.HitKind   { return model.HitPlayer }

// Alive reports whether the player can still be targeted.
func (a *Avatar) Alive() bool { return !a.health.Dead() }

// EyePosition is where the weapon fires from.
func (a *Avatar) EyePosition() model.Vec3 {
	return a.pos.Add(model.Up.Scale(a.eyeHeight))
}

// TakeDamage forwards to the health pool.
func (a *Avatar) TakeDamage(amount float64) { a.health.TakeDamage(amount) }

// Respawn returns the player to the spawn pose at full health.
func (a *Avatar) Respawn() {
	a.pos = a.spawn.Position
	a.yaw = a.spawn.Yaw
	a.health.Reset()
}
