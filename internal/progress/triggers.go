package progress

import (
	"log/slog"

	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// Trigger reacts to tagged objects entering its volume.
type Trigger interface {
	Center() model.Vec3
	Radius() float64
	OnEnter(tag string)
}

// Volume is a spherical trigger volume.
type Volume struct {
	Position model.Vec3 `yaml:"position"`
	Size     float64    `yaml:"radius"`
}

func (v Volume) Center() model.Vec3 { return v.Position }
func (v Volume) Radius() float64    { return v.Size }

// KeyPickup grants the key to the first player that touches it.
type KeyPickup struct {
	Volume
	flags    *Flags
	fx       engine.FX
	consumed bool
}

func NewKeyPickup(v Volume, flags *Flags, fx engine.FX) *KeyPickup {
	return &KeyPickup{Volume: v, flags: flags, fx: engine.OrNop(fx)}
}

func (k *KeyPickup) Consumed() bool { return k.consumed }

func (k *KeyPickup) OnEnter(tag string) {
	if tag != model.TagPlayer || k.consumed {
		return
	}
	k.consumed = true
	k.flags.HasKey = true
	k.fx.Play(engine.CueKeyPickup, k.Position)
	slog.Info("key collected")
}

// LevelGate advances the scene when the player arrives holding the key.
// Without RequireKey it always advances.
type LevelGate struct {
	Volume
	RequireKey bool
	flags      *Flags
}

func NewLevelGate(v Volume, requireKey bool, flags *Flags) *LevelGate {
	return &LevelGate{Volume: v, RequireKey: requireKey, flags: flags}
}

func (g *LevelGate) OnEnter(tag string) {
	if tag != model.TagPlayer {
		return
	}
	if g.RequireKey && !g.flags.HasKey {
		slog.Info("you need the key to proceed")
		return
	}
	g.flags.AdvanceScene()
}

// KillZone reloads the scene when the player falls in.
type KillZone struct {
	Volume
	flags *Flags
}

func NewKillZone(v Volume, flags *Flags) *KillZone {
	return &KillZone{Volume: v, flags: flags}
}

func (z *KillZone) OnEnter(tag string) {
	if tag != model.TagPlayer {
		return
	}
	slog.Info("player entered kill zone")
	z.flags.RequestReload()
}

// Triggers fires OnEnter once per entry: an object must leave a volume
// before it can trigger it again.
type Triggers struct {
	list   []Trigger
	inside map[int]bool
}

func NewTriggers(list ...Trigger) *Triggers {
	return &Triggers{list: list, inside: make(map[int]bool)}
}

func (t *Triggers) Add(tr Trigger) { t.list = append(t.list, tr) }

// Check tests pos against every volume and fires entries for tag.
func (t *Triggers) Check(tag string, pos model.Vec3) {
	for i, tr := range t.list {
		in := pos.Distance(tr.Center()) <= tr.Radius()
		if in && !t.inside[i] {
			tr.OnEnter(tag)
		}
		t.inside[i] = in
	}
}

// Reset forgets who is inside.
func (t *Triggers) Reset() { clear(t.inside) }
