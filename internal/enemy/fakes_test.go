package enemy

import (
	"github.com/udisondev/deadzone/internal/engine"
	"github.com/udisondev/deadzone/internal/model"
)

// fakeNav is a navigator that optionally teleports to each destination.
type fakeNav struct {
	pos          model.Vec3
	dest         model.Vec3
	destinations int
	speed        float64
	stopping     float64
	offset       float64
	stopped      bool
	teleport     bool
}

func (n *fakeNav) SetDestination(p model.Vec3) {
	if n.stopped {
		return
	}
	n.dest = p
	n.destinations++
	if n.teleport {
		n.pos = p
	}
}

func (n *fakeNav) Position() model.Vec3          { return n.pos }
func (n *fakeNav) Velocity() model.Vec3          { return model.Vec3{} }
func (n *fakeNav) SetSpeed(s float64)            { n.speed = s }
func (n *fakeNav) SetStoppingDistance(d float64) { n.stopping = d }
func (n *fakeNav) Stop()                         { n.stopped = true }
func (n *fakeNav) BaseOffset() float64           { return n.offset }
func (n *fakeNav) SetBaseOffset(h float64)       { n.offset = h }

// fakePlayer is a target with the player damage contract.
type fakePlayer struct {
	pos    model.Vec3
	dead   bool
	hits   []float64
	health float64
}

func (p *fakePlayer) Position() model.Vec3 { return p.pos }
func (p *fakePlayer) Alive() bool          { return !p.dead }
func (p *fakePlayer) TakeDamage(amount float64) {
	p.hits = append(p.hits, amount)
	p.health -= amount
}

type fakeLookup struct{ player model.Target }

func (l fakeLookup) FindWithTag(tag string) (model.Target, bool) {
	if tag != model.TagPlayer || l.player == nil {
		return nil, false
	}
	return l.player, true
}

type launch struct {
	origin, velocity model.Vec3
	damage           float64
}

type fakeLauncher struct{ shots []launch }

func (l *fakeLauncher) Launch(origin, velocity model.Vec3, damage float64) {
	l.shots = append(l.shots, launch{origin, velocity, damage})
}

// fakeOverlap reports an overlap whenever radius reaches the player.
type fakeOverlap struct {
	player *fakePlayer
	calls  int
}

func (o *fakeOverlap) CheckSphere(center model.Vec3, radius float64, mask model.Layer) bool {
	o.calls++
	if !mask.Has(model.LayerPlayer) || o.player.dead {
		return false
	}
	return center.Distance(o.player.pos) <= radius
}

type recordingFX struct {
	cues    []engine.Cue
	effects []engine.Effect
}

func (r *recordingFX) Play(cue engine.Cue, _ model.Vec3) { r.cues = append(r.cues, cue) }
func (r *recordingFX) Spawn(effect engine.Effect, _, _ model.Vec3) {
	r.effects = append(r.effects, effect)
}

func (r *recordingFX) countCue(c engine.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

func (r *recordingFX) countEffect(e engine.Effect) int {
	n := 0
	for _, x := range r.effects {
		if x == e {
			n++
		}
	}
	return n
}
