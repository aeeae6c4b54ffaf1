package encounter

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/udisondev/deadzone/internal/combat"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/progress"
	"github.com/udisondev/deadzone/internal/spawn"
)

// Summary is the outcome of a run.
type Summary struct {
	ID            string         `msgpack:"id"`
	StartedAt     time.Time      `msgpack:"started_at"`
	Elapsed       float64        `msgpack:"elapsed"` // game seconds
	Steps         int            `msgpack:"steps"`
	Kills         map[string]int `msgpack:"kills"`
	Deaths        int            `msgpack:"deaths"`
	Reloads       int            `msgpack:"reloads"`
	ScenesCleared int            `msgpack:"scenes_cleared"`
	Shots         int            `msgpack:"shots"`
	Combat        combat.Stats   `msgpack:"combat"`
	Spawners      []spawn.Stats  `msgpack:"spawners"`
}

// TotalKills sums kills over every enemy kind.
func (s Summary) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

// Summary reports the run so far. Shots are counted by the combat manager
// since the weapon's own counter restarts with every life.
func (e *Encounter) Summary() Summary {
	kills := make(map[string]int, len(e.kills))
	for k, n := range e.kills {
		kills[k.String()] = n
	}
	stats := e.combat.Stats()
	return Summary{
		ID:            e.id.String(),
		StartedAt:     e.startedAt,
		Elapsed:       e.elapsed,
		Steps:         e.steps,
		Kills:         kills,
		Deaths:        e.deaths,
		Reloads:       e.reloads,
		ScenesCleared: e.scenes,
		Shots:         stats.BulletsFired,
		Combat:        stats,
		Spawners:      e.spawns.Stats(),
	}
}

// EnemyState is one enemy in a snapshot.
type EnemyState struct {
	ObjectID uint32     `msgpack:"object_id"`
	Kind     string     `msgpack:"kind"`
	State    string     `msgpack:"state"`
	Health   int        `msgpack:"health"`
	Position model.Vec3 `msgpack:"position"`
}

// PlayerState is the player in a snapshot.
type PlayerState struct {
	ObjectID uint32     `msgpack:"object_id"`
	Position model.Vec3 `msgpack:"position"`
	Yaw      float64    `msgpack:"yaw"`
	Health   float64    `msgpack:"health"`
	Max      float64    `msgpack:"max"`
}

// Snapshot is the arena state at one step.
type Snapshot struct {
	Encounter   string         `msgpack:"encounter"`
	Elapsed     float64        `msgpack:"elapsed"`
	Player      PlayerState    `msgpack:"player"`
	Enemies     []EnemyState   `msgpack:"enemies"`
	Bullets     int            `msgpack:"bullets"`
	Projectiles int            `msgpack:"projectiles"`
	Flags       progress.Flags `msgpack:"flags"`
}

// Snapshot captures the current step.
func (e *Encounter) Snapshot() Snapshot {
	bullets, projectiles := e.combat.Live()
	s := Snapshot{
		Encounter: e.id.String(),
		Elapsed:   e.elapsed,
		Player: PlayerState{
			ObjectID: e.avatar.ObjectID(),
			Position: e.avatar.Position(),
			Yaw:      e.avatar.Yaw(),
			Health:   e.health.Current(),
			Max:      e.health.Max(),
		},
		Bullets:     bullets,
		Projectiles: projectiles,
		Flags:       *e.flags,
	}
	for _, z := range e.zombies.Active() {
		s.Enemies = append(s.Enemies, EnemyState{z.ObjectID(), z.Kind().String(), z.State().String(), z.Health(), z.Position()})
	}
	for _, d := range e.drones.Active() {
		s.Enemies = append(s.Enemies, EnemyState{d.ObjectID(), d.Kind().String(), d.State().String(), d.Health(), d.Position()})
	}
	for _, t := range e.turrets {
		if t.IsDead() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyState{t.ObjectID(), t.Kind().String(), t.State().String(), t.Health(), t.Position()})
	}
	return s
}

// EncodeSnapshot packs s with msgpack.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// EncodeSummary packs s with msgpack.
func EncodeSummary(s Summary) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encoding summary: %w", err)
	}
	return data, nil
}

// DecodeSnapshot unpacks a snapshot written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}
