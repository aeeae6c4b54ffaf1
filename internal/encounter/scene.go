package encounter

import (
	"fmt"

	"github.com/udisondev/deadzone/internal/ai"
	"github.com/udisondev/deadzone/internal/enemy"
	"github.com/udisondev/deadzone/internal/model"
	"github.com/udisondev/deadzone/internal/navgrid"
	"github.com/udisondev/deadzone/internal/physics"
	"github.com/udisondev/deadzone/internal/progress"
	"github.com/udisondev/deadzone/internal/spawn"
)

// buildLevel lays out the walkable grid and the collision walls.
func (e *Encounter) buildLevel() {
	a := e.cfg.Arena
	e.grid = navgrid.NewGrid(a.Width, a.Height, a.CellSize, a.Origin)
	e.world = physics.NewWorld()

	for _, w := range a.Walls {
		half := w.Thickness / 2
		lo := model.Vec3{X: min(w.From.X, w.To.X) - half, Z: min(w.From.Z, w.To.Z) - half}
		hi := model.Vec3{X: max(w.From.X, w.To.X) + half, Z: max(w.From.Z, w.To.Z) + half}
		e.grid.BlockRect(lo, hi)
		e.world.AddWall(w.From, w.To, half)
	}
}

func (e *Encounter) deps(nav *navgrid.Agent) enemy.Deps {
	d := enemy.Deps{
		FX:       e.fx,
		Launcher: e.combat,
		Lookup:   e,
		Overlap:  e.world,
		Rand:     e.rng,
	}
	if nav != nil {
		d.Nav = nav
	}
	return d
}

// combatant is what every enemy kind offers the arena.
type combatant interface {
	physics.Body
	ai.Controller
	Kind() model.Kind
	OnDeath(fn func(objectID uint32))
}

// enlist wires a new enemy into the tick manager and the collision world.
// Its collider goes away on death so corpses stop soaking up shots.
func (e *Encounter) enlist(c combatant, radius float64) {
	kind := c.Kind()
	e.ai.Register(c)
	e.world.Add(c, radius, model.LayerEnemy)
	c.OnDeath(func(id uint32) {
		e.kills[kind]++
		e.world.Remove(id)
		delete(e.touching, id)
	})
}

func (e *Encounter) spawnZombie(at model.Transform) (*enemy.Ground, error) {
	agent := navgrid.NewAgent(e.grid, at.Position)
	z, err := enemy.NewGround(e.cfg.Ground, e.deps(agent))
	if err != nil {
		return nil, err
	}
	e.crowd.Add(agent)
	e.enlist(z, z.Radius())
	return z, nil
}

func (e *Encounter) spawnDrone(at model.Transform) (*enemy.Flyer, error) {
	agent := navgrid.NewAgent(e.grid, at.Position)
	d, err := enemy.NewFlyer(e.cfg.Flyer, e.deps(agent))
	if err != nil {
		return nil, err
	}
	d.SetTarget(e.avatar)
	e.crowd.Add(agent)
	e.enlist(d, d.Radius())
	return d, nil
}

func (e *Encounter) buildSpawners() error {
	zombies, err := spawn.NewSpawner[*enemy.Ground](e.cfg.Spawners.Zombie, e.spawnZombie)
	if err != nil {
		return fmt.Errorf("zombie spawner: %w", err)
	}
	drones, err := spawn.NewSpawner[*enemy.Flyer](e.cfg.Spawners.Drone, e.spawnDrone)
	if err != nil {
		return fmt.Errorf("drone spawner: %w", err)
	}
	e.zombies, e.drones = zombies, drones
	e.spawns.Add(zombies)
	e.spawns.Add(drones)
	return nil
}

// placeTurrets builds the scene's pre-placed turrets.
func (e *Encounter) placeTurrets() error {
	e.turrets = e.turrets[:0]
	for i, at := range e.cfg.Turrets {
		t, err := enemy.NewTurret(e.cfg.Turret, at, e.deps(nil))
		if err != nil {
			return fmt.Errorf("turret %d: %w", i, err)
		}
		e.enlist(t, t.Radius())
		e.turrets = append(e.turrets, t)
	}
	return nil
}

func (e *Encounter) buildTriggers() {
	tc := e.cfg.Triggers
	e.triggers = progress.NewTriggers()
	if tc.Key != nil && !e.flags.HasKey {
		e.triggers.Add(progress.NewKeyPickup(*tc.Key, e.flags, e.fx))
	}
	if tc.Gate != nil {
		e.triggers.Add(progress.NewLevelGate(tc.Gate.Volume, tc.Gate.RequireKey, e.flags))
	}
	for _, kz := range tc.KillZones {
		e.triggers.Add(progress.NewKillZone(kz, e.flags))
	}
}
