// Package physics is the collision world gameplay queries run against.
// It projects the scene onto the ground plane (engine X/Z become cp X/Y) and
// keeps one kinematic circle per mobile collider plus static wall segments.
package physics

import (
	"log/slog"

	"github.com/jakecoffman/cp"

	"github.com/udisondev/deadzone/internal/model"
)

// Body is a scene object with a collision volume.
type Body interface {
	model.Collider
	ObjectID() uint32
	Position() model.Vec3
}

// levelPart is static level geometry; bullets leave decals on it.
type levelPart struct{}

func (levelPart) HitKind() model.HitKind { return model.HitSurface }

type entry struct {
	owner model.Collider
	src   Body // nil for static geometry
	body  *cp.Body
	shape *cp.Shape
}

// World owns the cp space. It is not safe for concurrent use.
type World struct {
	space   *cp.Space
	static  *cp.Body
	entries map[uint32]*entry
	walls   []*entry
}

// NewWorld creates an empty collision world.
func NewWorld() *World {
	space := cp.NewSpace()
	static := cp.NewStaticBody()
	space.AddBody(static)
	return &World{
		space:   space,
		static:  static,
		entries: make(map[uint32]*entry),
	}
}

func toCP(v model.Vec3) cp.Vector { return cp.Vector{X: v.X, Y: v.Z} }

func layerFilter(layer model.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES)
}

func queryFilter(mask model.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}

// AddWall adds a static level segment from a to b with the given thickness.
func (w *World) AddWall(a, b model.Vec3, radius float64) {
	shape := cp.NewSegment(w.static, toCP(a), toCP(b), radius)
	shape.SetFilter(layerFilter(model.LayerLevel))
	e := &entry{owner: levelPart{}, body: w.static, shape: shape}
	shape.UserData = e
	w.space.AddShape(shape)
	w.walls = append(w.walls, e)
}

// Add registers b as a circle of radius on layer. Re-adding an ID replaces it.
func (w *World) Add(b Body, radius float64, layer model.Layer) {
	id := b.ObjectID()
	if _, ok := w.entries[id]; ok {
		w.Remove(id)
	}

	body := cp.NewKinematicBody()
	body.SetPosition(toCP(b.Position()))
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFilter(layerFilter(layer))

	e := &entry{owner: b, src: b, body: body, shape: shape}
	shape.UserData = e
	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.entries[id] = e
}

// Remove drops the collider for id. Unknown IDs are ignored.
func (w *World) Remove(id uint32) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	w.space.RemoveShape(e.shape)
	w.space.RemoveBody(e.body)
	delete(w.entries, id)
}

// Has reports whether id has a collider.
func (w *World) Has(id uint32) bool {
	_, ok := w.entries[id]
	return ok
}

// Count returns the number of mobile colliders.
func (w *World) Count() int { return len(w.entries) }

// Sync moves every mobile collider to its owner's current position.
func (w *World) Sync() {
	for _, e := range w.entries {
		e.body.SetPosition(toCP(e.src.Position()))
		w.space.ReindexShapesForBody(e.body)
	}
}

// Clear removes every mobile collider. Walls stay.
func (w *World) Clear() {
	for id := range w.entries {
		w.Remove(id)
	}
}

// Raycast returns the first collider on mask along dir within maxDistance.
func (w *World) Raycast(origin, dir model.Vec3, maxDistance float64, mask model.Layer) (model.Hit, bool) {
	end := origin.Add(dir.Norm().Scale(maxDistance))
	return w.Sweep(origin, end, 0, mask)
}

// Sweep returns the first collider on mask touched by a circle of radius
// moving from -> to.
func (w *World) Sweep(from, to model.Vec3, radius float64, mask model.Layer) (model.Hit, bool) {
	info := w.space.SegmentQueryFirst(toCP(from), toCP(to), radius, queryFilter(mask))
	if info.Shape == nil {
		return model.Hit{}, false
	}
	e, ok := info.Shape.UserData.(*entry)
	if !ok {
		slog.Warn("collision shape without owner")
		return model.Hit{}, false
	}

	seg := to.Sub(from)
	point := from.Add(seg.Scale(info.Alpha))
	return model.Hit{
		Collider: e.owner,
		Point:    point,
		Normal:   model.Vec3{X: info.Normal.X, Z: info.Normal.Y},
		Distance: seg.Len() * info.Alpha,
	}, true
}

// CheckSphere reports whether any collider on mask lies within radius of center.
func (w *World) CheckSphere(center model.Vec3, radius float64, mask model.Layer) bool {
	info := w.space.PointQueryNearest(toCP(center), radius, queryFilter(mask))
	return info != nil && info.Shape != nil
}
