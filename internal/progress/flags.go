// Package progress tracks scene flow (key, level gates, kill zones) and the
// persisted player settings.
package progress

import "log/slog"

// Flags is the scene-flow state shared by triggers. It replaces engine
// statics: whoever owns the encounter owns one Flags value.
type Flags struct {
	HasKey     bool `yaml:"has_key" msgpack:"has_key"`
	SceneIndex int  `yaml:"scene_index" msgpack:"scene_index"`
	SceneCount int  `yaml:"scene_count" msgpack:"scene_count"`

	reloadRequested bool
	sceneChanged    bool
}

// NewFlags starts at scene 0 of sceneCount.
func NewFlags(sceneCount int) *Flags {
	return &Flags{SceneCount: max(sceneCount, 1)}
}

// AdvanceScene moves to the next scene, wrapping to 0 after the last.
func (f *Flags) AdvanceScene() int {
	next := f.SceneIndex + 1
	if next >= f.SceneCount {
		next = 0
	}
	f.SceneIndex = next
	f.sceneChanged = true
	slog.Info("advancing scene", "scene", next, "of", f.SceneCount)
	return next
}

// RequestReload asks the owner to reload the current scene.
func (f *Flags) RequestReload() { f.reloadRequested = true }

// TakeReload reports and clears a pending reload request.
func (f *Flags) TakeReload() bool {
	r := f.reloadRequested
	f.reloadRequested = false
	return r
}

// TakeSceneChange reports and clears a pending scene change.
func (f *Flags) TakeSceneChange() bool {
	c := f.sceneChanged
	f.sceneChanged = false
	return c
}
