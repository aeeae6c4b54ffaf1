package progress

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	saveObject       = "deadzone"
	settingsProperty = "settings"
	flagsProperty    = "progress"
)

// Store persists settings and scene progress through gdata. A Store without
// a gdata manager keeps everything in memory.
type Store struct {
	manager  *gdata.Manager
	settings Settings
	flags    Flags
	hasFlags bool
}

// OpenStore opens the save data for appName. When the platform storage is
// unavailable the store degrades to memory-only and logs a warning.
func OpenStore(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		slog.Warn("save data unavailable, settings will not persist", "app", appName, "error", err)
		m = nil
	}
	return NewStore(m)
}

// NewStore wraps m. m may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m, settings: DefaultSettings()}
}

// Persistent reports whether writes reach disk.
func (s *Store) Persistent() bool { return s.manager != nil }

// Settings returns the current settings.
func (s *Store) Settings() Settings { return s.settings }

// Load reads settings and progress. Missing entries keep their defaults.
func (s *Store) Load() error {
	if s.manager == nil {
		return nil
	}
	if err := s.load(settingsProperty, &s.settings); err != nil {
		return err
	}
	s.settings = s.settings.Clamp()

	var f Flags
	if s.manager.ObjectPropExists(saveObject, flagsProperty) {
		if err := s.load(flagsProperty, &f); err != nil {
			return err
		}
		s.flags = f
		s.hasFlags = true
	}
	return nil
}

func (s *Store) load(prop string, v any) error {
	if !s.manager.ObjectPropExists(saveObject, prop) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(saveObject, prop)
	if err != nil {
		return fmt.Errorf("loading %s: %w", prop, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", prop, err)
	}
	return nil
}

// SaveSettings clamps and stores settings.
func (s *Store) SaveSettings(settings Settings) error {
	s.settings = settings.Clamp()
	return s.save(settingsProperty, s.settings)
}

// SaveFlags stores scene progress.
func (s *Store) SaveFlags(f *Flags) error {
	s.flags = *f
	s.hasFlags = true
	return s.save(flagsProperty, s.flags)
}

// RestoreFlags copies saved progress into f. It reports false when nothing was saved.
func (s *Store) RestoreFlags(f *Flags) bool {
	if !s.hasFlags {
		return false
	}
	f.HasKey = s.flags.HasKey
	if s.flags.SceneIndex < f.SceneCount {
		f.SceneIndex = s.flags.SceneIndex
	}
	return true
}

func (s *Store) save(prop string, v any) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", prop, err)
	}
	if err := s.manager.SaveObjectProp(saveObject, prop, data); err != nil {
		return fmt.Errorf("saving %s: %w", prop, err)
	}
	return nil
}
