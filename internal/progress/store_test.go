package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("deadzone_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("save data unavailable: %v", err)
	}
	return m
}

func TestStore_MemoryOnly(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.Load())
	assert.False(t, s.Persistent())
	assert.Equal(t, DefaultSettings(), s.Settings())

	require.NoError(t, s.SaveSettings(Settings{MusicVolume: 2, Quality: 99}))
	assert.Equal(t, 1.0, s.Settings().MusicVolume)
	assert.Equal(t, len(QualityNames)-1, s.Settings().Quality)
}

func TestStore_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	s := NewStore(m)
	require.NoError(t, s.SaveSettings(Settings{MusicVolume: 0.3, SoundVolume: 0.7, Brightness: 1.5, Quality: 4}))
	flags := NewFlags(3)
	flags.HasKey = true
	flags.SceneIndex = 2
	require.NoError(t, s.SaveFlags(flags))

	reopened := NewStore(m)
	require.NoError(t, reopened.Load())

	assert.Equal(t, Settings{MusicVolume: 0.3, SoundVolume: 0.7, Brightness: 1.5, Quality: 4}, reopened.Settings())

	restored := NewFlags(3)
	require.True(t, reopened.RestoreFlags(restored))
	assert.True(t, restored.HasKey)
	assert.Equal(t, 2, restored.SceneIndex)
}

func TestStore_RestoreIgnoresOutOfRangeScene(t *testing.T) {
	s := NewStore(nil)
	flags := NewFlags(5)
	flags.SceneIndex = 4
	require.NoError(t, s.SaveFlags(flags))

	smaller := NewFlags(2)
	require.True(t, s.RestoreFlags(smaller))
	assert.Equal(t, 0, smaller.SceneIndex)
}

func TestSettings_QualityLabel(t *testing.T) {
	assert.Equal(t, "Quality: Medium", DefaultSettings().QualityLabel())
	assert.Equal(t, "Quality: Very Low", Settings{Quality: -3}.QualityLabel())
}
