package progress

import "fmt"

// QualityNames are the graphics quality presets, lowest first.
var QualityNames = []string{"Very Low", "Low", "Medium", "High", "Very High", "Ultra"}

// Settings are the player's persisted preferences.
type Settings struct {
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
	Brightness  float64 `yaml:"brightness"`
	Quality     int     `yaml:"graphics_quality"`
}

// DefaultSettings returns full volume, unit brightness and Medium quality.
func DefaultSettings() Settings {
	return Settings{MusicVolume: 1, SoundVolume: 1, Brightness: 1, Quality: 2}
}

// Clamp forces every value into its valid range.
func (s Settings) Clamp() Settings {
	s.MusicVolume = clamp01(s.MusicVolume)
	s.SoundVolume = clamp01(s.SoundVolume)
	s.Brightness = max(s.Brightness, 0)
	s.Quality = min(max(s.Quality, 0), len(QualityNames)-1)
	return s
}

// QualityLabel is the label shown next to the quality slider.
func (s Settings) QualityLabel() string {
	return fmt.Sprintf("Quality: %s", QualityNames[s.Clamp().Quality])
}

func clamp01(v float64) float64 { return min(max(v, 0), 1) }
