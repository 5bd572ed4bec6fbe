// Package settings holds the user preferences edited on the settings
// screen and persists them as a flat key=value file.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/starfall/internal/core"
)

// Keys of the settings file, in the order they are written.
const (
	KeyMasterVolume      = "master_volume"
	KeyMusicVolume       = "music_volume"
	KeySfxVolume         = "sfx_volume"
	KeyMenuSoundsEnabled = "menu_sounds_enabled"
	KeyMenuSoundVolume   = "menu_sound_volume"
	KeyLanguage          = "language"
)

// Keys lists every known key in file order.
var Keys = []string{
	KeyMasterVolume,
	KeyMusicVolume,
	KeySfxVolume,
	KeyMenuSoundsEnabled,
	KeyMenuSoundVolume,
	KeyLanguage,
}

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = errors.New("settings: unknown key")

// MaxVolume is the upper bound of every volume.
const MaxVolume = 100

// Settings are the user preferences. Volumes are in [0, MaxVolume].
type Settings struct {
	MasterVolume      int
	MusicVolume       int
	SfxVolume         int
	MenuSoundsEnabled bool
	MenuSoundVolume   int
	Language          string // BCP 47 tag, e.g. "en"
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		MasterVolume:      80,
		MusicVolume:       70,
		SfxVolume:         70,
		MenuSoundsEnabled: true,
		MenuSoundVolume:   60,
		Language:          "en",
	}
}

// Clamp brings every volume into range and fills an empty language.
func (s *Settings) Clamp() {
	s.MasterVolume = core.Clamp(s.MasterVolume, 0, MaxVolume)
	s.MusicVolume = core.Clamp(s.MusicVolume, 0, MaxVolume)
	s.SfxVolume = core.Clamp(s.SfxVolume, 0, MaxVolume)
	s.MenuSoundVolume = core.Clamp(s.MenuSoundVolume, 0, MaxVolume)
	s.Language = strings.TrimSpace(s.Language)
	if s.Language == "" {
		s.Language = Default().Language
	}
}

// Get returns the textual value stored under key.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case KeyMasterVolume:
		return strconv.Itoa(s.MasterVolume), nil
	case KeyMusicVolume:
		return strconv.Itoa(s.MusicVolume), nil
	case KeySfxVolume:
		return strconv.Itoa(s.SfxVolume), nil
	case KeyMenuSoundsEnabled:
		return strconv.FormatBool(s.MenuSoundsEnabled), nil
	case KeyMenuSoundVolume:
		return strconv.Itoa(s.MenuSoundVolume), nil
	case KeyLanguage:
		return s.Language, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Set parses value and stores it under key. Volumes are clamped.
// On error s is left unchanged.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyMasterVolume:
		return setVolume(&s.MasterVolume, key, value)
	case KeyMusicVolume:
		return setVolume(&s.MusicVolume, key, value)
	case KeySfxVolume:
		return setVolume(&s.SfxVolume, key, value)
	case KeyMenuSoundVolume:
		return setVolume(&s.MenuSoundVolume, key, value)
	case KeyMenuSoundsEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("settings: %s: invalid boolean %q", key, value)
		}
		s.MenuSoundsEnabled = b
		return nil
	case KeyLanguage:
		if value == "" {
			return fmt.Errorf("settings: %s: empty value", key)
		}
		s.Language = value
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

func setVolume(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("settings: %s: invalid volume %q", key, value)
	}
	*dst = core.Clamp(n, 0, MaxVolume)
	return nil
}
