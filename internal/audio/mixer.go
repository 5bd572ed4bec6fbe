// Package audio is the volume and menu-sound service screens talk to.
// Actual playback goes through a Sink; the default one only logs.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/settings"
)

// Channel selects a volume.
type Channel int

const (
	Master Channel = iota
	Music
	Sfx
	MenuSound
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Master:
		return "master"
	case Music:
		return "music"
	case Sfx:
		return "sfx"
	case MenuSound:
		return "menu"
	default:
		return "unknown"
	}
}

// Sink plays a named sound at a volume in [0, 1].
type Sink interface {
	Play(name string, volume float64)
}

// LogSink writes played sounds to a logger at debug level.
type LogSink struct {
	Logger *log.Logger
}

// Play implements Sink.
func (s LogSink) Play(name string, volume float64) {
	logging.OrDiscard(s.Logger).Debug("play", "sound", name, "volume", volume)
}

// Mixer keeps the volume levels and the menu sound toggle.
type Mixer struct {
	volumes    [4]int
	menuSounds bool
	sink       Sink
}

// NewMixer creates a mixer with default settings. A nil sink logs.
func NewMixer(sink Sink, logger *log.Logger) *Mixer {
	if sink == nil {
		sink = LogSink{Logger: logging.OrDiscard(logger).WithPrefix("audio")}
	}
	m := &Mixer{sink: sink}
	m.ApplySettings(settings.Default())
	return m
}

// Volume returns the level of ch in [0, 100].
func (m *Mixer) Volume(ch Channel) int {
	if ch < Master || ch > MenuSound {
		return 0
	}
	return m.volumes[ch]
}

// SetVolume sets the level of ch, clamped to [0, 100].
func (m *Mixer) SetVolume(ch Channel, v int) {
	if ch < Master || ch > MenuSound {
		return
	}
	m.volumes[ch] = core.Clamp(v, 0, settings.MaxVolume)
}

// MenuSoundsEnabled reports whether menu sounds play.
func (m *Mixer) MenuSoundsEnabled() bool { return m.menuSounds }

// SetMenuSoundsEnabled toggles menu sounds.
func (m *Mixer) SetMenuSoundsEnabled(on bool) { m.menuSounds = on }

// Effective returns the output gain of ch in [0, 1], scaled by master.
func (m *Mixer) Effective(ch Channel) float64 {
	if ch == Master {
		return float64(m.volumes[Master]) / settings.MaxVolume
	}
	return float64(m.Volume(ch)) / settings.MaxVolume * float64(m.volumes[Master]) / settings.MaxVolume
}

// PlayMenuSound plays a UI sound unless menu sounds are off or muted.
func (m *Mixer) PlayMenuSound(name string) {
	if !m.menuSounds {
		return
	}
	if v := m.Effective(MenuSound); v > 0 {
		m.sink.Play(name, v)
	}
}

// PlaySfx plays a gameplay sound effect.
func (m *Mixer) PlaySfx(name string) {
	if v := m.Effective(Sfx); v > 0 {
		m.sink.Play(name, v)
	}
}

// ApplySettings copies the audio fields of s into the mixer.
func (m *Mixer) ApplySettings(s settings.Settings) {
	m.SetVolume(Master, s.MasterVolume)
	m.SetVolume(Music, s.MusicVolume)
	m.SetVolume(Sfx, s.SfxVolume)
	m.SetVolume(MenuSound, s.MenuSoundVolume)
	m.menuSounds = s.MenuSoundsEnabled
}

// Snapshot writes the mixer state into the audio fields of s.
func (m *Mixer) Snapshot(s *settings.Settings) {
	s.MasterVolume = m.volumes[Master]
	s.MusicVolume = m.volumes[Music]
	s.SfxVolume = m.volumes[Sfx]
	s.MenuSoundVolume = m.volumes[MenuSound]
	s.MenuSoundsEnabled = m.menuSounds
}
