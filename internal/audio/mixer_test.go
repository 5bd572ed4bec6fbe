package audio

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/settings"
)

type recordSink struct {
	played []string
	volume float64
}

func (s *recordSink) Play(name string, volume float64) {
	s.played = append(s.played, name)
	s.volume = volume
}

func TestMixerClampsVolumes(t *testing.T) {
	m := NewMixer(&recordSink{}, nil)

	m.SetVolume(Music, 150)
	m.SetVolume(Sfx, -20)

	if m.Volume(Music) != 100 {
		t.Errorf("Volume(Music) = %d, expected 100", m.Volume(Music))
	}
	if m.Volume(Sfx) != 0 {
		t.Errorf("Volume(Sfx) = %d, expected 0", m.Volume(Sfx))
	}
	if m.Volume(Channel(42)) != 0 {
		t.Error("Unknown channel should read as 0")
	}
}

func TestMixerEffective(t *testing.T) {
	m := NewMixer(&recordSink{}, nil)
	m.SetVolume(Master, 50)
	m.SetVolume(Music, 50)

	if got := m.Effective(Master); got != 0.5 {
		t.Errorf("Effective(Master) = %f, expected 0.5", got)
	}
	if got := m.Effective(Music); got != 0.25 {
		t.Errorf("Effective(Music) = %f, expected 0.25", got)
	}
}

func TestMixerMenuSound(t *testing.T) {
	sink := &recordSink{}
	m := NewMixer(sink, nil)

	m.PlayMenuSound("click")
	m.SetMenuSoundsEnabled(false)
	m.PlayMenuSound("click")
	m.SetMenuSoundsEnabled(true)
	m.SetVolume(MenuSound, 0)
	m.PlayMenuSound("click")

	if len(sink.played) != 1 {
		t.Errorf("played %d sounds, expected 1", len(sink.played))
	}
}

func TestMixerSettingsBridge(t *testing.T) {
	m := NewMixer(&recordSink{}, nil)
	in := settings.Settings{
		MasterVolume:      10,
		MusicVolume:       20,
		SfxVolume:         30,
		MenuSoundsEnabled: false,
		MenuSoundVolume:   40,
		Language:          "es",
	}
	m.ApplySettings(in)

	out := settings.Default()
	m.Snapshot(&out)
	out.Language = in.Language

	if out != in {
		t.Errorf("Snapshot() = %+v, expected %+v", out, in)
	}
}
