package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep/v2"

	"github.com/Faultbox/starforge/pkg/math"
)

// closeCounter is a silent stream that counts Close calls.
type closeCounter struct {
	closes int
	err    error
}

func (s *closeCounter) Stream(samples [][2]float64) (int, bool) { return 0, false }
func (s *closeCounter) Err() error                               { return nil }
func (s *closeCounter) Len() int                                 { return 0 }
func (s *closeCounter) Position() int                            { return 0 }
func (s *closeCounter) Seek(p int) error                         { return nil }

func (s *closeCounter) Close() error {
	s.closes++
	return s.err
}

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -0.01, 0.01},
		{0.5, -6.1, -5.9},
		{0.25, -12.1, -11.9},
		{0.0, -200, -90},
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := New(nil)
	if m.MasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.MasterVolume())
	}
	if m.MusicVolume() != 0.7 {
		t.Errorf("default music volume = %f, want 0.7", m.MusicVolume())
	}
	if m.SFXVolume() != 1.0 {
		t.Errorf("default SFX volume = %f, want 1.0", m.SFXVolume())
	}
	if m.IsInitialized() {
		t.Error("new manager should not be initialized")
	}
}

func TestSetVolumeClamps(t *testing.T) {
	m := New(nil)

	m.SetMasterVolume(2.0)
	if m.MasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.MasterVolume())
	}
	m.SetMusicVolume(-1.0)
	if m.MusicVolume() != 0.0 {
		t.Errorf("music volume = %f, want 0.0 (clamped)", m.MusicVolume())
	}
	m.SetSFXVolume(0.3)
	if m.SFXVolume() != 0.3 {
		t.Errorf("sfx volume = %f, want 0.3", m.SFXVolume())
	}
}

func TestGainAttenuatesWithDistance(t *testing.T) {
	m := New(nil)
	m.SetRolloff(10)
	m.SetListener(math.Vec3{X: 5})

	tests := []struct {
		name string
		pos  math.Vec3
		want float64
	}{
		{"at listener", math.Vec3{X: 5}, 1},
		{"half rolloff", math.Vec3{X: 10}, 0.5},
		{"beyond rolloff", math.Vec3{X: 50}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Gain(tt.pos)
			if d := got - tt.want; d > 1e-6 || d < -1e-6 {
				t.Errorf("Gain() = %f, want %f", got, tt.want)
			}
		})
	}

	m.SetMuted(true)
	if got := m.Gain(math.Vec3{X: 5}); got != 0 {
		t.Errorf("muted Gain() = %f, want 0", got)
	}
}

func TestPlayBeforeInit(t *testing.T) {
	loaded := false
	m := New(LoaderFunc(func(name string) ([]byte, error) {
		loaded = true
		return nil, nil
	}))

	if _, err := m.PlaySound("as_an_wind1", math.Vec3{}, false); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlaySound() error = %v, want ErrNotInitialized", err)
	}
	if err := m.PlayMusic("mus_area", true); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayMusic() error = %v, want ErrNotInitialized", err)
	}
	if loaded {
		t.Error("loader should not be called before Init")
	}
	if m.MusicName() != "" {
		t.Errorf("MusicName() = %q, want empty", m.MusicName())
	}
}

func TestPlaybackClosesSourceOnce(t *testing.T) {
	tests := []struct {
		name  string
		steps func(p *Playback)
	}{
		{"finished", func(p *Playback) { p.finish() }},
		{"stopped", func(p *Playback) { p.Stop() }},
		{"finished then stopped", func(p *Playback) { p.finish(); p.Stop() }},
		{"stopped twice", func(p *Playback) { p.Stop(); p.Stop() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &closeCounter{err: errors.New("already closed")}
			p := &Playback{source: src, ctrl: &beep.Ctrl{Streamer: src}}
			if !p.IsPlaying() {
				t.Fatal("new playback should be playing")
			}
			tt.steps(p)
			if src.closes != 1 {
				t.Errorf("Close called %d times, want 1", src.closes)
			}
			if p.IsPlaying() {
				t.Error("playback still reported as playing")
			}
		})
	}
}
