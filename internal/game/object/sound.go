package object

import (
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"

	"go.uber.org/zap"
)

// Playback is a handle to a playing sound.
type Playback interface {
	Stop()
	IsPlaying() bool
}

// SoundPlayer starts positional sounds.
type SoundPlayer interface {
	PlaySound(name string, position math.Vec3, loop bool) (Playback, error)
}

// Sound is an ambient emitter cycling through a list of sounds.
type Sound struct {
	SpatialObject

	Sounds      []string
	Active      bool
	Looping     bool
	Continuous  bool
	Positional  bool
	Priority    int
	MaxDistance float32
	Interval    float32 // Seconds between sounds
	Elevation   float32

	player   SoundPlayer
	playback Playback
	audible  bool
	index    int
	timeout  float32
}

// NewSound creates an inactive sound.
func NewSound(id uint32) *Sound {
	return &Sound{
		SpatialObject: newSpatialObject(id, TypeSound),
		index:         -1,
	}
}

// SetPlayer installs the player used to start sounds.
func (s *Sound) SetPlayer(p SoundPlayer) { s.player = p }

func (s *Sound) IsAudible() bool { return s.audible }

func (s *Sound) SetAudible(audible bool) { s.audible = audible }

// EmitterPosition returns the position sounds play at.
func (s *Sound) EmitterPosition() math.Vec3 {
	return s.position.Add(math.Vec3{Z: s.Elevation})
}

// IsPlaying reports whether a sound from the list is currently playing.
func (s *Sound) IsPlaying() bool {
	return s.playback != nil && s.playback.IsPlaying()
}

// Play restarts the sound cycle.
func (s *Sound) Play() {
	if s.playback != nil {
		s.playback.Stop()
		s.playback = nil
	}
	s.timeout = 0
	s.Active = true
}

// Stop ends playback and deactivates the sound.
func (s *Sound) Stop() {
	if s.playback != nil {
		s.playback.Stop()
		s.playback = nil
	}
	s.Active = false
}

// Update stops inaudible playback and advances the sound cycle.
func (s *Sound) Update(dt float32) {
	s.SpatialObject.Update(dt)

	if s.playback != nil && !s.audible {
		s.playback.Stop()
		s.playback = nil
	}
	if !s.Active || !s.audible {
		return
	}
	if s.IsPlaying() {
		return
	}
	if s.timeout > 0 {
		s.timeout = max(0, s.timeout-dt)
		return
	}
	if len(s.Sounds) == 0 {
		s.Active = false
		return
	}
	s.index++
	if s.index >= len(s.Sounds) {
		if !s.Looping {
			s.Active = false
			return
		}
		s.index = 0
	}
	s.start(s.Sounds[s.index], len(s.Sounds) == 1 && s.Continuous)
	s.timeout = s.Interval
}

func (s *Sound) start(name string, loop bool) {
	if s.player == nil {
		return
	}
	p, err := s.player.PlaySound(name, s.EmitterPosition(), loop)
	if err != nil {
		logger.Warn("play sound failed",
			zap.Uint32("id", s.id),
			zap.String("sound", name),
			zap.Error(err))
		return
	}
	s.playback = p
}
