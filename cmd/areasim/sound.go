package main

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/config"
	"github.com/Faultbox/starforge/internal/engine/audio"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/game/script"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// soundPlayer adapts the audio manager to area sound objects.
type soundPlayer struct {
	*audio.Manager
}

func newSoundPlayer(cfg config.AudioConfig, loader audio.Loader) (*soundPlayer, error) {
	m := audio.New(loader)
	if err := m.Init(); err != nil {
		return nil, err
	}
	m.SetMasterVolume(float64(cfg.MasterVolume))
	m.SetMusicVolume(float64(cfg.MusicVolume))
	m.SetSFXVolume(float64(cfg.SFXVolume))
	m.SetMuted(cfg.Muted)
	return &soundPlayer{Manager: m}, nil
}

// PlaySound hides the concrete playback type. A nil *audio.Playback must
// not leak into the interface.
func (p *soundPlayer) PlaySound(name string, position math.Vec3, loop bool) (object.Playback, error) {
	pb, err := p.Manager.PlaySound(name, position, loop)
	if err != nil {
		return nil, err
	}
	return pb, nil
}

// newScripts registers the routines available to area content. Unknown
// names are logged by the registry.
func newScripts() *script.Registry {
	r := script.NewRegistry()
	r.Register("log_event", func(caller, triggerer uint32) {
		logger.Info("script event", zap.Uint32("caller", caller), zap.Uint32("triggerer", triggerer))
	})
	return r
}
