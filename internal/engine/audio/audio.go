// Package audio provides audio playback for area music and positional sounds.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// DefaultRolloff is the distance at which positional sounds become silent.
const DefaultRolloff = 30.0

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Loader resolves a sound resource name to WAV data.
type Loader interface {
	LoadSound(name string) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(name string) ([]byte, error)

func (f LoaderFunc) LoadSound(name string) ([]byte, error) { return f(name) }

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	loader Loader

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Music
	music     *Playback
	musicName string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	musicVolume  float64
	sfxVolume    float64
	muted        bool

	listener math.Vec3
	rolloff  float32

	// Mixer for concurrent streams
	mixer *beep.Mixer
}

// New creates a new audio manager reading sounds through loader.
func New(loader Loader) *Manager {
	return &Manager{
		loader:       loader,
		masterVolume: 1.0,
		musicVolume:  0.7,
		sfxVolume:    1.0,
		rolloff:      DefaultRolloff,
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops all playback and shuts down the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Stop()
		m.music = nil
	}
	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateMusicVolume()
}

// SetMusicVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVolume = clamp(vol, 0, 1)
	m.updateMusicVolume()
}

// SetSFXVolume sets the sound effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolume = clamp(vol, 0, 1)
}

// SetMuted silences new and playing music.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateMusicVolume()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// MusicVolume returns the music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicVolume
}

// SFXVolume returns the sound effect volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolume
}

// SetListener moves the point positional sounds are attenuated against.
func (m *Manager) SetListener(p math.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = p
}

// SetRolloff sets the distance at which positional sounds become silent.
func (m *Manager) SetRolloff(distance float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if distance > 0 {
		m.rolloff = distance
	}
}

// Gain returns the linear gain of a sound at position for the current listener.
func (m *Manager) Gain(position math.Vec3) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gain(position)
}

func (m *Manager) gain(position math.Vec3) float64 {
	if m.muted {
		return 0
	}
	att := attenuation(position.Distance(m.listener), m.rolloff)
	return m.masterVolume * m.sfxVolume * att
}

// attenuation falls off linearly from 1 at the listener to 0 at rolloff.
func attenuation(distance, rolloff float32) float64 {
	if rolloff <= 0 {
		return 1
	}
	return clamp(1-float64(distance/rolloff), 0, 1)
}

func (m *Manager) updateMusicVolume() {
	if m.music == nil {
		return
	}
	vol := m.masterVolume * m.musicVolume
	if m.muted {
		vol = 0
	}
	m.music.setVolume(vol)
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * gomath.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PlayMusic starts area music, replacing the current track.
func (m *Manager) PlayMusic(name string, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Stop()
		m.music = nil
		m.musicName = ""
	}

	vol := m.masterVolume * m.musicVolume
	if m.muted {
		vol = 0
	}
	p, err := m.play(name, vol, loop)
	if err != nil {
		return err
	}
	m.music = p
	m.musicName = name
	return nil
}

// StopMusic stops the current area music.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil {
		m.music.Stop()
		m.music = nil
	}
	m.musicName = ""
}

// MusicName returns the name of the current track.
func (m *Manager) MusicName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicName
}

// PlaySound plays a positional sound effect, attenuated by its distance
// to the listener at start time.
func (m *Manager) PlaySound(name string, position math.Vec3, loop bool) (*Playback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.play(name, m.gain(position), loop)
}

// play must be called with m.mu held.
func (m *Manager) play(name string, vol float64, loop bool) (*Playback, error) {
	if !m.initialized {
		return nil, ErrNotInitialized
	}
	if m.loader == nil {
		return nil, fmt.Errorf("play %s: no loader", name)
	}
	data, err := m.loader.LoadSound(name)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", name, err)
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", name, err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	var final beep.Streamer = resampled
	if loop {
		final = &loopStreamer{streamer: streamer, resampled: resampled}
	}

	p := &Playback{source: streamer}
	p.ctrl = &beep.Ctrl{Streamer: final}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.setVolume(vol)

	speaker.Lock()
	m.mixer.Add(beep.Seq(p.volume, beep.Callback(p.finish)))
	speaker.Unlock()

	return p, nil
}

// Playback is a handle to a playing stream.
type Playback struct {
	source beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
	done   atomic.Bool
}

// Stop ends playback. Stopping twice is a no-op.
func (p *Playback) Stop() {
	if p.done.Load() {
		return
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	p.release()
}

// IsPlaying reports whether the stream is still running.
func (p *Playback) IsPlaying() bool {
	return !p.done.Load()
}

// finish runs on the speaker goroutine when the stream drains.
func (p *Playback) finish() {
	p.release()
}

// release closes the decoder once, whichever of Stop and finish comes first.
func (p *Playback) release() {
	if p.done.Swap(true) {
		return
	}
	if err := p.source.Close(); err != nil {
		logger.Warn("closing sound stream", zap.Error(err))
	}
}

func (p *Playback) setVolume(vol float64) {
	speaker.Lock()
	defer speaker.Unlock()
	p.volume.Silent = vol <= 0
	p.volume.Volume = volumeToDb(vol)
}

// loopStreamer wraps a streamer to make it loop.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.streamer.Seek(0); err != nil {
				return filled, false
			}
			if n == 0 && l.streamer.Len() == 0 {
				return filled, false
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
