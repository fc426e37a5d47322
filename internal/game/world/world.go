// Package world runs the loaded module: the current area, the party that
// travels between areas, and scheduled module transitions.
package world

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/assets"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/game/area"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
)

// LoadFunc resolves a module name to its area definition.
type LoadFunc func(module string) (*assets.AreaDefinition, error)

type transition struct {
	module string
	entry  string
}

// Manager owns the current area and swaps it on module transitions.
type Manager struct {
	services area.Services
	opts     area.Options
	load     LoadFunc
	rng      *rand.Rand

	current *area.Area
	module  string
	party   []*object.Creature
	pending *transition
	loading bool
}

// NewManager creates a manager. The services are shared by every area it
// loads, so object ids stay unique across modules. The manager installs
// itself as their transitioner.
func NewManager(services area.Services, opts area.Options, load LoadFunc, rng *rand.Rand) *Manager {
	if services.Graph == nil {
		services.Graph = scene.NewGraph()
	}
	if services.Factory == nil {
		services.Factory = object.NewFactory(nil, services.Resources)
	}
	m := &Manager{
		opts: opts,
		load: load,
		rng:  rng,
	}
	services.Transitioner = m
	m.services = services
	return m
}

// Current returns the current area, or nil before the first load.
func (m *Manager) Current() *area.Area {
	return m.current
}

// Module returns the name of the loaded module.
func (m *Manager) Module() string {
	return m.module
}

// SetParty sets the creatures placed in every area loaded from now on.
// The first member leads.
func (m *Manager) SetParty(members []*object.Creature) {
	m.party = append([]*object.Creature(nil), members...)
}

// ScheduleModuleTransition queues a move to another module. It runs at the
// start of the next Update so that the current tick completes first.
func (m *Manager) ScheduleModuleTransition(module, entry string) {
	if m.pending != nil {
		logger.Debug("module transition already scheduled",
			zap.String("module", m.pending.module),
			zap.String("ignored", module))
		return
	}
	m.pending = &transition{module: module, entry: entry}
}

// HasPendingTransition reports whether a transition waits for the next Update.
func (m *Manager) HasPendingTransition() bool {
	return m.pending != nil
}

// LoadModule replaces the current area with the named module and places
// the party at the waypoint tagged entry. An empty or unknown entry uses
// the origin.
func (m *Manager) LoadModule(module, entry string) error {
	m.loading = true
	defer func() { m.loading = false }()

	def, err := m.load(module)
	if err != nil {
		return fmt.Errorf("loading module %s: %w", module, err)
	}
	next := area.New(module, m.services, m.opts)
	if err := next.Load(def); err != nil {
		return fmt.Errorf("loading module %s: %w", module, err)
	}

	if prev := m.current; prev != nil {
		prev.RunOnExitScript()
		prev.UnloadParty()
	}

	next.Fill(m.services.Graph, m.rng)
	next.RunSpawnScripts()
	if len(m.party) > 0 {
		loc := entryLocation(next, entry)
		next.LoadParty(m.party, loc.Position, loc.Facing)
	}
	next.RunOnEnterScript()

	m.current = next
	m.module = module
	logger.Info("module loaded",
		zap.String("module", module),
		zap.String("entry", entry),
		zap.Int("party", len(m.party)))
	return nil
}

func entryLocation(a *area.Area, entry string) area.Location {
	if entry == "" {
		return area.Location{}
	}
	wp := a.ObjectByTag(entry, 0)
	if wp == nil {
		logger.Warn("entry waypoint not found", zap.String("entry", entry))
		return area.Location{}
	}
	return area.Location{Position: wp.Position(), Facing: wp.Spatial().Facing()}
}

// IsLoading returns whether a module is currently loading.
func (m *Manager) IsLoading() bool {
	return m.loading
}

// Update runs a pending transition and then advances the current area.
func (m *Manager) Update(dt float32) error {
	if t := m.pending; t != nil {
		m.pending = nil
		if err := m.LoadModule(t.module, t.entry); err != nil {
			return err
		}
	}
	if m.current != nil {
		m.current.Update(dt)
	}
	return nil
}
