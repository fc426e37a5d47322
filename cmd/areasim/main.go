// Package main runs an area simulation headless: it loads an asset library
// and an area definition, drops a party leader at the entry, and advances
// the update loop at the configured tick rate.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/assets"
	"github.com/Faultbox/starforge/internal/config"
	"github.com/Faultbox/starforge/internal/engine/camera"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/game/area"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/game/reputation"
	"github.com/Faultbox/starforge/internal/game/world"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

var (
	flagLeader = flag.String("leader", "player", "Creature blueprint of the party leader, empty for no party")
	flagEntry  = flag.String("entry", "", "Tag of the entry waypoint")
	flagWalk   = flag.String("walk", "", "Walk the leader every tick: north, south, east or west")
	flagRun    = flag.Bool("run", false, "Run instead of walking")
	flagSeed   = flag.Uint64("seed", 1, "Seed for grass placement")

	flagCutscene     = flag.String("cutscene", "", "Model to play as an animated camera after loading")
	flagCutsceneAnim = flag.Int("cutscene-anim", 1200, "Animation number of the cutscene camera")
)

const factionCount = 32

var walkDirections = map[string]math.Vec2{
	"north": {Y: 1},
	"south": {Y: -1},
	"east":  {X: 1},
	"west":  {X: -1},
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Starforge area simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("simulation finished")
}

func run(cfg *config.Config) error {
	if cfg.Data.AreaFile == "" {
		return fmt.Errorf("no area file, set data.area_file or -area")
	}
	walk, ok := walkDirections[*flagWalk]
	if *flagWalk != "" && !ok {
		return fmt.Errorf("unknown walk direction %q", *flagWalk)
	}

	lib, err := assets.LoadLibrary(cfg.Data.LibraryFile)
	if err != nil {
		return err
	}
	resources := assets.NewManager(lib, cfg.Data.SoundDir)
	defer resources.Close()

	services := area.Services{
		Resources: resources,
		Factory:   object.NewFactory(resources, resources),
		Scripts:   newScripts(),
		Reputes:   reputation.NewTable(factionCount),
		Graph:     scene.NewGraph(),
	}
	if cfg.Audio.Enabled {
		sounds, err := newSoundPlayer(cfg.Audio, resources)
		if err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer sounds.Close()
			services.Sounds = sounds
		}
	}

	opts, err := areaOptions(cfg)
	if err != nil {
		return err
	}
	first := strings.TrimSuffix(filepath.Base(cfg.Data.AreaFile), filepath.Ext(cfg.Data.AreaFile))
	modules := world.NewManager(services, opts, moduleLoader(cfg.Data.AreaFile, first),
		rand.New(rand.NewPCG(*flagSeed, *flagSeed)))

	if *flagLeader != "" {
		obj, err := services.Factory.New(object.TypeCreature, *flagLeader)
		if err != nil {
			return fmt.Errorf("creating leader: %w", err)
		}
		modules.SetParty([]*object.Creature{obj.(*object.Creature)})
	}
	if err := modules.LoadModule(first, *flagEntry); err != nil {
		return err
	}
	if *flagCutscene != "" {
		if err := playCutscene(modules.Current(), *flagCutscene, *flagCutsceneAnim); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticks, err := loop(ctx, cfg, modules, walk)
	summarize(modules, resources, services.Graph, ticks)
	return err
}

// playCutscene switches the area to the animated camera riding the model.
func playCutscene(a *area.Area, name string, anim int) error {
	if err := a.SetAnimatedCameraModel(name); err != nil {
		return err
	}
	if !a.AnimatedCamera().PlayAnimation(anim) {
		logger.Warn("cutscene clip missing",
			zap.String("model", name),
			zap.String("clip", camera.AnimationName(anim)))
	}
	a.SetCameraType(area.CameraAnimated)
	return nil
}

func areaOptions(cfg *config.Config) (area.Options, error) {
	opts := area.DefaultOptions()
	opts.HeartbeatInterval = cfg.Simulation.HeartbeatInterval
	opts.PerceptionInterval = cfg.Simulation.PerceptionInterval
	opts.MaxSoundCount = cfg.Simulation.MaxSoundCount
	opts.SelectionDistance = cfg.Simulation.SelectionDistance
	opts.Aspect = float32(cfg.Camera.Width) / float32(cfg.Camera.Height)
	opts.FieldOfView = cfg.Camera.FieldOfView

	camType, ok := area.ParseCameraType(cfg.Camera.Mode)
	if !ok {
		return opts, fmt.Errorf("unknown camera mode %q", cfg.Camera.Mode)
	}
	opts.CameraType = camType
	return opts, nil
}

// moduleLoader reads the first module from its file and every other module
// from a sibling file named after it.
func moduleLoader(firstFile, firstName string) world.LoadFunc {
	dir := filepath.Dir(firstFile)
	return func(module string) (*assets.AreaDefinition, error) {
		path := firstFile
		if module != firstName {
			path = filepath.Join(dir, module+".yaml")
		}
		return assets.LoadAreaDefinition(path)
	}
}

func loop(ctx context.Context, cfg *config.Config, modules *world.Manager, walk math.Vec2) (int, error) {
	interval := cfg.TickInterval()
	dt := float32(interval.Seconds())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ticks := 0
	for cfg.Simulation.Ticks == 0 || ticks < cfg.Simulation.Ticks {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", zap.Int("ticks", ticks))
			return ticks, nil
		case <-ticker.C:
		}

		if walk != (math.Vec2{}) {
			a := modules.Current()
			if leader := a.PartyLeader(); leader != nil && !modules.HasPendingTransition() {
				if a.MoveCreature(leader, walk, *flagRun, dt) {
					a.UpdateThirdPersonCameraFacing()
				}
			}
		}
		if err := modules.Update(dt); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

func summarize(modules *world.Manager, resources *assets.Manager, graph *scene.Graph, ticks int) {
	a := modules.Current()
	if a == nil {
		return
	}
	fields := []zap.Field{
		zap.String("module", modules.Module()),
		zap.Int("ticks", ticks),
		zap.Int("objects", len(a.Objects())),
		zap.Int("rooms", len(a.Rooms())),
	}
	if leader := a.PartyLeader(); leader != nil {
		p := leader.Position()
		fields = append(fields,
			zap.Float32s("leader_position", []float32{p.X, p.Y, p.Z}),
			zap.String("leader_room", leader.Room()))
	}
	if sel := a.SelectedObject(); sel != nil {
		fields = append(fields, zap.String("selected", sel.Tag()))
	}
	audible := 0
	for _, obj := range a.ObjectsByType(object.TypeSound) {
		if obj.(*object.Sound).IsAudible() {
			audible++
		}
	}
	fields = append(fields, zap.Int("audible_sounds", audible))
	if snap := graph.Latest(); snap != nil {
		fields = append(fields, zap.Uint64("frame", snap.Frame), zap.Int("roots", len(snap.Roots)))
	}
	hits, misses := resources.Stats()
	fields = append(fields, zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))
	logger.Info("summary", fields...)
}
