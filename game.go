package main

import (
	"fmt"
	"time"

	"github.com/CatPunch007/LittleWitch/common"
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/ecs/entity"
	"github.com/CatPunch007/LittleWitch/ecs/system"
	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/CatPunch007/LittleWitch/prefabs"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type GameOptions struct {
	Basic  bool
	Debug  bool
	TPS    int
	Script string
}

type Game struct {
	opts   GameOptions
	step   time.Duration
	logger *log.Logger

	world     *ecs.World
	physics   *system.PhysicsSystem
	input     *system.InputSystem
	keyboard  *keyboardInput
	scheduler *ecs.Scheduler
	watcher   *prefabs.Watcher

	scripted bool
}

func NewGame(opts GameOptions, logger *log.Logger) (*Game, error) {
	lvl, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		step:     common.TickDuration(opts.TPS),
		logger:   logger,
		world:    ecs.NewWorld(),
		physics:  system.NewPhysicsSystem(lvl.Gravity),
		keyboard: &keyboardInput{},
	}
	g.input = system.NewInputSystem(g.keyboard)

	g.scheduler = ecs.NewScheduler(
		g.input,
		g.physics,
		system.NewPlanarLockSystem(),
		system.NewPlayerControllerSystem(g.physics, logger.WithPrefix("mover")),
		system.NewTraceSystem(logger.WithPrefix("trace"), nil),
	)

	if _, err := entity.LoadLevelToWorld(g.world, lvl); err != nil {
		return nil, err
	}
	if err := g.spawnPlayer(nil); err != nil {
		return nil, err
	}

	if opts.Script != "" {
		if err := g.loadScript(); err != nil {
			return nil, err
		}
	}

	if watcher, err := prefabs.WatchDisk(); err == nil {
		g.watcher = watcher
		logger.Info("watching prefabs for changes", "dir", prefabs.DiskDir())
	} else {
		logger.Debug("prefab hot reload disabled", "error", err)
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.drainReloads()

	if g.scripted && g.keyboard.active() {
		g.scripted = false
		g.input.SetSource(g.keyboard)
		g.logger.Info("keyboard input resumed")
	}

	g.scheduler.Step(g.world, g.step)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(g.world, screen)
	if g.opts.Debug {
		drawPhysicsDebug(g.physics.Space(), screen)
		drawGroundProbes(g.world, screen)
	}
	drawHUD(g.world, screen, g.hudMode())
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) hudMode() string {
	mode := "full"
	if g.opts.Basic {
		mode = "basic"
	}
	if g.scripted {
		mode = fmt.Sprintf("%s, script %s", mode, g.opts.Script)
	}
	return mode
}

// spawnPlayer builds the player from the prefab. When at is non-nil the
// player keeps that position instead of the prefab spawn.
func (g *Game) spawnPlayer(at *component.Transform) error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	x, y := spec.Transform.X, spec.Transform.Y
	if at != nil {
		x, y = at.X, at.Y
	}
	_, err = entity.BuildPlayer(g.world, spec, x, y, g.opts.Basic)
	return err
}

func (g *Game) loadScript() error {
	src, err := prefabs.LoadScript(g.opts.Script)
	if err != nil {
		return fmt.Errorf("load script %s: %w", g.opts.Script, err)
	}
	in, err := system.NewScriptInput(g.opts.Script, src, g.step, g.logger.WithPrefix("script"))
	if err != nil {
		return err
	}
	g.input.SetSource(offsetInput{source: in, start: g.world.Tick()})
	g.scripted = true
	g.logger.Info("script input started", "script", g.opts.Script)
	return nil
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("prefab watcher", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case prefabs.IsPlayerSpec(name):
		g.reloadPlayer()
	case prefabs.IsLevelSpec(name):
		g.reloadLevel()
	case g.scripted:
		if err := g.loadScript(); err != nil {
			g.logger.Warn("reload script", "script", g.opts.Script, "error", err)
		}
	}
}

// reloadPlayer replaces the player entity so the new tuning gets a fresh
// controller; position carries over.
func (g *Game) reloadPlayer() {
	if _, err := prefabs.LoadPlayerSpec(); err != nil {
		g.logger.Warn("reload player", "error", err)
		return
	}

	var at *component.Transform
	if player, ok := entity.FindPlayer(g.world); ok {
		if tr, ok := ecs.Get(g.world, player, component.TransformComponent.Kind()); ok {
			pos := *tr
			at = &pos
		}
		g.world.DestroyEntity(player)
	}
	if err := g.spawnPlayer(at); err != nil {
		g.logger.Warn("respawn player", "error", err)
		return
	}
	g.logger.Info("player reloaded")
}

func (g *Game) reloadLevel() {
	lvl, err := prefabs.LoadLevelSpec()
	if err != nil {
		g.logger.Warn("reload level", "error", err)
		return
	}
	entity.ClearLevel(g.world)
	if _, err := entity.LoadLevelToWorld(g.world, lvl); err != nil {
		g.logger.Warn("rebuild level", "error", err)
		return
	}
	g.physics.SetGravity(lvl.Gravity)
	g.logger.Info("level reloaded", "name", lvl.Name, "platforms", len(lvl.Platforms))
}

// offsetInput starts a script at tick zero regardless of when it was loaded.
type offsetInput struct {
	source system.InputSource
	start  int
}

func (o offsetInput) Poll(tick int) mover.Input {
	return o.source.Poll(tick - o.start)
}
