package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/config"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/ecs/entity"
	"github.com/milk9111/densetsu/ecs/system"
	"github.com/milk9111/densetsu/locomotion"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/physics"
	"github.com/milk9111/densetsu/prefabs"
	"github.com/sirupsen/logrus"
)

type GameOptions struct {
	Debug bool
	// Dash unlocks the dash ability regardless of the prefab, including after
	// a hot reload.
	Dash bool
	// Script drives the player from prefabs/scripts/<Script>.tengo instead of
	// the keyboard and gamepad.
	Script string
}

type Game struct {
	frames int
	opts   GameOptions
	log    logrus.FieldLogger

	world     *ecs.World
	arena     entity.Arena
	physics   *system.PhysicsSystem
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	audio     *system.AudioSystem
	scripted  *system.ScriptedInputSystem

	watcher *prefabs.Watcher
	menu    *ebitenui.UI
	muted   bool
	quit    bool
}

func NewGame(cfg config.Config, opts GameOptions, log logrus.FieldLogger) (*Game, error) {
	log = logger.Or(log)

	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	arena, err := entity.BuildArena(w, spec, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:  opts,
		log:   log,
		world: w,
		arena: arena,
	}

	dt := 1.0 / float64(cfg.TPS)
	pw := physics.NewWorld(log)
	binder := system.NewLocomotionBinder(pw, log)
	g.physics = system.NewPhysicsSystem(pw, dt, log)
	g.audio = system.NewAudioSystem()
	g.render = system.NewRenderSystem()

	var input ecs.System = system.NewInputSystem(binder)
	if opts.Script != "" {
		if err := ecs.Add(w, arena.Player, component.InputScriptComponent.Kind(), &component.InputScript{Path: opts.Script}); err != nil {
			return nil, fmt.Errorf("attach input script: %w", err)
		}
		g.scripted = system.NewScriptedInputSystem(binder, log)
		input = g.scripted
	}

	g.scheduler = ecs.NewScheduler(
		input,
		system.NewHazardSystem(),
		system.NewDamageKnockbackSystem(log),
		system.NewCarrySystem(binder),
		system.NewLocomotionSystem(binder, dt),
		g.physics,
		system.NewAnimationSystem(cfg.TPS),
		g.audio,
		system.NewCooldownSystem(),
		system.NewWhiteFlashSystem(),
		system.NewCameraSystem(),
	)

	// Bodies exist before the first step so controllers bind on it.
	g.physics.Sync(w)

	if opts.Dash {
		if c := g.playerController(); c != nil {
			t := c.Tunables()
			t.HasDashAbility = true
			c.SetTunables(t)
		}
	}

	g.menu = NewMenuUI(g)

	if cfg.Watch {
		g.startWatcher()
	}

	log.WithField("systems", g.scheduler.Names()).Debug("game: scheduler ready")
	return g, nil
}

func (g *Game) startWatcher() {
	dir := prefabs.DiskDir()
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		g.log.WithField("dir", dir).Debug("game: no prefab directory on disk, hot reload off")
		return
	}

	dirs := []string{dir}
	if scripts := filepath.Join(dir, "scripts"); dirExists(scripts) {
		dirs = append(dirs, scripts)
	}
	watcher, err := prefabs.NewWatcher(g.log, dirs...)
	if err != nil {
		g.log.WithError(err).Warn("game: prefab watcher unavailable")
		return
	}
	g.watcher = watcher
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) playerController() *locomotion.Controller {
	loco, ok := ecs.Get(g.world, g.arena.Player, component.LocomotionComponent.Kind())
	if !ok {
		return nil
	}
	return loco.Controller
}

func (g *Game) menuOpen() bool {
	c := g.playerController()
	return c != nil && c.Snapshot().MenuOpen
}

func (g *Game) closeMenu() {
	if c := g.playerController(); c != nil {
		c.SetMenuOpen(false)
	}
}

func (g *Game) toggleDash() {
	c := g.playerController()
	if c == nil {
		return
	}
	t := c.Tunables()
	t.HasDashAbility = !t.HasDashAbility
	g.opts.Dash = t.HasDashAbility
	c.SetTunables(t)
	g.log.WithField("dash", t.HasDashAbility).Info("game: dash ability toggled")
}

func (g *Game) toggleSound() {
	g.muted = !g.muted
	g.audio.SetMuted(g.muted)
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("game: prefab watcher")
		default:
			return
		}
	}
}

// reload applies a changed prefab or script. Only the player's tunables and
// input scripts are live; other files need a restart.
func (g *Game) reload(path string) {
	log := g.log.WithField("file", path)
	switch {
	case strings.EqualFold(filepath.Ext(path), ".tengo"):
		if g.scripted != nil {
			g.scripted.Reload()
			log.Info("game: input scripts reloaded")
		}
	case filepath.Base(path) == entity.PlayerPrefab:
		c := g.playerController()
		if c == nil {
			return
		}
		t, err := prefabs.LoadTunables(entity.PlayerPrefab)
		if err != nil {
			log.WithError(err).Warn("game: tunables reload rejected")
			return
		}
		if g.opts.Dash {
			t.HasDashAbility = true
		}
		c.SetTunables(t)
		log.Info("game: tunables reloaded")
	default:
		log.Debug("game: change needs a restart")
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.drainReloads()
	g.scheduler.Update(g.world)

	if g.menuOpen() {
		g.menu.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	system.DrawBackdrop(screen)
	g.render.Draw(g.world, screen)
	system.DrawPlayerHealthBar(g.world, screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(g.physics.World().Space(), g.world, screen)
		system.DrawLocomotionDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    TPS: %.2f    FPS: %.2f", g.frames, ebiten.ActualTPS(), ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}

	if g.menuOpen() {
		g.menu.Draw(screen)
	}
}

// Close unbinds the controllers and stops the watcher.
func (g *Game) Close() error {
	system.ShutdownLocomotion(g.world)
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
