package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/datastorm/audio"
	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/config"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/parameter"
	"github.com/lixenwraith/datastorm/system"
	"github.com/lixenwraith/datastorm/vmath"
)

const (
	playerBaseSpeed  = 20.0
	playerSpeedBonus = 4.0
	projectileSpeed  = 40.0
	projectileRadius = 0.3
	baseFireDamage   = 5
	fireDamagePerPow = 2
	fireCooldownBase = 250 * time.Millisecond
	fireCooldownStep = 30 * time.Millisecond
)

// Game couples the simulation context with the terminal host: input,
// rendering, and the frame ticker
type Game struct {
	ctx    *engine.GameContext
	screen tcell.Screen
	sound  *audio.Service
	logger *zap.Logger

	width, height int
	moveDir       vmath.Vec2
	faceDir       vmath.Vec2
	lastFire      time.Time
	lastFrame     time.Time
}

func newGame(cfg config.Config, logger *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx := engine.NewGameContext(engine.ConfigResource{
		ArenaWidth:  cfg.Arena.Width,
		ArenaHeight: cfg.Arena.Height,
		Seed:        seed,
	})
	system.RegisterAll(ctx)

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.MasterVolume
	sound := audio.NewService(audioCfg)
	if err := sound.Initialize(); err == nil {
		ctx.SetAudio(sound)
	}

	g := &Game{
		ctx:     ctx,
		screen:  screen,
		sound:   sound,
		logger:  logger,
		faceDir: vmath.Vec2{Y: -1},
	}
	g.width, g.height = screen.Size()

	logger.Info("game initialized",
		zap.Float64("arena_width", cfg.Arena.Width),
		zap.Float64("arena_height", cfg.Arena.Height),
		zap.Uint64("seed", seed),
	)
	return g, nil
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.GameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	g.lastFrame = time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(g.lastFrame)
			g.lastFrame = now

			g.applyMovement()
			g.ctx.Advance(dt)
			g.draw()
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			return g.handleRune(ev.Rune())
		case ev.Key() == tcell.KeyEnter:
			g.startOrRestart()
		case ev.Key() == tcell.KeyUp:
			g.setMove(vmath.Vec2{Y: -1})
		case ev.Key() == tcell.KeyDown:
			g.setMove(vmath.Vec2{Y: 1})
		case ev.Key() == tcell.KeyLeft:
			g.setMove(vmath.Vec2{X: -1})
		case ev.Key() == tcell.KeyRight:
			g.setMove(vmath.Vec2{X: 1})
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'p':
		g.togglePause()
	case 'm':
		g.sound.ToggleMute()
	case ' ':
		g.fire()
	case 'h':
		g.setMove(vmath.Vec2{X: -1})
	case 'j':
		g.setMove(vmath.Vec2{Y: 1})
	case 'k':
		g.setMove(vmath.Vec2{Y: -1})
	case 'l':
		g.setMove(vmath.Vec2{X: 1})
	case 's':
		g.setMove(vmath.Vec2{})
	}
	return true
}

func (g *Game) startOrRestart() {
	switch g.ctx.World.Resources.Game.Phase() {
	case engine.PhaseStartScreen:
		g.ctx.StartMatch()
		g.logger.Info("match started")
	case engine.PhaseGameOver:
		g.ctx.ResetMatch()
		g.ctx.StartMatch()
		g.logger.Info("match restarted")
	}
}

func (g *Game) togglePause() {
	if g.ctx.TogglePause() {
		g.logger.Info("paused")
	} else {
		g.logger.Info("resumed")
	}
}

func (g *Game) setMove(dir vmath.Vec2) {
	g.moveDir = dir
	if dir.LengthSq() > 0 {
		g.faceDir = dir.Normalized()
	}
}

// applyMovement writes the player velocity before the frame advances
func (g *Game) applyMovement() {
	w := g.ctx.World
	player := g.ctx.PlayerEntity()
	pc, ok := w.Components.Player.GetComponent(player)
	if !ok {
		return
	}

	speed := playerBaseSpeed + playerSpeedBonus*float64(pc.SpeedLevel)
	vel := g.moveDir.Normalized().Scale(speed)
	w.Components.Kinetic.SetComponent(player, component.KineticComponent{Vel: vel})
}

// fire spawns one player projectile in the facing direction, rate-limited
// by a power-scaled cooldown
func (g *Game) fire() {
	if g.ctx.World.Resources.Game.Phase() != engine.PhasePlaying {
		return
	}

	w := g.ctx.World
	player := g.ctx.PlayerEntity()
	pc, ok := w.Components.Player.GetComponent(player)
	if !ok {
		return
	}

	cooldown := fireCooldownBase - fireCooldownStep*time.Duration(pc.PowerLevel)
	now := time.Now()
	if now.Sub(g.lastFire) < cooldown {
		return
	}
	g.lastFire = now

	pos, ok := w.Positions.GetPosition(player)
	if !ok {
		return
	}

	e := w.CreateEntity()
	w.Positions.SetPosition(e, pos.Add(g.faceDir.Scale(parameter.PlayerRadius+projectileRadius)))
	w.Components.Projectile.SetComponent(e, component.ProjectileComponent{
		Owner:  component.OwnerPlayer,
		Damage: baseFireDamage + fireDamagePerPow*pc.PowerLevel,
	})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: projectileRadius})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Vel: g.faceDir.Scale(projectileSpeed)})
}

func (g *Game) cleanup() {
	g.sound.Cleanup()
	g.screen.Fini()
}

func buildLogger(cfg config.LogConfig) *zap.Logger {
	if cfg.Path == "" {
		// Writing to stderr would corrupt the terminal UI
		return zap.NewNop()
	}

	level := zapcore.InfoLevel
	_ = level.Set(cfg.Level)

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.Path}
	zcfg.ErrorOutputPaths = []string{cfg.Path}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	configPath := flag.String("config", "datastorm.toml", "path to TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg.Log)
	defer logger.Sync()

	game, err := newGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
