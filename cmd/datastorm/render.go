package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/datastorm/component"
	"github.com/lixenwraith/datastorm/engine"
	"github.com/lixenwraith/datastorm/vmath"
)

var enemyGlyphs = [component.EnemyTypeCount]rune{
	component.EnemyDataMite:   'm',
	component.EnemyJunkWasp:   'w',
	component.EnemyNullShade:  'n',
	component.EnemyForkSpider: 'x',
	component.EnemyRootMaul:   'M',
}

var pickupGlyphs = [component.PickupKindCount]rune{
	component.PickupPowerUp:      'P',
	component.PickupSpeedUp:      'S',
	component.PickupMedPack:      '+',
	component.PickupShield:       'O',
	component.PickupInvulnerable: '!',
}

// toScreen maps arena coordinates to terminal cells, reserving the top
// row for the HUD
func (g *Game) toScreen(pos vmath.Vec2) (int, int) {
	cfg := g.ctx.World.Resources.Config
	x := int(pos.X / cfg.ArenaWidth * float64(g.width))
	y := 1 + int(pos.Y/cfg.ArenaHeight*float64(g.height-1))
	return x, y
}

func (g *Game) draw() {
	g.screen.Clear()

	switch g.ctx.World.Resources.Game.Phase() {
	case engine.PhaseStartScreen:
		g.drawCentered(g.height/2, "D A T A S T O R M", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
		g.drawCentered(g.height/2+2, "enter to start  hjkl/arrows move  space fire  p pause  m mute  q quit", tcell.StyleDefault)
	case engine.PhaseGameOver:
		g.drawWorld()
		g.drawHUD()
		if g.ctx.World.Resources.Game.GameComplete() {
			g.drawCentered(g.height/2, "SYSTEM PURGED - GAME COMPLETE", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
		} else {
			g.drawCentered(g.height/2, "CONNECTION LOST - GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		}
		g.drawCentered(g.height/2+2, "enter to restart", tcell.StyleDefault)
	default:
		g.drawWorld()
		g.drawHUD()
		g.drawOverlays()
	}

	g.screen.Show()
}

func (g *Game) drawWorld() {
	w := g.ctx.World

	for _, e := range w.Components.Pickup.GetAllEntities() {
		pk, ok := w.Components.Pickup.GetComponent(e)
		if !ok {
			continue
		}
		if pos, ok := w.Positions.GetPosition(e); ok {
			x, y := g.toScreen(pos)
			g.screen.SetContent(x, y, pickupGlyphs[pk.Kind], nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}

	for _, e := range w.Components.Projectile.GetAllEntities() {
		proj, ok := w.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		if pos, ok := w.Positions.GetPosition(e); ok {
			x, y := g.toScreen(pos)
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			if proj.Owner == component.OwnerEnemy {
				style = tcell.StyleDefault.Foreground(tcell.ColorRed)
			}
			g.screen.SetContent(x, y, '·', nil, style)
		}
	}

	for _, e := range w.Components.Enemy.GetAllEntities() {
		ec, ok := w.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := w.Positions.GetPosition(e)
		if !ok {
			continue
		}
		x, y := g.toScreen(pos)
		style := tcell.StyleDefault.Foreground(tcell.ColorPurple)
		if ec.Dying {
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		g.screen.SetContent(x, y, enemyGlyphs[ec.Type], nil, style)

		if bc, ok := w.Components.Beam.GetComponent(e); ok && bc.Lit {
			g.drawBeam(pos, bc.Angle)
		}
	}

	player := g.ctx.PlayerEntity()
	if pos, ok := w.Positions.GetPosition(player); ok {
		x, y := g.toScreen(pos)
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		if pc, ok := w.Components.Player.GetComponent(player); ok {
			if pc.Invulnerable {
				style = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
			} else if pc.ShieldActive {
				style = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
			}
		}
		g.screen.SetContent(x, y, '@', nil, style)
	}
}

// drawBeam traces the beam ray until it leaves the arena
func (g *Game) drawBeam(origin vmath.Vec2, angle float64) {
	cfg := g.ctx.World.Resources.Config
	dir := vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for d := 1.0; ; d += 1.0 {
		p := origin.Add(dir.Scale(d))
		if p.X < 0 || p.X > cfg.ArenaWidth || p.Y < 0 || p.Y > cfg.ArenaHeight {
			return
		}
		x, y := g.toScreen(p)
		g.screen.SetContent(x, y, '=', nil, style)
	}
}

func (g *Game) drawHUD() {
	w := g.ctx.World
	st := w.Resources.Status

	score := st.Ints.Get("score.total").Load()
	mult := st.Ints.Get("score.multiplier").Load()
	combo := st.Ints.Get("score.combo").Load()
	health := st.Ints.Get("player.health").Load()
	level := w.Resources.Game.Level()

	hud := fmt.Sprintf(" HP %3d | L%d | score %d | x%d | combo %d ", health, level+1, score, mult, combo)
	if g.sound.IsMuted() {
		hud += "[muted] "
	}

	style := tcell.StyleDefault.Reverse(true)
	for i, r := range hud {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, 0, r, nil, style)
	}
}

func (g *Game) drawOverlays() {
	game := g.ctx.World.Resources.Game

	if g.ctx.Paused() {
		g.drawCentered(g.height/2, "PAUSED", tcell.StyleDefault.Bold(true))
		return
	}

	switch game.Phase() {
	case engine.PhaseDeathAnimation:
		g.drawCentered(g.height/2, "SIGNAL FADING...", tcell.StyleDefault.Foreground(tcell.ColorRed))
	case engine.PhaseLevelTransition:
		if game.Stage() == engine.StageDisplaying {
			msg := fmt.Sprintf("LEVEL %d COMPLETE", game.Level()+1)
			g.drawCentered(g.height/2, msg, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
		}
	}
}

func (g *Game) drawCentered(y int, msg string, style tcell.Style) {
	x := (g.width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range msg {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
