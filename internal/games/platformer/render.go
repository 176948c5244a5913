package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/engine"
)

// Glyphs for world entities.
const (
	PlayerChar     = '@'
	WallChar       = '█'
	PlatformChar   = '▓'
	DoorChar       = '▒'
	ExitChar       = '⌂'
	EnemyChar      = 'Ω'
	ProjectileChar = '•'
	TargetChar     = '˟'
)

// entityGlyph returns the glyph and color for an entity type.
func entityGlyph(e engine.Entity) (rune, core.Color) {
	switch e.Type {
	case engine.TypePlayer:
		return PlayerChar, core.ColorBrightCyan
	case engine.TypeWall:
		return WallChar, core.ColorGray
	case engine.TypePlatform:
		return PlatformChar, core.ColorCyan
	case engine.TypeDoor:
		if e.Locked {
			return DoorChar, core.ColorRed
		}
		return DoorChar, core.ColorYellow
	case engine.TypeExit:
		return ExitChar, core.ColorBrightGreen
	case engine.TypeEnemy:
		return EnemyChar, core.ColorBrightRed
	case engine.TypeProjectile:
		return ProjectileChar, core.ColorBrightYellow
	default:
		return '?', core.ColorDefault
	}
}

// viewSize returns the playfield size in cells. One row at the bottom is
// kept for status, hudRows at the top for the HUD.
func (g *Game) viewSize() (int, int) {
	w := g.runtime.ScreenW
	h := g.runtime.ScreenH - hudRows - 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// cellToWorldX converts a clicked screen column to a world X coordinate
// at the center of that column.
func (g *Game) cellToWorldX(cellX int) float64 {
	viewW, _ := g.viewSize()
	return (float64(cellX) + 0.5) * g.session.Bounds().Width / float64(viewW)
}

// worldToCell converts a world position to a playfield cell.
func (g *Game) worldToCell(x, y float64) (int, int) {
	viewW, viewH := g.viewSize()
	bounds := g.session.Bounds()
	cx := int(x / bounds.Width * float64(viewW))
	cy := int(y / bounds.Height * float64(viewH))
	return cx, cy + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Failed to load levels")
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		}
		return
	}

	g.renderHUD(dst)
	g.renderWorld(dst)
	g.renderStatus(dst)
	g.renderOverlay(dst)
}

// renderHUD draws level, deaths, time and score on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.session.CurrentLevel()
	name := lvl.Name
	if name == "" {
		name = lvl.ID
	}
	left := fmt.Sprintf("Lvl %d/%d %s", g.session.LevelIndex()+1, g.session.LevelCount(), name)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf("Deaths: %d  Time: %.1fs  Score: %d",
		g.session.Deaths(), g.session.ElapsedMillis()/1000, g.score())
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if g.bannerTicks > 0 && g.banner != "" {
		dst.DrawTextColor((dst.Width()-len(g.banner))/2, 1, g.banner, core.ColorBrightYellow)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

// renderWorld draws every visible entity scaled into the playfield.
func (g *Game) renderWorld(dst *core.Screen) {
	_, viewH := g.viewSize()

	for _, e := range g.session.Snapshot() {
		if !e.Visible && !e.AlwaysVisible {
			continue
		}

		if e.Type == engine.TypeText {
			cx, cy := g.worldToCell(e.Pos.X+e.Size.X/2, e.Pos.Y+e.Size.Y/2)
			label := e.Label
			dst.DrawTextColor(cx-len(label)/2, cy, label, core.ColorGray)
			continue
		}

		glyph, color := entityGlyph(e)
		x0, y0 := g.worldToCell(e.Pos.X, e.Pos.Y)
		x1, y1 := g.worldToCell(e.Pos.X+e.Size.X, e.Pos.Y+e.Size.Y)
		// Every entity covers at least one cell
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColor(x, y, glyph, color)
			}
		}
	}

	// Pending click-to-walk destination marker on the bottom of the view
	if target := g.session.ClickTarget(); target != nil {
		cx, _ := g.worldToCell(*target, 0)
		dst.SetColor(cx, hudRows+viewH-1, TargetChar, core.ColorBrightMagenta)
	}
}

// renderStatus draws the physics dials and sound cue on the bottom row.
func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1
	phys := g.session.Physics()
	left := fmt.Sprintf("g:%.2f t:%.2f", phys.Gravity, phys.TimeScale)
	dst.DrawTextColor(1, y, left, core.ColorGray)

	if g.soundTicks > 0 && g.lastSound != "" {
		cue := fmt.Sprintf("♪ %s", g.lastSound)
		dst.DrawTextColor(dst.Width()-len(cue)-1, y, cue, core.ColorBrightBlue)
	}
}

// renderOverlay draws pause and end-of-campaign boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.session.Paused():
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.mode == ModeCampaign && g.session.State() == engine.SessionWon:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "YOU WON!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
