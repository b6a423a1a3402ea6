package tanks

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

// Minimum terminal size for a playable view.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	WallChar      = '░'
	PortalChar    = '▓'
	TankChar      = '█'
	TankBlinkChar = '▒'
	BulletChar    = '•'
	DiamondChar   = '◆'
	BlastChar     = '✶'
	MarkChar      = '·'
	SlotFull      = '■'
	SlotEmpty     = '□'
	SliderFull    = '█'
	SliderEmpty   = '░'
)

// Barrel glyphs by facing octant, starting at 0 degrees (right) and turning clockwise.
var barrelGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Pause overlay geometry, shared with mouse handling.
const (
	pauseBoxW   = 40
	pauseBoxH   = 10
	sliderW     = 24
	sliderLeft  = 9
	musicRowOff = 3
	sfxRowOff   = 5
)

// view maps world pixels onto the cell grid below the HUD.
// Cells are roughly twice as tall as wide, so the arena gets twice as many columns as rows.
type view struct {
	offX, offY int
	cols, rows int
	sx, sy     float64
}

func newView(w, h int, arena float64) view {
	rows := h - 3 // HUD, separator, help line
	cols := rows * 2
	if cols > w {
		cols = w
		rows = cols / 2
	}
	return view{
		offX: (w - cols) / 2,
		offY: 2,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / arena,
		sy:   float64(rows) / arena,
	}
}

func (v view) cell(p core.Vec) (int, int) {
	return v.offX + int(p.X*v.sx), v.offY + int(p.Y*v.sy)
}

// fill paints a world box, always covering at least one cell.
func (v view) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, y0 := v.cell(b.Min)
	x1, y1 := v.cell(b.Max())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), r, c)
}

func (v view) point(dst *core.Screen, p core.Vec, r rune, c core.Color) {
	x, y := v.cell(p)
	dst.SetColor(x, y, r, c)
}

// Render draws the battleground, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	s := g.sim
	m := s.Mode()
	v := newView(w, h, m.Arena)

	g.renderArena(dst, v, m)
	for _, mk := range s.Marks().All() {
		v.point(dst, mk, MarkChar, core.ColorDarkGray)
	}
	if m.Objective {
		d := s.Diamond()
		v.fill(dst, core.BoxAt(d.Pos, core.V(m.DiamondSize, m.DiamondSize)), DiamondChar, core.ColorBrightCyan)
	}
	g.renderEnemies(dst, v, m)
	g.renderTanks(dst, v, m)
	for _, b := range s.Bullets() {
		v.point(dst, b.Pos, BulletChar, core.ColorBrightYellow)
	}
	for _, ex := range s.Explosions() {
		r := m.Base.Size / 2
		v.fill(dst, core.NewBox(ex.Pos.X-r, ex.Pos.Y-r, 2*r, 2*r), BlastChar, core.ColorOrange)
	}

	g.renderHUD(dst)
	dst.DrawTextCentered(h-1, "W/S/A/D+Space   ↑/↓/←/→+Enter   P pause   Q quit", core.ColorGray)

	switch g.state {
	case StatePaused:
		g.renderPause(dst)
	case StateGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderArena(dst *core.Screen, v view, m ModeConfig) {
	v.fill(dst, core.NewBox(0, 0, m.Arena, m.Arena), WallChar, core.ColorDarkGray)
	v.fill(dst, m.Play, ' ', core.ColorDefault)
	if m.HasCorridor() {
		v.fill(dst, m.Corridor, ' ', core.ColorDefault)
	}
	if m.Objective {
		v.fill(dst, m.Portal, PortalChar, core.ColorMagenta)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v view, m ModeConfig) {
	for _, e := range g.sim.Enemies() {
		st := m.Stats(e.Variant)
		var r rune
		var c core.Color
		switch e.Variant {
		case VariantFast:
			r, c = '▓', core.ColorOrange
		case VariantBoss:
			r, c = '█', core.ColorBrightRed
		default:
			r, c = '▒', core.ColorRed
		}
		box := e.Box(st.Size)
		if bottom := box.Max().Y; box.Min.Y < 0 {
			// Only the part out of the portal mouth shows
			if bottom <= 0 {
				continue
			}
			box = core.NewBox(box.Min.X, 0, box.Size.X, bottom)
		}
		v.fill(dst, box, r, c)
	}
}

func (g *Game) renderTanks(dst *core.Screen, v view, m ModeConfig) {
	blink := (g.sim.Now()/(150*time.Millisecond))%2 == 1
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		p := g.sim.Player(id)
		if !p.Alive {
			continue
		}
		body, barrel := core.ColorGreen, core.ColorBrightGreen
		if id == core.Player2 {
			body, barrel = core.ColorBlue, core.ColorBrightBlue
		}
		glyph := rune(TankChar)
		if p.Invincible() && blink {
			glyph = TankBlinkChar
		}
		box := p.Box(m.PlayerSize)
		v.fill(dst, box, glyph, body)

		tip := box.Center().Add(core.Heading(p.Angle).Scale(m.PlayerSize.X/2 + 8))
		v.point(dst, tip, barrelGlyph(p.Angle), barrel)
	}
}

func barrelGlyph(angle float64) rune {
	octant := int((angle+22.5)/45) % len(barrelGlyphs)
	return barrelGlyphs[octant]
}

// renderHUD draws per-tank lives, score and magazine, then the round line.
func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	p1 := g.sim.Player(core.Player1)
	p2 := g.sim.Player(core.Player2)

	left := " P1 " + tankStatus(p1)
	right := "P2 " + tankStatus(p2) + " "
	dst.DrawTextColor(0, 0, left, core.ColorGreen)
	dst.DrawTextColor(w-len([]rune(right)), 0, right, core.ColorBlue)
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	for x := range w {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
	info := fmt.Sprintf(" %s  Total %d  Best %d ", formatClock(g.sim.Now()), g.sim.TotalScore(), g.sim.HighScore())
	if g.sim.Mode().Objective {
		info += "Diamond: " + diamondLabel(g.sim.Diamond()) + " "
	}
	dst.DrawTextCentered(1, info, core.ColorSand)
}

func tankStatus(p *Player) string {
	lives := strings.Repeat("♥", p.Lives)
	if !p.Alive {
		lives = "✗"
	}
	var mag strings.Builder
	for _, loaded := range p.Ammo.Slots {
		if loaded {
			mag.WriteRune(SlotFull)
		} else {
			mag.WriteRune(SlotEmpty)
		}
	}
	return fmt.Sprintf("%-3s %5d %s", lives, p.Score, mag.String())
}

func diamondLabel(d Diamond) string {
	switch d.State {
	case DiamondWithPlayer1:
		return "P1"
	case DiamondWithPlayer2:
		return "P2"
	case DiamondWithEnemy:
		return "STOLEN"
	default:
		return "ground"
	}
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// panel clears and outlines a centered box, returning its rectangle.
func panel(dst *core.Screen, w, h int, c core.Color) core.Rect {
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	return r
}

// PauseSliders returns the music and effects slider tracks for a screen size.
func PauseSliders(screenW, screenH int) (music, sfx core.Rect) {
	x := (screenW-pauseBoxW)/2 + sliderLeft
	y := (screenH - pauseBoxH) / 2
	return core.NewRect(x, y+musicRowOff, sliderW, 1), core.NewRect(x, y+sfxRowOff, sliderW, 1)
}

func (g *Game) renderPause(dst *core.Screen) {
	box := panel(dst, pauseBoxW, pauseBoxH, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, "PAUSED", core.ColorBrightYellow)

	music, sfx := PauseSliders(dst.Width(), dst.Height())
	drawSlider(dst, music, "Music", g.musicVolume)
	drawSlider(dst, sfx, "SFX", g.sfxVolume)

	dst.DrawTextCentered(box.Y+7, "[ ] music   - = sfx   drag with mouse", core.ColorGray)
	dst.DrawTextCentered(box.Y+8, "P / Esc resume", core.ColorGray)
}

func drawSlider(dst *core.Screen, track core.Rect, label string, vol int) {
	dst.DrawTextColor(track.X-7, track.Y, label, core.ColorWhite)
	filled := vol * track.W / MaxVolume
	for i := 0; i < track.W; i++ {
		if i < filled {
			dst.SetColor(track.X+i, track.Y, SliderFull, core.ColorBrightCyan)
		} else {
			dst.SetColor(track.X+i, track.Y, SliderEmpty, core.ColorDarkGray)
		}
	}
	dst.DrawTextColor(track.Right()+1, track.Y, fmt.Sprintf("%3d", vol), core.ColorWhite)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	s := g.sim
	box := panel(dst, 36, 12, core.ColorBrightRed)

	reason := "Both tanks destroyed"
	if s.Reason() == EndDiamondLost {
		reason = "The diamond was carried off"
	}
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorBrightRed},
		{reason, core.ColorGray},
		{"", core.ColorDefault},
		{fmt.Sprintf("Player 1   %6d", s.Player(core.Player1).Score), core.ColorGreen},
		{fmt.Sprintf("Player 2   %6d", s.Player(core.Player2).Score), core.ColorBlue},
		{fmt.Sprintf("Total      %6d", s.TotalScore()), core.ColorBrightWhite},
		{fmt.Sprintf("Time       %6s", formatClock(s.Now())), core.ColorWhite},
		{fmt.Sprintf("Best       %6d", s.HighScore()), core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"R restart  M menu  Q quit", core.ColorGray},
	}
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}
