package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/engine"
)

// HUD layout: two status rows and a heat gauge above the play field,
// one help row below it.
const (
	hudRows  = 3
	helpRows = 1
)

// drawFrame renders the whole screen for the current engine state.
func (m *Model) drawFrame() {
	m.screen.Clear()
	snap := m.eng.Snapshot()

	switch snap.State {
	case engine.StateStart:
		m.drawStart(snap)
	case engine.StatePlaying:
		m.drawHUD(snap)
		m.drawField(snap)
		m.drawHelp("esc pause · tab scores · type the falling letters")
	case engine.StatePaused:
		m.drawHUD(snap)
		m.drawField(snap)
		m.drawPauseBox()
	case engine.StateResuming:
		m.drawHUD(snap)
		m.drawField(snap)
		m.drawCountdown(snap)
	case engine.StateGameOver:
		m.drawHUD(snap)
		m.drawGameOver(snap)
	case engine.StateShop:
		m.drawShop(snap)
	case engine.StateLeaderboard:
		m.drawLeaderboard()
	case engine.StateProfile:
		m.drawProfiles()
	case engine.StateAchievements:
		m.drawAchievements()
	}
}

func (m *Model) fieldRect() core.Rect {
	h := m.screen.Height() - hudRows - helpRows
	if h < 1 {
		h = 1
	}
	return core.NewRect(0, hudRows, m.screen.Width(), h)
}

// drawHUD renders profile and session counters plus the heat gauge.
func (m *Model) drawHUD(snap engine.Snapshot) {
	p := snap.Profile
	m.screen.DrawTextColor(1, 0,
		fmt.Sprintf("%s  Lv.%d  XP %d/%d", p.Name, p.Level, p.XP, p.XPThreshold),
		core.ColorGray)

	s := snap.Session
	hearts := strings.Repeat("♥", s.Lives) + strings.Repeat("·", engine.MaxLives-s.Lives)
	status := fmt.Sprintf("Score %-7d $%-5d x%.2f  Combo %-4d %s", s.Score, s.Money, s.Multiplier, s.Combo, hearts)
	m.screen.DrawTextColor(1, 1, status, core.ColorWhite)
	if s.Shields > 0 {
		m.screen.DrawTextColor(1+len(status)+1, 1, fmt.Sprintf("◈%d", s.Shields), core.ColorGreen)
	}

	m.drawHeatGauge(snap)
}

// drawHeatGauge renders the heat bar; it turns red while overheated.
func (m *Model) drawHeatGauge(snap engine.Snapshot) {
	width := m.screen.Width() - 12
	if width < 10 {
		width = 10
	}
	filled := int(snap.Session.Heat / engine.HeatMax * float64(width))

	color := core.ColorAmber
	label := "HEAT"
	if snap.Session.Overheated {
		color = core.ColorRed
		label = "LOCK"
	}

	m.screen.DrawTextColor(1, 2, label, color)
	m.screen.DrawHLine(7, 2, filled, '█', color)
	m.screen.DrawHLine(7+filled, 2, width-filled, '░', core.ColorGray)
}

// drawField renders the falling items inside the play field.
func (m *Model) drawField(snap engine.Snapshot) {
	field := m.fieldRect()

	for _, it := range snap.Items {
		if it.Y < 0 {
			continue
		}
		col := field.X + int(it.X/100*float64(field.W-1))
		row := field.Y + int(it.Y/100*float64(field.H-1))
		m.screen.SetCell(col, row, it.Char, it.Color)
	}

	// Miss flash: the field floor lights up for a moment.
	if snap.FlashActive {
		m.screen.DrawHLine(field.X, field.Bottom()-1, field.W, '▔', core.ColorRed)
	}

	if snap.Session.Overheated {
		m.screen.DrawTextCenteredColor(field.Y+field.H/2, "!! OVERHEATED !!", core.ColorRed)
	}
}

func (m *Model) drawHelp(text string) {
	m.screen.DrawTextColor(1, m.screen.Height()-1, text, core.ColorGray)
}

// centeredBox draws a bordered box and returns its inner top row.
func (m *Model) centeredBox(w, h int) core.Rect {
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2
	r := core.NewRect(x, y, w, h)
	m.screen.DrawBox(r)
	return r
}

func (m *Model) drawStart(snap engine.Snapshot) {
	mid := m.screen.Height() / 2
	m.screen.DrawTextCenteredColor(mid-5, "T Y P E F A L L", core.ColorBlue)
	m.screen.DrawTextCentered(mid-3, "type the letters before they reach the floor")
	m.screen.DrawTextCenteredColor(mid-1, fmt.Sprintf("player: %s (Lv.%d)", snap.Profile.Name, snap.Profile.Level), core.ColorWhite)
	m.screen.DrawTextCentered(mid+1, "enter  start")
	m.screen.DrawTextCentered(mid+2, "l  scores   u  profiles   a  achievements")
	m.screen.DrawTextCentered(mid+3, fmt.Sprintf("t  theme (%s)", m.theme.Name))
	m.drawHelp("q quit")
}

func (m *Model) drawPauseBox() {
	box := m.centeredBox(36, 7)
	m.screen.DrawTextCenteredColor(box.Y+1, "PAUSED", core.ColorAmber)
	m.screen.DrawTextCentered(box.Y+3, "esc resume   s shop   r reset")
	m.screen.DrawTextCentered(box.Y+4, "l scores   u profiles   a awards")
	m.drawHelp("q quit")
}

func (m *Model) drawCountdown(snap engine.Snapshot) {
	box := m.centeredBox(16, 5)
	m.screen.DrawTextCenteredColor(box.Y+2, fmt.Sprintf("- %d -", snap.ResumeSeconds), core.ColorGreen)
}

func (m *Model) drawGameOver(snap engine.Snapshot) {
	mid := m.screen.Height() / 2
	m.screen.DrawTextCenteredColor(mid-4, "GAME OVER", core.ColorRed)
	m.screen.DrawTextCentered(mid-2, fmt.Sprintf("score %d   money %d", snap.Session.Score, snap.Session.Money))
	m.screen.DrawTextCenteredColor(mid-1, fmt.Sprintf("best %d", m.eng.Board().Best()), core.ColorAmber)
	m.screen.DrawTextCentered(mid+1, "enter  play again")
	m.screen.DrawTextCentered(mid+2, "tab  scores    r  menu")
	m.drawHelp("q quit")
}
