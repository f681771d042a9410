package tui

import (
	"fmt"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/engine"
	"github.com/vovakirdan/typefall/internal/progression"
)

func (m *Model) drawShop(snap engine.Snapshot) {
	box := m.centeredBox(44, 10)
	s := snap.Session

	m.screen.DrawTextCenteredColor(box.Y+1, "SHOP", core.ColorAmber)
	m.screen.DrawTextCentered(box.Y+2, fmt.Sprintf("money: $%d", s.Money))

	shieldColor := core.ColorWhite
	if s.Money < engine.ShieldCost {
		shieldColor = core.ColorGray
	}
	lifeColor := core.ColorWhite
	if s.Money < engine.LifeCost || s.Lives >= engine.MaxLives {
		lifeColor = core.ColorGray
	}

	m.screen.DrawTextColor(box.X+4, box.Y+4,
		fmt.Sprintf("1  Shield  $%-4d (held: %d)", engine.ShieldCost, s.Shields), shieldColor)
	m.screen.DrawTextColor(box.X+4, box.Y+5,
		fmt.Sprintf("2  Life    $%-4d (%d/%d)", engine.LifeCost, s.Lives, engine.MaxLives), lifeColor)

	m.screen.DrawTextCenteredColor(box.Y+7, "esc  back", core.ColorGray)
	m.drawHelp("a shield absorbs one missed letter")
}

func (m *Model) drawLeaderboard() {
	entries := m.eng.Board().Entries()
	rows := len(entries)
	if rows > 10 {
		rows = 10
	}

	box := m.centeredBox(54, rows+6)
	m.screen.DrawTextCenteredColor(box.Y+1, "TOP SCORES", core.ColorAmber)

	if rows == 0 {
		m.screen.DrawTextCenteredColor(box.Y+3, "no scores yet", core.ColorGray)
	}
	for i := 0; i < rows; i++ {
		e := entries[i]
		line := fmt.Sprintf("#%-3d %-16s %6d  %s", i+1, e.PlayerName, e.Score, e.Timestamp.Format("Jan 02"))
		color := core.ColorWhite
		if e.PlayerName == m.eng.Profiles().Active().Name {
			color = core.ColorGreen
		}
		m.screen.DrawTextColor(box.X+3, box.Y+3+i, line, color)
	}

	m.screen.DrawTextCenteredColor(box.Bottom()-2, "esc  back", core.ColorGray)
}

func (m *Model) drawProfiles() {
	profiles := m.eng.Profiles().Profiles()
	box := m.centeredBox(56, len(profiles)+8)

	m.screen.DrawTextCenteredColor(box.Y+1, "PROFILES", core.ColorAmber)

	for i, p := range profiles {
		marker := "  "
		color := core.ColorWhite
		if i == m.profileCursor {
			marker = "> "
			color = core.ColorGreen
		}
		line := fmt.Sprintf("%s%-16s Lv.%-3d %5d games  %7d pts",
			marker, p.Name, p.Level, p.Stats.GamesPlayed, p.Stats.TotalScore)
		m.screen.DrawTextColor(box.X+3, box.Y+3+i, line, color)
	}

	hint := fmt.Sprintf("j/k switch   n new   x delete   (%d/%d)", len(profiles), progression.MaxProfiles)
	m.screen.DrawTextCenteredColor(box.Bottom()-3, hint, core.ColorGray)
	m.screen.DrawTextCenteredColor(box.Bottom()-2, "esc  back", core.ColorGray)
}

func (m *Model) drawAchievements() {
	active := m.eng.Profiles().Active()
	box := m.centeredBox(58, len(progression.Achievements)+6)

	m.screen.DrawTextCenteredColor(box.Y+1, "ACHIEVEMENTS", core.ColorAmber)

	for i, a := range progression.Achievements {
		mark := "[ ]"
		color := core.ColorGray
		if active.HasAchievement(a.ID) {
			mark = "[x]"
			color = core.ColorGreen
		}
		line := fmt.Sprintf("%s %-12s %s", mark, a.Title, a.Desc)
		m.screen.DrawTextColor(box.X+3, box.Y+3+i, line, color)
	}

	m.screen.DrawTextCenteredColor(box.Bottom()-2, "esc  back", core.ColorGray)
}
