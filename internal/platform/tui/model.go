package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/audio"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/engine"
	"github.com/vovakirdan/typefall/internal/storage"
)

// Model is the Bubble Tea model running one typefall game.
type Model struct {
	eng    *engine.Engine
	screen *core.Screen
	store  *storage.Store
	player *audio.Player
	keys   *KeyMapper
	theme  Theme
	config core.RuntimeConfig

	// Profile overlay selection, index into the manager's profile list.
	profileCursor int

	// Persistence debounce: saves happen at most once per second of
	// ticks, and only after something changed.
	dirty     bool
	sinceSave int

	quitting bool
}

// NewModel creates a model around a prepared engine. The store and
// player may be nil; the game then runs without persistence or sound.
func NewModel(eng *engine.Engine, store *storage.Store, player *audio.Player, theme Theme, cfg core.RuntimeConfig) Model {
	return Model{
		eng:    eng,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		player: player,
		keys:   NewKeyMapper(),
		theme:  theme,
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input according to the engine state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, letter := m.keys.MapKey(msg, m.eng.State())

	switch action {
	case ActionQuit:
		m.persist()
		m.quitting = true
		return m, tea.Quit

	case ActionLetter:
		m.eng.KeyPress(letter)

	case ActionStart:
		m.eng.StartGame()

	case ActionPauseToggle:
		m.eng.TogglePause()

	case ActionReset:
		m.eng.QuickReset()

	case ActionShop:
		m.eng.OpenOverlay(engine.StateShop)

	case ActionLeaderboard:
		m.eng.OpenOverlay(engine.StateLeaderboard)

	case ActionProfile:
		m.profileCursor = m.activeProfileIndex()
		m.eng.OpenOverlay(engine.StateProfile)

	case ActionAchievements:
		m.eng.OpenOverlay(engine.StateAchievements)

	case ActionClose:
		m.eng.CloseOverlay()

	case ActionBuyShield:
		if m.eng.Buy(engine.ShopShield) {
			m.dirty = true
		}

	case ActionBuyLife:
		if m.eng.Buy(engine.ShopLife) {
			m.dirty = true
		}

	case ActionNextProfile:
		m.moveProfileCursor(1)

	case ActionPrevProfile:
		m.moveProfileCursor(-1)

	case ActionNewProfile:
		if p := m.eng.Profiles().Create(""); p != nil {
			m.profileCursor = m.activeProfileIndex()
			m.dirty = true
		}

	case ActionDeleteProfile:
		profiles := m.eng.Profiles().Profiles()
		if m.profileCursor < len(profiles) {
			m.eng.Profiles().Delete(profiles[m.profileCursor].ID)
			m.profileCursor = m.activeProfileIndex()
			m.dirty = true
		}

	case ActionToggleTheme:
		m.theme = m.theme.Toggle()
		m.dirty = true
	}

	return m, nil
}

// handleTick advances the engine and plays any cues it raised.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cues := m.eng.Step()

	for _, c := range cues {
		if m.player != nil {
			m.player.Play(c, m.eng.Settings().Audio.Volume)
		}
		switch c {
		case engine.CueGameOver, engine.CueHeart:
			m.dirty = true
		}
	}

	m.sinceSave++
	if m.dirty && m.sinceSave >= m.config.TickRate {
		m.persist()
	}

	return m, tickCmd(m.config.TickRate)
}

// persist writes profiles, leaderboard, and theme, best-effort.
func (m *Model) persist() {
	m.dirty = false
	m.sinceSave = 0
	if m.store == nil {
		return
	}

	pm := m.eng.Profiles()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveProfiles(pm.Profiles(), pm.ActiveID())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRanking(m.eng.Board().Entries())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveTheme(m.theme.Name)
}

func (m *Model) activeProfileIndex() int {
	for i, p := range m.eng.Profiles().Profiles() {
		if p.ID == m.eng.Profiles().ActiveID() {
			return i
		}
	}
	return 0
}

// moveProfileCursor moves the selection and makes it the active profile,
// so switching is a single keystroke, not select-then-confirm.
func (m *Model) moveProfileCursor(delta int) {
	profiles := m.eng.Profiles().Profiles()
	if len(profiles) == 0 {
		return
	}
	m.profileCursor = (m.profileCursor + delta + len(profiles)) % len(profiles)
	m.eng.Profiles().SetActive(profiles[m.profileCursor].ID)
	m.dirty = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawFrame()
	return RenderScreen(m.screen, m.theme)
}

// Run starts the Bubble Tea program with the given model.
func Run(eng *engine.Engine, store *storage.Store, player *audio.Player, theme Theme, cfg core.RuntimeConfig) error {
	model := NewModel(eng, store, player, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
