// Package engine implements the falling-letters game core: spawning,
// physics, keystroke matching, heat lockouts, lives, scoring, and the
// coarse state machine. The engine is pure with respect to time: it only
// moves when Step is called, so a fixed tick sequence with a fixed seed
// replays identically. No goroutines, no channels, no platform types.
package engine

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/progression"
	"github.com/vovakirdan/typefall/internal/ranking"
)

// Durations for engine-owned timers, in wall milliseconds. Converted to
// tick counts at arming time so a timer survives pause-free and expires
// on the first Step at or past its deadline.
const (
	BombLockoutMs = 1500
	HeatLockoutMs = 1000
	FlashMs       = 100
	ResumeMs      = 3000
)

// comboCueAt is the combo value at which the milestone cue fires.
const comboCueAt = 6

// Engine drives one game. All methods must be called from a single
// goroutine; the platform event loop owns it.
type Engine struct {
	cfg      core.RuntimeConfig
	settings *config.Settings // shared with the platform, read live each tick
	rng      *rand.Rand
	clock    func() time.Time

	profiles *progression.Manager
	board    *ranking.Board

	state         State
	overlayReturn State

	session Session
	items   []*Item
	nextID  int64

	tick          uint64
	lastSpawnTick uint64

	// Tick deadlines, 0 means inactive. Armed relative to the current
	// tick, checked at the top of Step, cleared by QuickReset/StartGame.
	overheatUntil uint64
	flashUntil    uint64
	resumeUntil   uint64

	finalized bool
	cues      []Cue
}

// New creates an engine on the start screen. The settings pointer is a
// live handle: settings edits made by the platform take effect on the
// next tick without restarting the engine.
func New(cfg core.RuntimeConfig, settings *config.Settings, profiles *progression.Manager, board *ranking.Board) *Engine {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if settings == nil {
		s := config.DefaultSettings()
		settings = &s
	}
	if profiles == nil {
		profiles = progression.NewManager()
	}
	if board == nil {
		board = ranking.New()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		cfg:      cfg,
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
		clock:    time.Now,
		profiles: profiles,
		board:    board,
		state:    StateStart,
		session:  newSession(),
	}
}

// SetClock overrides the wall clock used for leaderboard timestamps.
func (e *Engine) SetClock(clock func() time.Time) {
	if clock != nil {
		e.clock = clock
	}
}

// Settings returns the live settings handle.
func (e *Engine) Settings() *config.Settings { return e.settings }

// Profiles returns the profile manager the engine reports results to.
func (e *Engine) Profiles() *progression.Manager { return e.profiles }

// Board returns the leaderboard the engine inserts results into.
func (e *Engine) Board() *ranking.Board { return e.board }

// State returns the current coarse state.
func (e *Engine) State() State { return e.state }

// Overheated reports whether keystroke input is locked out.
func (e *Engine) Overheated() bool { return e.overheatUntil != 0 }

// msToTicks converts a wall duration to a tick count, at least 1.
func (e *Engine) msToTicks(ms int) uint64 {
	t := uint64(ms) * uint64(e.cfg.TickRate) / 1000
	if t == 0 {
		t = 1
	}
	return t
}

// ticksToMs converts a tick span to wall milliseconds.
func (e *Engine) ticksToMs(ticks uint64) int {
	return int(ticks * 1000 / uint64(e.cfg.TickRate))
}

// Step advances the simulation by one tick and returns the cues it
// produced. Fixed order: expire timers, then (only while playing) spawn,
// advance, resolve exits; heat decay runs last, in every state.
func (e *Engine) Step() []Cue {
	e.tick++
	e.expireTimers()

	if e.state == StatePlaying {
		e.stepSpawn()
		e.stepPhysics()
	}

	e.session.decayHeat()
	return e.drainCues()
}

// expireTimers clears any deadline the current tick has reached.
func (e *Engine) expireTimers() {
	if e.overheatUntil != 0 && e.tick >= e.overheatUntil {
		e.overheatUntil = 0
	}
	if e.flashUntil != 0 && e.tick >= e.flashUntil {
		e.flashUntil = 0
	}
	if e.resumeUntil != 0 && e.tick >= e.resumeUntil {
		e.resumeUntil = 0
		if e.state == StateResuming {
			e.state = StatePlaying
		}
	}
}

// stepSpawn creates one item when the spawn interval has elapsed since
// the last spawn. The interval is read from the live settings, so a
// settings change applies to the very next spawn decision.
func (e *Engine) stepSpawn() {
	elapsed := e.ticksToMs(e.tick - e.lastSpawnTick)
	if elapsed <= e.settings.Gameplay.SpawnIntervalMs {
		return
	}
	e.nextID++
	e.items = append(e.items, rollItem(e.rng, e.nextID))
	e.lastSpawnTick = e.tick
}

// stepPhysics advances every item by the current speed and removes the
// ones past the exit line. Only a normal item escaping counts as a miss,
// and at most one miss resolution runs per tick no matter how many
// normals exit together.
func (e *Engine) stepPhysics() {
	speed := e.settings.Gameplay.Speed
	missed := false

	kept := e.items[:0]
	for _, it := range e.items {
		it.Y += speed
		if it.Y > exitY {
			if it.Type == ItemNormal {
				missed = true
			}
			continue
		}
		kept = append(kept, it)
	}
	// Drop dangling tail pointers so removed items can be collected.
	for i := len(kept); i < len(e.items); i++ {
		e.items[i] = nil
	}
	e.items = kept

	if missed {
		e.resolveMiss()
	}
}

// resolveMiss handles a normal item escaping the field: shield absorbs
// the hit if one is held, otherwise a life is lost; reaching zero lives
// ends the game. The penalty reset applies whether or not the hit was
// absorbed.
func (e *Engine) resolveMiss() {
	e.flashUntil = e.tick + e.msToTicks(FlashMs)
	e.emit(CueMiss)

	if e.session.Shields > 0 {
		e.session.Shields--
	} else {
		if e.session.Lives > 0 {
			e.session.Lives--
		}
		if e.session.Lives == 0 {
			e.finalize()
		}
	}
	e.session.penalize()
}

// KeyPress processes one keystroke. Letters are case-folded to upper
// case; anything else is ignored. Input is a no-op outside active play
// and during an overheat lockout. The earliest-spawned matching item
// wins when several carry the same letter.
func (e *Engine) KeyPress(r rune) KeyOutcome {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return KeyIgnored
	}
	if e.state != StatePlaying || e.overheatUntil != 0 {
		return KeyIgnored
	}

	idx := -1
	for i, it := range e.items {
		if it.Char == r {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e.wrongKey()
	}

	it := e.items[idx]
	e.items = append(e.items[:idx], e.items[idx+1:]...)

	switch it.Type {
	case ItemBomb:
		return e.hitBomb()
	case ItemHeart:
		return e.hitHeart()
	default:
		return e.hitScoring()
	}
}

// wrongKey applies the heat penalty; filling the gauge locks input.
func (e *Engine) wrongKey() KeyOutcome {
	if e.session.addHeat(HeatPenalty) {
		e.overheatUntil = e.tick + e.msToTicks(HeatLockoutMs)
	}
	e.session.penalize()
	return KeyWrong
}

// hitBomb costs a life, maxes heat, and locks input for the long window.
// Lives floor at zero here; the terminal transition fires only from the
// miss resolution path.
func (e *Engine) hitBomb() KeyOutcome {
	if e.session.Lives > 0 {
		e.session.Lives--
	}
	e.session.Heat = HeatMax
	e.overheatUntil = e.tick + e.msToTicks(BombLockoutMs)
	e.session.penalize()
	e.emit(CueBomb)
	return KeyBomb
}

// hitHeart grants a life up to the cap and records the pickup on the
// active profile immediately, not at game end.
func (e *Engine) hitHeart() KeyOutcome {
	if e.session.Lives < MaxLives {
		e.session.Lives++
	}
	e.profiles.Active().ApplyDelta(progression.StatsDelta{HeartsCollected: 1}, 0)
	e.emit(CueHeart)
	return KeyHeart
}

// hitScoring awards points for a normal or gold match. Points floor the
// multiplied base, money is flat, multiplier climbs toward its cap.
func (e *Engine) hitScoring() KeyOutcome {
	e.session.Score += int(BasePoints * e.session.Multiplier)
	e.session.Money += MoneyPerHit
	e.session.Multiplier += MultiplierStep
	if e.session.Multiplier > MultiplierMax {
		e.session.Multiplier = MultiplierMax
	}
	e.session.Combo++
	e.emit(CueHit)
	if e.session.Combo == comboCueAt {
		e.emit(CueCombo)
	}
	return KeyScored
}

// finalize ends the session exactly once: folds the result into the
// active profile, awards XP, and records a leaderboard entry stamped
// with the settings it was achieved under. The combo recorded is the
// value at the moment of death, read before the miss penalty resets it.
func (e *Engine) finalize() {
	if e.finalized {
		return
	}
	e.finalized = true
	e.state = StateGameOver
	e.emit(CueGameOver)

	delta := progression.StatsDelta{
		Score:       e.session.Score,
		Money:       e.session.Money,
		GamesPlayed: 1,
		MaxCombo:    e.session.Combo,
	}
	profile := e.profiles.Active()
	profile.ApplyDelta(delta, e.session.Score*progression.XPPerScore)

	e.board.Insert(ranking.Entry{
		PlayerName: profile.Name,
		Score:      e.session.Score,
		Timestamp:  e.clock(),
		Config: ranking.ConfigSnapshot{
			Speed:           e.settings.Gameplay.Speed,
			SpawnIntervalMs: e.settings.Gameplay.SpawnIntervalMs,
			FontSize:        e.settings.Display.FontSize,
		},
	})
}

// StartGame begins a fresh playthrough from the start screen or the
// game-over screen. A no-op from any other state.
func (e *Engine) StartGame() {
	if e.state != StateStart && e.state != StateGameOver {
		return
	}
	e.resetSession()
	e.state = StatePlaying
}

// TogglePause suspends active play, or begins the resume countdown from
// pause. Toggling during the countdown is ignored; the countdown always
// runs to completion.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.state = StatePaused
	case StatePaused:
		e.state = StateResuming
		e.resumeUntil = e.tick + e.msToTicks(ResumeMs)
	}
}

// ResumeSeconds returns the whole seconds left on the resume countdown,
// for display. Zero when no countdown is running.
func (e *Engine) ResumeSeconds() int {
	if e.state != StateResuming || e.resumeUntil <= e.tick {
		return 0
	}
	ms := e.ticksToMs(e.resumeUntil - e.tick)
	return (ms + 999) / 1000
}

// QuickReset abandons the current session from any state and returns to
// the start screen. All pending timers are cancelled so no stale lockout
// or countdown leaks into the next session.
func (e *Engine) QuickReset() {
	e.resetSession()
	e.state = StateStart
	e.overlayReturn = StateStart
}

// OpenOverlay switches to a modal overlay, remembering where to return:
// paused if a playthrough is in progress, the start screen otherwise.
// Opening one overlay from another keeps the original return target.
func (e *Engine) OpenOverlay(s State) {
	if !s.IsOverlay() || e.state == s {
		return
	}
	switch e.state {
	case StatePlaying, StatePaused, StateResuming:
		e.overlayReturn = StatePaused
		e.resumeUntil = 0
	case StateStart, StateGameOver:
		e.overlayReturn = e.state
	}
	e.state = s
}

// CloseOverlay returns from a modal overlay to the remembered state.
func (e *Engine) CloseOverlay() {
	if !e.state.IsOverlay() {
		return
	}
	e.state = e.overlayReturn
}

// resetSession discards all per-playthrough state and cancels timers.
func (e *Engine) resetSession() {
	e.session = newSession()
	e.items = nil
	e.overheatUntil = 0
	e.flashUntil = 0
	e.resumeUntil = 0
	e.finalized = false
	e.lastSpawnTick = e.tick
}

func (e *Engine) emit(c Cue) {
	e.cues = append(e.cues, c)
}

// drainCues returns buffered cues and clears the buffer. Cues raised by
// KeyPress are delivered with the next Step's batch.
func (e *Engine) drainCues() []Cue {
	if len(e.cues) == 0 {
		return nil
	}
	out := e.cues
	e.cues = nil
	return out
}
