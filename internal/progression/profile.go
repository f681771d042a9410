package progression

import (
	"fmt"
	"time"
)

const (
	// MaxProfiles caps how many profiles can coexist.
	MaxProfiles = 10

	// XPPerScore converts a session's final score into experience.
	XPPerScore = 5

	// xpThresholdStep: a level-up from level N costs N * 1000 XP.
	xpThresholdStep = 1000

	// DefaultProfileName is used for the profile created on first run.
	DefaultProfileName = "TypeMaster_01"
)

// UserProfile is a persisted player identity.
type UserProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Stats        GameStats `json:"stats"`
	Achievements []string  `json:"achievements"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasAchievement reports whether the given achievement id is unlocked.
func (p *UserProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// ApplyDelta merges a session delta into the profile: stats first, then a
// batch achievement evaluation against the merged stats, then XP with
// multi-level jumps. Returns the achievement ids unlocked by this call.
//
// The caller invokes this exactly once per finished session; calling it
// again with the same delta double-counts, so the engine guards it.
func (p *UserProfile) ApplyDelta(delta StatsDelta, gainedXP int) []string {
	p.Stats.merge(delta)

	var unlocked []string
	for _, a := range Achievements {
		if p.HasAchievement(a.ID) {
			continue
		}
		if a.Predicate(p.Stats) {
			p.Achievements = append(p.Achievements, a.ID)
			unlocked = append(unlocked, a.ID)
		}
	}

	p.XP += gainedXP
	for p.XP >= p.Level*xpThresholdStep {
		p.XP -= p.Level * xpThresholdStep
		p.Level++
	}

	return unlocked
}

// XPThreshold returns the XP needed to advance from the current level.
func (p *UserProfile) XPThreshold() int {
	return p.Level * xpThresholdStep
}

// Manager holds all profiles and tracks which one is active.
// It is owned by the single-threaded platform loop; no locking.
type Manager struct {
	profiles []*UserProfile
	activeID string
	clock    func() time.Time
	nextSeq  int
}

// NewManager creates a manager seeded with a single default profile.
func NewManager() *Manager {
	m := &Manager{clock: time.Now}
	m.profiles = []*UserProfile{m.newProfile(DefaultProfileName)}
	m.activeID = m.profiles[0].ID
	return m
}

// NewManagerFrom restores a manager from persisted profiles. Invalid input
// (no profiles, unknown active id) degrades to a usable default instead of
// failing: missing profiles get a fresh default, an unknown active id falls
// back to the first profile.
func NewManagerFrom(profiles []*UserProfile, activeID string) *Manager {
	m := &Manager{clock: time.Now}

	for _, p := range profiles {
		if p == nil || p.ID == "" {
			continue
		}
		if p.Level < 1 {
			p.Level = 1
		}
		if p.XP < 0 {
			p.XP = 0
		}
		m.profiles = append(m.profiles, p)
		if len(m.profiles) == MaxProfiles {
			break
		}
	}

	if len(m.profiles) == 0 {
		m.profiles = []*UserProfile{m.newProfile(DefaultProfileName)}
	}

	m.activeID = m.profiles[0].ID
	for _, p := range m.profiles {
		if p.ID == activeID {
			m.activeID = activeID
			break
		}
	}
	return m
}

func (m *Manager) newProfile(name string) *UserProfile {
	m.nextSeq++
	now := m.clock()
	return &UserProfile{
		ID:        fmt.Sprintf("p%d-%d", m.nextSeq, now.UnixNano()),
		Name:      name,
		Level:     1,
		CreatedAt: now,
	}
}

// Profiles returns all profiles in creation order.
func (m *Manager) Profiles() []*UserProfile {
	return m.profiles
}

// Active returns the active profile. A manager always has one.
func (m *Manager) Active() *UserProfile {
	for _, p := range m.profiles {
		if p.ID == m.activeID {
			return p
		}
	}
	return m.profiles[0]
}

// ActiveID returns the active profile's id.
func (m *Manager) ActiveID() string {
	return m.Active().ID
}

// SetActive switches the active profile. Unknown ids are ignored.
func (m *Manager) SetActive(id string) {
	for _, p := range m.profiles {
		if p.ID == id {
			m.activeID = id
			return
		}
	}
}

// Create adds a new profile and makes it active. Returns nil without
// side effects when the profile cap is reached. An empty name gets a
// generated one.
func (m *Manager) Create(name string) *UserProfile {
	if len(m.profiles) >= MaxProfiles {
		return nil
	}
	if name == "" {
		name = fmt.Sprintf("Pilot_%d", len(m.profiles)+1)
	}
	p := m.newProfile(name)
	m.profiles = append(m.profiles, p)
	m.activeID = p.ID
	return p
}

// Delete removes a profile by id. The last remaining profile cannot be
// deleted; unknown ids are ignored. Deleting the active profile moves
// active to the first remaining one.
func (m *Manager) Delete(id string) {
	if len(m.profiles) <= 1 {
		return
	}
	for i, p := range m.profiles {
		if p.ID == id {
			m.profiles = append(m.profiles[:i], m.profiles[i+1:]...)
			if m.activeID == id {
				m.activeID = m.profiles[0].ID
			}
			return
		}
	}
}
