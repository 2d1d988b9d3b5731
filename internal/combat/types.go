package combat

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteProfile = errors.New("incomplete action profile")
	ErrNegativeStat      = errors.New("negative stat")
	ErrShieldOverMax     = errors.New("shield exceeds max shield")
	ErrUnknownAction     = errors.New("unknown action")
)

// ActionProfile is what one action does when it lands.
type ActionProfile struct {
	Attack  int `json:"atk"`
	Defense int `json:"def"`
	Stamina int `json:"stamina"`
}

// Usable reports whether the action may be chosen. Stamina is a gate only;
// evaluation never spends it.
func (p ActionProfile) Usable() bool { return p.Stamina > 0 }

// Combatant is a snapshot of one side. It is a value type: every engine
// function works on copies and returns new snapshots.
type Combatant struct {
	HP        int `json:"hp"`
	MaxHP     int `json:"max_hp"` // display only
	Shield    int `json:"shield"`
	MaxShield int `json:"max_shield"`

	Profiles [numActions]ActionProfile `json:"-"`
}

// NewCombatant builds a snapshot and rejects incomplete or negative input.
func NewCombatant(hp, maxHP, shield, maxShield int, profiles map[Action]ActionProfile) (Combatant, error) {
	var c Combatant
	stats := []struct {
		name string
		v    int
	}{
		{"hp", hp}, {"max_hp", maxHP}, {"shield", shield}, {"max_shield", maxShield},
	}
	for _, s := range stats {
		if s.v < 0 {
			return Combatant{}, fmt.Errorf("%w: %s=%d", ErrNegativeStat, s.name, s.v)
		}
	}
	if shield > maxShield {
		return Combatant{}, fmt.Errorf("%w: %d > %d", ErrShieldOverMax, shield, maxShield)
	}
	for a := range profiles {
		if !a.Valid() {
			return Combatant{}, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
		}
	}
	for _, a := range Actions {
		p, ok := profiles[a]
		if !ok {
			return Combatant{}, fmt.Errorf("%w: missing %s", ErrIncompleteProfile, a)
		}
		if p.Attack < 0 || p.Defense < 0 || p.Stamina < 0 {
			return Combatant{}, fmt.Errorf("%w: %s atk=%d def=%d stamina=%d", ErrNegativeStat, a, p.Attack, p.Defense, p.Stamina)
		}
		c.Profiles[a] = p
	}
	c.HP, c.MaxHP, c.Shield, c.MaxShield = hp, maxHP, shield, maxShield
	return c, nil
}

// Profile returns the capability of action a.
func (c Combatant) Profile(a Action) ActionProfile { return c.Profiles[a] }

// Available lists usable actions in enumeration order.
func (c Combatant) Available() []Action {
	out := make([]Action, 0, numActions)
	for _, a := range Actions {
		if c.Profiles[a].Usable() {
			out = append(out, a)
		}
	}
	return out
}

// Pool is hp plus shield, the quantity every loss is measured against.
func (c Combatant) Pool() int { return c.HP + c.Shield }
