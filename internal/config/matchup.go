package config

import (
	"fmt"
	"strings"

	"duel_ev/internal/combat"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Matchup struct {
	Me    CombatantDef `yaml:"me" json:"me"`
	Enemy CombatantDef `yaml:"enemy" json:"enemy"`
}

type CombatantDef struct {
	HP        int                  `yaml:"hp" json:"hp" validate:"gte=0"`
	MaxHP     *int                 `yaml:"max_hp" json:"max_hp" validate:"omitnil,gte=0"`
	Shield    int                  `yaml:"shield" json:"shield" validate:"gte=0"`
	MaxShield *int                 `yaml:"max_shield" json:"max_shield" validate:"omitnil,gte=0"`
	Actions   map[string]ActionDef `yaml:"actions" json:"actions" validate:"required,dive"`
}

type ActionDef struct {
	Atk     int `yaml:"atk" json:"atk" validate:"gte=0"`
	Def     int `yaml:"def" json:"def" validate:"gte=0"`
	Stamina int `yaml:"stamina" json:"stamina" validate:"gte=0"`
}

// Validate checks field ranges. Missing or unknown actions are reported by
// Build, which knows the action set.
func (m *Matchup) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid matchup: %w", err)
	}
	return nil
}

// Build validates m and returns both engine snapshots.
func (m *Matchup) Build() (combat.Combatant, combat.Combatant, error) {
	var zero combat.Combatant
	if err := m.Validate(); err != nil {
		return zero, zero, err
	}
	me, err := m.Me.Combatant()
	if err != nil {
		return zero, zero, fmt.Errorf("me: %w", err)
	}
	enemy, err := m.Enemy.Combatant()
	if err != nil {
		return zero, zero, fmt.Errorf("enemy: %w", err)
	}
	return me, enemy, nil
}

// Combatant converts d. max_shield defaults to shield and max_hp to hp.
func (d CombatantDef) Combatant() (combat.Combatant, error) {
	maxHP, maxShield := d.HP, d.Shield
	if d.MaxHP != nil {
		maxHP = *d.MaxHP
	}
	if d.MaxShield != nil {
		maxShield = *d.MaxShield
	}
	profiles := make(map[combat.Action]combat.ActionProfile, len(d.Actions))
	for name, ad := range d.Actions {
		a, err := combat.ParseAction(name)
		if err != nil {
			return combat.Combatant{}, err
		}
		if _, dup := profiles[a]; dup {
			return combat.Combatant{}, fmt.Errorf("duplicate action %q", strings.ToLower(name))
		}
		profiles[a] = combat.ActionProfile{Attack: ad.Atk, Defense: ad.Def, Stamina: ad.Stamina}
	}
	return combat.NewCombatant(d.HP, maxHP, d.Shield, maxShield, profiles)
}
