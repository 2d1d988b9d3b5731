package combat

import "testing"

func profiles(sword, shield, spell ActionProfile) map[Action]ActionProfile {
	return map[Action]ActionProfile{Sword: sword, Shield: shield, Spell: spell}
}

func mustCombatant(t *testing.T, hp, shield, maxShield int, p map[Action]ActionProfile) Combatant {
	t.Helper()
	c, err := NewCombatant(hp, hp, shield, maxShield, p)
	if err != nil {
		t.Fatalf("new combatant: %v", err)
	}
	return c
}

// duelist is the reference loadout used across the engine tests.
func duelist(t *testing.T) Combatant {
	return mustCombatant(t, 10, 10, 10, profiles(
		ActionProfile{Attack: 5, Defense: 3, Stamina: 3},
		ActionProfile{Attack: 4, Defense: 5, Stamina: 3},
		ActionProfile{Attack: 6, Defense: 2, Stamina: 3},
	))
}
