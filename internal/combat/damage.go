package combat

// ApplyDamage returns c after taking amount. Shield absorbs first and the
// shortfall comes off HP, which is allowed to go negative.
func ApplyDamage(c Combatant, amount int) Combatant {
	if amount <= 0 {
		return c
	}
	if c.Shield >= amount {
		c.Shield -= amount
		return c
	}
	remain := amount - c.Shield
	c.Shield = 0
	c.HP -= remain
	return c
}

// RegenShield returns c with shield raised by amount, clamped to MaxShield.
func RegenShield(c Combatant, amount int) Combatant {
	if amount > 0 {
		c.Shield += amount
	}
	if c.Shield > c.MaxShield {
		c.Shield = c.MaxShield
	}
	return c
}
