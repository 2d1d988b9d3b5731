package combat

// SimulateExchange plays one hypothetical turn of mine against theirs and
// returns both sides afterwards. The winner's action takes full effect and
// the loser's is negated; on a draw both apply. Within a side, incoming
// damage lands before that side's own shield regeneration.
func SimulateExchange(me, enemy Combatant, mine, theirs Action) (Combatant, Combatant) {
	mp, ep := me.Profiles[mine], enemy.Profiles[theirs]
	switch Resolve(mine, theirs) {
	case Win:
		enemy = ApplyDamage(enemy, mp.Attack)
		me = RegenShield(me, mp.Defense)
	case Lose:
		me = ApplyDamage(me, ep.Attack)
		enemy = RegenShield(enemy, ep.Defense)
	default:
		enemy = ApplyDamage(enemy, mp.Attack)
		me = ApplyDamage(me, ep.Attack)
		me = RegenShield(me, mp.Defense)
		enemy = RegenShield(enemy, ep.Defense)
	}
	return me, enemy
}

// loss is the drop in hp+shield from before to after. Negative when the
// shield grew.
func loss(before, after Combatant) int {
	return (before.HP - after.HP) + (before.Shield - after.Shield)
}
