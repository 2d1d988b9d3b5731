package combat

import "math"

// Branch is one enemy option inside an action's expectation.
type Branch struct {
	Enemy       Action    `json:"enemy"`
	Outcome     Outcome   `json:"outcome"`
	Probability float64   `json:"probability"`
	MyLoss      int       `json:"my_loss"`
	EnemyLoss   int       `json:"enemy_loss"`
	Net         int       `json:"net"`
	Me          Combatant `json:"me"`
	EnemyAfter  Combatant `json:"enemy_after"`
}

const (
	ReasonUnusable       = "unusable"
	ReasonNoEnemyOptions = "no_enemy_options"
)

// ActionEV is the expectation of one of my actions plus how it was reached.
type ActionEV struct {
	Action   Action
	EV       float64
	Reason   string
	Branches []Branch
}

// Usable is false when the action was gated out by stamina.
func (a ActionEV) Usable() bool { return !math.IsInf(a.EV, -1) }

// Evaluation covers all three of my actions.
type Evaluation struct {
	Best    Action
	BestEV  float64
	Actions [numActions]ActionEV
}

func evaluate(me, enemy Combatant, mine Action, withBranches bool) ActionEV {
	res := ActionEV{Action: mine}
	if !me.Profiles[mine].Usable() {
		res.EV = math.Inf(-1)
		res.Reason = ReasonUnusable
		return res
	}
	avail := enemy.Available()
	if len(avail) == 0 {
		res.Reason = ReasonNoEnemyOptions
		return res
	}

	n := float64(len(avail))
	total := 0.0
	for _, es := range avail {
		meAfter, enemyAfter := SimulateExchange(me, enemy, mine, es)
		enemyLoss := loss(enemy, enemyAfter)
		myLoss := loss(me, meAfter)
		net := enemyLoss - myLoss
		total += float64(net) / n
		if withBranches {
			res.Branches = append(res.Branches, Branch{
				Enemy:       es,
				Outcome:     Resolve(mine, es),
				Probability: 1 / n,
				MyLoss:      myLoss,
				EnemyLoss:   enemyLoss,
				Net:         net,
				Me:          meAfter,
				EnemyAfter:  enemyAfter,
			})
		}
	}
	res.EV = total
	return res
}

// EvaluateAction returns the expected net value of choosing mine against an
// enemy picking uniformly among its usable actions. An unusable action
// scores -Inf; an enemy with no usable action scores exactly 0.
func EvaluateAction(me, enemy Combatant, mine Action) float64 {
	return evaluate(me, enemy, mine, false).EV
}

// BestAction evaluates Sword, Shield, Spell in that order and keeps the
// first strict maximum. When nothing is usable the result is (Sword, -Inf).
func BestAction(me, enemy Combatant) (Action, float64) {
	best, bestEV := Actions[0], math.Inf(-1)
	for i, a := range Actions {
		ev := EvaluateAction(me, enemy, a)
		if i == 0 || ev > bestEV {
			best, bestEV = a, ev
		}
	}
	return best, bestEV
}

// Evaluate is BestAction with the full per-branch breakdown kept.
func Evaluate(me, enemy Combatant) Evaluation {
	var out Evaluation
	for i, a := range Actions {
		out.Actions[a] = evaluate(me, enemy, a, true)
		if i == 0 || out.Actions[a].EV > out.BestEV {
			out.Best, out.BestEV = a, out.Actions[a].EV
		}
	}
	return out
}
