package evcalc

import (
	"fmt"
	"io"
	"math"

	"duel_ev/internal/combat"
	"duel_ev/internal/sweep"

	"github.com/fatih/color"
)

var (
	bestColor     = color.New(color.FgGreen, color.Bold)
	unusableColor = color.New(color.FgHiBlack)
)

func fmtEV(ev float64) string {
	if math.IsInf(ev, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", ev)
}

// RenderText prints the per-action table followed by the branches of the
// chosen action.
func RenderText(w io.Writer, me, enemy combat.Combatant, res combat.Evaluation) error {
	fmt.Fprintf(w, "Me     HP %d/%d  Shield %d/%d\n", me.HP, me.MaxHP, me.Shield, me.MaxShield)
	fmt.Fprintf(w, "Enemy  HP %d/%d  Shield %d/%d\n\n", enemy.HP, enemy.MaxHP, enemy.Shield, enemy.MaxShield)

	for _, a := range res.Actions {
		line := fmt.Sprintf("%-7s %8s", a.Action, fmtEV(a.EV))
		switch {
		case a.Action == res.Best && a.Usable():
			bestColor.Fprintln(w, line+"  best")
		case !a.Usable():
			unusableColor.Fprintln(w, line+"  (no stamina)")
		default:
			fmt.Fprintln(w, line)
		}
	}

	best := res.Actions[res.Best]
	if !best.Usable() {
		_, err := fmt.Fprintln(w, "\nNo usable action.")
		return err
	}
	fmt.Fprintf(w, "\nBest: %s (EV %s)\n", res.Best, fmtEV(res.BestEV))
	if best.Reason == combat.ReasonNoEnemyOptions {
		_, err := fmt.Fprintln(w, "Enemy has no usable action.")
		return err
	}
	for _, b := range best.Branches {
		fmt.Fprintf(w, "  vs %-6s %-4s p=%.2f  enemy loses %d  I lose %d  net %+d\n",
			b.Enemy, b.Outcome, b.Probability, b.EnemyLoss, b.MyLoss, b.Net)
	}
	return nil
}

// RenderSweep prints how often each action came out on top.
func RenderSweep(w io.Writer, s sweep.Summary) error {
	fmt.Fprintf(w, "Sweep: %d runs, seed %d\n", s.Runs, s.Seed)
	for _, a := range combat.Actions {
		st := s.ByAction[a]
		fmt.Fprintf(w, "%-7s best %5.1f%%  mean EV %6.2f  range [%.2f, %.2f]\n",
			a, st.Share*100, st.MeanEV, st.MinEV, st.MaxEV)
	}
	_, err := fmt.Fprintf(w, "all unusable: %d  enemy without options: %d\n", s.AllUnusable, s.NoEnemyOptions)
	return err
}
