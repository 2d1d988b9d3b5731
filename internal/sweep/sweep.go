package sweep

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"

	"duel_ev/internal/combat"
	"duel_ev/internal/util"
)

// Limits bound the randomly generated snapshots. Lower bounds are 0 except
// hp, which starts at 1.
type Limits struct {
	MaxHP      int `json:"max_hp"`
	MaxShield  int `json:"max_shield"`
	MaxAttack  int `json:"max_atk"`
	MaxDefense int `json:"max_def"`
	MaxStamina int `json:"max_stamina"`
}

// DefaultLimits mirrors the ranges of the interactive calculator.
var DefaultLimits = Limits{MaxHP: 30, MaxShield: 15, MaxAttack: 10, MaxDefense: 10, MaxStamina: 3}

type Options struct {
	Runs    int
	Workers int
	Seed    int64
	Limits  Limits
}

type ActionStat struct {
	Best    int     `json:"best"`
	Share   float64 `json:"share"`
	Usable  int     `json:"usable"`
	MeanEV  float64 `json:"mean_ev"`
	MinEV   float64 `json:"min_ev"`
	MaxEV   float64 `json:"max_ev"`
	sumEV   float64
	hasSeen bool
}

type Summary struct {
	Runs           int                           `json:"runs"`
	Seed           int64                         `json:"seed"`
	Limits         Limits                        `json:"limits"`
	ByAction       map[combat.Action]*ActionStat `json:"by_action"`
	AllUnusable    int                           `json:"all_unusable"`
	NoEnemyOptions int                           `json:"no_enemy_options"`
}

var ErrNoRuns = errors.New("sweep needs at least one run")

func randCombatant(r *rand.Rand, l Limits) combat.Combatant {
	c := combat.Combatant{
		HP:        1 + r.Intn(l.MaxHP),
		MaxShield: r.Intn(l.MaxShield + 1),
	}
	c.MaxHP = c.HP
	c.Shield = r.Intn(c.MaxShield + 1)
	for _, a := range combat.Actions {
		c.Profiles[a] = combat.ActionProfile{
			Attack:  r.Intn(l.MaxAttack + 1),
			Defense: r.Intn(l.MaxDefense + 1),
			Stamina: r.Intn(l.MaxStamina + 1),
		}
	}
	return c
}

// Matchup draws run i of a sweep. Each run has its own source so results do
// not depend on which worker picked it up.
func Matchup(seed int64, i int, l Limits) (combat.Combatant, combat.Combatant) {
	r := util.New(seed + int64(i)*7919)
	me := randCombatant(r, l)
	enemy := randCombatant(r, l)
	return me, enemy
}

// Run evaluates opts.Runs random matchups over a worker pool.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Runs <= 0 {
		return Summary{}, ErrNoRuns
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Limits == (Limits{}) {
		opts.Limits = DefaultLimits
	}
	if opts.Limits.MaxHP < 1 {
		opts.Limits.MaxHP = 1
	}

	results := make([]combat.Evaluation, opts.Runs)
	wg := sync.WaitGroup{}
	jobs := make(chan int, opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				me, enemy := Matchup(opts.Seed, i, opts.Limits)
				results[i] = combat.Evaluate(me, enemy)
			}
		}()
	}

	var err error
feed:
	for i := 0; i < opts.Runs; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return Summary{}, err
	}
	return summarize(opts, results), nil
}

func summarize(opts Options, results []combat.Evaluation) Summary {
	s := Summary{
		Runs:     len(results),
		Seed:     opts.Seed,
		Limits:   opts.Limits,
		ByAction: map[combat.Action]*ActionStat{},
	}
	for _, a := range combat.Actions {
		s.ByAction[a] = &ActionStat{}
	}
	for _, res := range results {
		if math.IsInf(res.BestEV, -1) {
			s.AllUnusable++
		} else {
			s.ByAction[res.Best].Best++
		}
		noOptions := false
		for _, aev := range res.Actions {
			if aev.Reason == combat.ReasonNoEnemyOptions {
				noOptions = true
			}
			if !aev.Usable() {
				continue
			}
			st := s.ByAction[aev.Action]
			st.Usable++
			st.sumEV += aev.EV
			if !st.hasSeen || aev.EV < st.MinEV {
				st.MinEV = aev.EV
			}
			if !st.hasSeen || aev.EV > st.MaxEV {
				st.MaxEV = aev.EV
			}
			st.hasSeen = true
		}
		if noOptions {
			s.NoEnemyOptions++
		}
	}
	for _, st := range s.ByAction {
		if st.Usable > 0 {
			st.MeanEV = st.sumEV / float64(st.Usable)
		}
		st.Share = float64(st.Best) / float64(s.Runs)
	}
	return s
}
