package combat

import (
	"fmt"
	"strings"
)

// Action is one of the three cyclic combat choices.
type Action int

const (
	Sword Action = iota
	Shield
	Spell
	numActions
)

// Actions is the fixed enumeration order used for evaluation and tie-breaks.
var Actions = [numActions]Action{Sword, Shield, Spell}

var actionNames = [numActions]string{"Sword", "Shield", "Spell"}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func (a Action) Valid() bool { return a >= 0 && a < numActions }

// ParseAction maps a case-insensitive name onto an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if strings.EqualFold(strings.TrimSpace(s), actionNames[a]) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return []byte(actionNames[a]), nil
}

func (a *Action) UnmarshalText(b []byte) error {
	v, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Outcome of one matchup from the first side's point of view.
type Outcome int

const (
	Lose Outcome = iota - 1
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "Draw"
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// beats[a] is the single action that a dominates.
var beats = [numActions]Action{
	Sword:  Spell,
	Spell:  Shield,
	Shield: Sword,
}

// Resolve returns the outcome of mine against theirs.
func Resolve(mine, theirs Action) Outcome {
	if mine == theirs {
		return Draw
	}
	if beats[mine] == theirs {
		return Win
	}
	return Lose
}
