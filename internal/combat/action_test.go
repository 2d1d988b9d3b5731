package combat

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		mine, theirs Action
		want         Outcome
	}{
		{Sword, Sword, Draw},
		{Sword, Shield, Lose},
		{Sword, Spell, Win},
		{Shield, Sword, Win},
		{Shield, Shield, Draw},
		{Shield, Spell, Lose},
		{Spell, Sword, Lose},
		{Spell, Shield, Win},
		{Spell, Spell, Draw},
	}
	for _, tt := range tests {
		t.Run(tt.mine.String()+"_vs_"+tt.theirs.String(), func(t *testing.T) {
			if got := Resolve(tt.mine, tt.theirs); got != tt.want {
				t.Errorf("Resolve(%s, %s) = %s, want %s", tt.mine, tt.theirs, got, tt.want)
			}
		})
	}
}

func TestResolveAntisymmetric(t *testing.T) {
	for _, a := range Actions {
		for _, b := range Actions {
			ab, ba := Resolve(a, b), Resolve(b, a)
			if (ab == Win) != (ba == Lose) {
				t.Fatalf("Resolve(%s,%s)=%s but Resolve(%s,%s)=%s", a, b, ab, b, a, ba)
			}
			if ab != -ba {
				t.Fatalf("expected mirrored outcomes for %s/%s, got %s/%s", a, b, ab, ba)
			}
		}
	}
}

func TestResolveEachActionBeatsExactlyOne(t *testing.T) {
	for _, a := range Actions {
		wins := 0
		for _, b := range Actions {
			if Resolve(a, b) == Win {
				wins++
			}
		}
		if wins != 1 {
			t.Fatalf("expected %s to beat exactly one action, got %d", a, wins)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"sword", Sword, false},
		{"SHIELD", Shield, false},
		{" Spell ", Spell, false},
		{"bow", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAction) {
					t.Fatalf("expected ErrUnknownAction, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestActionTextRoundTrip(t *testing.T) {
	var a Action
	if err := a.UnmarshalText([]byte("spell")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := a.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "Spell" {
		t.Fatalf("expected Spell, got %q", b)
	}
	if _, err := Action(7).MarshalText(); err == nil {
		t.Fatal("expected error for out-of-range action")
	}
}
