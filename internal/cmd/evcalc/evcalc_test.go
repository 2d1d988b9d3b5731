package evcalc

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"duel_ev/internal/combat"
)

const referenceMatchup = `
me:
  hp: 10
  shield: 10
  actions:
    sword:  {atk: 5, def: 3, stamina: 3}
    shield: {atk: 4, def: 5, stamina: 3}
    spell:  {atk: 6, def: 2, stamina: 3}
enemy:
  hp: 10
  shield: 10
  actions:
    sword:  {atk: 5, def: 3, stamina: 3}
    shield: {atk: 4, def: 5, stamina: 3}
    spell:  {atk: 6, def: 2, stamina: 3}
`

func writeMatchup(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchup.yaml")
	if err := os.WriteFile(path, []byte(referenceMatchup), 0o644); err != nil {
		t.Fatalf("write matchup: %v", err)
	}
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("evcalc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Matchup != "matchup.yaml" {
		t.Fatalf("expected default matchup, got %q", cfg.Matchup)
	}
	if cfg.Runs != 0 || cfg.Seed != 12345 || cfg.Workers != 8 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("EVCALC_SEED", "7")
	t.Setenv("EVCALC_WORKERS", "2")
	fs := flag.NewFlagSet("evcalc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-n", "50", "-workers", "3", "-out", "x.json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed from env, got %d", cfg.Seed)
	}
	if cfg.Workers != 3 || cfg.Runs != 50 || cfg.Out != "x.json" {
		t.Fatalf("expected flag overrides, got %+v", cfg)
	}
}

func TestRunSingleText(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Matchup: writeMatchup(t), LogLevel: "error"}
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Best: Sword (EV 0.33)", "vs Shield", "net -4", "net +5"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestRunSingleJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	cfg := Config{Matchup: writeMatchup(t), Out: out, LogLevel: "error"}
	if err := Run(context.Background(), cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var rep struct {
		Best combat.Action `json:"best"`
		EV   float64       `json:"ev"`
	}
	if err := json.Unmarshal(b, &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.Best != combat.Sword || rep.EV != 0.3333333333333335 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestRunSweep(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Runs: 40, Workers: 2, Seed: 3, LogLevel: "error"}
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Sweep: 40 runs, seed 3") {
		t.Fatalf("unexpected sweep output:\n%s", out.String())
	}
}

func TestRunMissingMatchup(t *testing.T) {
	cfg := Config{Matchup: filepath.Join(t.TempDir(), "missing.yaml"), LogLevel: "error"}
	if err := Run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing matchup file")
	}
}

func TestRenderTextUnusable(t *testing.T) {
	idle := combat.Combatant{HP: 5, MaxHP: 5}
	var out bytes.Buffer
	if err := RenderText(&out, idle, idle, combat.Evaluate(idle, idle)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "No usable action.") || !strings.Contains(out.String(), "n/a") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
