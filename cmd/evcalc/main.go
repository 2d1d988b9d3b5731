package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"duel_ev/internal/cmd/evcalc"
)

func main() {
	cfg, err := evcalc.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := evcalc.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("evcalc: %v", err)
	}
}
