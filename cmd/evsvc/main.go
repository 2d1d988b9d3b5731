package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"duel_ev/internal/cmd/evsvc"
)

func main() {
	cfg, err := evsvc.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[EVSVC] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := evsvc.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
