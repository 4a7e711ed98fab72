package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/cli"
	"github.com/ukydev/trip-planner/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cfg := config.Load()
	cli.SetupLogging(cfg)

	fs := flag.NewFlagSet("tripplan", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "tripplan")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, cli.NewApp(cfg))

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	log.WithFields(log.Fields{
		"env":     cfg.Env,
		"storage": cfg.Storage.Backend,
		"notify":  cfg.Notify.Backend,
	}).Debug("Starting tripplan")
	return int(commander.Execute(ctx))
}
