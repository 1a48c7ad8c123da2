package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	app "github.com/okian/dunkcalc/internal/app"
	"github.com/okian/dunkcalc/internal/cli"
	"github.com/okian/dunkcalc/internal/config"
	"github.com/okian/dunkcalc/pkg/logger"
)

func main() {
	cfg := &cli.Config{}
	flag.StringVar(&cfg.Height, "height", "", `Height, e.g. 6'2", 74in or 188cm (required)`)
	flag.StringVar(&cfg.StandingReach, "reach", "", "Standing reach; estimated from height when omitted")
	flag.StringVar(&cfg.VerticalJump, "vertical", "", "Current vertical jump")
	flag.StringVar(&cfg.BodyWeight, "weight", "", "Body weight, e.g. 180lb or 82kg")
	flag.StringVar(&cfg.RimHeight, "rim", "", "Rim height; defaults to the configured rim")
	flag.Float64Var(&cfg.Strength, "strength", -1, "Strength development score in [0, 1]")
	flag.Float64Var(&cfg.Technique, "technique", -1, "Technique development score in [0, 1]")
	flag.BoolVar(&cfg.JSON, "json", false, "Print the report as JSON")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		cli.ShowHelp(os.Stdout)
		return
	}

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		os.Stderr.WriteString("failed to read .env: " + err.Error() + "\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engineCfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Logs go to stderr so the report on stdout stays clean.
	if err := logger.Init(logger.WithFormat(engineCfg.LogFormat), logger.WithWriter(os.Stderr)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}
	_ = logger.SetLevelString(level)

	svc, err := app.NewFromConfig(engineCfg)
	if err != nil {
		os.Stderr.WriteString("invalid engine configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := cli.Run(ctx, svc, cfg, os.Stdout); err != nil {
		os.Stderr.WriteString("dunkcheck: " + err.Error() + "\n")
		if errors.Is(err, cli.ErrNoHeight) {
			cli.ShowHelp(os.Stderr)
		}
		os.Exit(2)
	}
}
