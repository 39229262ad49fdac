// Package main is the entry point for DungeonCrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/spawn"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run wires the game together and returns the process exit code. Errors
// after the logger is open are returned, not fatal, so deferred cleanup
// flushes logs and spans.
func run() int {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONCRAWL_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Print("dungeoncrawl needs an interactive terminal")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	slogger, closeLog, err := logger.NewFile(logCfg, cfg.LogFile)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer closeLog()

	rng, seed := cfg.NewRand()

	if cfg.Telemetry {
		// Set up OTEL environment variables from our .env variables
		setupOTelEnv()

		shutdown, err := telemetry.Setup(ctx, telemetry.RunInfo{
			RunID:  logCfg.RunID,
			Seed:   seed,
			Width:  cfg.Width,
			Height: cfg.Height,
		})
		if err != nil {
			slogger.Warn("telemetry setup failed, running without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slogger.Error("telemetry shutdown", "error", err)
				}
			}()
		}
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := telemetry.ServeMetrics(ctx, cfg.MetricsAddr); err != nil {
				slogger.Error("metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		slogger.Error("load monsters", "error", err)
		log.Printf("Failed to load monsters: %v", err)
		return 1
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		slogger.Error("load items", "error", err)
		log.Printf("Failed to load items: %v", err)
		return 1
	}
	slogger.Debug("game data loaded",
		"monster_types", monsters.Count(),
		"item_types", items.Count(),
	)

	player, err := game.CreateCharacter(os.Stdin, os.Stdout)
	if err != nil {
		log.Printf("Character creation failed: %v", err)
		return 1
	}
	slogger.Info("run started", "player", player.Name, "seed", seed)

	g, err := game.New(game.Options{
		Config:  cfg,
		Player:  player,
		RNG:     rng,
		Factory: spawn.NewFactory(monsters, items),
		Logger:  slogger,
	})
	if err != nil {
		slogger.Error("screen init", "error", err)
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		slogger.Error("game error", "error", err)
		log.Printf("Game error: %v", err)
		return 1
	}

	e := g.Engine()
	game.Farewell(os.Stdout, player, e.Level().Depth, e.PlayerDead())
	slogger.Info("run finished",
		"depth", e.Level().Depth,
		"gold", player.Gold,
		"dead", e.PlayerDead(),
	)
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DUNGEONCRAWL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONCRAWL_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
