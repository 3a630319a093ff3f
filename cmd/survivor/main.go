package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/logger"
)

var (
	configFlag   = flag.String("config", config.DefaultPath(), "Path to TOML config file")
	seedFlag     = flag.Int64("seed", 0, "Match seed, 0 = time-based")
	tickFlag     = flag.Int("tick", 0, "Simulation rate in frames per second")
	spectateFlag = flag.String("spectate", "", "Spectator feed listen address, e.g. 127.0.0.1:8090")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCloser, err := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	screen, err := initScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		core.HandleCrash(recover())
	}()

	a, err := newApp(screen, cfg, nil)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := a.sound.Initialize(); err != nil {
		logger.Log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	if *muteFlag {
		a.sound.SetMuted(true)
	}

	a.run()
}

// loadConfig reads the config file and applies explicitly set flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "tick":
			cfg.TickHz = *tickFlag
		case "spectate":
			cfg.Spectator.Addr = *spectateFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
