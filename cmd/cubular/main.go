package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/audio"
	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/scene"
	"github.com/lixenwraith/cubular/system"
)

// defaultHeadlessFrames applies when -headless is given without -frames
const defaultHeadlessFrames = 600

func main() {
	var (
		configPath = flag.String("config", "", "YAML file overlaid on the built-in configuration")
		debugFlag  = flag.Bool("debug", false, "Write debug logs to "+parameter.LogDir)
		muteFlag   = flag.Bool("mute", false, "Disable audio")
		headless   = flag.Bool("headless", false, "Run without a terminal and print the final checksum")
		frames     = flag.Int("frames", 0, "Stop after N frames (0 = until quit)")
		seed       = flag.Uint64("seed", 0, "Override the scene seed")
	)
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if *headless {
		n := *frames
		if n <= 0 {
			n = defaultHeadlessFrames
		}
		if err := runHeadless(cfg, n, logger, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg, *frames, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runHeadless steps the scene without rendering or audio and reports the final state hash
func runHeadless(cfg *config.Config, frames int, logger *zap.Logger, out io.Writer) error {
	sc, err := scene.Build(cfg, logger)
	if err != nil {
		return err
	}
	sim := system.NewSimulation(sc, cfg, nil, nil, logger)
	if err := sim.Run(frames); err != nil {
		return err
	}

	fmt.Fprintf(out, "run      %s\n", sc.RunID)
	fmt.Fprintf(out, "seed     %d\n", cfg.Simulation.Seed)
	fmt.Fprintf(out, "frames   %d\n", sim.Frame())
	fmt.Fprintf(out, "checksum %016x\n", sc.Store.Checksum())
	return nil
}

func runTerminal(cfg *config.Config, frames int, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCUBULAR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewManager(cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()
	if cfg.Audio.Music && sound.Initialized() {
		if err := sound.StartMusic(); err != nil {
			logger.Warn("music failed", zap.Error(err))
		}
	}

	a, err := newApp(screen, cfg, sound, logger)
	if err != nil {
		return err
	}
	a.frames = frames

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

// frameInterval converts the configured frame rate into a ticker period
func frameInterval(cfg *config.Config) time.Duration {
	if cfg.Simulation.FrameRate <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(cfg.Simulation.FrameRate)
}
