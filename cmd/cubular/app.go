package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cubular/audio"
	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/input"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/render"
	"github.com/lixenwraith/cubular/scene"
	"github.com/lixenwraith/cubular/system"
)

// freeView is the index of the pannable camera
const freeView = 0

// app owns the interactive frame loop
type app struct {
	screen   tcell.Screen
	sim      *system.Simulation
	term     *render.Terminal
	machine  *input.Machine
	selector *input.ViewSelector
	sound    *audio.Manager
	log      *zap.Logger

	interval time.Duration
	frames   int // 0 runs until quit
}

func newApp(screen tcell.Screen, cfg *config.Config, sound *audio.Manager, logger *zap.Logger) (*app, error) {
	sc, err := scene.Build(cfg, logger)
	if err != nil {
		return nil, err
	}

	term, err := render.NewTerminal(screen, render.ViewsFromConfig(cfg.Views), logger)
	if err != nil {
		return nil, err
	}

	table := input.DefaultKeyTable()
	machine := input.NewMachine(table, input.NewKeyboard(input.DefaultHoldWindow, nil))

	return &app{
		screen:   screen,
		sim:      system.NewSimulation(sc, cfg, term, sound, logger),
		term:     term,
		machine:  machine,
		selector: input.NewViewSelector(term.ViewCount(), table.ViewPrev, table.ViewNext),
		sound:    sound,
		log:      logger,
		interval: frameInterval(cfg),
	}, nil
}

// run polls input on one goroutine and steps frames on another until quit, error or ctx ends
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, parameter.EventChannelSize)

	g.Go(func() error {
		a.pollEvents(ctx, events)
		return nil
	})
	g.Go(func() error {
		defer func() {
			cancel()
			// Wake the poller out of PollEvent
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return a.loop(ctx, events)
	})

	err := g.Wait()
	a.log.Info("frame loop stopped", zap.Uint64("frames", a.sim.Frame()), zap.Error(err))
	return err
}

func (a *app) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	// Panic recovery for the poller goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if quit := a.handle(ev); quit {
				return nil
			}

		case <-ticker.C:
			a.poll()
			if err := a.sim.Step(); err != nil {
				return err
			}
			if a.frames > 0 && a.sim.Frame() >= uint64(a.frames) {
				return nil
			}
		}
	}
}

// handle applies one discrete event and reports whether to quit
func (a *app) handle(ev tcell.Event) bool {
	switch in := a.machine.Process(ev); in.Type {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		if a.sound.ToggleMute() {
			a.term.SetStatus("muted")
		} else {
			a.term.SetStatus("")
		}
	case input.IntentResize:
		a.screen.Sync()
	}
	return false
}

// poll applies held-key state once per frame
func (a *app) poll() {
	kb := a.machine.Keyboard()
	if a.selector.Update(kb) {
		a.term.SetView(a.selector.Index())
		a.log.Debug("view changed", zap.String("view", a.term.View().Name))
	}
	if a.term.ViewIndex() != freeView {
		return
	}
	if dx, dy := a.machine.Table().PanDelta(kb); dx != 0 || dy != 0 {
		a.term.PanView(dx*parameter.FreeViewPanStep, dy*parameter.FreeViewPanStep)
	}
}
