package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"pongsim/internal/ai"
	"pongsim/internal/audio"
	"pongsim/internal/config"
	"pongsim/internal/game"
	"pongsim/internal/model"
	"pongsim/internal/ui"
)

// HumanMoveStep is how far (field units) one key press moves the human
// paddle target.
const HumanMoveStep = 40.0

// dialTimeout bounds the initial connection to an inference server.
const dialTimeout = 2 * time.Second

// App wires the simulation engine to the terminal front-end, the audio
// sink and the optional inference backend.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	remote   *model.Remote
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run sets up the match and drives it until the player quits.
func (a *App) Run() error {
	simCfg := game.DefaultConfig()
	simCfg.BallSpeedScale = game.BallSpeedScaleFrom(a.cfg.BallSpeed)
	simCfg.HumanSensitivity = game.SensitivityFrom(a.cfg.Sensitivity)
	simCfg.PointsToWin = a.cfg.PointsToWin

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engine, err := game.NewEngine(simCfg, rng)
	if err != nil {
		return err
	}
	a.engine = engine

	controller := ai.NewController(simCfg, ai.NewDifficulty(a.cfg.Difficulty), rng)
	if a.cfg.ModelURL != "" {
		// Connect before the screen takes over the terminal so the
		// failure is visible. Absence of a model is a valid setup; the
		// controller plays rule-based either way.
		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		remote, err := model.Dial(ctx, a.cfg.ModelURL, log)
		cancel()
		if err != nil {
			log.Warn("inference server unavailable, using rule-based opponent", "err", err)
		} else {
			a.remote = remote
			controller.SetProvider(remote, a.cfg.InferWait)
		}
	}
	engine.AttachOpponent(game.SideRight, controller)

	if !a.cfg.Mute {
		// Game works without sound
		_ = audio.Init()
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.teardown()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, simCfg)

	runErr := a.mainLoop()
	a.teardown()
	return runErr
}

// mainLoop runs the 60fps drive loop and the input pump until quit.
func (a *App) mainLoop() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event)
	eg.Go(func() error {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// Fini unblocks the input pump: PollEvent returns nil once the
		// screen is finalized (tcell guards double-Fini internally).
		defer a.screen.Fini()
		ticker := time.NewTicker(16 * time.Millisecond)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if a.handleEvent(ev) {
					return nil
				}

			case now := <-ticker.C:
				dt := now.Sub(last).Seconds()
				last = now
				a.engine.Advance(dt)
				audio.PlayEvents(a.engine.DrainEvents())
				a.renderer.RenderMatch(a.engine.Snapshot())
			}
		}
	})

	return eg.Wait()
}

// handleEvent processes one input event. Returns true to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ui.KeyToAction(key.Key(), key.Rune()) {
	case ui.ActionQuit:
		return true
	case ui.ActionMoveUp:
		a.engine.MoveHumanTarget(-HumanMoveStep)
	case ui.ActionMoveDown:
		a.engine.MoveHumanTarget(HumanMoveStep)
	case ui.ActionStart:
		a.engine.Start()
	case ui.ActionPause:
		if a.engine.Match().Phase == game.PhasePaused {
			a.engine.Resume()
		} else {
			a.engine.Pause()
		}
	}
	return false
}

func (a *App) teardown() {
	audio.Close()
	if a.remote != nil {
		_ = a.remote.Close()
	}
	if a.screen != nil {
		a.screen.Fini()
	}
}
