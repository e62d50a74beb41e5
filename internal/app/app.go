// Package app wires the tide clock together: configuration, tide data
// refresh, the once-a-second render loop, displays and controllers.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tideclock/tideclock/internal/controllers/statusserver"
	"github.com/tideclock/tideclock/internal/log"
	"github.com/tideclock/tideclock/internal/managers"
	"github.com/tideclock/tideclock/internal/render"
	"github.com/tideclock/tideclock/internal/tide"
	"github.com/tideclock/tideclock/internal/tidesource"
	"github.com/tideclock/tideclock/pkg/config"
)

// maxRetries is how many consecutive fetch failures we tolerate before
// giving up. With no fresh data the clock would keep showing an
// ever-more-wrong graph, so exiting and letting the supervisor restart us
// is the better failure mode.
const maxRetries = 3

// splashText is shown while the first frame's data is loading.
const splashText = "TIDE CLOCK"

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger

	model    atomic.Pointer[tide.Model]
	fetching atomic.Bool
	failures atomic.Int32
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// CurrentModel returns the tide model the render loop is drawing from. It
// is nil until the first cache load or fetch completes.
func (a *App) CurrentModel() *tide.Model {
	return a.model.Load()
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return err
	}

	// Seed the model from the on-disk cache of the last API response, so a
	// restart does not hit the API when recent data is already at hand.
	cached := tidesource.LoadCache(cfg.Source.CacheFile)
	a.model.Store(tide.NewModel(cached.Samples(), cached.ExtremeEvents()))

	source := tidesource.NewWorldTides(cfg.Station, cfg.Source)

	// Initialize the display manager
	displayManager, err := managers.NewDisplayManager(ctx, &wg, cfg)
	if err != nil {
		return err
	}

	font := render.DefaultFont()

	// Put the splash up while the first real frame's data loads
	displayManager.FrameDistributor <- render.SplashFrame(splashText, font)

	// Start any configured controllers
	for _, cc := range cfg.Controllers {
		switch cc.Type {
		case "status":
			frames := statusserver.NewFrameStore()
			displayManager.RegisterDevice("framestore", frames)

			ctrl, err := statusserver.NewController(ctx, &wg, cc, cfg.Station, a, frames)
			if err != nil {
				return err
			}
			if err := ctrl.StartController(); err != nil {
				return err
			}
		default:
			log.Warnf("unknown controller type %q, skipping", cc.Type)
		}
	}

	go a.renderLoop(ctx, &wg, source, displayManager, font)

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// renderLoop wakes every second, windows the model on the current time and
// either composes a frame or kicks off a data refresh when the window has
// run short of future samples.
func (a *App) renderLoop(ctx context.Context, wg *sync.WaitGroup, source tidesource.Provider, dm *managers.DisplayManager, font *render.Font) {
	wg.Add(1)
	defer wg.Done()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			model := a.model.Load()
			window, freshness := model.Window(now)

			if freshness == tide.NeedsUpdate {
				a.startRefresh(ctx, wg, source)
				continue
			}

			dm.FrameDistributor <- render.ComposeFrame(model, window, font, now)
		case <-ctx.Done():
			return
		}
	}
}

// startRefresh fetches new tide data unless a fetch is already in flight.
// The fetching flag serializes refreshes so a slow API response does not
// pile up requests behind the one-second tick.
func (a *App) startRefresh(ctx context.Context, wg *sync.WaitGroup, source tidesource.Provider) {
	if !a.fetching.CompareAndSwap(false, true) {
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer a.fetching.Store(false)

		data, err := source.Fetch(ctx)
		if err != nil {
			failures := a.failures.Add(1)
			if failures >= maxRetries {
				log.Fatalf("could not fetch tide data after %d attempts: %v", failures, err)
			}
			log.Errorf("could not fetch tide data (attempt %d of %d): %v", failures, maxRetries, err)
			return
		}

		a.failures.Store(0)
		a.model.Store(tide.NewModel(data.Samples(), data.ExtremeEvents()))
		log.Infof("tide model refreshed: %d samples, %d extremes", len(data.Heights), len(data.Extremes))
	}()
}
