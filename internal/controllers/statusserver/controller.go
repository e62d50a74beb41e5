// Package statusserver implements the optional HTTP controller: a small
// gorilla/mux server that reports clock state as JSON and serves the most
// recently rendered frame as a PNG.
package statusserver

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/tideclock/tideclock/internal/log"
	"github.com/tideclock/tideclock/internal/tide"
	"github.com/tideclock/tideclock/pkg/config"
)

// ModelSource provides the current tide model. The render loop swaps models
// when new data arrives, so the controller always reads through this
// interface instead of holding a model of its own.
type ModelSource interface {
	CurrentModel() *tide.Model
}

// Controller represents the status server controller
type Controller struct {
	ctx     context.Context
	wg      *sync.WaitGroup
	station config.StationData
	models  ModelSource
	frames  *FrameStore
	Server  http.Server
}

// NewController creates a new status server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cc config.ControllerData, station config.StationData, models ModelSource, frames *FrameStore) (*Controller, error) {
	ctrl := &Controller{
		ctx:     ctx,
		wg:      wg,
		station: station,
		models:  models,
		frames:  frames,
	}

	if cc.ListenAddr == "" {
		log.Info("controller listen_addr not provided; defaulting to :8080")
		cc.ListenAddr = ":8080"
	}

	ctrl.Server.Addr = cc.ListenAddr
	ctrl.Server.Handler = ctrl.setupRouter()

	return ctrl, nil
}

// StartController starts the status server
func (c *Controller) StartController() error {
	log.Info("Starting status server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("status server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the status server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/status", c.GetStatus)
	router.HandleFunc("/frame.png", c.GetFrame)

	return router
}
