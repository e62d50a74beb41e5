package managers

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/tideclock/tideclock/internal/display"
	"github.com/tideclock/tideclock/internal/display/ssd1305"
	"github.com/tideclock/tideclock/pkg/config"
)

// DisplayManager holds our active display backends
type DisplayManager struct {
	Engines          []DisplayEngine
	FrameDistributor chan *image.RGBA

	ctx context.Context
	wg  *sync.WaitGroup
}

// DisplayEngine holds a display backend's interface as well as a channel
// for passing frames to the engine
type DisplayEngine struct {
	Engine display.DisplayEngineInterface
	C      chan<- *image.RGBA
}

// NewDisplayManager creates a DisplayManager object, populated with all
// configured display backends
func NewDisplayManager(ctx context.Context, wg *sync.WaitGroup, cfg *config.ConfigData) (*DisplayManager, error) {
	m := DisplayManager{
		ctx: ctx,
		wg:  wg,
	}

	// Initialize our channel for passing frames to the frame distributor
	m.FrameDistributor = make(chan *image.RGBA, 4)

	// Start our frame distributor to fan received frames out to display
	// backends
	go m.startFrameDistributor(ctx, wg)

	for _, d := range cfg.Displays {
		if err := m.AddEngine(ctx, wg, d); err != nil {
			return &m, fmt.Errorf("could not add %v display backend: %v", d.Type, err)
		}
	}

	return &m, nil
}

// GetFrameDistributor returns the frame distributor channel
func (m *DisplayManager) GetFrameDistributor() chan *image.RGBA {
	return m.FrameDistributor
}

// AddEngine adds a new display backend to our DisplayManager object
func (m *DisplayManager) AddEngine(ctx context.Context, wg *sync.WaitGroup, d config.DisplayData) error {
	switch d.Type {
	case "ssd1305":
		dev, err := ssd1305.Open(ssd1305.Opts{
			SPIPort: d.SPIPort,
			DCPin:   d.DCPin,
			RSTPin:  d.RSTPin,
		})
		if err != nil {
			return err
		}
		m.registerDevice(d.Type, dev)
	case "image":
		if d.Path == "" {
			return fmt.Errorf("image display requires a path")
		}
		m.registerDevice(d.Type, display.NewImageWriter(d.Path))
	default:
		return fmt.Errorf("unknown display type %q", d.Type)
	}

	return nil
}

// RegisterDevice attaches an additional RenderDevice to the fan-out, for
// sinks that are created outside the configuration file, like the status
// server's frame store.
func (m *DisplayManager) RegisterDevice(name string, dev display.RenderDevice) {
	m.registerDevice(name, dev)
}

func (m *DisplayManager) registerDevice(name string, dev display.RenderDevice) {
	e := DisplayEngine{}
	e.Engine = display.NewDeviceEngine(name, dev)
	e.C = e.Engine.StartDisplayEngine(m.ctx, m.wg)
	m.Engines = append(m.Engines, e)
}

// startFrameDistributor receives frames from the render loop and fans them
// out to the various display backends
func (m *DisplayManager) startFrameDistributor(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case frame := <-m.FrameDistributor:
			for _, e := range m.Engines {
				select {
				case e.C <- frame:
				default:
					// A stalled device drops frames rather than
					// stalling the whole clock.
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
