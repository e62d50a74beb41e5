package display

import (
	"context"
	"image"
	"sync"

	"github.com/tideclock/tideclock/internal/log"
)

// DisplayEngineInterface is an interface that provides a standardized
// method for starting the various display backends
type DisplayEngineInterface interface {
	StartDisplayEngine(context.Context, *sync.WaitGroup) chan<- *image.RGBA
}

// Halter is implemented by devices that need an explicit shutdown, like the
// OLED which should blank its panel before the process exits.
type Halter interface {
	Halt() error
}

// DeviceEngine adapts a RenderDevice into a display engine with its own
// frame channel and goroutine.
type DeviceEngine struct {
	name   string
	device RenderDevice
}

// NewDeviceEngine wraps a RenderDevice. The name is only used in log lines.
func NewDeviceEngine(name string, device RenderDevice) *DeviceEngine {
	return &DeviceEngine{
		name:   name,
		device: device,
	}
}

// StartDisplayEngine creates a goroutine loop to receive frames and push
// them to the device
func (e *DeviceEngine) StartDisplayEngine(ctx context.Context, wg *sync.WaitGroup) chan<- *image.RGBA {
	log.Infof("starting %v display engine...", e.name)
	frameChan := make(chan *image.RGBA, 1)
	go e.processFrames(ctx, wg, frameChan)
	return frameChan
}

func (e *DeviceEngine) processFrames(ctx context.Context, wg *sync.WaitGroup, frameChan <-chan *image.RGBA) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case frame := <-frameChan:
			if err := e.device.Render(frame); err != nil {
				log.Errorf("could not render frame to %v display: %v", e.name, err)
			}
		case <-ctx.Done():
			log.Infof("cancellation request received. Cancelling %v display engine.", e.name)
			if h, ok := e.device.(Halter); ok {
				if err := h.Halt(); err != nil {
					log.Errorf("could not halt %v display: %v", e.name, err)
				}
			}
			return
		}
	}
}
