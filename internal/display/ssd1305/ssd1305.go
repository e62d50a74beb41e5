// Package ssd1305 drives a 128x32 SSD1305 OLED panel over SPI, with GPIO
// pins for data/command select and reset.
//
// The panel is addressed as 4 pages of 128x8 pixels; each buffer byte packs
// one 8-pixel column slice, least significant bit at the top of the page.
package ssd1305

import (
	"fmt"
	"image"
	"time"

	"github.com/tideclock/tideclock/internal/log"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Panel geometry.
const (
	Width  = 128
	Height = 32

	pages      = Height / 8
	bufferSize = Width * pages // 512 bytes
)

// Opts selects the SPI port and GPIO pins wired to the panel.
type Opts struct {
	// SPIPort is a spireg port name, e.g. "SPI0.0". Empty selects the first
	// available port.
	SPIPort string
	// DCPin and RSTPin are gpioreg pin names (BCM numbers on a Raspberry
	// Pi), e.g. "24" and "25".
	DCPin  string
	RSTPin string
}

// Dev is an open SSD1305 panel.
type Dev struct {
	c    conn.Conn
	port spi.PortCloser
	dc   gpio.PinOut
	rst  gpio.PinOut

	buffer [bufferSize]byte
}

// Open initializes the host, connects to the panel and runs its power-on
// command sequence.
func Open(opts Opts) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize periph host: %w", err)
	}

	port, err := spireg.Open(opts.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("could not open SPI port %q: %w", opts.SPIPort, err)
	}

	c, err := port.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("could not connect to SSD1305: %w", err)
	}

	dc := gpioreg.ByName(opts.DCPin)
	if dc == nil {
		port.Close()
		return nil, fmt.Errorf("no such DC pin %q", opts.DCPin)
	}
	rst := gpioreg.ByName(opts.RSTPin)
	if rst == nil {
		port.Close()
		return nil, fmt.Errorf("no such RST pin %q", opts.RSTPin)
	}

	d := &Dev{c: c, port: port, dc: dc, rst: rst}

	if err := d.reset(); err != nil {
		port.Close()
		return nil, err
	}
	if err := d.init(); err != nil {
		port.Close()
		return nil, err
	}

	return d, nil
}

func (d *Dev) reset() error {
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := d.rst.Out(level); err != nil {
			return fmt.Errorf("could not toggle RST: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (d *Dev) init() error {
	cmds := []byte{
		0xAE,       // panel off
		0x04, 0x10, // column start address
		0x40,       // display start line
		0x81, 0x80, // contrast
		0xA1, // segment remap
		0xA6, // normal (non-inverted) display
		0xA8, 0x1F, // multiplex ratio for 32 rows
		0xC8,       // COM scan direction
		0xD3, 0x00, // display offset
		0xD5, 0xF0, // clock divide ratio / oscillator
		0xD8, 0x05, // area color and low-power mode
		0xD9, 0xC2, // pre-charge period
		0xDA, 0x12, // COM pins configuration
		0xDB, 0x08, // VCOMH deselect level
		0xAF, // panel on
	}

	for _, cmd := range cmds {
		if err := d.command(cmd); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dev) command(cmd byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("could not lower DC: %w", err)
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("could not send command %#x: %w", cmd, err)
	}
	return nil
}

// SetPixel sets or clears one pixel in the backing buffer. Out-of-bounds
// coordinates are logged and dropped, never written.
func (d *Dev) SetPixel(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		log.Debugf("SetPixel out of bounds x:%d y:%d", x, y)
		return
	}

	idx := x + (y/8)*Width
	if on {
		d.buffer[idx] |= 1 << uint(y%8)
	} else {
		d.buffer[idx] &^= 1 << uint(y%8)
	}
}

// Clear zeroes the backing buffer. The panel updates on the next Display.
func (d *Dev) Clear() {
	d.buffer = [bufferSize]byte{}
}

// Display pushes the backing buffer to the panel, one page at a time.
func (d *Dev) Display() error {
	for page := 0; page < pages; page++ {
		if err := d.command(0xB0 + byte(page)); err != nil {
			return err
		}
		if err := d.command(0x04); err != nil {
			return err
		}
		if err := d.command(0x10); err != nil {
			return err
		}

		if err := d.dc.Out(gpio.High); err != nil {
			return fmt.Errorf("could not raise DC: %w", err)
		}
		start := page * Width
		if err := d.c.Tx(d.buffer[start:start+Width], nil); err != nil {
			return fmt.Errorf("could not write page %d: %w", page, err)
		}
	}

	return nil
}

// Render implements display.RenderDevice: the frame's red channel is the
// monochrome intent.
func (d *Dev) Render(buf *image.RGBA) error {
	d.Clear()
	bounds := buf.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d.SetPixel(x, y, buf.RGBAAt(x, y).R > 0)
		}
	}
	return d.Display()
}

// Halt turns the panel off and releases the SPI port.
func (d *Dev) Halt() error {
	if err := d.command(0xAE); err != nil {
		return err
	}
	return d.port.Close()
}
