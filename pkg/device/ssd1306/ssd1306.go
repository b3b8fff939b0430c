package ssd1306

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"oledstatus/pkg/device"
)

type Opts struct {
	Width   int
	Height  int
	Rotated bool
}

// New opens the I2C bus and attaches the panel. A bus that cannot be opened
// surfaces here as an error, there is no handle global to inspect afterwards.
func New(busName string, opts Opts, logger *zap.Logger) (device.Control, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "host init")
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrapf(err, "open i2c bus %q", busName)
	}

	devOpts := ssd1306.DefaultOpts
	if opts.Width > 0 {
		devOpts.W = opts.Width
	}
	if opts.Height > 0 {
		devOpts.H = opts.Height
	}
	devOpts.Rotated = opts.Rotated

	dev, err := ssd1306.NewI2C(bus, &devOpts)
	if err != nil {
		_ = bus.Close()
		return nil, errors.Wrap(err, "attach ssd1306")
	}

	return &OLED{bus: bus, dev: dev, logger: logger}, nil
}

type OLED struct {
	bus    i2c.BusCloser
	dev    *ssd1306.Dev
	logger *zap.Logger
}

func (o *OLED) Startup() error {
	return o.Draw(image.NewGray(o.dev.Bounds()))
}

func (o *OLED) Shutdown() error {
	if err := o.dev.Halt(); err != nil {
		_ = o.bus.Close()
		return err
	}
	return o.bus.Close()
}

func (o *OLED) SetContrast(level uint8) error {
	return o.dev.SetContrast(level)
}

func (o *OLED) Invert(blackOnWhite bool) error {
	return o.dev.Invert(blackOnWhite)
}

func (o *OLED) Draw(img image.Image) error {
	bounds := o.dev.Bounds()
	if !img.Bounds().Eq(bounds) {
		img = imaging.Fill(img, bounds.Dx(), bounds.Dy(), imaging.Center, imaging.Lanczos)
	}

	start := time.Now()
	if err := o.dev.Draw(bounds, img, image.Point{}); err != nil {
		return err
	}

	o.logger.With(
		zap.Int("w", bounds.Dx()),
		zap.Int("h", bounds.Dy()),
		zap.String("cost", time.Since(start).String()),
	).Debug("transfer")

	return nil
}
