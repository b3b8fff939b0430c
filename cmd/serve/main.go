package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"oledstatus/pkg/device"
	"oledstatus/pkg/device/remote"
	oled "oledstatus/pkg/device/ssd1306"
)

var bus = flag.String("bus", "1", "i2c bus name")
var listen = flag.String("listen", ":9123", "listen addr")
var rotated = flag.Bool("rotated", false, "panel mounted upside down")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, *http.Server) {
				logger, _ := zap.NewDevelopment()
				return logger, &http.Server{Addr: *listen}
			},
			func(logger *zap.Logger) (device.Control, error) {
				return oled.New(*bus, oled.Opts{Rotated: *rotated}, logger)
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
