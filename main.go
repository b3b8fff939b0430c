package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"oledstatus/pkg/config"
	"oledstatus/pkg/device"
	"oledstatus/pkg/device/remote"
	oled "oledstatus/pkg/device/ssd1306"
	"oledstatus/pkg/device/virtual"
	"oledstatus/pkg/netinfo"
	"oledstatus/pkg/rotation"
	"oledstatus/pkg/screens"
)

var debug = flag.BoolP("debug", "d", false, "verbose config diagnostics")
var cfgPath = flag.String("config", "display.cfg", "screen toggles file")
var devSpec = flag.String("device", "1", "i2c bus name, host:port for a remote panel, or 'virtual'")
var rotated = flag.Bool("rotated", false, "panel mounted upside down")
var interval = flag.String("interval", "3s", "time between screens")
var contrast = flag.Uint8("contrast", 0xCF, "panel contrast")
var invert = flag.Bool("invert", false, "black-on-white rendering")
var mount = flag.String("mount", "/", "sd card mount point")
var snapshots = flag.String("snapshots", "", "dir for saved frame snapshots")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var publicIP = flag.Bool("public-ip", false, "also resolve the public address")

// The demo always exits 0, even when the panel cannot be opened; failures
// are visible in the log only.
func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	params := rotation.NewParams()
	if d, err := time.ParseDuration(*interval); err != nil {
		logger.With(zap.Error(err)).Error("bad interval")
		return
	} else {
		params.Interval = d
	}

	var dev device.Control
	var devErr error

	switch {
	case *devSpec == "virtual":
		dev = virtual.Mock(logger)
	case strings.Contains(*devSpec, ":"):
		dev, devErr = remote.New(*devSpec)
	default:
		dev, devErr = oled.New(*devSpec, oled.Opts{Rotated: *rotated}, logger)
	}

	if devErr != nil {
		logger.With(zap.Error(devErr)).Error("display failed to open")
		return
	}

	if err := dev.Startup(); err != nil {
		logger.With(zap.Error(err)).Error("display startup failed")
		return
	}

	if err := dev.SetContrast(*contrast); err != nil {
		logger.With(zap.Error(err)).Error("set contrast failed")
		return
	}

	if err := dev.Invert(*invert); err != nil {
		logger.With(zap.Error(err)).Error("invert failed")
		return
	}

	loader := config.NewLoader(afero.NewOsFs(), logger)
	cfg, err := loader.Load(*cfgPath, *debug)
	if err != nil {
		logger.With(zap.Error(err)).Warn("could not load display config, using defaults")
	}

	var resolverOpts []netinfo.Option
	if *publicIP {
		resolverOpts = append(resolverOpts, netinfo.WithPublicLookup())
	}
	resolver := netinfo.NewResolver(logger, resolverOpts...)
	resolver.Resolve()

	renderer := screens.NewRenderer(screens.SystemProviders(*mount, resolver.Hostname, resolver.IPAddress))

	show := func(id screens.ID) error {
		frame, err := renderer.Render(id)
		if err != nil {
			return err
		}
		return dev.Draw(frame)
	}

	looper := rotation.NewLooper(rotation.Build(cfg), show, params, logger)

	if cfg.ShowHostname {
		if err := looper.Splash(); err != nil {
			logger.With(zap.Error(err)).Info("splash failed")
		}
	}

	var bot *rotation.Bot
	if *tgToken != "" {
		snaps, snapErr := rotation.NewSnapshots(afero.NewOsFs(), *snapshots)
		if snapErr != nil {
			logger.With(zap.Error(snapErr)).Error("snapshots failed")
			return
		}

		bot, err = rotation.NewBot(*tgToken, params, looper, renderer, snaps)
		if err != nil {
			logger.With(zap.Error(err)).Error("bot failed")
			return
		}
		bot.Start()
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		looper.Run(stop)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-signals:
		logger.Info("shutting down")
		close(stop)
		<-done
	case <-done:
	}

	if bot != nil {
		bot.Stop()
	}

	if err := dev.Shutdown(); err != nil {
		logger.With(zap.Error(err)).Info("shutdown failed")
	}

	logger.Info("exited")
}
