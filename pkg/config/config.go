package config

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const section = "screens"

// Display holds the four independent screen toggles read from display.cfg.
// All combinations are valid, including all-false.
type Display struct {
	ShowTemperature bool
	ShowCPUMemory   bool
	ShowSDMemory    bool
	ShowHostname    bool
}

func Defaults() Display {
	return Display{
		ShowTemperature: true,
		ShowCPUMemory:   true,
		ShowSDMemory:    true,
		ShowHostname:    true,
	}
}

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{fs: fs, logger: logger}
}

type Loader struct {
	fs     afero.Fs
	logger *zap.Logger
}

// Load reads the screen toggles from path. On any failure the returned
// config equals Defaults() so the caller can warn and keep going. Keys
// missing from the file keep their default of enabled.
func (l *Loader) Load(path string, debug bool) (Display, error) {
	c := Defaults()

	bs, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}

	f, err := ini.Load(bs)
	if err != nil {
		return c, errors.Wrap(err, "parse config")
	}

	screens := f.Section(section)

	for _, e := range []struct {
		key string
		dst *bool
	}{
		{"show_temperature", &c.ShowTemperature},
		{"show_cpu_memory", &c.ShowCPUMemory},
		{"show_sd_memory", &c.ShowSDMemory},
		{"show_hostname", &c.ShowHostname},
	} {
		if !screens.HasKey(e.key) {
			continue
		}
		*e.dst = screens.Key(e.key).MustBool(*e.dst)
		if debug {
			l.logger.With(zap.String("key", e.key), zap.Bool("value", *e.dst)).Debug("config key")
		}
	}

	return c, nil
}
