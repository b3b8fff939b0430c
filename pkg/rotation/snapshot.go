package rotation

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

func NewSnapshots(fs afero.Fs, dir string) (*Snapshots, error) {
	s := &Snapshots{}

	if dir == "" {
		return s, nil
	}

	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("snapshot dir not exists")
	}

	s.fs = afero.NewBasePathFs(fs, dir)
	return s, nil
}

// Snapshots writes rendered frames to disk on demand. A zero-value dir
// disables it without error.
type Snapshots struct {
	fs afero.Fs
}

func (s *Snapshots) Enabled() bool {
	return s.fs != nil
}

func (s *Snapshots) Save(img image.Image) (string, int, error) {
	if s.fs == nil {
		return "", 0, errors.New("snapshots disabled")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, err
	}

	name := xid.New().String() + ".png"
	if err := afero.WriteFile(s.fs, name, buf.Bytes(), 0644); err != nil {
		return "", 0, err
	}

	return name, buf.Len(), nil
}
