package remote

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"oledstatus/pkg/device"
)

// Proxy exposes a local panel over rpc so another host can drive it.
func Proxy(dev device.Control, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev device.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	}

	return errors.New("unknown command")
}

func (s *Service) SetContrast(level uint8, _ *EmptyResponse) error {
	return s.dev.SetContrast(level)
}

func (s *Service) Invert(blackOnWhite bool, _ *EmptyResponse) error {
	return s.dev.Invert(blackOnWhite)
}

func (s *Service) Draw(req *DrawRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.Draw(img)
}
