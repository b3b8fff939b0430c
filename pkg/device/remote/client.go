package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"oledstatus/pkg/device"
)

func New(addr string) (device.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", nil)
}

func (c *Client) Shutdown() error {
	return c.rpc.Call("Service.Command", "shutdown", nil)
}

func (c *Client) SetContrast(level uint8) error {
	return c.rpc.Call("Service.SetContrast", level, nil)
}

func (c *Client) Invert(blackOnWhite bool) error {
	return c.rpc.Call("Service.Invert", blackOnWhite, nil)
}

func (c *Client) Draw(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	return c.rpc.Call("Service.Draw", &DrawRequest{Image: buf.Bytes()}, nil)
}
