package screens

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func stubProviders() Providers {
	return Providers{
		Temperature: func() (float64, error) { return 48.2, nil },
		CPUPercent:  func() (float64, error) { return 37.5, nil },
		Memory:      func() (uint64, uint64, error) { return 512 << 20, 1 << 30, nil },
		SDUsage:     func() (uint64, uint64, error) { return 10 << 30, 32 << 30, nil },
		Hostname:    func() (string, error) { return "raspberrypi", nil },
		IPAddress:   func() string { return "192.168.1.20" },
	}
}

func litPixels(img image.Image) int {
	var n int
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r > 0 {
				n++
			}
		}
	}
	return n
}

func TestRenderEveryScreen(t *testing.T) {
	r := NewRenderer(stubProviders())

	for _, id := range []ID{Temperature, CPUMemory, SDMemory, Hostname} {
		t.Run(id.String(), func(t *testing.T) {
			frame, err := r.Render(id)
			assert.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, FrameWidth, FrameHeight), frame.Bounds())
			assert.Greater(t, litPixels(frame), 0)
		})
	}
}

func TestRenderUnknownScreen(t *testing.T) {
	r := NewRenderer(stubProviders())

	_, err := r.Render(ID(42))
	assert.Error(t, err)
}

func TestRenderProviderFailureShowsPlaceholder(t *testing.T) {
	p := stubProviders()
	p.Temperature = func() (float64, error) { return 0, errors.New("no sensor") }
	r := NewRenderer(p)

	frame, err := r.Render(Temperature)
	assert.NoError(t, err)
	assert.Greater(t, litPixels(frame), 0)
}

func TestRenderFramesArePureMonochrome(t *testing.T) {
	r := NewRenderer(stubProviders())

	frame, err := r.Render(Hostname)
	assert.NoError(t, err)

	gray, ok := frame.(*image.Gray)
	assert.True(t, ok)

	for _, v := range gray.Pix {
		assert.Contains(t, []uint8{0x00, 0xFF}, v)
	}
}

func TestLastKeepsMostRecentFrame(t *testing.T) {
	r := NewRenderer(stubProviders())
	assert.Nil(t, r.Last())

	frame, err := r.Render(SDMemory)
	assert.NoError(t, err)
	assert.Equal(t, frame, r.Last())
}

func TestHostnameWithoutIPStillRenders(t *testing.T) {
	p := stubProviders()
	p.IPAddress = func() string { return "" }
	r := NewRenderer(p)

	frame, err := r.Render(Hostname)
	assert.NoError(t, err)
	assert.Greater(t, litPixels(frame), 0)
}
