package screens

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"oledstatus/pkg/mono"
)

const (
	FrameWidth  = 128
	FrameHeight = 64
)

func NewRenderer(p Providers) *Renderer {
	return &Renderer{providers: p}
}

// Renderer produces one monochrome frame per screen id. It keeps the most
// recent frame around so it can be snapshotted or sent over the bot.
type Renderer struct {
	l         sync.Mutex
	providers Providers
	last      image.Image
}

func (r *Renderer) Render(id ID) (image.Image, error) {
	dc := gg.NewContext(FrameWidth, FrameHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(basicfont.Face7x13)

	var err error
	switch id {
	case Temperature:
		err = r.temperature(dc)
	case CPUMemory:
		err = r.cpuMemory(dc)
	case SDMemory:
		err = r.sdMemory(dc)
	case Hostname:
		err = r.hostname(dc)
	default:
		return nil, errors.Errorf("unknown screen %d", id)
	}

	if err != nil {
		// Show the failure on the panel instead of leaving the old frame up.
		dc.SetRGB(0, 0, 0)
		dc.Clear()
		dc.SetRGB(1, 1, 1)
		title(dc, id.String())
		dc.DrawStringAnchored("unavailable", FrameWidth/2, 40, 0.5, 0.5)
	}

	frame := mono.Convert(dc.Image(), mono.DefaultThreshold)

	r.l.Lock()
	r.last = frame
	r.l.Unlock()

	return frame, nil
}

// Last returns the most recently rendered frame, or nil before the first render.
func (r *Renderer) Last() image.Image {
	r.l.Lock()
	defer r.l.Unlock()
	return r.last
}

func title(dc *gg.Context, s string) {
	dc.DrawStringAnchored(s, FrameWidth/2, 8, 0.5, 0.5)
	dc.DrawLine(4, 15, FrameWidth-4, 15)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func (r *Renderer) temperature(dc *gg.Context) error {
	deg, err := r.providers.Temperature()
	if err != nil {
		return err
	}

	title(dc, "temperature")
	dc.DrawStringAnchored(fmt.Sprintf("%.1f 'C", deg), FrameWidth/2, 36, 0.5, 0.5)
	bar(dc, 52, deg/100)
	return nil
}

func (r *Renderer) cpuMemory(dc *gg.Context) error {
	pct, err := r.providers.CPUPercent()
	if err != nil {
		return err
	}
	used, total, err := r.providers.Memory()
	if err != nil {
		return err
	}

	title(dc, "cpu / mem")
	dc.DrawString(fmt.Sprintf("cpu %3.0f%%", pct), 6, 32)
	bar(dc, 36, pct/100)
	dc.DrawString(fmt.Sprintf("mem %s/%s", short(used), short(total)), 6, 56)
	return nil
}

func (r *Renderer) sdMemory(dc *gg.Context) error {
	used, total, err := r.providers.SDUsage()
	if err != nil {
		return err
	}

	title(dc, "sd card")
	dc.DrawStringAnchored(fmt.Sprintf("%s / %s", short(used), short(total)), FrameWidth/2, 32, 0.5, 0.5)
	if total > 0 {
		bar(dc, 48, float64(used)/float64(total))
	}
	return nil
}

func (r *Renderer) hostname(dc *gg.Context) error {
	name, err := r.providers.Hostname()
	if err != nil {
		return err
	}

	title(dc, "host")
	dc.DrawStringAnchored(name, FrameWidth/2, 32, 0.5, 0.5)
	if ip := r.providers.IPAddress(); ip != "" {
		dc.DrawStringAnchored(ip, FrameWidth/2, 50, 0.5, 0.5)
	}
	return nil
}

func bar(dc *gg.Context, y float64, ratio float64) {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	const x, w, h = 6, FrameWidth - 12, 8
	dc.DrawRectangle(x, y, w, h)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.DrawRectangle(x, y, w*ratio, h)
	dc.Fill()
}

func short(n uint64) string {
	return bytesize.New(float64(n)).Format("%.0f", "", false)
}
