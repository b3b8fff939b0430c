package rotation

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	tele "gopkg.in/telebot.v3"

	"oledstatus/pkg/screens"
)

func NewBot(token string, params *Params, looper *Looper, renderer *screens.Renderer, snaps *Snapshots) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:      b,
		params: params,
		looper: looper,
		r:      renderer,
		snaps:  snaps,
	}, nil
}

// Bot remote-controls the rotation over telegram.
type Bot struct {
	b      *tele.Bot
	params *Params
	looper *Looper
	r      *screens.Renderer
	snaps  *Snapshots
}

func (b *Bot) handleBase() {
	b.b.Handle("/pause", func(context tele.Context) error {
		b.params.Pause()
		return context.Reply("OK")
	})

	b.b.Handle("/resume", func(context tele.Context) error {
		b.params.Wakeup()
		return context.Reply("OK")
	})

	b.b.Handle("/next", func(context tele.Context) error {
		b.looper.Skip()
		return context.Reply("OK")
	})

	b.b.Handle("/interval", func(context tele.Context) error {
		in := context.Message().Payload
		if in == "" {
			return context.Reply(b.params.Interval.String())
		}

		duration, err := time.ParseDuration(in)
		if err != nil {
			return context.Reply(fmt.Sprintf("change failed: %s", err))
		}

		b.params.Interval = duration
		b.params.Wakeup()
		return context.Reply("OK")
	})
}

func (b *Bot) handleInfo() {
	b.b.Handle("/screens", func(context tele.Context) error {
		names := lo.Map(b.looper.List(), func(id screens.ID, _ int) string {
			return fmt.Sprintf("%d: %s", int(id), id)
		})
		if len(names) == 0 {
			return context.Reply("rotation is empty")
		}
		return context.Reply(strings.Join(names, "\n"))
	})

	b.b.Handle("/info", func(context tele.Context) error {
		lines := []string{
			fmt.Sprintf("Screens: %d", len(b.looper.List())),
			fmt.Sprintf("Interval: %s", b.params.Interval),
			fmt.Sprintf("State: %s", lo.Ternary(b.params.Paused(), "paused", "running")),
		}
		return context.Reply(strings.Join(lines, "\n"))
	})
}

func (b *Bot) handleFrames() {
	b.b.Handle("/shot", func(context tele.Context) error {
		frame := b.r.Last()
		if frame == nil {
			return context.Reply("Nothing rendered yet")
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, frame); err != nil {
			return context.Reply(fmt.Sprintf("encode failed: %s", err))
		}

		return context.Reply(&tele.Photo{File: tele.FromReader(&buf)})
	})

	b.b.Handle("/save", func(context tele.Context) error {
		if !b.snaps.Enabled() {
			return context.Reply("Snapshots disabled")
		}

		frame := b.r.Last()
		if frame == nil {
			return context.Reply("Nothing rendered yet")
		}

		name, size, err := b.snaps.Save(frame)
		if err != nil {
			return context.Reply(fmt.Sprintf("save failed: %s", err))
		}

		return context.Reply(fmt.Sprintf("Saved %s (%s)", name, bytesize.New(float64(size))))
	})
}

func (b *Bot) Start() {
	b.handleBase()
	b.handleInfo()
	b.handleFrames()
	go b.b.Start()
}

func (b *Bot) Stop() {
	go b.b.Stop()
}
