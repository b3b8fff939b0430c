package rotation

import (
	"github.com/samber/lo"

	"oledstatus/pkg/config"
	"oledstatus/pkg/screens"
)

type entry struct {
	enabled func(c config.Display) bool
	id      screens.ID
}

// order fixes the cyclic priority of the screens. Toggles include or
// exclude a screen, they never reorder it.
var order = []entry{
	{func(c config.Display) bool { return c.ShowTemperature }, screens.Temperature},
	{func(c config.Display) bool { return c.ShowCPUMemory }, screens.CPUMemory},
	{func(c config.Display) bool { return c.ShowSDMemory }, screens.SDMemory},
	{func(c config.Display) bool { return c.ShowHostname }, screens.Hostname},
}

// Build returns the rotation list for c: the enabled screen ids, in fixed
// priority order. An all-false config yields an empty list.
func Build(c config.Display) []screens.ID {
	enabled := lo.Filter(order, func(e entry, _ int) bool { return e.enabled(c) })
	return lo.Map(enabled, func(e entry, _ int) screens.ID { return e.id })
}
