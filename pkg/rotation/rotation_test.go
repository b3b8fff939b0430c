package rotation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"oledstatus/pkg/config"
	"oledstatus/pkg/screens"
)

func TestBuildAllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		c := config.Display{
			ShowTemperature: mask&1 != 0,
			ShowCPUMemory:   mask&2 != 0,
			ShowSDMemory:    mask&4 != 0,
			ShowHostname:    mask&8 != 0,
		}

		t.Run(fmt.Sprintf("%04b", mask), func(t *testing.T) {
			expected := []screens.ID{}
			if c.ShowTemperature {
				expected = append(expected, screens.Temperature)
			}
			if c.ShowCPUMemory {
				expected = append(expected, screens.CPUMemory)
			}
			if c.ShowSDMemory {
				expected = append(expected, screens.SDMemory)
			}
			if c.ShowHostname {
				expected = append(expected, screens.Hostname)
			}

			assert.Equal(t, expected, Build(c))
		})
	}
}

func TestBuildKeepsFixedOrder(t *testing.T) {
	c := config.Display{
		ShowTemperature: true,
		ShowCPUMemory:   false,
		ShowSDMemory:    true,
		ShowHostname:    false,
	}

	assert.Equal(t, []screens.ID{screens.Temperature, screens.SDMemory}, Build(c))
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(config.Display{}))
}

func TestBuildDefaultsEnableEverything(t *testing.T) {
	assert.Equal(t,
		[]screens.ID{screens.Temperature, screens.CPUMemory, screens.SDMemory, screens.Hostname},
		Build(config.Defaults()),
	)
}
