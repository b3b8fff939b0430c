package screens

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Providers supplies the values the screens render. Each func is
// replaceable so tests run without hardware or procfs.
type Providers struct {
	Temperature func() (float64, error)
	CPUPercent  func() (float64, error)
	Memory      func() (used, total uint64, err error)
	SDUsage     func() (used, total uint64, err error)
	Hostname    func() (string, error)
	IPAddress   func() string
}

// SystemProviders reads metrics via gopsutil, with SD usage taken from the
// given mount point (the card root, usually "/").
func SystemProviders(mount string, hostname func() (string, error), ip func() string) Providers {
	return Providers{
		Temperature: cpuTemperature,
		CPUPercent: func() (float64, error) {
			pcts, err := cpu.Percent(0, false)
			if err != nil {
				return 0, err
			}
			if len(pcts) == 0 {
				return 0, errors.New("no cpu samples")
			}
			return pcts[0], nil
		},
		Memory: func() (uint64, uint64, error) {
			vm, err := mem.VirtualMemory()
			if err != nil {
				return 0, 0, err
			}
			return vm.Used, vm.Total, nil
		},
		SDUsage: func() (uint64, uint64, error) {
			du, err := disk.Usage(mount)
			if err != nil {
				return 0, 0, err
			}
			return du.Used, du.Total, nil
		},
		Hostname: hostname,
		IPAddress: ip,
	}
}

func cpuTemperature() (float64, error) {
	stats, err := host.SensorsTemperatures()
	if err != nil {
		return 0, err
	}

	// Prefer the SoC sensor, fall back to whatever reports first.
	for _, s := range stats {
		key := strings.ToLower(s.SensorKey)
		if strings.Contains(key, "cpu") || strings.Contains(key, "thermal") || strings.Contains(key, "soc") {
			return s.Temperature, nil
		}
	}
	for _, s := range stats {
		if s.Temperature > 0 {
			return s.Temperature, nil
		}
	}

	return 0, errors.New("no temperature sensor")
}
