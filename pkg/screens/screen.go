package screens

// ID identifies one renderable status view. The numeric values are part of
// the remote protocol and the rotation order, do not renumber.
type ID int

const (
	Temperature ID = 0
	CPUMemory   ID = 1
	SDMemory    ID = 2
	Hostname    ID = 3
)

func (id ID) String() string {
	switch id {
	case Temperature:
		return "temperature"
	case CPUMemory:
		return "cpu-memory"
	case SDMemory:
		return "sd-memory"
	case Hostname:
		return "hostname"
	}
	return "unknown"
}
