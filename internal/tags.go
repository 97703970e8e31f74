package internal

import "strconv"

// WorkTag identifies what kind of work a fiber carries.
type WorkTag int

const (
	FunctionComponent WorkTag = 0
	HostRoot          WorkTag = 3
	HostComponent     WorkTag = 5
	HostText          WorkTag = 6
)

func (t WorkTag) String() string {
	switch t {
	case FunctionComponent:
		return "FunctionComponent"
	case HostRoot:
		return "HostRoot"
	case HostComponent:
		return "HostComponent"
	case HostText:
		return "HostText"
	default:
		return "WorkTag(" + strconv.Itoa(int(t)) + ")"
	}
}

// IsHost reports whether fibers of this tag own a host instance that can be
// attached to a parent (the root's container is not attachable).
func (t WorkTag) IsHost() bool {
	return t == HostComponent || t == HostText
}
