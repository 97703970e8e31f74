package internal

import "strings"

// Flags is a bit set of pending host effects on a fiber.
type Flags uint8

const (
	NoFlags       Flags = 0
	Placement     Flags = 1 << (iota - 1) // insert the fiber's host nodes
	PropUpdate                            // apply a prop diff to the existing host instance
	ChildDeletion                         // remove the fibers listed in Deletions

	MutationMask = Placement | PropUpdate | ChildDeletion
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

func (f Flags) Union(other Flags) Flags {
	return f | other
}

func (f *Flags) Add(flag Flags) {
	*f |= flag
}

func (f *Flags) Clear(flag Flags) {
	*f &^= flag
}

func (f Flags) String() string {
	if f == NoFlags {
		return "NoFlags"
	}

	var names []string
	if f.Has(Placement) {
		names = append(names, "Placement")
	}
	if f.Has(PropUpdate) {
		names = append(names, "PropUpdate")
	}
	if f.Has(ChildDeletion) {
		names = append(names, "ChildDeletion")
	}
	return strings.Join(names, "|")
}
