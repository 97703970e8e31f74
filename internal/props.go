package internal

import (
	"cmp"
	"reflect"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"
)

// PropChange is one entry of the diff between an instance's committed props
// and its next props.
type PropChange struct {
	Name    string
	Value   any
	Removed bool
}

var propEqualOptions = []gocmp.Option{
	gocmp.Exporter(func(reflect.Type) bool { return true }),
}

// diffProps lists the props that differ between oldProps and newProps,
// sorted by name. Children are reconciled as fibers and never appear.
func diffProps(oldProps, newProps Props) []PropChange {
	var changes []PropChange

	for name, prev := range oldProps {
		if name == ChildrenProp {
			continue
		}

		next, ok := newProps[name]
		if !ok {
			changes = append(changes, PropChange{Name: name, Removed: true})
			continue
		}

		if !propEqual(prev, next) {
			changes = append(changes, PropChange{Name: name, Value: next})
		}
	}

	for name, next := range newProps {
		if name == ChildrenProp {
			continue
		}

		if _, ok := oldProps[name]; !ok {
			changes = append(changes, PropChange{Name: name, Value: next})
		}
	}

	slices.SortFunc(changes, func(a, b PropChange) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return changes
}

// funcs are never equal unless both nil, so handlers are re-applied on every
// render
func propEqual(a, b any) bool {
	return gocmp.Equal(a, b, propEqualOptions...)
}
