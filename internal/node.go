package internal

import (
	"fmt"
	"iter"
)

// Fiber is both the description of one piece of UI and the unit of work that
// reconciles it. Every logical node has at most two fibers, linked through
// Alternate: the one committed on screen and the one being rendered.
type Fiber struct {
	Tag  WorkTag
	Key  string
	Type any

	PendingProps  Props
	MemoizedProps Props

	// for HostRoot, the element tree to render; for function components,
	// the hook list
	MemoizedState any

	// only set on HostRoot fibers
	UpdateQueue *UpdateQueue[Node]

	// the host instance for HostComponent/HostText, the *FiberRoot for
	// HostRoot, nil otherwise
	StateNode any

	// Return is the parent and is never owning
	Return  *Fiber
	Child   *Fiber
	Sibling *Fiber
	Index   int

	Alternate *Fiber

	Flags        Flags
	SubtreeFlags Flags

	// children removed during this render, committed through ChildDeletion
	Deletions []*Fiber
	// prop changes computed in the complete phase, committed through PropUpdate
	UpdatePayload []PropChange
}

// NewFiber allocates a detached fiber with no effects.
func NewFiber(tag WorkTag, pendingProps Props, key string) *Fiber {
	return &Fiber{
		Tag:          tag,
		Key:          key,
		PendingProps: pendingProps,
		Flags:        NoFlags,
		SubtreeFlags: NoFlags,
	}
}

// CreateWorkInProgress returns the alternate of current, allocating it on
// first use. The alternate is reset and seeded with current's committed data.
func CreateWorkInProgress(current *Fiber, pendingProps Props) *Fiber {
	wip := current.Alternate

	if wip == nil {
		// mount
		wip = NewFiber(current.Tag, pendingProps, current.Key)
		wip.StateNode = current.StateNode

		wip.Alternate = current
		current.Alternate = wip
	} else {
		// update
		wip.PendingProps = pendingProps
		wip.Flags = NoFlags
		wip.SubtreeFlags = NoFlags
		wip.Deletions = nil
		wip.UpdatePayload = nil
	}

	wip.Type = current.Type
	wip.UpdateQueue = current.UpdateQueue
	wip.Child = current.Child
	wip.MemoizedProps = current.MemoizedProps
	wip.MemoizedState = current.MemoizedState

	return wip
}

// CreateFiberFromElement derives a fresh fiber from an element description.
func CreateFiberFromElement(element *Element, log *Logger) *Fiber {
	tag := FunctionComponent

	switch element.Type.(type) {
	case string:
		tag = HostComponent
	default:
		if _, ok := asComponent(element.Type); !ok {
			log.Warning().
				Str("type", fmt.Sprintf("%T", element.Type)).
				Log("unrecognized element type")
		}
	}

	fiber := NewFiber(tag, element.Props, element.Key)
	fiber.Type = element.Type

	return fiber
}

// Children returns an iterator over the fiber's direct children.
func (f *Fiber) Children() iter.Seq[*Fiber] {
	return func(yield func(*Fiber) bool) {
		child := f.Child

		for child != nil {
			if !yield(child) {
				return
			}

			child = child.Sibling
		}
	}
}

// Root returns the FiberRoot owning the tree this fiber belongs to, or nil if
// the fiber is detached.
func (f *Fiber) Root() *FiberRoot {
	node := f
	for node.Return != nil {
		node = node.Return
	}

	if node.Tag == HostRoot {
		root, _ := node.StateNode.(*FiberRoot)
		return root
	}

	return nil
}

func (f *Fiber) String() string {
	switch f.Tag {
	case HostComponent:
		return fmt.Sprintf("%s<%v>", f.Tag, f.Type)
	case HostText:
		return fmt.Sprintf("%s(%q)", f.Tag, f.PendingProps.Content())
	default:
		return f.Tag.String()
	}
}
