package internal

import "fmt"

// beginWork computes the next state of wip and reconciles its children,
// returning the first child to work on next.
func beginWork(wip *Fiber, root *FiberRoot) (*Fiber, error) {
	log := root.log

	switch wip.Tag {
	case HostRoot:
		return updateHostRoot(wip, log), nil
	case HostComponent:
		return updateHostComponent(wip, log), nil
	case HostText:
		return nil, nil
	case FunctionComponent:
		return updateFunctionComponent(wip, root)
	default:
		log.Warning().
			Stringer("tag", wip.Tag).
			Log("beginWork: unhandled tag")
		return nil, nil
	}
}

func updateHostRoot(wip *Fiber, log *Logger) *Fiber {
	baseState := wip.MemoizedState
	pending := wip.UpdateQueue.Take()

	result := ProcessUpdateQueue[Node](baseState, pending)
	wip.MemoizedState = result.MemoizedState

	reconcileChildren(wip, result.MemoizedState, log)
	return wip.Child
}

func updateHostComponent(wip *Fiber, log *Logger) *Fiber {
	nextChildren := wip.PendingProps.Children()

	reconcileChildren(wip, nextChildren, log)
	return wip.Child
}

func updateFunctionComponent(wip *Fiber, root *FiberRoot) (*Fiber, error) {
	component, ok := asComponent(wip.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidComponent, wip.Type)
	}

	nextChildren, err := renderWithHooks(wip, root, component, wip.PendingProps)
	if err != nil {
		return nil, err
	}

	reconcileChildren(wip, nextChildren, root.log)
	return wip.Child, nil
}

func reconcileChildren(wip *Fiber, children Node, log *Logger) {
	current := wip.Alternate

	if current != nil {
		wip.Child = ReconcileChildFibers(wip, current.Child, children, log)
	} else {
		wip.Child = MountChildFibers(wip, nil, children, log)
	}
}
