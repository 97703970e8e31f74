package internal

import "fmt"

// ChildReconciler turns a parent's new child description into its child
// fiber. It only understands a single child: siblings of the current child
// are never matched by key, only deleted.
//
// With trackEffects the reconciler flags new fibers for Placement and
// records replaced children for deletion. Without it (first mount) nothing
// is flagged, since an ancestor's placement inserts the whole subtree.
type ChildReconciler struct {
	trackEffects bool
	log          *Logger
}

// ReconcileChildFibers reconciles the children of a fiber that is already on
// screen.
func ReconcileChildFibers(returnFiber, currentFirstChild *Fiber, newChild Node, log *Logger) *Fiber {
	return ChildReconciler{trackEffects: true, log: log}.Reconcile(returnFiber, currentFirstChild, newChild)
}

// MountChildFibers builds the children of a fiber rendered for the first
// time.
func MountChildFibers(returnFiber, currentFirstChild *Fiber, newChild Node, log *Logger) *Fiber {
	return ChildReconciler{trackEffects: false, log: log}.Reconcile(returnFiber, currentFirstChild, newChild)
}

func (r ChildReconciler) Reconcile(returnFiber, currentFirstChild *Fiber, newChild Node) *Fiber {
	switch child := newChild.(type) {
	case *Element:
		if child != nil {
			return r.placeSingleChild(r.reconcileSingleElement(returnFiber, currentFirstChild, child))
		}
	case Element:
		return r.placeSingleChild(r.reconcileSingleElement(returnFiber, currentFirstChild, &child))
	}

	if content, ok := textContent(newChild); ok {
		return r.placeSingleChild(r.reconcileSingleTextNode(returnFiber, currentFirstChild, content))
	}

	switch newChild.(type) {
	case nil, *Element:
		r.log.Debug().
			Stringer("parent", returnFiber).
			Log("no child to reconcile")
	case []Node:
		r.log.Warning().
			Stringer("parent", returnFiber).
			Log("multiple children are not supported")
	default:
		r.log.Warning().
			Stringer("parent", returnFiber).
			Str("child", fmt.Sprintf("%T", newChild)).
			Log("unrecognized child")
	}

	r.deleteRemainingChildren(returnFiber, currentFirstChild)
	return nil
}

func (r ChildReconciler) reconcileSingleElement(returnFiber, currentFirstChild *Fiber, element *Element) *Fiber {
	current := currentFirstChild

	if current != nil &&
		current.Key == element.Key &&
		current.Tag != HostText &&
		sameType(current.Type, element.Type) {
		r.deleteRemainingChildren(returnFiber, current.Sibling)

		existing := useFiber(current, element.Props)
		// closures and method values share a code pointer, keep the new one
		existing.Type = element.Type
		existing.Return = returnFiber
		return existing
	}

	r.deleteRemainingChildren(returnFiber, currentFirstChild)

	fiber := CreateFiberFromElement(element, r.log)
	fiber.Return = returnFiber
	return fiber
}

// Text fibers are never reused: new content always gets a new text node.
func (r ChildReconciler) reconcileSingleTextNode(returnFiber, currentFirstChild *Fiber, content string) *Fiber {
	r.deleteRemainingChildren(returnFiber, currentFirstChild)

	fiber := NewFiber(HostText, textProps(content), "")
	fiber.Return = returnFiber
	return fiber
}

func (r ChildReconciler) placeSingleChild(fiber *Fiber) *Fiber {
	if r.trackEffects && fiber.Alternate == nil {
		fiber.Flags.Add(Placement)
	}
	return fiber
}

func (r ChildReconciler) deleteChild(returnFiber, childToDelete *Fiber) {
	if !r.trackEffects {
		return
	}

	returnFiber.Deletions = append(returnFiber.Deletions, childToDelete)
	returnFiber.Flags.Add(ChildDeletion)
}

func (r ChildReconciler) deleteRemainingChildren(returnFiber, currentFirstChild *Fiber) {
	for child := currentFirstChild; child != nil; child = child.Sibling {
		r.deleteChild(returnFiber, child)
	}
}

func useFiber(fiber *Fiber, pendingProps Props) *Fiber {
	clone := CreateWorkInProgress(fiber, pendingProps)
	clone.Index = 0
	clone.Sibling = nil
	return clone
}
