package internal

import "iter"

// completeWork builds the host side of wip once all of its children are
// complete, then bubbles the children's effects into wip.SubtreeFlags.
func completeWork(wip *Fiber, host HostConfig, log *Logger) *Fiber {
	newProps := wip.PendingProps
	current := wip.Alternate

	switch wip.Tag {
	case HostComponent:
		if current != nil && wip.StateNode != nil {
			updateHostInstance(current, wip, newProps)
		} else {
			typ, _ := wip.Type.(string)
			instance := host.CreateInstance(typ, newProps)
			appendAllChildren(host, instance, wip)
			wip.StateNode = instance
		}

	case HostText:
		// text fibers are never reused, an existing instance is left as is
		if current == nil || wip.StateNode == nil {
			wip.StateNode = host.CreateTextInstance(newProps.Content())
		}

	case HostRoot, FunctionComponent:
		// nothing to build, the container exists and components own no instance

	default:
		log.Warning().
			Stringer("tag", wip.Tag).
			Log("completeWork: unhandled tag")
	}

	bubbleProperties(wip)
	return nil
}

func updateHostInstance(current, wip *Fiber, newProps Props) {
	changes := diffProps(current.MemoizedProps, newProps)
	if len(changes) == 0 {
		return
	}

	wip.UpdatePayload = changes
	wip.Flags.Add(PropUpdate)
}

// appendAllChildren attaches the topmost host instances below wip to the
// freshly created instance.
func appendAllChildren(host HostConfig, instance Instance, wip *Fiber) {
	for node := range hostDescendants(wip) {
		host.AppendInitialChild(instance, node.StateNode)
	}
}

// hostDescendants yields the topmost host fibers below parent, descending
// through component fibers. The walk never leaves parent's subtree.
func hostDescendants(parent *Fiber) iter.Seq[*Fiber] {
	return func(yield func(*Fiber) bool) {
		node := parent.Child

		for node != nil {
			if node.Tag.IsHost() {
				if !yield(node) {
					return
				}
			} else if node.Child != nil {
				node.Child.Return = node
				node = node.Child
				continue
			}

			if node == parent {
				return
			}

			for node.Sibling == nil {
				if node.Return == nil || node.Return == parent {
					return
				}
				node = node.Return
			}

			node.Sibling.Return = node.Return
			node = node.Sibling
		}
	}
}

// hostNodes yields fiber itself when it owns a host instance, otherwise its
// topmost host descendants.
func hostNodes(fiber *Fiber) iter.Seq[*Fiber] {
	return func(yield func(*Fiber) bool) {
		if fiber.Tag.IsHost() {
			yield(fiber)
			return
		}

		for node := range hostDescendants(fiber) {
			if !yield(node) {
				return
			}
		}
	}
}

func bubbleProperties(wip *Fiber) {
	subtreeFlags := NoFlags

	for child := range wip.Children() {
		subtreeFlags = subtreeFlags.Union(child.SubtreeFlags).Union(child.Flags)

		child.Return = wip
	}

	wip.SubtreeFlags = wip.SubtreeFlags.Union(subtreeFlags)
}
