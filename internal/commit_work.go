package internal

// committer applies the effects of a finished tree to the host tree.
type committer struct {
	host HostConfig
	log  *Logger
}

// commitMutationEffects walks finishedWork depth first, skipping subtrees
// without pending mutations, and commits each visited fiber after its
// children.
func (c committer) commitMutationEffects(finishedWork *Fiber) {
	nextEffect := finishedWork

	for nextEffect != nil {
		child := nextEffect.Child

		if nextEffect.SubtreeFlags.Has(MutationMask) && child != nil {
			nextEffect = child
			continue
		}

		for nextEffect != nil {
			c.commitMutationEffectsOnFiber(nextEffect)

			if nextEffect == finishedWork {
				return
			}

			if sibling := nextEffect.Sibling; sibling != nil {
				nextEffect = sibling
				break
			}

			nextEffect = nextEffect.Return
		}
	}
}

func (c committer) commitMutationEffectsOnFiber(finishedWork *Fiber) {
	flags := finishedWork.Flags

	if flags.Has(ChildDeletion) {
		for _, deleted := range finishedWork.Deletions {
			c.commitDeletion(finishedWork, deleted)
		}
		finishedWork.Deletions = nil
		finishedWork.Flags.Clear(ChildDeletion)
	}

	if flags.Has(Placement) {
		c.commitPlacement(finishedWork)
		finishedWork.Flags.Clear(Placement)
	}

	if flags.Has(PropUpdate) {
		c.commitUpdate(finishedWork)
		finishedWork.Flags.Clear(PropUpdate)
	}
}

func (c committer) commitPlacement(finishedWork *Fiber) {
	c.log.Debug().
		Stringer("fiber", finishedWork).
		Log("commit placement")

	hostParent, ok := getHostParent(finishedWork)
	if !ok {
		c.log.Warning().
			Stringer("fiber", finishedWork).
			Log("no host parent for placement")
		return
	}

	c.appendPlacementNodeIntoContainer(finishedWork, hostParent)
}

func (c committer) appendPlacementNodeIntoContainer(finishedWork *Fiber, hostParent hostParent) {
	for node := range hostNodes(finishedWork) {
		hostParent.append(c.host, node.StateNode)
	}
}

func (c committer) commitDeletion(returnFiber, deleted *Fiber) {
	c.log.Debug().
		Stringer("fiber", deleted).
		Log("commit deletion")

	hostParent, ok := findHostParent(returnFiber)
	if !ok {
		c.log.Warning().
			Stringer("fiber", deleted).
			Log("no host parent for deletion")
		return
	}

	for node := range hostNodes(deleted) {
		hostParent.remove(c.host, node.StateNode)
	}

	detachFiber(deleted)
}

func (c committer) commitUpdate(finishedWork *Fiber) {
	changes := finishedWork.UpdatePayload
	finishedWork.UpdatePayload = nil

	if finishedWork.Tag != HostComponent || len(changes) == 0 {
		return
	}

	typ, _ := finishedWork.Type.(string)
	c.host.CommitUpdate(finishedWork.StateNode, typ, changes)
}

// hostParent is the host node children are attached to: either an instance
// or the root's container.
type hostParent struct {
	node      any
	container bool
}

func (p hostParent) append(host HostConfig, child Instance) {
	if p.container {
		host.AppendChildToContainer(p.node, child)
	} else {
		host.AppendChild(p.node, child)
	}
}

func (p hostParent) remove(host HostConfig, child Instance) {
	if p.container {
		host.RemoveChildFromContainer(p.node, child)
	} else {
		host.RemoveChild(p.node, child)
	}
}

// getHostParent finds the nearest ancestor of fiber owning a host node.
func getHostParent(fiber *Fiber) (hostParent, bool) {
	return findHostParent(fiber.Return)
}

// findHostParent is getHostParent starting at from itself.
func findHostParent(from *Fiber) (hostParent, bool) {
	for parent := from; parent != nil; parent = parent.Return {
		switch parent.Tag {
		case HostComponent:
			return hostParent{node: parent.StateNode}, true
		case HostRoot:
			if root, ok := parent.StateNode.(*FiberRoot); ok {
				return hostParent{node: root.Container, container: true}, true
			}
		}
	}

	return hostParent{}, false
}

// detachFiber unlinks a deleted subtree from its parents so updates
// scheduled from it no longer reach the root.
func detachFiber(fiber *Fiber) {
	fiber.Return = nil

	if alternate := fiber.Alternate; alternate != nil {
		alternate.Return = nil
	}
}
