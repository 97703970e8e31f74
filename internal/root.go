package internal

// FiberRoot binds a host container to the fiber tree rendered into it.
type FiberRoot struct {
	Container Container

	// the tree on screen, only reassigned by a successful commit
	Current *Fiber

	// the tree built by the last successful render, waiting for commit
	FinishedWork *Fiber

	host      HostConfig
	log       *Logger
	scheduler *Scheduler
}

// CreateContainer creates a root rendering into container through host.
func CreateContainer(container Container, host HostConfig, options ...Option) *FiberRoot {
	if host == nil {
		panic(ErrNoHost)
	}

	c := newConfig(options...)

	hostRootFiber := NewFiber(HostRoot, Props{}, "")
	hostRootFiber.UpdateQueue = NewUpdateQueue[Node]()

	root := &FiberRoot{
		Container: container,
		Current:   hostRootFiber,
		host:      host,
		log:       c.log,
		scheduler: NewScheduler(c.maxNestedUpdates),
	}
	hostRootFiber.StateNode = root

	return root
}

// UpdateContainer renders element into root and commits the result. It
// returns element unchanged, along with the error of an abandoned render.
func UpdateContainer(element Node, root *FiberRoot) (Node, error) {
	update := NewUpdate(element)

	err := root.scheduler.Schedule(func() bool {
		EnqueueUpdate(root.Current.UpdateQueue, update)
		return true
	}, root.performSyncWork)

	return element, err
}

// ScheduleUpdateOnFiber runs enqueue and re-renders root, which fiber was
// rendered into. Updates on fibers no longer attached to root are dropped.
// The tree is only walked once root's render lock is held.
func ScheduleUpdateOnFiber(root *FiberRoot, fiber *Fiber, enqueue func()) error {
	return root.scheduler.Schedule(func() bool {
		if markUpdateFromFiberToRoot(fiber) != root {
			return false
		}

		enqueue()
		return true
	}, root.performSyncWork)
}

func markUpdateFromFiberToRoot(fiber *Fiber) *FiberRoot {
	return fiber.Root()
}

func (root *FiberRoot) performSyncWork() error {
	if err := renderRoot(root); err != nil {
		return err
	}

	commitRoot(root)
	return nil
}

func commitRoot(root *FiberRoot) {
	finishedWork := root.FinishedWork
	if finishedWork == nil {
		return
	}
	root.FinishedWork = nil

	if finishedWork.Flags.Union(finishedWork.SubtreeFlags).Has(MutationMask) {
		committer{host: root.host, log: root.log}.commitMutationEffects(finishedWork)
	}

	root.Current = finishedWork
}
