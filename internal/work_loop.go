package internal

import "fmt"

// workLoop holds the traversal state of one render. It is never shared
// between renders.
type workLoop struct {
	root *FiberRoot

	// the fiber being worked on, nil once the tree is exhausted
	workInProgress *Fiber
}

// renderRoot builds the work-in-progress tree for root. On success the tree
// is stored in root.FinishedWork, on failure root is left untouched.
func renderRoot(root *FiberRoot) error {
	w := &workLoop{root: root}
	w.prepareFreshStack()

	if err := w.run(); err != nil {
		w.workInProgress = nil

		root.log.Warning().
			Err(err).
			Log("render abandoned")
		return err
	}

	root.FinishedWork = root.Current.Alternate
	return nil
}

func (w *workLoop) prepareFreshStack() {
	w.workInProgress = CreateWorkInProgress(w.root.Current, Props{})
}

func (w *workLoop) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	for w.workInProgress != nil {
		if err := w.performUnitOfWork(w.workInProgress); err != nil {
			return err
		}
	}

	return nil
}

func (w *workLoop) performUnitOfWork(fiber *Fiber) error {
	next, err := beginWork(fiber, w.root)
	if err != nil {
		return err
	}
	fiber.MemoizedProps = fiber.PendingProps

	if next == nil {
		w.completeUnitOfWork(fiber)
	} else {
		w.workInProgress = next
	}

	return nil
}

func (w *workLoop) completeUnitOfWork(fiber *Fiber) {
	node := fiber

	for node != nil {
		completeWork(node, w.root.host, w.root.log)

		if sibling := node.Sibling; sibling != nil {
			w.workInProgress = sibling
			return
		}

		node = node.Return
		w.workInProgress = node
	}
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrRenderPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrRenderPanic, r)
}
