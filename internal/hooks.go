package internal

import "fmt"

// Dispatcher implements hooks for the function component being rendered.
type Dispatcher interface {
	UseState(initial any) (any, func(*Update[any]))
}

// ResolveDispatcher returns the dispatcher of the component rendering on the
// calling goroutine. It panics with ErrInvalidHookCall outside of one.
func ResolveDispatcher() Dispatcher {
	d := currentDispatcher()
	if d == nil {
		panic(ErrInvalidHookCall)
	}
	return d
}

type hook struct {
	memoizedState any

	// shared by both buffers of the fiber
	queue *UpdateQueue[any]

	next *hook
}

// hooksRenderer is the Dispatcher for one function component render.
type hooksRenderer struct {
	root    *FiberRoot
	wip     *Fiber
	current *Fiber // nil on mount

	// cursor in the committed hook list
	currentHook *hook
	// tail of the hook list being built
	workInProgressHook *hook
}

func renderWithHooks(wip *Fiber, root *FiberRoot, component Component, props Props) (Node, error) {
	r := &hooksRenderer{
		root:    root,
		wip:     wip,
		current: wip.Alternate,
	}
	if r.current != nil {
		r.currentHook, _ = r.current.MemoizedState.(*hook)
	}
	wip.MemoizedState = nil

	var children Node
	RunWithDispatcher(r, func() {
		children = component(props)
	})

	if r.currentHook != nil {
		return nil, fmt.Errorf("%w: %s", ErrHookOrderChanged, wip)
	}

	return children, nil
}

func (r *hooksRenderer) UseState(initial any) (any, func(*Update[any])) {
	var h *hook

	if r.current == nil {
		h = r.mountWorkInProgressHook()
		h.memoizedState = initial
		h.queue = NewUpdateQueue[any]()
	} else {
		h = r.updateWorkInProgressHook()

		result := ProcessUpdateQueue(h.memoizedState, h.queue.Take())
		h.memoizedState = result.MemoizedState
	}

	root, fiber, queue := r.root, r.wip, h.queue
	dispatch := func(update *Update[any]) {
		dispatchSetState(root, fiber, queue, update)
	}

	return h.memoizedState, dispatch
}

func (r *hooksRenderer) mountWorkInProgressHook() *hook {
	h := &hook{}
	r.appendHook(h)
	return h
}

func (r *hooksRenderer) updateWorkInProgressHook() *hook {
	current := r.currentHook
	if current == nil {
		panic(fmt.Errorf("%w: %s", ErrHookOrderChanged, r.wip))
	}
	r.currentHook = current.next

	h := &hook{
		memoizedState: current.memoizedState,
		queue:         current.queue,
	}
	r.appendHook(h)
	return h
}

func (r *hooksRenderer) appendHook(h *hook) {
	if r.workInProgressHook == nil {
		r.wip.MemoizedState = h
	} else {
		r.workInProgressHook.next = h
	}
	r.workInProgressHook = h
}

func dispatchSetState(root *FiberRoot, fiber *Fiber, queue *UpdateQueue[any], update *Update[any]) {
	err := ScheduleUpdateOnFiber(root, fiber, func() {
		EnqueueUpdate(queue, update)
	})
	if err != nil {
		root.log.Err().
			Err(err).
			Log("state update failed")
	}
}

// Setter schedules updates of one UseState hook.
type Setter[T any] struct {
	dispatch func(*Update[any])
}

// Set replaces the state with next.
func (s Setter[T]) Set(next T) {
	s.dispatch(NewUpdate[any](next))
}

// Update derives the next state from the previous one.
func (s Setter[T]) Update(fn func(prev T) T) {
	s.dispatch(NewUpdateFunc(func(prev any) any {
		return fn(as[T](prev))
	}))
}

// UseState returns the current state of a hook and its setter.
func UseState[T any](initial T) (T, Setter[T]) {
	value, dispatch := ResolveDispatcher().UseState(initial)
	return as[T](value), Setter[T]{dispatch}
}

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}
