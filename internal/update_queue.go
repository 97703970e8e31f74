package internal

// Update carries one state transition.
type Update[S any] struct {
	reduce func(S) S
}

// UpdateQueue is a single-slot mailbox: enqueueing before the pending update
// was processed replaces it (last write wins).
type UpdateQueue[S any] struct {
	Shared struct {
		Pending *Update[S]
	}
}

// UpdateResult is the outcome of ProcessUpdateQueue.
type UpdateResult[S any] struct {
	MemoizedState S
}

// NewUpdate creates an update whose action is the literal next state.
func NewUpdate[S any](next S) *Update[S] {
	return &Update[S]{reduce: func(S) S { return next }}
}

// NewUpdateFunc creates an update whose action derives the next state from
// the previous one.
func NewUpdateFunc[S any](fn func(prev S) S) *Update[S] {
	return &Update[S]{reduce: fn}
}

func NewUpdateQueue[S any]() *UpdateQueue[S] {
	return &UpdateQueue[S]{}
}

// EnqueueUpdate stores update as the queue's pending update.
func EnqueueUpdate[S any](queue *UpdateQueue[S], update *Update[S]) {
	queue.Shared.Pending = update
}

// Take returns the pending update and empties the slot.
func (q *UpdateQueue[S]) Take() *Update[S] {
	if q == nil {
		return nil
	}

	pending := q.Shared.Pending
	q.Shared.Pending = nil
	return pending
}

// ProcessUpdateQueue reduces pending against baseState. It has no side
// effects.
func ProcessUpdateQueue[S any](baseState S, pending *Update[S]) UpdateResult[S] {
	result := UpdateResult[S]{MemoizedState: baseState}

	if pending != nil && pending.reduce != nil {
		result.MemoizedState = pending.reduce(baseState)
	}

	return result
}
