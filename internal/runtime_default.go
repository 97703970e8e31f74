//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// dispatchers maps a goroutine id to the dispatcher of the component it is
// rendering.
var dispatchers sync.Map

// RunWithDispatcher makes d the current dispatcher of the calling goroutine
// for the duration of fn.
func RunWithDispatcher(d Dispatcher, fn func()) {
	gid := goroutineID()

	prev, hadPrev := dispatchers.Load(gid)
	dispatchers.Store(gid, d)
	defer func() {
		if hadPrev {
			dispatchers.Store(gid, prev)
		} else {
			dispatchers.Delete(gid)
		}
	}()

	fn()
}

func currentDispatcher() Dispatcher {
	if d, ok := dispatchers.Load(goroutineID()); ok {
		return d.(Dispatcher)
	}
	return nil
}

func goroutineID() int64 {
	return goid.Get()
}
