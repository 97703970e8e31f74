//go:build wasm

package internal

// renders never yield, so a single slot is enough
var globalDispatcher Dispatcher

func RunWithDispatcher(d Dispatcher, fn func()) {
	prev := globalDispatcher
	globalDispatcher = d
	defer func() { globalDispatcher = prev }()

	fn()
}

func currentDispatcher() Dispatcher {
	return globalDispatcher
}

func goroutineID() int64 {
	return 0
}
