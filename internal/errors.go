package internal

import "errors"

// Render errors
var (
	// ErrInvalidHookCall indicates a hook was called outside the body of a
	// function component.
	ErrInvalidHookCall = errors.New("hooks can only be called inside the body of a function component")

	// ErrHookOrderChanged indicates a component called a different number of
	// hooks than during its previous render.
	ErrHookOrderChanged = errors.New("rendered a different number of hooks than during the previous render")

	// ErrInvalidComponent indicates a FunctionComponent fiber whose type
	// cannot be called.
	ErrInvalidComponent = errors.New("element type is not a component")

	// ErrRenderPanic wraps a panic recovered during the render phase.
	ErrRenderPanic = errors.New("render panicked")

	// ErrTooManyRerenders indicates updates kept being scheduled from within
	// a render.
	ErrTooManyRerenders = errors.New("too many re-renders")
)

// Root errors
var (
	// ErrNoHost indicates a root was created without a host adapter.
	ErrNoHost = errors.New("no host adapter")
)
