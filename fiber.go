package fiber

import (
	"io"

	"github.com/AnatoleLucet/fiber/internal"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

type (
	// Node is anything renderable as a single child: an *Element, a string
	// or number, or nil.
	Node = internal.Node
	// Props are an element's attributes, its child lives under "children".
	Props = internal.Props
	// Element describes a host element (string Type) or a Component.
	Element = internal.Element
	// Component renders props into a child Node.
	Component = internal.Component

	// HostConfig is implemented by the environment the tree renders into.
	HostConfig = internal.HostConfig
	Instance   = internal.Instance
	Container  = internal.Container
	// PropChange is one prop difference handed to HostConfig.CommitUpdate.
	PropChange = internal.PropChange

	Logger = internal.Logger
	Option = internal.Option

	// Setter schedules updates of a UseState hook.
	Setter[T any] = internal.Setter[T]
)

var (
	ErrInvalidHookCall  = internal.ErrInvalidHookCall
	ErrHookOrderChanged = internal.ErrHookOrderChanged
	ErrInvalidComponent = internal.ErrInvalidComponent
	ErrRenderPanic      = internal.ErrRenderPanic
	ErrTooManyRerenders = internal.ErrTooManyRerenders
)

// Root renders element trees into a host container.
type Root struct {
	root *internal.FiberRoot
}

// CreateRoot binds container to a new root rendering through host.
func CreateRoot(container Container, host HostConfig, options ...Option) *Root {
	return &Root{
		internal.CreateContainer(container, host, options...),
	}
}

// Render reconciles node against what is on screen and commits the
// difference. A failed render leaves the screen untouched and returns the
// error.
func (r *Root) Render(node Node) error {
	_, err := internal.UpdateContainer(node, r.root)
	return err
}

// Unmount removes everything the root rendered.
func (r *Root) Unmount() error {
	return r.Render(nil)
}

// Container returns the host container the root renders into.
func (r *Root) Container() Container { return r.root.Container }

// CreateElement describes an element of the given type. A "key" prop is
// moved to the element's key. Only a single child is reconciled, more than
// one is reported and rendered as nothing.
func CreateElement(typ any, props Props, children ...Node) *Element {
	el := &Element{
		Type:  typ,
		Props: make(Props, len(props)+1),
	}

	for name, value := range props {
		if name == "key" {
			if key, ok := value.(string); ok {
				el.Key = key
			}
			continue
		}
		el.Props[name] = value
	}

	switch len(children) {
	case 0:
	case 1:
		el.Props[internal.ChildrenProp] = children[0]
	default:
		el.Props[internal.ChildrenProp] = append([]Node(nil), children...)
	}

	return el
}

// UseState returns the state of a hook of the rendering component, and a
// setter re-rendering the component's root. It panics with
// ErrInvalidHookCall outside of a component.
func UseState[T any](initial T) (T, Setter[T]) {
	return internal.UseState(initial)
}

// WithLogger sends development diagnostics to log. Without a logger they are
// discarded.
func WithLogger(log *Logger) Option {
	return internal.WithLogger(log)
}

// WithDevLogger writes debug level diagnostics as JSON lines to w.
func WithDevLogger(w io.Writer) Option {
	log := stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(w),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()

	return internal.WithLogger(log)
}

// WithMaxNestedUpdates bounds how many re-renders updates scheduled during a
// render may trigger before ErrTooManyRerenders.
func WithMaxNestedUpdates(n int) Option {
	return internal.WithMaxNestedUpdates(n)
}
