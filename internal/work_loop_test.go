package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render enqueues element and runs the render phase only.
func render(t *testing.T, root *FiberRoot, element Node) error {
	t.Helper()
	EnqueueUpdate(root.Current.UpdateQueue, NewUpdate(element))
	return renderRoot(root)
}

func TestRenderRoot(t *testing.T) {
	t.Run("builds the work in progress tree offscreen", func(t *testing.T) {
		root, container, host := newTestRoot()

		require.NoError(t, render(t, root, el("div", nil, "Hello")))

		finished := root.FinishedWork
		require.NotNil(t, finished)
		assert.Same(t, root.Current.Alternate, finished)
		assert.Equal(t, HostRoot, finished.Tag)

		div := finished.Child
		require.NotNil(t, div)
		assert.Equal(t, HostComponent, div.Tag)
		assert.True(t, div.Flags.Has(Placement))

		text := div.Child
		require.NotNil(t, text)
		assert.Equal(t, HostText, text.Tag)
		assert.Equal(t, NoFlags, text.Flags)

		assert.Equal(t, "<div>Hello</div>", div.StateNode.(*testNode).String())
		assert.Empty(t, container.children)
		assert.Equal(t, []string{"text Hello", "create div", `initial div < "Hello"`}, host.ops)
	})

	t.Run("bubbles flags into every ancestor", func(t *testing.T) {
		root, _, _ := newTestRoot()
		require.NoError(t, render(t, root, el("div", nil, el("p", nil, "a"))))
		commitRoot(root)

		require.NoError(t, render(t, root, el("div", nil, el("span", nil, "b"))))

		walk(root.FinishedWork, func(f *Fiber) {
			expected := NoFlags
			for child := range f.Children() {
				expected = expected.Union(child.Flags).Union(child.SubtreeFlags)
			}
			assert.Equal(t, expected, f.SubtreeFlags, "fiber %s", f)
		})
		assert.True(t, root.FinishedWork.SubtreeFlags.Has(Placement|ChildDeletion))
	})

	t.Run("keeps alternates symmetric", func(t *testing.T) {
		root, _, _ := newTestRoot()
		for _, content := range []string{"a", "b", "c"} {
			require.NoError(t, render(t, root, el("div", nil, el("p", nil, content))))
			commitRoot(root)
		}

		walk(root.Current, func(f *Fiber) {
			if f.Alternate != nil {
				assert.Same(t, f, f.Alternate.Alternate, "fiber %s", f)
				assert.Equal(t, f.Tag, f.Alternate.Tag)
				assert.Equal(t, f.Key, f.Alternate.Key)
			}
		})
	})

	t.Run("memoizes pending props", func(t *testing.T) {
		root, _, _ := newTestRoot()
		require.NoError(t, render(t, root, el("div", Props{"id": "x"}, "a")))

		walk(root.FinishedWork, func(f *Fiber) {
			assert.Equal(t, f.PendingProps, f.MemoizedProps, "fiber %s", f)
		})
	})

	t.Run("a panicking component leaves the current tree alone", func(t *testing.T) {
		root, container, _ := newTestRoot()
		_, err := UpdateContainer(el("div", nil, "ok"), root)
		require.NoError(t, err)

		current := root.Current
		currentChild := current.Child

		boom := func(Props) Node { panic("boom") }
		err = render(t, root, el("div", nil, el(boom, nil, nil)))

		assert.ErrorIs(t, err, ErrRenderPanic)
		assert.ErrorContains(t, err, "boom")
		assert.Same(t, current, root.Current)
		assert.Same(t, currentChild, root.Current.Child)
		assert.Nil(t, root.FinishedWork)
		assert.Equal(t, "<div>ok</div>", container.String())
	})

	t.Run("panicked errors are wrapped", func(t *testing.T) {
		root, _, _ := newTestRoot()
		sentinel := errors.New("sentinel")

		err := render(t, root, el(func(Props) Node { panic(sentinel) }, nil, nil))

		assert.ErrorIs(t, err, ErrRenderPanic)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("invalid component types fail the render", func(t *testing.T) {
		log, buf := newBufferLogger()
		root, _, _ := newTestRoot(WithLogger(log))

		err := render(t, root, &Element{Type: 42, Props: Props{}})

		assert.ErrorIs(t, err, ErrInvalidComponent)
		assert.Nil(t, root.FinishedWork)
		assert.Contains(t, buf.String(), "render abandoned")
	})

	t.Run("components own no host instance", func(t *testing.T) {
		root, _, _ := newTestRoot()
		inner := func(p Props) Node { return el("b", nil, p["label"]) }
		outer := func(Props) Node { return el(inner, Props{"label": "hi"}, nil) }

		require.NoError(t, render(t, root, el("div", nil, el(outer, nil, nil))))

		div := root.FinishedWork.Child
		assert.Equal(t, "<div><b>hi</b></div>", div.StateNode.(*testNode).String())
		assert.Nil(t, div.Child.StateNode)
		assert.Nil(t, div.Child.Child.StateNode)
	})
}
