package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseState(t *testing.T) {
	t.Run("panics outside a component", func(t *testing.T) {
		assert.PanicsWithError(t, ErrInvalidHookCall.Error(), func() {
			UseState(0)
		})
	})

	t.Run("setter re-renders the root", func(t *testing.T) {
		root, container, _ := newTestRoot()

		var set Setter[int]
		counter := func(Props) Node {
			count, setCount := UseState(0)
			set = setCount
			return el("p", nil, count)
		}

		_, err := UpdateContainer(el(counter, nil, nil), root)
		require.NoError(t, err)
		assert.Equal(t, "<p>0</p>", container.String())

		set.Set(5)
		assert.Equal(t, "<p>5</p>", container.String())

		set.Update(func(c int) int { return c + 1 })
		set.Update(func(c int) int { return c * 2 })
		assert.Equal(t, "<p>12</p>", container.String())
	})

	t.Run("state survives root renders", func(t *testing.T) {
		root, container, _ := newTestRoot()

		var set Setter[string]
		labelled := func(p Props) Node {
			text, setText := UseState("a")
			set = setText
			return el("p", Props{"class": p["class"]}, text)
		}

		_, err := UpdateContainer(el(labelled, Props{"class": "x"}, nil), root)
		require.NoError(t, err)
		set.Set("b")

		_, err = UpdateContainer(el(labelled, Props{"class": "y"}, nil), root)
		require.NoError(t, err)

		assert.Equal(t, "<p>b</p>", container.String())
		assert.Equal(t, "y", container.children[0].props["class"])
	})

	t.Run("multiple hooks keep their order", func(t *testing.T) {
		root, container, _ := newTestRoot()

		var setA, setB Setter[string]
		pair := func(Props) Node {
			a, sa := UseState("a")
			b, sb := UseState("b")
			setA, setB = sa, sb
			return el("p", nil, a+b)
		}

		_, err := UpdateContainer(el(pair, nil, nil), root)
		require.NoError(t, err)

		setB.Set("B")
		setA.Set("A")
		assert.Equal(t, "<p>AB</p>", container.String())
	})

	t.Run("updates during render are flushed after commit", func(t *testing.T) {
		root, container, _ := newTestRoot()

		renders := 0
		settle := func(Props) Node {
			renders++
			count, set := UseState(0)
			if count < 3 {
				set.Set(count + 1)
			}
			return el("p", nil, count)
		}

		_, err := UpdateContainer(el(settle, nil, nil), root)
		require.NoError(t, err)

		assert.Equal(t, "<p>3</p>", container.String())
		assert.Equal(t, 4, renders)
	})

	t.Run("endless updates during render are bounded", func(t *testing.T) {
		root, _, _ := newTestRoot(WithMaxNestedUpdates(5))

		loop := func(Props) Node {
			count, set := UseState(0)
			set.Update(func(c int) int { return c + 1 })
			return count
		}

		_, err := UpdateContainer(el(loop, nil, nil), root)
		assert.ErrorIs(t, err, ErrTooManyRerenders)
	})

	t.Run("changing the number of hooks fails the render", func(t *testing.T) {
		conditional := func(p Props) Node {
			if p["hook"] == true {
				UseState(0)
			}
			return "x"
		}

		root, _, _ := newTestRoot()
		_, err := UpdateContainer(el(conditional, Props{"hook": true}, nil), root)
		require.NoError(t, err)
		_, err = UpdateContainer(el(conditional, Props{"hook": false}, nil), root)
		assert.ErrorIs(t, err, ErrHookOrderChanged)

		root, _, _ = newTestRoot()
		_, err = UpdateContainer(el(conditional, Props{"hook": false}, nil), root)
		require.NoError(t, err)
		_, err = UpdateContainer(el(conditional, Props{"hook": true}, nil), root)
		assert.ErrorIs(t, err, ErrHookOrderChanged)
	})

	t.Run("updates after unmount are dropped", func(t *testing.T) {
		root, container, host := newTestRoot()

		var set Setter[int]
		counter := func(Props) Node {
			count, setCount := UseState(0)
			set = setCount
			return el("p", nil, count)
		}

		_, err := UpdateContainer(el(counter, nil, nil), root)
		require.NoError(t, err)
		_, err = UpdateContainer(nil, root)
		require.NoError(t, err)
		host.reset()

		assert.NotPanics(t, func() { set.Set(1) })
		assert.Empty(t, container.children)
		assert.Empty(t, host.ops)
	})

	t.Run("setters are safe across goroutines", func(t *testing.T) {
		root, container, _ := newTestRoot()

		var set Setter[int]
		counter := func(Props) Node {
			count, setCount := UseState(0)
			set = setCount
			return el("p", nil, count)
		}

		_, err := UpdateContainer(el(counter, nil, nil), root)
		require.NoError(t, err)

		s := set
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Update(func(c int) int { return c + 1 })
			}()
		}
		wg.Wait()

		assert.Equal(t, "<p>20</p>", container.String())
	})
	t.Run("setters wait for a render in progress", func(t *testing.T) {
		root, container, _ := newTestRoot()

		var set Setter[int]
		counter := func(Props) Node {
			count, setCount := UseState(0)
			set = setCount
			return el("p", nil, count)
		}

		started, release := make(chan struct{}), make(chan struct{})
		var once sync.Once
		gate := func(p Props) Node {
			if p["block"] == true {
				once.Do(func() { close(started) })
				<-release
			}
			return el(counter, nil, nil)
		}

		_, err := UpdateContainer(el(gate, nil, nil), root)
		require.NoError(t, err)
		s := set

		rendered := make(chan error)
		go func() {
			_, err := UpdateContainer(el(gate, Props{"block": true}, nil), root)
			rendered <- err
		}()
		<-started

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(7)
		}()
		close(release)

		require.NoError(t, <-rendered)
		wg.Wait()

		assert.Equal(t, "<p>7</p>", container.String())
	})

	t.Run("a failed render drops the hook update it consumed", func(t *testing.T) {
		log, buf := newBufferLogger()
		root, container, _ := newTestRoot(WithLogger(log))

		explode := false
		bomb := func(p Props) Node {
			if explode {
				panic("boom")
			}
			return el("p", nil, p["count"])
		}

		var set Setter[int]
		counter := func(Props) Node {
			count, setCount := UseState(0)
			set = setCount
			return el(bomb, Props{"count": count}, nil)
		}

		_, err := UpdateContainer(el(counter, nil, nil), root)
		require.NoError(t, err)

		explode = true
		set.Set(5)
		assert.Equal(t, "<p>0</p>", container.String())
		assert.Contains(t, buf.String(), "state update failed")

		explode = false
		_, err = UpdateContainer(el(counter, nil, nil), root)
		require.NoError(t, err)
		assert.Equal(t, "<p>0</p>", container.String())
	})
}
