package internal

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

type testNode struct {
	typ      string // empty for text
	text     string
	props    Props
	parent   *testNode
	children []*testNode
}

func (n *testNode) String() string {
	if n.typ == "" {
		return n.text
	}

	var sb strings.Builder
	if n.typ != "#root" {
		sb.WriteString("<" + n.typ + ">")
	}
	for _, child := range n.children {
		sb.WriteString(child.String())
	}
	if n.typ != "#root" {
		sb.WriteString("</" + n.typ + ">")
	}
	return sb.String()
}

func (n *testNode) append(child *testNode) {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *testNode) remove(child *testNode) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
		child.parent = nil
	}
}

// testHost records every operation applied to the host tree.
type testHost struct {
	ops []string
}

func (h *testHost) CreateInstance(typ string, props Props) Instance {
	h.ops = append(h.ops, "create "+typ)
	return &testNode{typ: typ, props: props}
}

func (h *testHost) CreateTextInstance(content string) Instance {
	h.ops = append(h.ops, "text "+content)
	return &testNode{text: content}
}

func (h *testHost) AppendInitialChild(parent, child Instance) {
	h.ops = append(h.ops, fmt.Sprintf("initial %s < %s", label(parent), label(child)))
	parent.(*testNode).append(child.(*testNode))
}

func (h *testHost) AppendChild(parent, child Instance) {
	h.ops = append(h.ops, fmt.Sprintf("append %s < %s", label(parent), label(child)))
	parent.(*testNode).append(child.(*testNode))
}

func (h *testHost) AppendChildToContainer(container Container, child Instance) {
	h.ops = append(h.ops, fmt.Sprintf("append %s < %s", label(container), label(child)))
	container.(*testNode).append(child.(*testNode))
}

func (h *testHost) RemoveChild(parent, child Instance) {
	h.ops = append(h.ops, fmt.Sprintf("remove %s > %s", label(parent), label(child)))
	parent.(*testNode).remove(child.(*testNode))
}

func (h *testHost) RemoveChildFromContainer(container Container, child Instance) {
	h.ops = append(h.ops, fmt.Sprintf("remove %s > %s", label(container), label(child)))
	container.(*testNode).remove(child.(*testNode))
}

func (h *testHost) CommitUpdate(instance Instance, typ string, changes []PropChange) {
	n := instance.(*testNode)

	next := make(Props, len(n.props))
	for name, value := range n.props {
		next[name] = value
	}
	for _, change := range changes {
		h.ops = append(h.ops, fmt.Sprintf("update %s.%s", typ, change.Name))
		if change.Removed {
			delete(next, change.Name)
		} else {
			next[change.Name] = change.Value
		}
	}
	n.props = next
}

func (h *testHost) reset() { h.ops = nil }

func label(v any) string {
	n := v.(*testNode)
	if n.typ == "" {
		return fmt.Sprintf("%q", n.text)
	}
	return n.typ
}

func el(typ any, props Props, child Node) *Element {
	p := Props{}
	for name, value := range props {
		p[name] = value
	}
	if child != nil {
		p[ChildrenProp] = child
	}
	return &Element{Type: typ, Props: p}
}

func newTestRoot(options ...Option) (*FiberRoot, *testNode, *testHost) {
	container := &testNode{typ: "#root"}
	host := &testHost{}
	return CreateContainer(container, host, options...), container, host
}

func newBufferLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&buf), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
	return log, &buf
}

// walk visits every fiber of the tree rooted at f.
func walk(f *Fiber, visit func(*Fiber)) {
	visit(f)
	for child := range f.Children() {
		walk(child, visit)
	}
}
