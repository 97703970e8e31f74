// Package memory is an in-memory host tree for fiber, useful for tests and
// for rendering outside of a browser.
package memory

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AnatoleLucet/fiber"
)

// Node is an element, a text node, or a container.
type Node struct {
	// tag name, empty for text nodes
	Type  string
	Text  string
	Props map[string]any

	Parent   *Node
	Children []*Node
}

// NewContainer returns an empty node to render into.
func NewContainer() *Node {
	return &Node{Type: "#root"}
}

func (n *Node) IsText() bool { return n.Type == "" }

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}

	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild detaches child from n, reporting whether it was a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}

	n.Children = slices.Delete(n.Children, i, i+1)
	child.Parent = nil
	return true
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}

	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// String renders n as markup, e.g. <div id="a">hello</div>. Containers only
// render their children.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}

	container := n.Type == "#root"

	if !container {
		sb.WriteString("<" + n.Type)

		names := make([]string, 0, len(n.Props))
		for name, value := range n.Props {
			if name == "children" || reflect.ValueOf(value).Kind() == reflect.Func {
				continue
			}
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			fmt.Fprintf(sb, " %s=%q", name, fmt.Sprint(n.Props[name]))
		}
		sb.WriteString(">")
	}

	for _, child := range n.Children {
		child.write(sb)
	}

	if !container {
		sb.WriteString("</" + n.Type + ">")
	}
}

// Host implements fiber.HostConfig over Nodes. Containers must be *Node.
type Host struct {
	// counts every mutation applied to attached nodes during commit
	Commits int
}

func New() *Host { return &Host{} }

var _ fiber.HostConfig = (*Host)(nil)

func (h *Host) CreateInstance(typ string, props fiber.Props) fiber.Instance {
	n := &Node{Type: typ, Props: make(map[string]any, len(props))}
	for name, value := range props {
		if name == "children" {
			continue
		}
		n.Props[name] = value
	}
	return n
}

func (h *Host) CreateTextInstance(content string) fiber.Instance {
	return &Node{Text: content}
}

func (h *Host) AppendInitialChild(parent, child fiber.Instance) {
	parent.(*Node).AppendChild(child.(*Node))
}

func (h *Host) AppendChild(parent, child fiber.Instance) {
	h.Commits++
	parent.(*Node).AppendChild(child.(*Node))
}

func (h *Host) AppendChildToContainer(container fiber.Container, child fiber.Instance) {
	h.Commits++
	container.(*Node).AppendChild(child.(*Node))
}

func (h *Host) RemoveChild(parent, child fiber.Instance) {
	h.Commits++
	parent.(*Node).RemoveChild(child.(*Node))
}

func (h *Host) RemoveChildFromContainer(container fiber.Container, child fiber.Instance) {
	h.Commits++
	container.(*Node).RemoveChild(child.(*Node))
}

func (h *Host) CommitUpdate(instance fiber.Instance, typ string, changes []fiber.PropChange) {
	h.Commits++

	n := instance.(*Node)
	for _, change := range changes {
		if change.Removed {
			delete(n.Props, change.Name)
		} else {
			n.Props[change.Name] = change.Value
		}
	}
}
