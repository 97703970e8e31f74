package internal

import (
	"reflect"
	"strconv"
)

// Node is anything that can be rendered as a single child: an *Element, a
// string or number, or nil for nothing.
type Node any

// Props are the attributes of an element. The "children" entry holds the
// element's child Node.
type Props map[string]any

// ChildrenProp is the props key holding an element's children.
const ChildrenProp = "children"

// Component renders a function component into its child Node.
type Component func(props Props) Node

// Element describes what to render. Type is a host tag name (string) or a
// Component.
type Element struct {
	Type  any
	Key   string
	Props Props
}

// Children returns the element's "children" prop.
func (p Props) Children() Node {
	if p == nil {
		return nil
	}
	return p[ChildrenProp]
}

// Content returns the text of a HostText fiber's props.
func (p Props) Content() string {
	if p == nil {
		return ""
	}
	s, _ := p["content"].(string)
	return s
}

func textProps(content string) Props {
	return Props{"content": content}
}

// textContent converts a primitive child to its text, reporting false for
// anything that isn't a string or number.
func textContent(child Node) (string, bool) {
	switch v := child.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}

// asComponent resolves an element type to a callable component.
func asComponent(typ any) (Component, bool) {
	switch fn := typ.(type) {
	case Component:
		return fn, fn != nil
	case func(Props) Node:
		return fn, fn != nil
	default:
		return nil, false
	}
}

// sameType reports whether two element types render the same kind of fiber.
// Components are compared by code pointer, so closures of the same function
// literal are considered equal.
func sameType(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case nil:
		return b == nil
	}

	ca, ok := asComponent(a)
	if !ok {
		return false
	}
	cb, ok := asComponent(b)
	if !ok {
		return false
	}
	return reflect.ValueOf(ca).Pointer() == reflect.ValueOf(cb).Pointer()
}
