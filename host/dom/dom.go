//go:build js && wasm

// Package dom renders fiber trees into the browser document.
package dom

import (
	"strings"
	"syscall/js"

	"github.com/AnatoleLucet/fiber"
)

// EventHandler is the type of "on*" props, e.g. "onClick".
type EventHandler = func(event js.Value)

// Host implements fiber.HostConfig with syscall/js. Containers and instances
// are js.Value.
type Host struct {
	doc js.Value

	// listeners by element id and event name
	listeners map[int]map[string]js.Func
	nextID    int
}

func New() *Host {
	return &Host{
		doc:       js.Global().Get("document"),
		listeners: make(map[int]map[string]js.Func),
	}
}

var _ fiber.HostConfig = (*Host)(nil)

func (h *Host) CreateInstance(typ string, props fiber.Props) fiber.Instance {
	el := h.doc.Call("createElement", typ)

	for name, value := range props {
		if name == "children" {
			continue
		}
		h.setProp(el, name, value)
	}

	return el
}

func (h *Host) CreateTextInstance(content string) fiber.Instance {
	return h.doc.Call("createTextNode", content)
}

func (h *Host) AppendInitialChild(parent, child fiber.Instance) {
	parent.(js.Value).Call("appendChild", child.(js.Value))
}

func (h *Host) AppendChild(parent, child fiber.Instance) {
	parent.(js.Value).Call("appendChild", child.(js.Value))
}

func (h *Host) AppendChildToContainer(container fiber.Container, child fiber.Instance) {
	container.(js.Value).Call("appendChild", child.(js.Value))
}

func (h *Host) RemoveChild(parent, child fiber.Instance) {
	h.release(child.(js.Value))
	parent.(js.Value).Call("removeChild", child.(js.Value))
}

func (h *Host) RemoveChildFromContainer(container fiber.Container, child fiber.Instance) {
	h.release(child.(js.Value))
	container.(js.Value).Call("removeChild", child.(js.Value))
}

func (h *Host) CommitUpdate(instance fiber.Instance, typ string, changes []fiber.PropChange) {
	el := instance.(js.Value)

	for _, change := range changes {
		if change.Removed {
			h.removeProp(el, change.Name)
		} else {
			h.setProp(el, change.Name, change.Value)
		}
	}
}

func (h *Host) setProp(el js.Value, name string, value any) {
	if event, ok := eventName(name); ok {
		handler, _ := value.(EventHandler)
		h.setListener(el, event, handler)
		return
	}

	switch v := value.(type) {
	case nil:
		h.removeProp(el, name)
	case bool:
		if v {
			el.Call("setAttribute", name, "")
		} else {
			el.Call("removeAttribute", name)
		}
	case string, int, int64, float64:
		el.Call("setAttribute", name, v)
	default:
		el.Set(name, js.ValueOf(v))
	}
}

func (h *Host) removeProp(el js.Value, name string) {
	if event, ok := eventName(name); ok {
		h.setListener(el, event, nil)
		return
	}
	el.Call("removeAttribute", name)
}

func (h *Host) setListener(el js.Value, event string, handler EventHandler) {
	id := h.elementID(el)

	if prev, ok := h.listeners[id][event]; ok {
		el.Call("removeEventListener", event, prev)
		prev.Release()
		delete(h.listeners[id], event)
	}

	if handler == nil {
		return
	}

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(args[0])
		} else {
			handler(js.Undefined())
		}
		return nil
	})
	el.Call("addEventListener", event, fn)

	if h.listeners[id] == nil {
		h.listeners[id] = make(map[string]js.Func)
	}
	h.listeners[id][event] = fn
}

func (h *Host) elementID(el js.Value) int {
	if id := el.Get("__fiberID"); id.Type() == js.TypeNumber {
		return id.Int()
	}

	h.nextID++
	el.Set("__fiberID", h.nextID)
	return h.nextID
}

// release frees the listeners of el and its descendants.
func (h *Host) release(el js.Value) {
	if id := el.Get("__fiberID"); id.Type() == js.TypeNumber {
		for event, fn := range h.listeners[id.Int()] {
			el.Call("removeEventListener", event, fn)
			fn.Release()
		}
		delete(h.listeners, id.Int())
	}

	children := el.Get("childNodes")
	if children.Type() != js.TypeObject {
		return
	}
	for i := 0; i < children.Length(); i++ {
		h.release(children.Index(i))
	}
}

// eventName maps "onClick" to "click". Props like "one" are not events.
func eventName(prop string) (string, bool) {
	name, ok := strings.CutPrefix(prop, "on")
	if !ok || name == "" || name[0] < 'A' || name[0] > 'Z' {
		return "", false
	}
	return strings.ToLower(name), true
}
