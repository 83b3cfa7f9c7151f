package tracker

// MouseButton identifies the button of a release event.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ReleaseEvent is a pointer release anywhere on screen, in screen pixels.
type ReleaseEvent struct {
	X, Y   float64
	Button MouseButton
}

type Listener func(ReleaseEvent)

// Source delivers document-wide pointer releases. The returned func removes
// the listener.
type Source interface {
	AddReleaseListener(l Listener) (func(), error)
}

type releaseHandler struct {
	id uint32
	fn Listener
}

// Dispatcher is a Source fed by the host loop through Dispatch. It is not
// safe for concurrent use; everything runs on the update goroutine.
type Dispatcher struct {
	handlers []releaseHandler
	nextID   uint32
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) AddReleaseListener(l Listener) (func(), error) {
	if d == nil {
		return nil, errNilDispatcher
	}
	if l == nil {
		return nil, errNilListener
	}
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, releaseHandler{id: id, fn: l})
	return func() { d.remove(id) }, nil
}

func (d *Dispatcher) remove(id uint32) {
	for i := range d.handlers {
		if d.handlers[i].id == id {
			copy(d.handlers[i:], d.handlers[i+1:])
			d.handlers[len(d.handlers)-1] = releaseHandler{}
			d.handlers = d.handlers[:len(d.handlers)-1]
			return
		}
	}
}

// Dispatch calls every registered listener in registration order. Listeners
// removed during dispatch do not run for this event.
func (d *Dispatcher) Dispatch(ev ReleaseEvent) {
	snapshot := make([]releaseHandler, len(d.handlers))
	copy(snapshot, d.handlers)
	for _, h := range snapshot {
		if d.has(h.id) {
			h.fn(ev)
		}
	}
}

func (d *Dispatcher) has(id uint32) bool {
	for _, h := range d.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// Len is the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
