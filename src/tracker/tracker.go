// Package tracker clears an in-progress board gesture when the pointer is
// released anywhere outside the board.
package tracker

import (
	"errors"
	"evilboard/src/base"
	"evilboard/src/geometry"
	"fmt"
	"sync"
)

var (
	errNilListener   = errors.New("nil listener")
	errNilDispatcher = errors.New("nil dispatcher")
)

// RegionFunc returns the board's current screen rectangle. It is called for
// every event; ok=false means the board is not on screen and the event is
// ignored.
type RegionFunc func() (r geometry.Rect, ok bool)

// Attach registers a release listener on src that calls onOutside whenever a
// release lands outside region(). The returned detach may be called any
// number of times.
func Attach(src Source, region RegionFunc, onOutside func()) (func(), error) {
	if src == nil {
		return nil, base.ErrNoEventSource
	}
	if region == nil || onOutside == nil {
		return nil, errors.New("tracker: region and callback are required")
	}

	remove, err := src.AddReleaseListener(func(ev ReleaseEvent) {
		r, ok := region()
		if !ok {
			return
		}
		if !r.Contains(ev.X, ev.Y) {
			onOutside()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", base.ErrNoEventSource, err)
	}
	if remove == nil {
		return nil, fmt.Errorf("%w: source returned no remover", base.ErrNoEventSource)
	}

	var once sync.Once
	return func() { once.Do(remove) }, nil
}

// Tracker ties Attach to a mount/unmount lifecycle.
type Tracker struct {
	src       Source
	region    RegionFunc
	onOutside func()
	detach    func()
}

func New(src Source, region RegionFunc, onOutside func()) *Tracker {
	return &Tracker{src: src, region: region, onOutside: onOutside}
}

// Activate registers the listener. Calling it while active does nothing.
func (t *Tracker) Activate() error {
	if t.detach != nil {
		return nil
	}
	detach, err := Attach(t.src, t.region, t.onOutside)
	if err != nil {
		return err
	}
	t.detach = detach
	return nil
}

// Deactivate removes the listener. Calling it while inactive does nothing.
func (t *Tracker) Deactivate() {
	if t.detach == nil {
		return
	}
	t.detach()
	t.detach = nil
}

func (t *Tracker) Active() bool {
	return t.detach != nil
}
