package escher

import (
	"sync"
	"sync/atomic"

	"honnef.co/go/escher/curve"
)

// Display publishes the views of a tiling to concurrent readers. Readers
// always observe a complete view, either the one before or the one after an
// update.
type Display struct {
	tiling *Tiling
	mu     sync.Mutex // serializes updates
	view   atomic.Pointer[View]
}

func NewDisplay(t *Tiling) *Display {
	d := &Display{tiling: t}
	d.view.Store(&View{tiling: t, rev: t.rev})
	return d
}

// View returns the current view.
func (d *Display) View() *View {
	return d.view.Load()
}

// Update expands the tiling over bounds, starting from the current view,
// and publishes the result. On error the current view is left in place.
func (d *Display) Update(bounds curve.Rect) (*View, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.tiling.GetTiles(bounds, d.view.Load())
	if err != nil {
		return nil, err
	}
	d.view.Store(v)
	return v, nil
}
