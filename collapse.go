package railview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource reports whether the collapse key fired since the last tick.
// EscapeKey is the ebiten-backed implementation; tests inject their own.
type KeySource interface {
	CollapsePressed() bool
}

// EscapeKey reads the process-wide escape key through ebiten.
type EscapeKey struct{}

func (EscapeKey) CollapsePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// CollapseWatcher turns a key press into a single collapse request. The
// key is observed only between Register and Deregister, so the
// process-wide listener exists exactly while the view is expanded and
// never leaks past it.
type CollapseWatcher struct {
	keys       KeySource
	onCollapse func()
}

func NewCollapseWatcher(keys KeySource) *CollapseWatcher {
	return &CollapseWatcher{keys: keys}
}

// Register arms the watcher. Call when entering expanded mode.
func (w *CollapseWatcher) Register(onCollapse func()) {
	w.onCollapse = onCollapse
}

// Deregister disarms the watcher. Safe when not registered.
func (w *CollapseWatcher) Deregister() {
	w.onCollapse = nil
}

func (w *CollapseWatcher) Active() bool {
	return w.onCollapse != nil
}

// Poll checks the key once per tick. On a press it deregisters itself
// before requesting collapse, so a second press reaches nothing.
func (w *CollapseWatcher) Poll() {
	if w.onCollapse == nil {
		return
	}
	if !w.keys.CollapsePressed() {
		return
	}
	request := w.onCollapse
	w.onCollapse = nil
	request()
}
