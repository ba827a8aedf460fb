package railview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunState is the viewport's render-loop status.
type RunState int

const (
	StateUninitialized RunState = iota
	StateStopped
	StateRunning
	StateDisposed
)

func (s RunState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	}
	return "uninitialized"
}

// Surface is the drawing target a viewport is mounted on. The host owns
// the actual pixels; the viewport only needs dimensions to size its
// offscreen frame.
type Surface interface {
	Size() (width, height int)
}

// Config binds a viewport to its collaborators.
type Config struct {
	Surface Surface
	Scene   *Scene
	Rail    *Rail
}

var backdrop = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// Viewport drives one scene context's camera along a rail and owns the
// start/stop schedule of its render loop. Every method is safe to call
// after Dispose; trailing events land in guards and do nothing.
type Viewport struct {
	surface  Surface
	scene    *Scene
	rail     *Rail
	state    RunState
	progress float64

	// frame is the controller-owned offscreen render target, allocated on
	// first draw and released in Dispose.
	frame  *ebiten.Image
	fw, fh int
}

// NewViewport wires a viewport to its surface, scene context and rail. A
// missing collaborator is a configuration error the caller gets back
// instead of a half-built controller.
func NewViewport(cfg Config) (*Viewport, error) {
	if cfg.Surface == nil {
		return nil, &ConfigError{Missing: "render surface"}
	}
	if cfg.Scene == nil {
		return nil, &ConfigError{Missing: "scene context"}
	}
	if cfg.Rail == nil {
		return nil, &ConfigError{Missing: "rail"}
	}
	w, h := cfg.Surface.Size()
	return &Viewport{
		surface: cfg.Surface,
		scene:   cfg.Scene,
		rail:    cfg.Rail,
		state:   StateStopped,
		fw:      w,
		fh:      h,
	}, nil
}

func (v *Viewport) State() RunState {
	return v.state
}

// Start begins drawing frames. Starting against an empty rail is refused:
// there is nothing defined to sample, so the viewport stays stopped and
// the shell shows the inert state instead of crashing.
func (v *Viewport) Start() {
	if v.state != StateStopped {
		return
	}
	if v.rail.PointCount() == 0 {
		return
	}
	v.state = StateRunning
}

// Stop halts the render loop without releasing anything. Idempotent.
func (v *Viewport) Stop() {
	if v.state == StateRunning {
		v.state = StateStopped
	}
}

// SetProgress clamps t into [0,1], stores it, and applies the sampled rail
// pose to the scene camera. Run-state is untouched: a pose set while
// stopped simply waits for the next Start or Reconcile.
func (v *Viewport) SetProgress(t float64) {
	if v.state == StateDisposed {
		return
	}
	v.progress = clamp01(t)
	v.applyProgress()
}

func (v *Viewport) applyProgress() {
	if v.rail.PointCount() == 0 {
		return
	}
	if v.scene.Disposed() {
		return
	}
	v.scene.Camera().SetPose(v.rail.SampleAt(v.progress))
}

// Reconcile converges run-state with what the rail currently allows:
// points present means running with the stored progress re-applied, no
// points means stopped. It runs after every progress or rail mutation and
// is cheap enough for that.
func (v *Viewport) Reconcile() {
	if v.state == StateDisposed {
		return
	}
	if v.rail.PointCount() > 0 {
		if v.state == StateStopped {
			v.state = StateRunning
		}
		v.applyProgress()
		return
	}
	v.Stop()
}

// SetRail swaps the rail instance the camera follows. Handing back the
// rail already bound still reconciles, which covers an instance that was
// repopulated in place.
func (v *Viewport) SetRail(r *Rail) {
	if v.state == StateDisposed || r == nil {
		return
	}
	if r != v.rail {
		v.rail = r
	}
	v.Reconcile()
}

func (v *Viewport) Rail() *Rail {
	return v.rail
}

func (v *Viewport) Progress() float64 {
	return v.progress
}

// Percent is the rounded progress readout for the presentation shell.
func (v *Viewport) Percent() int {
	return int(math.Round(v.progress * 100))
}

// Resize records the surface's new physical size. Callers may debounce but
// do not have to; the dimensions apply synchronously and the offscreen
// frame follows on the next drawn frame. Safe before Start and after
// Dispose.
func (v *Viewport) Resize(width, height int) {
	if v.state == StateDisposed {
		return
	}
	if width > 0 {
		v.fw = width
	}
	if height > 0 {
		v.fh = height
	}
}

// Dispose halts the loop and releases the controller-owned frame image.
// The scene context is not touched here: it has its own owner and its own
// Dispose. Idempotent; every other method no-ops afterwards.
func (v *Viewport) Dispose() {
	if v.state == StateDisposed {
		return
	}
	v.state = StateDisposed
	if v.frame != nil {
		v.frame.Deallocate()
		v.frame = nil
	}
}

// Draw paints one frame into dst when running. In any other state the
// viewport is inert and leaves dst untouched.
func (v *Viewport) Draw(dst *ebiten.Image) {
	if v.state != StateRunning {
		return
	}
	if v.fw <= 0 || v.fh <= 0 {
		return
	}
	if v.frame == nil || v.frame.Bounds().Dx() != v.fw || v.frame.Bounds().Dy() != v.fh {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(v.fw, v.fh)
	}
	v.frame.Fill(backdrop)
	v.scene.Paint(v.frame, v.fw, v.fh)
	dst.DrawImage(v.frame, nil)
}
