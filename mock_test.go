package railview

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

const float64EqualityThreshold = 1e-6

var testColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// testObject is a mock display object for exercising scene and loader
// contracts without touching the renderer.
type testObject struct {
	name       string
	pos        [3]float64
	transforms int
	disposals  int
}

func (o *testObject) Transform(view *Matrix) { o.transforms++ }

func (o *testObject) Paint(dst *ebiten.Image, cx, cy int) {}

func (o *testObject) SetPosition(x, y, z float64) {
	o.pos = [3]float64{x, y, z}
}

func (o *testObject) Dispose() { o.disposals++ }

// stubSurface is a fixed-size render surface.
type stubSurface struct {
	w, h int
}

func (s *stubSurface) Size() (int, int) { return s.w, s.h }

// stubDecoder hands out pre-registered objects and can observe the scene
// at decode time, which is how the swap-ordering tests watch for
// transient double-membership.
type stubDecoder struct {
	objects  map[string]*testObject
	decodes  int
	onDecode func(id string)
}

func (d *stubDecoder) Decode(id string) (Object, error) {
	d.decodes++
	if d.onDecode != nil {
		d.onDecode(id)
	}
	obj, ok := d.objects[id]
	if !ok {
		return nil, errors.New("no such content")
	}
	return obj, nil
}

// fakeKeys stands in for the process-wide escape key.
type fakeKeys struct {
	pressed bool
}

func (k *fakeKeys) CollapsePressed() bool { return k.pressed }

func poseInDelta(t *testing.T, want, got Pose) {
	t.Helper()
	assert.InDelta(t, want.Position.X, got.Position.X, float64EqualityThreshold)
	assert.InDelta(t, want.Position.Y, got.Position.Y, float64EqualityThreshold)
	assert.InDelta(t, want.Position.Z, got.Position.Z, float64EqualityThreshold)
	assert.InDelta(t, want.LookAt.X, got.LookAt.X, float64EqualityThreshold)
	assert.InDelta(t, want.LookAt.Y, got.LookAt.Y, float64EqualityThreshold)
	assert.InDelta(t, want.LookAt.Z, got.LookAt.Z, float64EqualityThreshold)
}

func threePointRail() *Rail {
	return NewRail(
		NewControlPoint(NewVector3(0, 0, -300), NewVector3(0, 0, 0)),
		NewControlPoint(NewVector3(300, 100, 0), NewVector3(0, 50, 0)),
		NewControlPoint(NewVector3(0, 0, 300), NewVector3(0, 0, 0)),
	)
}

func newTestViewport(t *testing.T, rail *Rail) (*Viewport, *Scene) {
	t.Helper()
	scene := NewScene()
	vp, err := NewViewport(Config{
		Surface: &stubSurface{w: 640, h: 480},
		Scene:   scene,
		Rail:    rail,
	})
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	return vp, scene
}
