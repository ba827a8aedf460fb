package railview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroExtentScrollIsSkipped(t *testing.T) {
	rail := threePointRail()
	vp, scene := newTestViewport(t, rail)
	readouts := 0
	mapper := NewScrollMapper(vp, func(float64) { readouts++ })
	vp.SetProgress(0.5)
	before, _ := scene.Camera().Pose()

	// scrollHeight == clientHeight: nothing to scroll.
	mapper.OnScroll(ScrollState{Top: 100, Height: 600, Client: 600})

	assert.Equal(t, 0.5, vp.Progress())
	assert.Equal(t, StateStopped, vp.State())
	assert.Equal(t, 0, readouts)
	after, _ := scene.Camera().Pose()
	poseInDelta(t, before, after)
}

func TestNegativeExtentScrollIsSkipped(t *testing.T) {
	vp, _ := newTestViewport(t, threePointRail())
	mapper := NewScrollMapper(vp, nil)

	mapper.OnScroll(ScrollState{Top: 0, Height: 400, Client: 600})
	assert.Equal(t, 0.0, vp.Progress())
}

// End-to-end: a rail with 3 points behind a 400px scrollable extent,
// scrolled to 100px, puts the camera a quarter of the way down the rail.
func TestScrollQuarterOfExtent(t *testing.T) {
	rail := threePointRail()
	vp, scene := newTestViewport(t, rail)
	var mirrored float64
	mapper := NewScrollMapper(vp, func(p float64) { mirrored = p })

	mapper.OnScroll(ScrollState{Top: 100, Height: 1000, Client: 600})

	assert.Equal(t, 0.25, vp.Progress())
	assert.Equal(t, 0.25, mirrored)
	assert.Equal(t, StateRunning, vp.State())
	pose, ok := scene.Camera().Pose()
	require.True(t, ok)
	poseInDelta(t, rail.SampleAt(0.25), pose)
}

func TestOverscrollClampsToOne(t *testing.T) {
	vp, _ := newTestViewport(t, threePointRail())
	mapper := NewScrollMapper(vp, nil)

	mapper.OnScroll(ScrollState{Top: 900, Height: 1000, Client: 600})
	assert.Equal(t, 1.0, vp.Progress())
	assert.Equal(t, 100, vp.Percent())
}

func TestScrollAfterDisposeIsIgnored(t *testing.T) {
	vp, _ := newTestViewport(t, threePointRail())
	readouts := 0
	mapper := NewScrollMapper(vp, func(float64) { readouts++ })
	vp.Dispose()

	mapper.OnScroll(ScrollState{Top: 100, Height: 1000, Client: 600})

	assert.Equal(t, 0.0, vp.Progress())
	assert.Equal(t, 0, readouts)
}

func TestExtent(t *testing.T) {
	assert.Equal(t, 400.0, ScrollState{Height: 1000, Client: 600}.Extent())
	assert.Equal(t, 0.0, ScrollState{Height: 600, Client: 600}.Extent())
}
