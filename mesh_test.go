package railview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeMeshGeometry(t *testing.T) {
	cube := NewCubeMesh(30)

	assert.Equal(t, 8, cube.PointCount())
	assert.Equal(t, 6, cube.FaceCount())
	assert.NotNil(t, cube.root)
}

func TestCubeMeshFaceNormalsPointOutward(t *testing.T) {
	cube := NewCubeMesh(30)

	// Faces are added in z+, z-, y-, y+, x+, x- order; each normal must
	// point along its own axis, away from the cube's center.
	want := [][3]float64{
		{0, 0, 1}, {0, 0, -1},
		{0, -1, 0}, {0, 1, 0},
		{1, 0, 0}, {-1, 0, 0},
	}
	require.Len(t, cube.faces, len(want))
	for i, f := range cube.faces {
		assert.InDelta(t, want[i][0], f.Normal.X, float64EqualityThreshold, "face %d x", i)
		assert.InDelta(t, want[i][1], f.Normal.Y, float64EqualityThreshold, "face %d y", i)
		assert.InDelta(t, want[i][2], f.Normal.Z, float64EqualityThreshold, "face %d z", i)
	}
}

func TestTerrainMeshGeometry(t *testing.T) {
	terrain := NewTerrainMesh(4, 40, 90, 1)

	assert.Equal(t, 25, terrain.PointCount()) // (4+1)^2 grid corners
	assert.Equal(t, 32, terrain.FaceCount())  // 4*4 cells, two triangles each
	assert.NotNil(t, terrain.root)
}

func TestTerrainMeshSameSeedSameHeights(t *testing.T) {
	a := NewTerrainMesh(4, 40, 90, 7)
	b := NewTerrainMesh(4, 40, 90, 7)

	require.Equal(t, a.PointCount(), b.PointCount())
	for i := range a.points.Rows {
		assert.InDelta(t, a.points.Rows[i][1], b.points.Rows[i][1], float64EqualityThreshold)
	}
}

func TestMeshTransformAppliesPositionAndView(t *testing.T) {
	mesh := NewMesh()
	mesh.AddPoint(0, 0, 0)
	mesh.Finish()
	mesh.SetPosition(0, 0, 10)

	mesh.Transform(IdentityMatrix())
	assert.InDelta(t, 10.0, mesh.trans.Rows[0][2], float64EqualityThreshold)

	// Through a camera 100 behind the origin the point sits 110 ahead.
	view := LookAtMatrix(NewVector3(0, 0, -100), NewVector3(0, 0, 0), NewVector3(0, 1, 0))
	mesh.Transform(view)
	assert.InDelta(t, 110.0, mesh.trans.Rows[0][2], float64EqualityThreshold)
}

func TestMeshRotateAccumulates(t *testing.T) {
	mesh := NewMesh()
	mesh.AddPoint(1, 0, 0)
	mesh.Finish()

	// Two quarter turns about Y map +x to -x.
	mesh.Rotate(ROTY, 1.5707963267948966)
	mesh.Rotate(ROTY, 1.5707963267948966)
	mesh.Transform(IdentityMatrix())

	assert.InDelta(t, -1.0, mesh.trans.Rows[0][0], float64EqualityThreshold)
	assert.InDelta(t, 0.0, mesh.trans.Rows[0][2], float64EqualityThreshold)
}

func TestMeshTransformRotatesFaceNormals(t *testing.T) {
	mesh := NewMesh()
	a := mesh.AddPoint(0, 0, 0)
	b := mesh.AddPoint(1, 0, 0)
	c := mesh.AddPoint(0, 1, 0)
	mesh.AddFace([]int{a, b, c}, testColor)
	mesh.Finish()

	mesh.Transform(IdentityMatrix())
	assert.InDelta(t, 1.0, mesh.transNormals.Rows[0][2], float64EqualityThreshold)

	// Half a turn about y swings the face around to look the other way.
	mesh.Rotate(ROTY, math.Pi)
	mesh.Transform(IdentityMatrix())
	assert.InDelta(t, -1.0, mesh.transNormals.Rows[0][2], float64EqualityThreshold)
}

func TestMeshDisposeIdempotent(t *testing.T) {
	cube := NewCubeMesh(30)

	cube.Dispose()
	assert.NotPanics(t, cube.Dispose)
	assert.Equal(t, 0, cube.PointCount())
	assert.NotPanics(t, func() { cube.Transform(IdentityMatrix()) })
	assert.NotPanics(t, func() { cube.Paint(nil, 320, 240) })
}

func TestFaceNormalPointsOutOfWinding(t *testing.T) {
	mesh := NewMesh()
	a := mesh.AddPoint(0, 0, 0)
	b := mesh.AddPoint(1, 0, 0)
	c := mesh.AddPoint(0, 1, 0)
	face := mesh.AddFace([]int{a, b, c}, testColor)

	assert.InDelta(t, 0.0, face.Normal.X, float64EqualityThreshold)
	assert.InDelta(t, 0.0, face.Normal.Y, float64EqualityThreshold)
	assert.InDelta(t, 1.0, face.Normal.Z, float64EqualityThreshold)
}
