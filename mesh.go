package railview

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

const (
	focalLength    = 400.0
	nearPlaneZ     = 1.0
	planeThickness = 0.01
)

// MeshFace is one convex polygon of a mesh, referencing vertices by row
// index into the mesh's point store.
type MeshFace struct {
	PointIndices []int
	Normal       *Vector3
	Color        color.RGBA

	normalIndex int // row in the mesh's normal store
}

type bspNode struct {
	face        *MeshFace
	left, right *bspNode
}

// Mesh is a display object built from indexed convex faces. Faces are
// painted back-to-front through a BSP ordering built once in Finish, with
// flat lighting from a fixed light direction.
type Mesh struct {
	points       *Matrix // rows of [x y z 1] in local space
	trans        *Matrix // camera-space rows, rewritten each frame
	normals      *Matrix // one local-space direction row per face
	transNormals *Matrix // camera-space normals, rewritten each frame
	faces        []*MeshFace
	root         *bspNode
	rotation     *Matrix
	position     *Point3d
	disposed     bool
}

func NewMesh() *Mesh {
	return &Mesh{
		points:       NewMatrix(),
		trans:        NewMatrix(),
		normals:      NewMatrix(),
		transNormals: NewMatrix(),
		rotation:     IdentityMatrix(),
		position:     NewPoint3d(0, 0, 0),
	}
}

// AddPoint appends a vertex in local space and returns its row index.
func (m *Mesh) AddPoint(x, y, z float64) int {
	m.points.AddRow([]float64{x, y, z, 1})
	return len(m.points.Rows) - 1
}

// AddFace registers a convex face over existing point indices. The normal
// comes from the first three points, wound counter-clockwise.
func (m *Mesh) AddFace(indices []int, clr color.RGBA) *MeshFace {
	face := &MeshFace{
		PointIndices: append([]int(nil), indices...),
		Color:        clr,
	}
	face.Normal = m.faceNormal(face)
	m.normals.AddRow([]float64{face.Normal.X, face.Normal.Y, face.Normal.Z, 0})
	face.normalIndex = len(m.normals.Rows) - 1
	m.faces = append(m.faces, face)
	return face
}

func (m *Mesh) faceNormal(f *MeshFace) *Vector3 {
	if len(f.PointIndices) < 3 {
		return NewVector3(0, 0, 1)
	}
	p1 := m.points.Rows[f.PointIndices[0]]
	p2 := m.points.Rows[f.PointIndices[1]]
	p3 := m.points.Rows[f.PointIndices[2]]

	ux, uy, uz := p2[0]-p1[0], p2[1]-p1[1], p2[2]-p1[2]
	vx, vy, vz := p3[0]-p1[0], p3[1]-p1[1], p3[2]-p1[2]

	n := NewVector3(uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx)
	n.Normalize()
	return n
}

// Finish sizes the camera-space store and builds the paint ordering. Call
// once after the last AddFace.
func (m *Mesh) Finish() {
	m.trans = m.points.Copy()
	m.transNormals = m.normals.Copy()
	m.root = m.buildBsp(m.faces)
	log.Printf("mesh finished: %d points, %d faces", len(m.points.Rows), len(m.faces))
}

func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

func (m *Mesh) PointCount() int {
	if m.points == nil {
		return 0
	}
	return len(m.points.Rows)
}

// buildBsp partitions faces by the first face's plane. Faces are never
// split; content meshes are convex enough per-face that side-of-plane
// ordering is sufficient for the painter's traversal.
func (m *Mesh) buildBsp(faces []*MeshFace) *bspNode {
	if len(faces) == 0 {
		return nil
	}
	parent := &bspNode{face: faces[0]}
	a, b, c, d := m.facePlane(faces[0])

	var left, right []*MeshFace
	for _, f := range faces[1:] {
		if m.whichSide(a, b, c, d, f) > 0 {
			right = append(right, f)
		} else {
			left = append(left, f)
		}
	}
	parent.left = m.buildBsp(left)
	parent.right = m.buildBsp(right)
	return parent
}

func (m *Mesh) facePlane(f *MeshFace) (a, b, c, d float64) {
	p := m.points.Rows[f.PointIndices[0]]
	n := f.Normal
	return n.X, n.Y, n.Z, -(n.X*p[0] + n.Y*p[1] + n.Z*p[2])
}

func (m *Mesh) whichSide(a, b, c, d float64, f *MeshFace) float64 {
	var total float64
	for _, idx := range f.PointIndices {
		p := m.points.Rows[idx]
		dist := a*p[0] + b*p[1] + c*p[2] + d
		if math.Abs(dist) < planeThickness {
			continue
		}
		total += dist
	}
	return total
}

// SetPosition moves the mesh's origin in world space.
func (m *Mesh) SetPosition(x, y, z float64) {
	m.position.X = x
	m.position.Y = y
	m.position.Z = z
}

// Rotate spins the mesh about one of its local axes, accumulating onto the
// existing orientation.
func (m *Mesh) Rotate(axis int, theta float64) {
	m.rotation = RotationMatrix(axis, theta).MultiplyBy(m.rotation)
}

// Transform recomputes the camera-space point store: local rotation, then
// world translation, then the view matrix.
func (m *Mesh) Transform(view *Matrix) {
	if m.disposed {
		return
	}
	world := TranslationMatrix(m.position.X, m.position.Y, m.position.Z)
	full := view.MultiplyBy(world.MultiplyBy(m.rotation))
	full.TransformRows(m.points, m.trans)
	full.TransformNormals(m.normals, m.transNormals)
}

// Paint draws the mesh back-to-front as one triangle batch.
func (m *Mesh) Paint(dst *ebiten.Image, cx, cy int) {
	if m.disposed || m.root == nil {
		return
	}
	vertices := make([]ebiten.Vertex, 0, len(m.faces)*4)
	indices := make([]uint16, 0, len(m.faces)*6)
	vertices, indices = m.paintNode(m.root, cx, cy, vertices, indices)
	if len(indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vertices, indices, whiteSub, op)
}

func (m *Mesh) paintNode(n *bspNode, cx, cy int, vertices []ebiten.Vertex, indices []uint16) ([]ebiten.Vertex, []uint16) {
	if n == nil {
		return vertices, indices
	}

	p0 := m.trans.Rows[n.face.PointIndices[0]]
	p1 := m.trans.Rows[n.face.PointIndices[1]]
	p2 := m.trans.Rows[n.face.PointIndices[2]]

	ux, uy, uz := p1[0]-p0[0], p1[1]-p0[1], p1[2]-p0[2]
	vx, vy, vz := p2[0]-p0[0], p2[1]-p0[1], p2[2]-p0[2]
	nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx

	// Sign of the camera-space normal against the view ray through p0
	// decides which subtree is behind this face.
	facing := nx*p0[0] + ny*p0[1] + nz*p0[2]
	if facing > 0 {
		vertices, indices = m.paintNode(n.right, cx, cy, vertices, indices)
		vertices, indices = m.appendFace(n.face, cx, cy, vertices, indices)
		vertices, indices = m.paintNode(n.left, cx, cy, vertices, indices)
	} else {
		vertices, indices = m.paintNode(n.left, cx, cy, vertices, indices)
		vertices, indices = m.paintNode(n.right, cx, cy, vertices, indices)
	}
	return vertices, indices
}

// Fixed light in camera space, normalized, so lighting tracks mesh
// rotation instead of spinning with it.
var lightDir = NewVector3(0.577, 0.577, -0.577)

func (m *Mesh) appendFace(f *MeshFace, cx, cy int, vertices []ebiten.Vertex, indices []uint16) ([]ebiten.Vertex, []uint16) {
	if len(f.PointIndices) < 3 {
		return vertices, indices
	}

	projected := make([][2]float32, len(f.PointIndices))
	for i, idx := range f.PointIndices {
		p := m.trans.Rows[idx]
		if p[2] <= nearPlaneZ {
			// Face crosses the near plane; drop it rather than split.
			return vertices, indices
		}
		projected[i] = [2]float32{
			float32((focalLength*p[0])/p[2] + float64(cx)),
			float32(-(focalLength*p[1])/p[2] + float64(cy)), // flipped for screen y
		}
	}

	n := m.transNormals.Rows[f.normalIndex]
	dot := n[0]*lightDir.X + n[1]*lightDir.Y + n[2]*lightDir.Z
	if dot < 0 {
		dot = 0
	}
	intensity := float32(0.2 + 0.8*dot)

	v := ebiten.Vertex{
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(f.Color.R) / 255.0 * intensity,
		ColorG: float32(f.Color.G) / 255.0 * intensity,
		ColorB: float32(f.Color.B) / 255.0 * intensity,
		ColorA: 1,
	}

	base := uint16(len(vertices))
	for i := range projected {
		v.DstX, v.DstY = projected[i][0], projected[i][1]
		vertices = append(vertices, v)
	}
	for i := 1; i < len(projected)-1; i++ {
		indices = append(indices, base, base+uint16(i), base+uint16(i+1))
	}
	return vertices, indices
}

// Dispose drops the mesh's geometry. Safe to call repeatedly.
func (m *Mesh) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.points = nil
	m.trans = nil
	m.normals = nil
	m.transNormals = nil
	m.faces = nil
	m.root = nil
}
