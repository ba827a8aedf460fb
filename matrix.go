package railview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

// Matrix is a row store of float64 vectors. A 4x4 transform and a mesh's
// point list share this representation, so transforming every vertex of a
// mesh is a single TransformRows call. Points are row vectors: transforms
// carry their translation in row 3 and compose left to right.
type Matrix struct {
	Rows [][]float64
}

func NewMatrix() *Matrix {
	return &Matrix{
		Rows: make([][]float64, 0, 100),
	}
}

func NewMatrixFromRows(rows [][]float64) *Matrix {
	m := &Matrix{
		Rows: make([][]float64, len(rows)),
	}
	for i := range rows {
		m.Rows[i] = make([]float64, len(rows[i]))
		copy(m.Rows[i], rows[i])
	}
	return m
}

func IdentityMatrix() *Matrix {
	m := newZero4x4()
	m.Rows[0][0], m.Rows[1][1], m.Rows[2][2], m.Rows[3][3] = 1.0, 1.0, 1.0, 1.0
	return m
}

func TranslationMatrix(x, y, z float64) *Matrix {
	m := IdentityMatrix()
	m.Rows[3][0] = x
	m.Rows[3][1] = y
	m.Rows[3][2] = z
	return m
}

func RotationMatrix(axis int, theta float64) *Matrix {
	m := newZero4x4()
	r := m.Rows
	c, s := math.Cos(theta), math.Sin(theta)
	r[3][3] = 1.0
	switch axis {
	case ROTX:
		r[0][0] = 1.0
		r[1][1] = c
		r[2][1] = -s
		r[1][2] = s
		r[2][2] = c
	case ROTY:
		r[1][1] = 1.0
		r[0][0] = c
		r[2][0] = s
		r[0][2] = -s
		r[2][2] = c
	case ROTZ:
		r[2][2] = 1.0
		r[0][0] = c
		r[1][0] = -s
		r[0][1] = s
		r[1][1] = c
	}
	return m
}

func newZero4x4() *Matrix {
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = make([]float64, 4)
	}
	return &Matrix{Rows: rows}
}

func (m *Matrix) AddRow(row []float64) {
	m.Rows = append(m.Rows, row)
}

// MultiplyBy treats m as a 4x4 transform and returns aMatrix * m, so
// m.MultiplyBy(a) applies a first and m second when the result transforms
// row-vector points.
func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	product := make([][]float64, len(aMatrix.Rows))
	for i := range product {
		product[i] = make([]float64, 4)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.Rows); x++ {
			product[x][y] = m.Rows[0][y]*aMatrix.Rows[x][0] +
				m.Rows[1][y]*aMatrix.Rows[x][1] +
				m.Rows[2][y]*aMatrix.Rows[x][2] +
				m.Rows[3][y]*aMatrix.Rows[x][3]
		}
	}
	return &Matrix{Rows: product}
}

// TransformRows applies the full transform, rotation and translation, to
// every row of src, writing the results into the same rows of dest. dest
// must already hold as many rows as src.
func (m *Matrix) TransformRows(src, dest *Matrix) {
	for x := 0; x < len(src.Rows); x++ {
		sx, sy, sz := src.Rows[x][0], src.Rows[x][1], src.Rows[x][2]
		dest.Rows[x][0] = m.Rows[0][0]*sx + m.Rows[1][0]*sy + m.Rows[2][0]*sz + m.Rows[3][0]
		dest.Rows[x][1] = m.Rows[0][1]*sx + m.Rows[1][1]*sy + m.Rows[2][1]*sz + m.Rows[3][1]
		dest.Rows[x][2] = m.Rows[0][2]*sx + m.Rows[1][2]*sy + m.Rows[2][2]*sz + m.Rows[3][2]
	}
}

// TransformNormals rotates direction rows without translating them, which
// is what face normals need.
func (m *Matrix) TransformNormals(src, dest *Matrix) {
	for x := 0; x < len(src.Rows); x++ {
		sx, sy, sz := src.Rows[x][0], src.Rows[x][1], src.Rows[x][2]
		dest.Rows[x][0] = m.Rows[0][0]*sx + m.Rows[1][0]*sy + m.Rows[2][0]*sz
		dest.Rows[x][1] = m.Rows[0][1]*sx + m.Rows[1][1]*sy + m.Rows[2][1]*sz
		dest.Rows[x][2] = m.Rows[0][2]*sx + m.Rows[1][2]*sy + m.Rows[2][2]*sz
	}
}

func (m *Matrix) Copy() *Matrix {
	return NewMatrixFromRows(m.Rows)
}

// FromMGL converts a column-major mgl64 matrix into the row-vector
// convention used here. The mgl columns land in the rows, which is the
// transpose this convention needs.
func FromMGL(m mgl64.Mat4) *Matrix {
	return NewMatrixFromRows(
		[][]float64{
			{m[0], m[1], m[2], m[3]},
			{m[4], m[5], m[6], m[7]},
			{m[8], m[9], m[10], m[11]},
			{m[12], m[13], m[14], m[15]},
		},
	)
}
