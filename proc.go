package railview

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

// NewCubeMesh builds an axis-aligned cube of half-size s with a distinct
// color per face.
func NewCubeMesh(s float64) *Mesh {
	mesh := NewMesh()

	for _, p := range [][3]float64{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, // z- corners (0-3)
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}, // z+ corners (4-7)
	} {
		mesh.AddPoint(p[0], p[1], p[2])
	}

	// Each face is wound so its first three points give the outward normal.
	faces := []struct {
		indices []int
		clr     color.RGBA
	}{
		{[]int{4, 5, 6, 7}, color.RGBA{0, 0, 255, 255}},   // z+
		{[]int{0, 3, 2, 1}, color.RGBA{255, 0, 0, 255}},   // z-
		{[]int{4, 0, 1, 5}, color.RGBA{0, 255, 0, 255}},   // y-
		{[]int{7, 6, 2, 3}, color.RGBA{255, 255, 0, 255}}, // y+
		{[]int{1, 2, 6, 5}, color.RGBA{0, 255, 255, 255}}, // x+
		{[]int{4, 7, 3, 0}, color.RGBA{255, 0, 255, 255}}, // x-
	}
	for _, f := range faces {
		mesh.AddFace(f.indices, f.clr)
	}

	mesh.Finish()
	return mesh
}

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinDepth = 3
)

// NewTerrainMesh builds a cells-by-cells heightfield centered on the
// origin, with scale world units per cell and peaks of roughly amp units.
// Heights come from Perlin noise so the same seed always rebuilds the same
// ground.
func NewTerrainMesh(cells int, scale, amp float64, seed int64) *Mesh {
	if cells < 1 {
		cells = 1
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed)
	mesh := NewMesh()

	half := float64(cells) * scale / 2
	grid := make([][]int, cells+1)
	for gz := 0; gz <= cells; gz++ {
		grid[gz] = make([]int, cells+1)
		for gx := 0; gx <= cells; gx++ {
			h := noise.Noise2D(float64(gx)/float64(cells)*3, float64(gz)/float64(cells)*3) * amp
			grid[gz][gx] = mesh.AddPoint(float64(gx)*scale-half, h, float64(gz)*scale-half)
		}
	}

	low := color.RGBA{34, 120, 48, 255}
	high := color.RGBA{150, 150, 140, 255}
	for gz := 0; gz < cells; gz++ {
		for gx := 0; gx < cells; gx++ {
			clr := low
			if (gx+gz)%2 == 0 {
				clr = high
			}
			a := grid[gz][gx]
			b := grid[gz][gx+1]
			c := grid[gz+1][gx+1]
			d := grid[gz+1][gx]
			// Heightfield quads are not planar; two triangles keep the
			// faces convex for the batcher.
			mesh.AddFace([]int{a, b, c}, clr)
			mesh.AddFace([]int{a, c, d}, clr)
		}
	}

	mesh.Finish()
	return mesh
}
