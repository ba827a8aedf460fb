package railview

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// LoadMeshFromDXFFile reads a simplified DXF file from disk and returns a
// finished mesh.
func LoadMeshFromDXFFile(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open DXF file %s: %w", path, err)
	}
	defer file.Close()

	mesh, err := NewMeshFromDXF(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing DXF file %s: %w", path, err)
	}
	return mesh, nil
}

// NewMeshFromDXF reads the simplified 3DFACE dialect the viewer ships with
// and returns a finished mesh. Each 3DFACE carries four vertices as
// alternating value and group-code lines. Colors are randomized, the way
// the exporter emits geometry without material data.
func NewMeshFromDXF(reader io.Reader) (*Mesh, error) {
	mesh := NewMesh()
	scanner := bufio.NewScanner(reader)

	readFloatLine := func() (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse float value '%s': %w", scanner.Text(), err)
		}
		return val, nil
	}

	for scanner.Scan() {
		if !strings.HasPrefix(scanner.Text(), "3DFACE") {
			continue
		}

		for i := 0; i < 3; i++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("unexpected end of file while parsing 3DFACE header")
			}
		}

		indices := make([]int, 0, 4)
		for c := 0; c < 4; c++ {
			x, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading X coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan() // group code

			y, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading Y coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan()

			z, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading Z coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan()

			indices = append(indices, mesh.AddPoint(x, y, z))
		}

		faceColor := color.RGBA{
			R: uint8(rand.Intn(256)),
			G: uint8(rand.Intn(256)),
			B: uint8(rand.Intn(256)),
			A: 255,
		}
		mesh.AddFace(indices, faceColor)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from DXF source: %w", err)
	}

	mesh.Finish()
	return mesh, nil
}
