package railview

import (
	"fmt"
	"log"
	"strings"
)

// Decoder turns a content identifier into a display object. Decoding may
// stream internally; the returned object must be paintable immediately
// even if it keeps filling in after this call returns.
type Decoder interface {
	Decode(id string) (Object, error)
}

// DefaultDecoder resolves the identifiers the demo shell uses: the
// procedural models "proc:cube" and "proc:terrain", or a path to a .dxf
// file.
type DefaultDecoder struct{}

func (DefaultDecoder) Decode(id string) (Object, error) {
	switch {
	case id == "proc:cube":
		return NewCubeMesh(60), nil
	case id == "proc:terrain":
		return NewTerrainMesh(24, 40, 90, 1), nil
	case strings.HasSuffix(id, ".dxf"):
		return LoadMeshFromDXFFile(id)
	}
	return nil, fmt.Errorf("unknown content identifier %q", id)
}

// ContentLoader keeps at most one content object resident in its scene
// context, swapping it out whenever the identifier changes. It owns the
// handle it loaded: nobody else removes or disposes it.
type ContentLoader struct {
	scene   *Scene
	decoder Decoder
	id      string
	current Object
}

func NewContentLoader(scene *Scene, decoder Decoder) *ContentLoader {
	return &ContentLoader{scene: scene, decoder: decoder}
}

// Load swaps the displayed content to the object named by id. The previous
// handle is removed from the scene and disposed strictly before the
// replacement is decoded, so the scene never holds two content objects,
// not even transiently. Loading the identifier already shown is a no-op.
func (l *ContentLoader) Load(id string) error {
	if l.scene.Disposed() {
		return ErrDisposed
	}
	if id == l.id && l.current != nil {
		return nil
	}
	l.Unload()

	obj, err := l.decoder.Decode(id)
	if err != nil {
		return fmt.Errorf("load content %q: %w", id, err)
	}
	obj.SetPosition(0, 0, 0)
	if err := l.scene.Add(obj); err != nil {
		obj.Dispose()
		return fmt.Errorf("load content %q: %w", id, err)
	}
	l.id = id
	l.current = obj
	log.Printf("content loaded: %s", id)
	return nil
}

// Unload removes the resident content from the scene and disposes it, in
// that order. Safe to call with nothing loaded, and safe to call again.
func (l *ContentLoader) Unload() {
	if l.current == nil {
		return
	}
	if !l.scene.Disposed() {
		l.scene.Remove(l.current)
	}
	l.current.Dispose()
	l.current = nil
	l.id = ""
}

func (l *ContentLoader) Current() Object {
	return l.current
}

func (l *ContentLoader) ContentID() string {
	return l.id
}
