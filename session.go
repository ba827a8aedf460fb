package railview

import "log"

// Session is the lifetime scope of one mounted viewer. It constructs the
// scene context, viewport, content loader and scroll mapper together, and
// Close tears them down in strict reverse order so no backend call ever
// lands on an already-released owner.
type Session struct {
	Scene    *Scene
	Viewport *Viewport
	Loader   *ContentLoader
	Mapper   *ScrollMapper

	closed bool
}

// NewSession mounts a viewer on the given surface and rail. readout
// mirrors applied progress for the presentation shell and may be nil.
func NewSession(surface Surface, rail *Rail, decoder Decoder, readout func(float64)) (*Session, error) {
	scene := NewScene()
	viewport, err := NewViewport(Config{Surface: surface, Scene: scene, Rail: rail})
	if err != nil {
		scene.Dispose()
		return nil, err
	}
	return &Session{
		Scene:    scene,
		Viewport: viewport,
		Loader:   NewContentLoader(scene, decoder),
		Mapper:   NewScrollMapper(viewport, readout),
	}, nil
}

// Close unmounts the viewer: stop the render loop, release the content
// handle, dispose the viewport, dispose the scene context. Idempotent.
// Events that trail in afterwards fall into the disposed guards and do
// nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Viewport.Stop()
	s.Loader.Unload()
	s.Viewport.Dispose()
	s.Scene.Dispose()
	log.Println("viewer session closed")
}
