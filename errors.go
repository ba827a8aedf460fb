package railview

import (
	"errors"
	"fmt"
)

var (
	// ErrDisposed is returned when a disposed scene context is asked to do
	// more work. Disposal releases backend resources, so anything after it
	// would operate on freed state.
	ErrDisposed = errors.New("railview: use of disposed scene context")

	// ErrAlreadyAdded is returned by Scene.Add when the object is already a
	// member of the root container. The scene is left unchanged.
	ErrAlreadyAdded = errors.New("railview: object already in scene")
)

// ConfigError reports a collaborator that was missing when a viewport was
// created. It is fatal to that viewport instance and is never retried
// internally.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("railview: viewport config missing %s", e.Missing)
}
