package driven

import "github.com/custodia-labs/deepqa-cli/internal/core/domain"

// RegistryStore loads the static model-to-provider configuration.
//
// The registry is read exactly once at process start. A missing or
// malformed configuration resource is a startup-fatal condition; there
// is no reload or watch.
type RegistryStore interface {
	// Load reads and validates the model registry.
	Load() (*domain.Registry, error)
}
