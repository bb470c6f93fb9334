package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
)

// Ensure ModelStore implements the interface.
var _ driven.RegistryStore = (*ModelStore)(nil)

// ModelStore loads the model registry from a TOML file.
type ModelStore struct {
	filePath string
}

// registryFile is the on-disk TOML layout.
type registryFile struct {
	Models map[string]string `toml:"models"`
}

// DefaultPath returns the default registry location, ~/.deepqa/models.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".deepqa", "models.toml"), nil
}

// NewModelStore creates a store reading from the given path.
// An empty path falls back to DefaultPath.
func NewModelStore(path string) (*ModelStore, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &ModelStore{filePath: path}, nil
}

// Load reads and validates the model registry.
// Missing file, unparseable TOML, an empty model set, and unrecognised
// providers are all errors; the caller treats them as startup-fatal.
func (s *ModelStore) Load() (*domain.Registry, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("read model registry %s: %w", s.filePath, err)
	}

	var parsed registryFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse model registry %s: %w", s.filePath, err)
	}

	if len(parsed.Models) == 0 {
		return nil, fmt.Errorf("model registry %s defines no models", s.filePath)
	}

	models := make(map[string]domain.ProviderType, len(parsed.Models))
	order := make([]string, 0, len(parsed.Models))
	for id, name := range parsed.Models {
		provider := domain.ProviderType(name)
		if !provider.IsValid() {
			return nil, fmt.Errorf("model registry %s: model %q has unknown provider %q",
				s.filePath, id, name)
		}
		models[id] = provider
		order = append(order, id)
	}
	// TOML maps carry no ordering, so list models alphabetically.
	sort.Strings(order)

	return domain.NewRegistry(models, order), nil
}

// Path returns the registry file path.
func (s *ModelStore) Path() string {
	return s.filePath
}
