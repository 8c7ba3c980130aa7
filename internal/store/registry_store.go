package store

import (
	"os"
	"path/filepath"

	"sealbox/internal/domain"
)

const registryFile = "client_keys.json"

// RegistryFileStore keeps clientId -> public-key PEM mappings under dir.
type RegistryFileStore struct {
	dir string
}

// NewRegistryFileStore returns a store rooted at dir, creating it if needed.
func NewRegistryFileStore(dir string) (*RegistryFileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &RegistryFileStore{dir: dir}, nil
}

// Load returns the persisted registry; an absent file yields an empty map.
func (s *RegistryFileStore) Load() (map[domain.ClientID]string, error) {
	raw := map[string]string{}
	if err := readJSON(s.path(), &raw); err != nil {
		return nil, err
	}
	out := make(map[domain.ClientID]string, len(raw))
	for id, pem := range raw {
		out[domain.ClientID(id)] = pem
	}
	return out, nil
}

// Save replaces the persisted registry with keys.
func (s *RegistryFileStore) Save(keys map[domain.ClientID]string) error {
	raw := make(map[string]string, len(keys))
	for id, pem := range keys {
		raw[id.String()] = pem
	}
	return writeJSON(s.path(), raw, 0o600)
}

func (s *RegistryFileStore) path() string {
	return filepath.Join(s.dir, registryFile)
}
