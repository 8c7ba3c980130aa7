package server

import (
	"crypto/rsa"
	"sync"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/store"
)

// Registry maps client ids to their registered public keys. Safe for
// concurrent use. If backed by a file store, registrations are persisted as
// PEM so they survive a restart.
type Registry struct {
	mu      sync.RWMutex
	keys    map[domain.ClientID]*rsa.PublicKey
	pems    map[domain.ClientID]string
	persist *store.RegistryFileStore
}

// NewRegistry returns an empty in-memory registry. persist may be nil.
func NewRegistry(persist *store.RegistryFileStore) (*Registry, error) {
	r := &Registry{
		keys:    make(map[domain.ClientID]*rsa.PublicKey),
		pems:    make(map[domain.ClientID]string),
		persist: persist,
	}
	if persist == nil {
		return r, nil
	}
	saved, err := persist.Load()
	if err != nil {
		return nil, err
	}
	for id, pemBlob := range saved {
		pub, err := crypto.ImportPublicPEM(pemBlob)
		if err != nil {
			// A bad persisted entry should not take the server down.
			continue
		}
		r.keys[id] = pub
		r.pems[id] = pemBlob
	}
	return r, nil
}

// Put registers or replaces the key for id. Trust on first register.
func (r *Registry) Put(id domain.ClientID, pemBlob string, pub *rsa.PublicKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[id] = pub
	r.pems[id] = pemBlob
	if r.persist == nil {
		return nil
	}
	snapshot := make(map[domain.ClientID]string, len(r.pems))
	for k, v := range r.pems {
		snapshot[k] = v
	}
	return r.persist.Save(snapshot)
}

// Get returns the registered key for id, if any.
func (r *Registry) Get(id domain.ClientID) (*rsa.PublicKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pub, ok := r.keys[id]
	return pub, ok
}
