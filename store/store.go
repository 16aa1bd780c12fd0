// Package store defines the provable key-value store the IBC core engine
// reads and writes through: a path-addressed store with two
// views per key — a committed, height-indexed view that query paths read,
// and a pending write-buffer view that handlers read and mutate during a
// single host transaction.
package store

import (
	"context"
	"sort"
	"sync"

	sdkstore "cosmossdk.io/core/store"
)

// KVStore is the minimal synchronous key-value contract handlers see.
// It is always the pending view: reads observe writes made earlier in the
// same transaction, and nothing here is durable until Commit is called.
type KVStore interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Has(ctx context.Context, path string) (bool, error)
	Set(ctx context.Context, path string, value []byte) error
	Delete(ctx context.Context, path string) error
	// GetKeys returns every pending key with the given prefix, in
	// deterministic lexicographic order.
	GetKeys(ctx context.Context, prefix string) ([]string, error)
}

// Height pins a committed store view to a specific block height, matching
// exported.Height's two components so store snapshots and light-client
// heights agree on what "height" means.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// ProvableStore is the full store contract: the pending KVStore
// plus historical reads at a committed height, proof generation, and commit.
type ProvableStore interface {
	KVStore

	// GetAtHeight reads a path as it was at a previously committed height.
	GetAtHeight(ctx context.Context, height Height, path string) ([]byte, bool, error)
	// GetProof returns an opaque membership/non-membership proof for path at
	// height. Actual proof construction (ICS-23) is delegated to the host;
	// this engine only carries the opaque bytes.
	GetProof(ctx context.Context, height Height, path string) ([]byte, bool, error)
	// Commit flushes the pending write buffer into a new committed height and
	// returns the new root hash along with the height it was committed at.
	Commit(ctx context.Context) (root []byte, height Height, err error)
}

// MemStore is an in-memory ProvableStore used by tests and by the mock light
// client's test harness. It layers a pending write buffer over a slice of
// immutable, height-indexed snapshots. Each Commit copies the latest snapshot
// in full and applies the pending writes and deletes to the copy, so every
// committed height holds a complete copy of the data.
type MemStore struct {
	mu sync.RWMutex

	pending map[string][]byte
	deleted map[string]struct{}

	snapshots []snapshot
}

type snapshot struct {
	height Height
	data   map[string][]byte
}

// NewMemStore returns an empty MemStore at height (0,0) with no committed data.
func NewMemStore() *MemStore {
	return &MemStore{
		pending: make(map[string][]byte),
		deleted: make(map[string]struct{}),
	}
}

var _ ProvableStore = (*MemStore)(nil)

func (s *MemStore) Get(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(path), nil
}

func (s *MemStore) getLocked(path string) []byte {
	if _, gone := s.deleted[path]; gone {
		return nil
	}
	if v, ok := s.pending[path]; ok {
		return v
	}
	if len(s.snapshots) == 0 {
		return nil
	}
	return s.snapshots[len(s.snapshots)-1].data[path]
}

func (s *MemStore) Has(ctx context.Context, path string) (bool, error) {
	v, err := s.Get(ctx, path)
	return v != nil, err
}

func (s *MemStore) Set(_ context.Context, path string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleted, path)
	s.pending[path] = value
	return nil
}

func (s *MemStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, path)
	s.deleted[path] = struct{}{}
	return nil
}

func (s *MemStore) GetKeys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var keys []string

	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		if len(k) < len(prefix) || k[:len(prefix)] != prefix {
			return
		}
		if _, gone := s.deleted[k]; gone {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for k := range s.pending {
		add(k)
	}
	if len(s.snapshots) > 0 {
		for k := range s.snapshots[len(s.snapshots)-1].data {
			add(k)
		}
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *MemStore) GetAtHeight(_ context.Context, height Height, path string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.snapshots) - 1; i >= 0; i-- {
		if s.snapshots[i].height == height {
			v, ok := s.snapshots[i].data[path]
			return v, ok, nil
		}
	}
	return nil, false, nil
}

// GetProof returns the raw bytes stored at (height, path) as a stand-in proof.
// Real proof construction and verification is delegated to the client
// subsystem; this store only needs to hand back whatever
// bytes were committed so tests can round-trip them.
func (s *MemStore) GetProof(ctx context.Context, height Height, path string) ([]byte, bool, error) {
	return s.GetAtHeight(ctx, height, path)
}

func (s *MemStore) Commit(_ context.Context) ([]byte, Height, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var base map[string][]byte
	var prevHeight Height
	if len(s.snapshots) > 0 {
		prev := s.snapshots[len(s.snapshots)-1]
		prevHeight = prev.height
		base = make(map[string][]byte, len(prev.data))
		for k, v := range prev.data {
			base[k] = v
		}
	} else {
		base = make(map[string][]byte)
	}

	for k := range s.deleted {
		delete(base, k)
	}
	for k, v := range s.pending {
		base[k] = v
	}

	next := Height{RevisionNumber: prevHeight.RevisionNumber, RevisionHeight: prevHeight.RevisionHeight + 1}
	s.snapshots = append(s.snapshots, snapshot{height: next, data: base})
	s.pending = make(map[string][]byte)
	s.deleted = make(map[string]struct{})

	return rootHash(base), next, nil
}

// rootHash is a deterministic, order-independent stand-in for a real Merkle
// root: the store's job in this engine is bookkeeping, not the ICS-23 proof
// system.
func rootHash(data map[string][]byte) []byte {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnvOffset
	for _, k := range keys {
		h = fnvMix(h, []byte(k))
		h = fnvMix(h, data[k])
	}
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(h >> (8 * i))
	}
	return out
}

const (
	fnvOffset = uint64(14695981039346656037)
	fnvPrime  = uint64(1099511628211)
)

func fnvMix(h uint64, b []byte) uint64 {
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}
	return h
}

// ServiceBackedStore adapts a cosmossdk.io/core/store.KVStoreService into the
// KVStore contract, for hosts that embed this engine inside a larger Cosmos
// SDK application and want the pending view backed by the chain's real store
// rather than MemStore. Key enumeration by prefix is a raw store iterator
// scan over [prefix, prefixEndBytes(prefix)).
type ServiceBackedStore struct {
	service sdkstore.KVStoreService
}

// NewServiceBackedStore wraps a KVStoreService.
func NewServiceBackedStore(service sdkstore.KVStoreService) *ServiceBackedStore {
	return &ServiceBackedStore{service: service}
}

var _ KVStore = (*ServiceBackedStore)(nil)

func (s *ServiceBackedStore) Get(ctx context.Context, path string) ([]byte, error) {
	store := s.service.OpenKVStore(ctx)
	return store.Get([]byte(path))
}

func (s *ServiceBackedStore) Has(ctx context.Context, path string) (bool, error) {
	store := s.service.OpenKVStore(ctx)
	return store.Has([]byte(path))
}

func (s *ServiceBackedStore) Set(ctx context.Context, path string, value []byte) error {
	store := s.service.OpenKVStore(ctx)
	return store.Set([]byte(path), value)
}

func (s *ServiceBackedStore) Delete(ctx context.Context, path string) error {
	store := s.service.OpenKVStore(ctx)
	return store.Delete([]byte(path))
}

func (s *ServiceBackedStore) GetKeys(ctx context.Context, prefix string) ([]string, error) {
	store := s.service.OpenKVStore(ctx)
	iter, err := store.Iterator([]byte(prefix), prefixEndBytes([]byte(prefix)))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	return keys, iter.Error()
}

// prefixEndBytes returns the smallest key that sorts after every key with the
// given prefix, i.e. the exclusive upper bound for a prefix scan.
func prefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	// prefix was all 0xff: no upper bound.
	return nil
}
