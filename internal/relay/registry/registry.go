// Package registry tracks the last-known forwarding status per transaction
// signature.
package registry

import (
	"hash/fnv"
	"sync"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
)

const shardCount = 32

// Registry is a lock-striped map from signature to forwarding status. It is
// safe for concurrent writes from many forwarding goroutines; the last writer
// for a signature wins. Entries are never evicted for the registry lifetime.
type Registry struct {
	shards [shardCount]shard
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]model.TxStatus
}

// New creates an empty Registry.
func New() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i].entries = make(map[string]model.TxStatus)
	}
	return r
}

func (r *Registry) shardFor(signature string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(signature))
	return &r.shards[h.Sum32()%shardCount]
}

// Store inserts or overwrites the status for a signature.
func (r *Registry) Store(signature string, status model.TxStatus) {
	s := r.shardFor(signature)
	s.mu.Lock()
	s.entries[signature] = status
	s.mu.Unlock()
}

// Load returns the status for a signature if present.
func (r *Registry) Load(signature string) (model.TxStatus, bool) {
	s := r.shardFor(signature)
	s.mu.RLock()
	status, ok := s.entries[signature]
	s.mu.RUnlock()
	return status, ok
}

// Len returns the number of tracked signatures.
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}
