package service

import (
	"sync"

	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

// draftStore holds live drafts. Each draft carries its own mutex so two
// writers never interleave on the same draft; distinct drafts do not
// contend.
type draftStore struct {
	mu      sync.RWMutex
	entries map[snowflake.ID]*draftEntry
}

type draftEntry struct {
	mu    sync.Mutex
	draft *invoicedomain.Draft
}

func newDraftStore() *draftStore {
	return &draftStore{entries: make(map[snowflake.ID]*draftEntry)}
}

func (s *draftStore) put(d *invoicedomain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[d.ID] = &draftEntry{draft: d}
}

func (s *draftStore) get(id snowflake.ID) *draftEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[id]
}

// with runs fn while holding the draft's lock. fn receives the live draft;
// mutations are visible to the next caller.
func (s *draftStore) with(id snowflake.ID, fn func(d *invoicedomain.Draft) error) error {
	entry := s.get(id)
	if entry == nil {
		return invoicedomain.ErrNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.draft)
}

func (s *draftStore) remove(id snowflake.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}
