package main

import (
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MembershipSet is the set of entity ids a user has flagged (registered
// events, saved resources). Toggling an id that is not in any catalog is
// permitted; the set is an id relation, not a foreign key.
type MembershipSet struct {
	mu  sync.Mutex
	ids map[string]bool
}

func NewMembershipSet() *MembershipSet {
	return &MembershipSet{ids: make(map[string]bool)}
}

func (s *MembershipSet) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

// Toggle flips membership for the id and reports the new state.
// Two consecutive toggles restore the original state.
func (s *MembershipSet) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[id] {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = true
	return true
}

func (s *MembershipSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]bool)
}

func (s *MembershipSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the members sorted by their numeric value so responses and
// counters are stable.
func (s *MembershipSet) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := idNum(out[i]), idNum(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

const (
	MembershipEvents    = "events"
	MembershipResources = "resources"
)

// MembershipStore keeps per-user membership sets for the lifetime of the
// session. Sets expire together with the session token and are dropped
// eagerly on logout.
type MembershipStore struct {
	mu   sync.Mutex
	sets *cache.Cache
}

func NewMembershipStore(ttl time.Duration) *MembershipStore {
	return &MembershipStore{sets: cache.New(ttl, ttl)}
}

// ForUser returns the user's set of the given kind, creating it empty on
// first use. Each access renews the session-length TTL.
func (m *MembershipStore) ForUser(userID, kind string) *MembershipSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := kind + ":" + userID
	if v, ok := m.sets.Get(key); ok {
		s := v.(*MembershipSet)
		m.sets.SetDefault(key, s)
		return s
	}
	s := NewMembershipSet()
	m.sets.SetDefault(key, s)
	return s
}

// Drop discards every membership set tied to the user.
func (m *MembershipStore) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets.Delete(MembershipEvents + ":" + userID)
	m.sets.Delete(MembershipResources + ":" + userID)
}
