package contacts

import "sync"

// Store is the read-only contact list and profile the service renders
// banners from. Replace swaps both atomically.
type Store struct {
	mu          sync.RWMutex
	karyakartas []Karyakarta
	byID        map[string]int
	profile     Politician
}

func NewStore(ks []Karyakarta, profile Politician) *Store {
	s := &Store{}
	s.Replace(ks, profile)
	return s
}

func (s *Store) Replace(ks []Karyakarta, profile Politician) {
	byID := make(map[string]int, len(ks))
	for i, k := range ks {
		byID[k.ID] = i
	}
	s.mu.Lock()
	s.karyakartas = ks
	s.byID = byID
	s.profile = profile
	s.mu.Unlock()
}

func (s *Store) List() []Karyakarta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Karyakarta, len(s.karyakartas))
	copy(out, s.karyakartas)
	return out
}

func (s *Store) Karyakarta(id string) (Karyakarta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Karyakarta{}, false
	}
	return s.karyakartas[i], true
}

func (s *Store) Profile() Politician {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
