package memory

import (
	"sync"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
)

// Keyed is implemented by every record held in a Store.
type Keyed interface {
	Key() string
}

// Store is an ordered, mutex-guarded list of records. Insertion order is kept
// so list views render in the same order as their source data.
type Store[T Keyed] struct {
	mu    sync.RWMutex
	items []T
}

func NewStore[T Keyed](seed []T) *Store[T] {
	s := &Store[T]{}
	s.Replace(seed)
	return s
}

func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]T, len(s.items))
	copy(res, s.items)
	return res
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].Key() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) GetByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, repository.ErrNotFound
	}
	return s.items[i], nil
}

// Create appends v.
func (s *Store[T]) Create(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(v.Key()) >= 0 {
		return repository.ErrDuplicate
	}
	s.items = append(s.items, v)
	return nil
}

// CreateIf appends v when check accepts the current records. The check and
// the append happen under one write lock.
func (s *Store[T]) CreateIf(v T, check func(existing []T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(v.Key()) >= 0 {
		return repository.ErrDuplicate
	}
	if check != nil {
		if err := check(s.items); err != nil {
			return err
		}
	}
	s.items = append(s.items, v)
	return nil
}

// Update runs fn on a copy of the record and stores it when fn succeeds.
// fn must not change the key.
func (s *Store[T]) Update(id string, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, repository.ErrNotFound
	}
	v := s.items[i]
	if err := fn(&v); err != nil {
		return zero, err
	}
	s.items[i] = v
	return v, nil
}

func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Replace swaps the whole list, e.g. after a reload from the REST API.
func (s *Store[T]) Replace(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	s.mu.Unlock()
}
