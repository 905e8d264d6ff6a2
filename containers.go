package aoc

import (
	"sync"

	"tailscale.com/util/deephash"
)

type Stack[T any] struct {
	s []T
}

// NewStack returns an empty stack with room for n elements.
func NewStack[T any](n int) *Stack[T] {
	return &Stack[T]{s: make([]T, 0, n)}
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// Bottom returns a copy of the n oldest elements, oldest first.
// It returns all elements if the stack holds fewer than n.
func (s *Stack[T]) Bottom(n int) []T {
	n = min(n, len(s.s))
	out := make([]T, n)
	copy(out, s.s[:n])
	return out
}

// Memo caches the results of a function by the deep hash of its argument,
// so slices and structs can be used as keys. It is safe for concurrent use.
// Concurrent misses on the same key may each run the function; the last
// result wins.
type Memo[K, V any] struct {
	hash func(*K) deephash.Sum

	mu sync.Mutex
	m  map[deephash.Sum]V
}

func NewMemo[K, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		hash: deephash.HasherForType[K](),
		m:    make(map[deephash.Sum]V),
	}
}

// Get returns the cached result for k, calling f to compute it on a miss.
// Errors are not cached.
func (m *Memo[K, V]) Get(k K, f func(K) (V, error)) (V, error) {
	h := m.hash(&k)
	m.mu.Lock()
	v, ok := m.m[h]
	m.mu.Unlock()
	if ok {
		return v, nil
	}
	v, err := f(k)
	if err != nil {
		return v, err
	}
	m.mu.Lock()
	m.m[h] = v
	m.mu.Unlock()
	return v, nil
}

// Len reports the number of cached results.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.m)
}
