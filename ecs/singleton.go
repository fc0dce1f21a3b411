package ecs

import "reflect"

// Singleton is a typed handle to one world-wide value held by a Storage,
// such as the arena size or this frame's input. Singletons belong to no
// entity and never appear in queries.
type Singleton[T any] struct {
	storage *Storage
	value   *T
}

// NewSingleton returns a handle to the T singleton of storage, adding it
// first if it is missing. The optional initial value is only used when the
// singleton is added; an existing value is left as it is.
func NewSingleton[T any](storage *Storage, initial ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initial) > 0 {
			value = initial[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the handle to storage. The Scheduler calls it for Singleton
// fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.value = nil
	s.resolve()
}

func (s *Singleton[T]) resolve() *T {
	if s.value != nil || s.storage == nil {
		return s.value
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.value = (*T)(entry.dataPtr)
	}
	return s.value
}

// Get returns the singleton, or nil if it was never added to the storage.
// The pointer stays valid when the value is replaced with AddSingleton.
func (s *Singleton[T]) Get() *T {
	return s.resolve()
}

func (s *Singleton[T]) Exists() bool {
	return s.resolve() != nil
}
