package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}
