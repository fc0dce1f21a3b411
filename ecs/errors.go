package ecs

import "errors"

var (
	// ErrNoEntities is returned by Query.Single when nothing matches.
	ErrNoEntities = errors.New("ecs: no entities match query")
	// ErrMultipleEntities is returned by Query.Single when more than one entity matches.
	ErrMultipleEntities = errors.New("ecs: multiple entities match query")
)
