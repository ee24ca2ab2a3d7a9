package engine

import "errors"

var (
	// ErrStoreSealed is returned by Store.Add once the entity set is fixed
	ErrStoreSealed = errors.New("entity store sealed")

	// ErrUnknownTag is returned by ParseTag for names outside the tag set
	ErrUnknownTag = errors.New("unknown entity tag")

	ErrUnknownSound = errors.New("unknown sound")
)
