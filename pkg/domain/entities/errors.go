package entities

import "errors"

var (
	// ErrItemNotFound is returned when an operation targets an id absent from a collection
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItem is returned when an added item reuses an id already in the collection
	ErrDuplicateItem = errors.New("duplicate item id")
)
