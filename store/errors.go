package store

import "fmt"

type ErrStoreAccess struct {
	Collection	string
	Err			error
}

func (e *ErrStoreAccess) Error() string {
	return fmt.Sprintf("error accessing \"%s\" store: %v", e.Collection, e.Err)
}

type ErrNotInitialized struct {}

func (e *ErrNotInitialized) Error() string {
	return "record stores are not initialized"
}
