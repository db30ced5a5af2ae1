package idgen

import "fmt"

type ErrNotInitialized struct {}

func (e *ErrNotInitialized) Error() string {
	return "identifier sequences are not initialized"
}

type ErrCorruptSequence struct {
	Key	string
}

func (e *ErrCorruptSequence) Error() string {
	return fmt.Sprintf("\"%s\" sequence holds a non numeric value", e.Key)
}
