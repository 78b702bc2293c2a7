package value

import (
	"errors"
	"fmt"
)

var (
	// ErrJSON is the root of every error raised by this module.
	ErrJSON = errors.New("json error")

	ErrValue            = fmt.Errorf("%w: value error", ErrJSON)
	ErrKeyNotFound      = fmt.Errorf("%w: key not found", ErrValue)
	ErrIndexOutOfBounds = fmt.Errorf("%w: array index out of bounds", ErrValue)
	ErrType             = fmt.Errorf("%w: type error", ErrValue)
)

// KeyNotFoundError reports a required Object key that is absent.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("json: key %q not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound || target == ErrValue || target == ErrJSON
}

// IndexError reports an Array offset outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("json: index %d out of range, array is empty", e.Index)
	}
	return fmt.Sprintf("json: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds || target == ErrValue || target == ErrJSON
}

// TypeError reports a dynamic type that does not match the requested one.
// Key names the Object member or mapping involved, when there is one.
type TypeError struct {
	Key     string
	Message string
}

func (e *TypeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("json: %s (key %q)", e.Message, e.Key)
	}
	return "json: " + e.Message
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType || target == ErrValue || target == ErrJSON
}

func mismatch(key string, want, got Type) *TypeError {
	return &TypeError{
		Key:     key,
		Message: fmt.Sprintf("value is %s, expected %s", got, want),
	}
}
