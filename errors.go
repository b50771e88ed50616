package localstorage

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned, wrapped with the operation name, when a key is
// empty or whitespace only. No storage access happens in that case.
var ErrInvalidKey = errors.New("key must not be empty or whitespace")

func invalidKey(op string) error {
	return fmt.Errorf("localstorage: %s: %w", op, ErrInvalidKey)
}

// DecodeError reports stored text that could not be deserialized into the
// requested type.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("localstorage: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a value the serializer could not encode.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("localstorage: encode %q: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
