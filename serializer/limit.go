package serializer

import (
	"errors"
	"fmt"
)

var ErrPayloadTooLarge = errors.New("serializer: payload too large")

// Limit wraps another serializer to enforce a maximum stored text size at
// Deserialize time. Serialize is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled. The service's raw text
// return for string reads does not apply to ErrPayloadTooLarge.
//
// Typical use: stores shared with other writers.
type Limit struct {
	// Inner is the wrapped serializer. It must be set.
	Inner Serializer
	// MaxDecode is the maximum permitted length in bytes of the text passed
	// to Deserialize.
	MaxDecode int
}

var _ Serializer = Limit{}

func (l Limit) Serialize(v any) (string, error) { return l.Inner.Serialize(v) }

func (l Limit) Deserialize(text string, out any) error {
	if l.MaxDecode > 0 && len(text) > l.MaxDecode {
		return fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(text), l.MaxDecode)
	}
	return l.Inner.Deserialize(text, out)
}
