package serializer

import (
	"encoding/base64"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Serializer that encodes values with vmihailenco/msgpack/v5
// and stores the bytes as standard base64 text.
// The zero value is ready to use.
//
// Be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack struct{}

var _ Serializer = Msgpack{}

func (Msgpack) Serialize(v any) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (Msgpack) Deserialize(text string, out any) error {
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(b, out)
}
