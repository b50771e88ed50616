package serializer

import "fmt"

// Raw is an identity serializer for string and []byte values. Serialize(nil)
// yields the empty string. By convention this assumes UTF-8 and performs no
// validation.
type Raw struct{}

var _ Serializer = Raw{}

func (Raw) Serialize(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("serializer: raw cannot encode %T", v)
	}
}

func (Raw) Deserialize(text string, out any) error {
	switch p := out.(type) {
	case *string:
		*p = text
	case *[]byte:
		*p = []byte(text)
	default:
		return fmt.Errorf("serializer: raw cannot decode into %T", out)
	}
	return nil
}
