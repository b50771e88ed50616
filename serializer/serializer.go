// Package serializer converts caller values to and from the text that
// providers store.
package serializer

// Serializer encodes values to text and decodes text into values.
// Deserialize receives a non-nil pointer to the destination.
type Serializer interface {
	Serialize(v any) (string, error)
	Deserialize(text string, out any) error
}

// Deserialize decodes text into a new T.
func Deserialize[T any](s Serializer, text string) (T, error) {
	var v T
	err := s.Deserialize(text, &v)
	return v, err
}
