package serializer

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON is the default Serializer. Output matches encoding/json (sorted map
// keys, HTML escaping) except for types that have a registered Converter.
// Construct with NewJSON or NewJSONWithOptions.
type JSON struct {
	api jsoniter.API
}

var _ Serializer = (*JSON)(nil)

// JSONOptions configures a JSON serializer.
type JSONOptions struct {
	// Converters are registered after the defaults. A later converter for
	// the same type replaces an earlier one.
	Converters []Converter
	// NoDefaultConverters drops DefaultConverters (time.Duration as a
	// time-span string). Durations are then written as integer nanoseconds.
	NoDefaultConverters bool
}

// NewJSON returns a JSON serializer with DefaultConverters registered.
func NewJSON() *JSON {
	return NewJSONWithOptions(JSONOptions{})
}

func NewJSONWithOptions(o JSONOptions) *JSON {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	var convs []Converter
	if !o.NoDefaultConverters {
		convs = append(convs, DefaultConverters()...)
	}
	convs = append(convs, o.Converters...)
	if len(convs) > 0 {
		api.RegisterExtension(newConverterExtension(convs))
	}
	return &JSON{api: api}
}

func (j *JSON) Serialize(v any) (string, error) {
	return j.api.MarshalToString(v)
}

func (j *JSON) Deserialize(text string, out any) error {
	return j.api.UnmarshalFromString(text, out)
}
