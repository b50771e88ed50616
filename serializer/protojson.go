package serializer

import (
	"errors"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var ErrNotProto = errors.New("serializer: value is not a proto.Message")

var protoMessageType = reflect.TypeOf((*proto.Message)(nil)).Elem()

// ProtoJSON serializes proto.Message values with the canonical protobuf
// JSON mapping. Deserialize accepts either a message (e.g. *pb.User) or a
// pointer to a message pointer (e.g. **pb.User), allocating the message
// when it is nil.
type ProtoJSON struct {
	Marshal   protojson.MarshalOptions
	Unmarshal protojson.UnmarshalOptions
}

var _ Serializer = ProtoJSON{}

func (p ProtoJSON) Serialize(v any) (string, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrNotProto, v)
	}
	b, err := p.Marshal.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p ProtoJSON) Deserialize(text string, out any) error {
	m, err := messageOf(out)
	if err != nil {
		return err
	}
	return p.Unmarshal.Unmarshal([]byte(text), m)
}

func messageOf(out any) (proto.Message, error) {
	if m, ok := out.(proto.Message); ok {
		return m, nil
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotProto, out)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Pointer || !elem.Type().Implements(protoMessageType) {
		return nil, fmt.Errorf("%w: %T", ErrNotProto, out)
	}
	if elem.IsNil() {
		elem.Set(reflect.New(elem.Type().Elem()))
	}
	m, ok := elem.Interface().(proto.Message)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotProto, out)
	}
	return m, nil
}
