package serializer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestProtoJSON_RoundTrip(t *testing.T) {
	var p ProtoJSON
	in, err := structpb.NewStruct(map[string]any{
		"name":  "Jane Smith",
		"id":    5,
		"tags":  []any{"a", "b"},
		"admin": false,
	})
	require.NoError(t, err)

	text, err := p.Serialize(in)
	require.NoError(t, err)

	got, err := Deserialize[*structpb.Struct](p, text)
	require.NoError(t, err)
	assert.True(t, proto.Equal(in, got), "got %v", got)
}

func TestProtoJSON_DecodeIntoMessage(t *testing.T) {
	var p ProtoJSON
	d := &durationpb.Duration{}
	require.NoError(t, p.Deserialize(`"90s"`, d))
	assert.EqualValues(t, 90, d.GetSeconds())
}

func TestProtoJSON_RejectsNonMessages(t *testing.T) {
	var p ProtoJSON
	_, err := p.Serialize(map[string]int{"a": 1})
	assert.True(t, errors.Is(err, ErrNotProto), "got %v", err)

	_, err = Deserialize[string](p, `"x"`)
	assert.True(t, errors.Is(err, ErrNotProto), "got %v", err)

	_, err = Deserialize[*structpb.Struct](p, `not json`)
	assert.Error(t, err)
}

func TestProtoJSON_NonMessagePointerLeftUntouched(t *testing.T) {
	var p ProtoJSON
	type plain struct{ A int }
	var target *plain
	err := p.Deserialize(`{}`, &target)
	assert.True(t, errors.Is(err, ErrNotProto), "got %v", err)
	assert.Nil(t, target)
}

func TestProtoJSON_AllocatesNilMessagePointer(t *testing.T) {
	var p ProtoJSON
	var d *durationpb.Duration
	require.NoError(t, p.Deserialize(`"2s"`, &d))
	require.NotNil(t, d)
	assert.EqualValues(t, 2, d.GetSeconds())
}
