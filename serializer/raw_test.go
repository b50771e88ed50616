package serializer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw(t *testing.T) {
	var r Raw

	out, err := r.Serialize("not json at all")
	require.NoError(t, err)
	assert.Equal(t, "not json at all", out)

	out, err = r.Serialize([]byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", out)

	out, err = r.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = r.Serialize(42)
	assert.Error(t, err)

	s, err := Deserialize[string](r, "{broken")
	require.NoError(t, err)
	assert.Equal(t, "{broken", s)

	b, err := Deserialize[[]byte](r, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)

	_, err = Deserialize[int](r, "1")
	assert.Error(t, err)
}

func TestLimit(t *testing.T) {
	l := Limit{Inner: NewJSON(), MaxDecode: 8}

	out, err := l.Serialize(strings.Repeat("x", 20))
	require.NoError(t, err, "Serialize is not limited")
	assert.Len(t, out, 22)

	_, err = Deserialize[string](l, out)
	assert.True(t, errors.Is(err, ErrPayloadTooLarge), "got %v", err)

	n, err := Deserialize[int](l, "12345678")
	require.NoError(t, err)
	assert.Equal(t, 12345678, n)

	unlimited := Limit{Inner: NewJSON()}
	s, err := Deserialize[string](unlimited, out)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 20), s)
}
