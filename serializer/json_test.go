package serializer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type smurf struct {
	Age  int    `json:"smurf_age"`
	Name string `json:"smurf_name"`
}

type timer struct {
	Label    string          `json:"label"`
	Every    time.Duration   `json:"every"`
	Timeout  *time.Duration  `json:"timeout,omitempty"`
	Backoffs []time.Duration `json:"backoffs"`
}

type color int

func TestJSON_Serialize_Struct(t *testing.T) {
	s := NewJSON()
	out, err := s.Serialize(&smurf{Age: 245, Name: "Smurfette"})
	require.NoError(t, err)
	assert.Equal(t, `{"smurf_age":245,"smurf_name":"Smurfette"}`, out)
}

func TestJSON_Serialize_SortsMapKeys(t *testing.T) {
	out, err := NewJSON().Serialize(map[string]int{"b": 2, "c": 3, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, out)
}

func TestJSON_Deserialize_Struct(t *testing.T) {
	got, err := Deserialize[smurf](NewJSON(), `{"smurf_age":245,"smurf_name":"Smurfette"}`)
	require.NoError(t, err)
	assert.Equal(t, smurf{Age: 245, Name: "Smurfette"}, got)
}

func TestJSON_Null(t *testing.T) {
	s := NewJSON()
	out, err := s.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", out)

	str, err := Deserialize[string](s, out)
	require.NoError(t, err)
	assert.Equal(t, "", str)

	ptr, err := Deserialize[*smurf](s, out)
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestJSON_Deserialize_Errors(t *testing.T) {
	s := NewJSON()
	cases := map[string]func() error{
		"malformed":      func() error { _, err := Deserialize[smurf](s, `{"smurf_age":`); return err },
		"type mismatch":  func() error { _, err := Deserialize[int](s, `"eleven"`); return err },
		"not a string":   func() error { _, err := Deserialize[string](s, `[{ id: 5, name: "Jane Smith"}]`); return err },
		"trailing bytes": func() error { _, err := Deserialize[int](s, `11 12`); return err },
		"float into int": func() error { _, err := Deserialize[int](s, `11.11`); return err },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, fn())
		})
	}
}

func TestJSON_DurationConverter(t *testing.T) {
	s := NewJSON()
	timeout := 1500 * time.Millisecond
	in := timer{
		Label:    "sync",
		Every:    26*time.Hour + 3*time.Minute + 4*time.Second,
		Timeout:  &timeout,
		Backoffs: []time.Duration{time.Second, -90 * time.Second},
	}

	out, err := s.Serialize(in)
	require.NoError(t, err)
	assert.Equal(t,
		`{"label":"sync","every":"1.02:03:04","timeout":"00:00:01.5000000","backoffs":["00:00:01","-00:01:30"]}`,
		out)

	got, err := Deserialize[timer](s, out)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestJSON_DurationConverter_NullAndOmitted(t *testing.T) {
	s := NewJSON()
	got, err := Deserialize[timer](s, `{"label":"x","every":null}`)
	require.NoError(t, err)
	assert.Zero(t, got.Every)
	assert.Nil(t, got.Timeout)

	_, err = Deserialize[timer](s, `{"every":42}`)
	assert.Error(t, err)
	_, err = Deserialize[timer](s, `{"every":"25:00:00"}`)
	assert.Error(t, err)
}

func TestJSON_NoDefaultConverters(t *testing.T) {
	s := NewJSONWithOptions(JSONOptions{NoDefaultConverters: true})
	out, err := s.Serialize(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "1000000000", out)
}

func TestJSON_CustomConverter(t *testing.T) {
	names := []string{"red", "green", "blue"}
	conv := StringConverter[color]{
		Format: func(c color) string { return names[c] },
		Parse: func(s string) (color, error) {
			for i, n := range names {
				if n == s {
					return color(i), nil
				}
			}
			return 0, assert.AnError
		},
	}
	s := NewJSONWithOptions(JSONOptions{Converters: []Converter{conv}})

	out, err := s.Serialize(map[string]color{"sky": 2})
	require.NoError(t, err)
	assert.Equal(t, `{"sky":"blue"}`, out)

	got, err := Deserialize[map[string]color](s, `{"grass":"green"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]color{"grass": 1}, got)

	_, err = Deserialize[color](s, `"purple"`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), assert.AnError.Error()), err.Error())
}

func BenchmarkJSON_Serialize(b *testing.B) {
	s := NewJSON()
	for i := 0; i < b.N; i++ {
		_, _ = s.Serialize(&smurf{Age: 245, Name: "Smurfette"})
	}
}

func BenchmarkJSON_Deserialize(b *testing.B) {
	s := NewJSON()
	var v smurf
	for i := 0; i < b.N; i++ {
		_ = s.Deserialize(`{"smurf_age":245,"smurf_name":"Smurfette"}`, &v)
	}
}
