package serializer

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Converter overrides the JSON form of one Go type. Build one with
// StringConverter.
type Converter interface {
	// Type is the Go type the converter applies to.
	Type() reflect.Type

	valEncoder() jsoniter.ValEncoder
	valDecoder() jsoniter.ValDecoder
}

// DefaultConverters are registered by NewJSON.
func DefaultConverters() []Converter {
	return []Converter{DurationConverter()}
}

// StringConverter writes values of T as JSON strings produced by Format and
// reads them back with Parse. JSON null decodes to the zero value of T.
type StringConverter[T any] struct {
	Format func(T) string
	Parse  func(string) (T, error)
}

var _ Converter = StringConverter[int]{}

func (c StringConverter[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (c StringConverter[T]) valEncoder() jsoniter.ValEncoder { return stringEncoder[T]{c.Format} }
func (c StringConverter[T]) valDecoder() jsoniter.ValDecoder { return stringDecoder[T]{c.Parse} }

type stringEncoder[T any] struct{ format func(T) string }

func (e stringEncoder[T]) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.ValueOf(*(*T)(ptr)).IsZero()
}

func (e stringEncoder[T]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(e.format(*(*T)(ptr)))
}

type stringDecoder[T any] struct{ parse func(string) (T, error) }

func (d stringDecoder[T]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		var zero T
		*(*T)(ptr) = zero
		return
	}
	if iter.WhatIsNext() != jsoniter.StringValue {
		iter.ReportError("decode "+reflect.TypeOf((*T)(nil)).Elem().String(), "expect string")
		return
	}
	s := iter.ReadString()
	if iter.Error != nil {
		return
	}
	v, err := d.parse(s)
	if err != nil {
		iter.ReportError("decode "+reflect.TypeOf((*T)(nil)).Elem().String(), err.Error())
		return
	}
	*(*T)(ptr) = v
}

// converterExtension resolves encoders by exact reflect.Type. Pointers to a
// converted type are handled by jsoniter's optional wrappers.
type converterExtension struct {
	jsoniter.DummyExtension
	enc map[reflect.Type]jsoniter.ValEncoder
	dec map[reflect.Type]jsoniter.ValDecoder
}

func newConverterExtension(convs []Converter) *converterExtension {
	ext := &converterExtension{
		enc: make(map[reflect.Type]jsoniter.ValEncoder, len(convs)),
		dec: make(map[reflect.Type]jsoniter.ValDecoder, len(convs)),
	}
	for _, c := range convs {
		ext.enc[c.Type()] = c.valEncoder()
		ext.dec[c.Type()] = c.valDecoder()
	}
	return ext
}

func (e *converterExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if enc, ok := e.enc[typ.Type1()]; ok {
		return enc
	}
	return nil
}

func (e *converterExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if dec, ok := e.dec[typ.Type1()]; ok {
		return dec
	}
	return nil
}
