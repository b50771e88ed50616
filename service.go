package localstorage

import (
	"context"
	"errors"
	"strings"

	pr "github.com/unkn0wn-root/localstorage/provider"
	ser "github.com/unkn0wn-root/localstorage/serializer"
)

// Service validates keys, serializes values and forwards text to a
// Provider. It keeps no state of its own and adds no locking; concurrent
// callers get whatever ordering the provider gives them.
type Service struct {
	provider   pr.Provider
	serializer ser.Serializer
	log        Logger
	hooks      Hooks
	notify     bool
}

func validKey(key string) bool {
	return strings.TrimSpace(key) != ""
}

// SetItem serializes value and stores it under key, replacing any previous
// entry. A nil value is stored as the serializer's null.
func (s *Service) SetItem(ctx context.Context, key string, value any) error {
	if !validKey(key) {
		return invalidKey("set item")
	}
	text, err := s.serializer.Serialize(value)
	if err != nil {
		return &EncodeError{Key: key, Err: err}
	}
	return s.write(ctx, key, value, text)
}

// SetItemAsString stores text verbatim, bypassing the serializer.
func (s *Service) SetItemAsString(ctx context.Context, key, text string) error {
	if !validKey(key) {
		return invalidKey("set item as string")
	}
	return s.write(ctx, key, text, text)
}

// GetItem reads key and deserializes it as T. A missing key yields the zero
// value of T. When decoding fails and T is string the stored text is
// returned as is; for any other T the failure is a *DecodeError. A size
// limit rejection is never masked by the raw text return.
func GetItem[T any](ctx context.Context, s *Service, key string) (T, error) {
	var zero T
	if !validKey(key) {
		return zero, invalidKey("get item")
	}
	raw, ok, err := s.provider.GetItem(ctx, key)
	if err != nil || !ok {
		return zero, err
	}

	var v T
	if err := s.serializer.Deserialize(raw, &v); err != nil {
		if text, isText := any(&v).(*string); isText && !errors.Is(err, ser.ErrPayloadTooLarge) {
			s.log.Debug("stored value is not serialized, returning raw text", Fields{"key": key, "err": err})
			*text = raw
			return v, nil
		}
		return zero, &DecodeError{Key: key, Err: err}
	}
	return v, nil
}

// GetItemAsString returns the stored text verbatim; "" when absent.
func (s *Service) GetItemAsString(ctx context.Context, key string) (string, error) {
	if !validKey(key) {
		return "", invalidKey("get item as string")
	}
	raw, _, err := s.provider.GetItem(ctx, key)
	return raw, err
}

func (s *Service) RemoveItem(ctx context.Context, key string) error {
	if !validKey(key) {
		return invalidKey("remove item")
	}
	return s.provider.RemoveItem(ctx, key)
}

// RemoveItems validates every key before removing any of them.
func (s *Service) RemoveItems(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if !validKey(k) {
			return invalidKey("remove items")
		}
	}
	for _, k := range keys {
		if err := s.provider.RemoveItem(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Clear(ctx context.Context) error {
	return s.provider.Clear(ctx)
}

func (s *Service) Length(ctx context.Context) (int, error) {
	return s.provider.Length(ctx)
}

// Key returns the key at index in provider order; ok is false when index is
// out of range.
func (s *Service) Key(ctx context.Context, index int) (key string, ok bool, err error) {
	return s.provider.Key(ctx, index)
}

// Keys lists every key in provider order.
func (s *Service) Keys(ctx context.Context) ([]string, error) {
	n, err := s.provider.Length(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		k, ok, err := s.provider.Key(ctx, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *Service) ContainKey(ctx context.Context, key string) (bool, error) {
	if !validKey(key) {
		return false, invalidKey("contain key")
	}
	_, ok, err := s.provider.GetItem(ctx, key)
	return ok, err
}

func (s *Service) write(ctx context.Context, key string, value any, text string) error {
	if !s.notify {
		return s.provider.SetItem(ctx, key, text)
	}

	old, hadOld, err := s.provider.GetItem(ctx, key)
	if err != nil {
		s.log.Warn("previous value unavailable for change event", Fields{"key": key, "err": err})
		old, hadOld = "", false
	}
	ev := ChangingEvent{Key: key, OldValue: old, HadOld: hadOld, NewValue: value}
	s.hooks.Changing(&ev)
	if ev.Cancel {
		s.log.Debug("write canceled by hook", Fields{"key": key})
		return nil
	}
	if err := s.provider.SetItem(ctx, key, text); err != nil {
		return err
	}
	s.hooks.Changed(ChangedEvent{Key: key, OldValue: old, HadOld: hadOld, NewValue: value})
	return nil
}
