package localstorage

import (
	"context"
	"errors"

	pr "github.com/unkn0wn-root/localstorage/provider"
	ser "github.com/unkn0wn-root/localstorage/serializer"
)

// Options configure a Service. Only Provider is required.
type Options struct {
	// Required
	Provider pr.Provider // not owned: the Service never closes it

	Serializer ser.Serializer // nil => serializer.NewJSON() (durations as time-span strings)
	Logger     Logger         // if nil, NopLogger is used
	Hooks      Hooks          // if nil, no change events and no extra read before writes
}

func New(opts Options) (*Service, error) {
	if opts.Provider == nil {
		return nil, errors.New("localstorage: provider is required")
	}
	s := &Service{
		provider: opts.Provider,
		notify:   opts.Hooks != nil,
	}
	if opts.Serializer != nil {
		s.serializer = opts.Serializer
	} else {
		s.serializer = ser.NewJSON()
	}
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return s, nil
}

// Typed is a typed view over a Service for callers that store a single
// value type.
type Typed[V any] struct {
	svc *Service
}

func For[V any](s *Service) Typed[V] { return Typed[V]{svc: s} }

func (t Typed[V]) Get(ctx context.Context, key string) (V, error) {
	return GetItem[V](ctx, t.svc, key)
}

func (t Typed[V]) Set(ctx context.Context, key string, value V) error {
	return t.svc.SetItem(ctx, key, value)
}
