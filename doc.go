// Package localstorage implements a string-keyed storage service that
// serializes caller values to text and persists the text through a
// swappable provider.
//
// Components:
//   - Provider: string store (in-memory, Bolt file, Redis hash, BigCache, Ristretto).
//   - Serializer: value <-> text. JSON by default, with a converter that
//     writes time.Duration as a time-span string.
//   - Hooks: Changing (cancelable) and Changed events around writes.
//
// Reads:
//
//	v, err := localstorage.GetItem[User](ctx, svc, "user")
//
// A missing entry yields the zero value and a nil error. When the stored
// text cannot be decoded, GetItem fails with *DecodeError, except for
// GetItem[string], which returns the stored text unchanged. That lets
// callers read values written by producers that did not go through the
// serializer.
package localstorage
