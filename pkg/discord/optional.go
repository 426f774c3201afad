package discord

import (
	"bytes"
	"encoding/json"
)

// Optional is a value that is either present or absent. Discord marks many
// user fields as nullable; a JSON null and a missing key both decode to an
// absent Optional.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value if present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
