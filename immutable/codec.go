package immutable

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// An Array always serialises as an ordered list (a JSON array, a msgpack
// array), never as a keyed object, whatever views it is built from.
//
// Decoding is only allowed into a zero Array; decoding into an Array that
// already has contents fails with [ErrImmutabilityViolation].

// ToJSON serialises the elements to a JSON array.
func (a *Array[T]) ToJSON() ([]byte, error) {
	return json.Marshal(a.Values())
}

// MarshalJSON implements [json.Marshaler].
func (a *Array[T]) MarshalJSON() ([]byte, error) { return a.ToJSON() }

// UnmarshalJSON implements [json.Unmarshaler] for a zero Array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	if err := a.checkZero(); err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("immutable: decode JSON into %T: %w", a, err)
	}
	a.backing = sequence.Adopt(items)
	return nil
}

// ParseJSON decodes a JSON array into a new Array.
func ParseJSON[T any](data []byte) (*Array[T], error) {
	a := new(Array[T])
	if err := a.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return a, nil
}

// String returns a JSON representation of the array.
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.Values())
	}
	return string(b)
}

// MarshalMsgpack serialises the elements to a msgpack array.
func (a *Array[T]) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(a)
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (a *Array[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(a.Len()); err != nil {
		return err
	}
	for i, v := range a.All() {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("immutable: encode element %d: %w", i, err)
		}
	}
	return nil
}

// DecodeMsgpack implements [msgpack.CustomDecoder] for a zero Array.
func (a *Array[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := a.checkZero(); err != nil {
		return err
	}
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	// -1 is a msgpack nil.
	items := make([]T, max(n, 0))
	for i := range items {
		if err := dec.Decode(&items[i]); err != nil {
			return fmt.Errorf("immutable: decode element %d: %w", i, err)
		}
	}
	a.backing = sequence.Adopt(items)
	return nil
}

// ParseMsgpack decodes a msgpack array into a new Array.
func ParseMsgpack[T any](data []byte) (*Array[T], error) {
	a := new(Array[T])
	if err := msgpack.Unmarshal(data, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Array[T]) checkZero() error {
	if a.backing != nil {
		return fmt.Errorf("%w: cannot decode into a populated array", ErrImmutabilityViolation)
	}
	return nil
}
