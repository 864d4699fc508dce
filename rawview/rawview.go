// Package rawview provides aliasing byte views over explicitly sized
// scalar values.
//
// A view returned by Bytes shares storage with the source value: writing
// through the view mutates the value directly and its length is exactly
// the value's in-memory size. The type set is closed on purpose. Every
// bit pattern is valid for the listed scalars, none of them contain
// pointers, and a view can never read or write outside the value's
// storage. The platform-sized int, uint and uintptr are excluded: peers
// exchanging raw bytes must agree on record size out of band, and those
// types never match across platforms.
//
// Views must not outlive the value they alias.
package rawview

import "unsafe"

// Scalar is the closed set of types rawview can alias.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Bytes returns a mutable byte view aliasing v's storage, in the host's
// native byte order and layout.
func Bytes[T Scalar](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Size reports the in-memory footprint of *v in bytes.
func Size[T Scalar](v *T) int {
	return int(unsafe.Sizeof(*v))
}

// TryBytes returns an aliasing view when v points to one of the concrete
// scalar types, and false otherwise. Named types and composites fall
// through so callers can take a copy-based path instead.
func TryBytes(v any) ([]byte, bool) {
	switch p := v.(type) {
	case *int8:
		return Bytes(p), true
	case *int16:
		return Bytes(p), true
	case *int32:
		return Bytes(p), true
	case *int64:
		return Bytes(p), true
	case *uint8:
		return Bytes(p), true
	case *uint16:
		return Bytes(p), true
	case *uint32:
		return Bytes(p), true
	case *uint64:
		return Bytes(p), true
	case *float32:
		return Bytes(p), true
	case *float64:
		return Bytes(p), true
	case *complex64:
		return Bytes(p), true
	case *complex128:
		return Bytes(p), true
	}
	return nil, false
}
