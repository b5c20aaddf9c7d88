package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// ParseKey converts a JSON object key into a table key of type K. Legacy dumps encode
// numeric primary keys as object keys, so "100" must become uint32(100) and so on.
// Only canonical base-10 integers that fit K are accepted: "010", "0x10", "1.5" and
// out-of-range values are errors.
func ParseKey[K comparable](s string) (K, error) {
	var key K
	var err error

	switch p := any(&key).(type) {
	case *string:
		*p = s
		return key, nil
	case *int:
		*p, err = parseInt[int](s, strconv.IntSize)
	case *int32:
		*p, err = parseInt[int32](s, 32)
	case *int64:
		*p, err = parseInt[int64](s, 64)
	case *uint16:
		*p, err = parseUint[uint16](s, 16)
	case *uint32:
		*p, err = parseUint[uint32](s, 32)
	case *uint64:
		*p, err = parseUint[uint64](s, 64)
	default:
		return key, fmt.Errorf("unsupported key type %T", key)
	}

	if err == nil && FormatKey(key) != s {
		err = errors.New("not a canonical decimal integer")
	}
	if err != nil {
		var zero K
		return zero, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return key, nil
}

func parseInt[T int | int32 | int64](s string, bits int) (T, error) {
	v, err := strconv.ParseInt(s, 10, bits)
	return T(v), err
}

func parseUint[T uint16 | uint32 | uint64](s string, bits int) (T, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	return T(v), err
}

// FormatKey renders a key for logs and error messages.
func FormatKey[K comparable](k K) string {
	return cast.ToString(any(k))
}

// IsZero reports whether k is the zero value of its type. Zero is the universal
// "field absent" sentinel in the dataset.
func IsZero[K comparable](k K) bool {
	var zero K
	return k == zero
}
