// Package decode converts the untyped values produced by yaml and viper
// decoding into Go types, reporting failures as keylab error kinds.
package decode

import (
	"math"

	"github.com/jmylchreest/keylab/internal/errors"
)

// Int accepts every integer kind. Floats are rejected even when integral,
// and unsigned values above math.MaxInt are a value error.
func Int(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, errors.Valuef("%d overflows int", n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, errors.Valuef("%d overflows int", n)
		}
		return int(n), nil
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, errors.Valuef("%d overflows int", n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, errors.Valuef("%d overflows int", n)
		}
		return int(n), nil
	default:
		return 0, errors.Typef("expected an integer, got %T", v)
	}
}

// StringMap normalizes the two record shapes yaml decoders produce
func StringMap(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, errors.Typef("record keys must be strings, got %T", k)
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, errors.Typef("expected a record, got %T", v)
	}
}
