package observability

import "go.uber.org/zap"

// Thin aliases over zap field constructors so callers outside the HTTP layer
// don't need a direct zap import.

// String constructs a string log field.
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Int constructs an int log field.
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Bool constructs a bool log field.
func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Float64 constructs a float64 log field.
func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

// Uint64 constructs a uint64 log field.
func Uint64(key string, value uint64) zap.Field {
	return zap.Uint64(key, value)
}

// Error constructs an error log field.
func Error(err error) zap.Field {
	return zap.Error(err)
}
