package memo

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// Millis is the set of numeric types accepted as a timeout in milliseconds.
// A time.Duration is taken as a duration, not a millisecond count.
type Millis interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

const maxMillis = float64(math.MaxInt64 / int64(time.Millisecond))

func millisToDuration[T Millis](timeoutMillis T) (time.Duration, error) {
	if d, ok := any(timeoutMillis).(time.Duration); ok {
		return ParseTimeout(d)
	}
	return floatMillisToDuration(float64(timeoutMillis))
}

func floatMillisToDuration(ms float64) (time.Duration, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTimeoutType, ms)
	}
	if ms > maxMillis {
		return 0, fmt.Errorf("%w: %v ms overflows time.Duration", ErrInvalidTimeoutType, ms)
	}
	if ms <= 0 {
		return 0, nil
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// ParseTimeout validates an untyped timeout, such as one decoded from configuration.
// Numbers are read as milliseconds; a time.Duration is taken as is.
// @group Construction
//
// Example: timeout from decoded JSON
//
//	var raw map[string]any
//	_ = json.Unmarshal([]byte(`{"timeout_ms": 250}`), &raw)
//	d, err := memo.ParseTimeout(raw["timeout_ms"])
//	fmt.Println(d, err) // 250ms <nil>
func ParseTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		if t < 0 {
			return 0, nil
		}
		return t, nil
	case int:
		return millisToDuration(t)
	case int8:
		return millisToDuration(t)
	case int16:
		return millisToDuration(t)
	case int32:
		return millisToDuration(t)
	case int64:
		return millisToDuration(t)
	case uint:
		return millisToDuration(t)
	case uint8:
		return millisToDuration(t)
	case uint16:
		return millisToDuration(t)
	case uint32:
		return millisToDuration(t)
	case uint64:
		return millisToDuration(t)
	case float32:
		return millisToDuration(t)
	case float64:
		return millisToDuration(t)
	case json.Number:
		ms, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeoutType, t.String())
		}
		return floatMillisToDuration(ms)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidTimeoutType, v)
	}
}
