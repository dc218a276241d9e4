package number

import (
	"encoding/json"
	"math"
	"strconv"
)

// IsNumber reports whether value has one of the numeric types a decoded
// document may carry.
func IsNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// ToFloat64 converts supported numeric values to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ToInt64 returns the integral value of a number. Floats qualify only when
// they carry no fractional part.
func ToInt64(value any) (int64, bool) {
	switch current := value.(type) {
	case int:
		return int64(current), true
	case int8:
		return int64(current), true
	case int16:
		return int64(current), true
	case int32:
		return int64(current), true
	case int64:
		return current, true
	case uint:
		return int64(current), current <= math.MaxInt64
	case uint8:
		return int64(current), true
	case uint16:
		return int64(current), true
	case uint32:
		return int64(current), true
	case uint64:
		return int64(current), current <= math.MaxInt64
	case json.Number:
		if parsed, err := current.Int64(); err == nil {
			return parsed, true
		}
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(parsed)
	case float32:
		return floatToInt(float64(current))
	case float64:
		return floatToInt(current)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Format renders a number the way it would appear in a JSON document.
func Format(value any) string {
	if n, ok := value.(json.Number); ok {
		return n.String()
	}
	if i, ok := ToInt64(value); ok {
		switch value.(type) {
		case float32, float64:
		default:
			return strconv.FormatInt(i, 10)
		}
	}
	if u, ok := value.(uint64); ok {
		return strconv.FormatUint(u, 10)
	}
	if u, ok := value.(uint); ok {
		return strconv.FormatUint(uint64(u), 10)
	}
	f, _ := ToFloat64(value)
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseIndex parses a digits-only index term. Signs, spaces and empty input
// are rejected.
func ParseIndex(term string) (int, bool) {
	if term == "" {
		return 0, false
	}
	for i := 0; i < len(term); i++ {
		if term[i] < '0' || term[i] > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(term)
	if err != nil {
		return 0, false
	}
	return index, true
}
