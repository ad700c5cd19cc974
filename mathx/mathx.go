// Package mathx provides small generic arithmetic helpers.
package mathx

// Integer is the constraint for integer-only helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Real is the constraint for helpers defined over any real number type.
type Real interface {
	Integer | ~float32 | ~float64
}

// Clamp limits v to the range [lo, hi]. lo must not exceed hi.
func Clamp[T Real](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped: values outside [0, 1] extrapolate.
func Lerp[T ~float32 | ~float64](a, b, t T) T {
	return a + (b-a)*t
}

// CeilDiv divides a by b, rounding toward positive infinity.
// It panics if b is zero, like integer division.
func CeilDiv[T Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
