package sfl

import (
	"math"
)

// NumT is a constraint for all integers and floats
type NumT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ConvNumber converts `orig` to OutT and reports whether the value survived the
// conversion unchanged. Converting a float to an integer drops the fraction.
//
//	converted, ok := ConvNumber[uint32](int32(-1))
//
// output:
//
//	0, false
func ConvNumber[OutT NumT, InT NumT](orig InT) (OutT, bool) {
	converted := OutT(orig)
	switch any(converted).(type) {
	case float32:
		if math.Abs(float64(orig)) > math.MaxFloat32 {
			return 0, false
		}
		return converted, true
	case float64:
		return converted, true
	}

	// integer target: the value must come back unchanged, less any fraction
	whole := orig
	switch f := any(orig).(type) {
	case float32:
		whole = InT(math.Trunc(float64(f)))
	case float64:
		whole = InT(math.Trunc(f))
	}
	if (whole < 0) != (converted < 0) || InT(converted) != whole {
		return 0, false
	}
	return converted, true
}
