// Package tensor provides the core tensor types and operations for tensorbook.
package tensor

import "github.com/gomlx/exceptions"

// DType is a constraint for supported tensor element types.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType is the runtime tag of a tensor's element type.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		exceptions.Panicf("unknown data type %d", int(dt))
	}
	return 0
}

// IsFloat reports whether the data type is a floating point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the runtime tag for the element type T.
func DataTypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		exceptions.Panicf("unsupported element type %T", zero)
	}
	return -1
}

// ToFloat64 widens a scalar of any supported type to float64.
// Booleans map to 0 and 1.
func ToFloat64[T DType](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		exceptions.Panicf("unsupported element type %T", v)
	}
	return 0
}

// FromFloat64 narrows a float64 to the element type T.
// Integer types truncate toward zero; bool is true for any non-zero value.
func FromFloat64[T DType](f float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	case *int32:
		*p = int32(f)
	case *int64:
		*p = int64(f)
	case *uint8:
		*p = uint8(f)
	case *bool:
		*p = f != 0
	default:
		exceptions.Panicf("unsupported element type %T", v)
	}
	return v
}
