package lgbm

import (
	"unsafe"

	"github.com/Teamon9161/lgbm-go/capi"
)

// Data constrains the scalar types the native layer understands for field
// values. The set is closed: the C API defines exactly four element tags.
type Data interface {
	float32 | float64 | int32 | int64
}

// FeatureData constrains the element types allowed to back a feature matrix.
// The native layer accepts only floating-point feature data.
type FeatureData interface {
	float32 | float64
}

// dtypeOf returns the native element-type tag for T.
func dtypeOf[T Data]() capi.DType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return capi.Float32
	case float64:
		return capi.Float64
	case int32:
		return capi.Int32
	case int64:
		return capi.Int64
	default:
		panic("lgbm: unreachable: Data is a closed type set")
	}
}

// dataPtr reinterprets a typed buffer's address for a native call. No
// allocation, no copy; an empty slice yields nil.
func dataPtr[T Data](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
