package capi

import "unsafe"

// Handle is an opaque native resource identifier. The zero value is the null
// sentinel the C API uses to mean "no dataset".
type Handle uintptr

// NullHandle is passed where the C API accepts an optional dataset.
const NullHandle Handle = 0

// Status is the raw return code of every native call. Zero means success;
// anything else means the call failed and LastError holds the reason.
type Status int32

// StatusOK is the C API's success return code.
const StatusOK Status = 0

// DType identifies the element type of a native buffer. Values are fixed by
// the LightGBM ABI (C_API_DTYPE_*) and must match exactly.
type DType int32

const (
	Float32 DType = 0 // C_API_DTYPE_FLOAT32
	Float64 DType = 1 // C_API_DTYPE_FLOAT64
	Int32   DType = 2 // C_API_DTYPE_INT32
	Int64   DType = 3 // C_API_DTYPE_INT64
)

// String returns the Go name of the element type.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// Size returns the element width in bytes, or 0 for an unknown tag.
func (d DType) Size() int {
	switch d {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		return 0
	}
}

// API is the subset of the LightGBM C API this module binds. Methods mirror
// the LGBM_Dataset* entry points one-to-one; string arguments are plain Go
// strings and are NUL-terminated by the implementation.
type API interface {
	// DatasetCreateFromFile wraps LGBM_DatasetCreateFromFile.
	DatasetCreateFromFile(filename, parameters string, reference Handle) (Handle, Status)

	// DatasetCreateFromMat wraps LGBM_DatasetCreateFromMat. data points at
	// nrow*ncol contiguous elements of the given dtype.
	DatasetCreateFromMat(data unsafe.Pointer, dtype DType, nrow, ncol int32, rowMajor bool, parameters string, reference Handle) (Handle, Status)

	// DatasetSetField wraps LGBM_DatasetSetField.
	DatasetSetField(h Handle, field string, data unsafe.Pointer, count int32, dtype DType) Status

	// DatasetGetField wraps LGBM_DatasetGetField. On success the returned
	// pointer addresses native-owned memory valid until the dataset is freed.
	DatasetGetField(h Handle, field string) (count int32, data unsafe.Pointer, dtype DType, status Status)

	// DatasetGetNumData wraps LGBM_DatasetGetNumData.
	DatasetGetNumData(h Handle) (int32, Status)

	// DatasetGetNumFeature wraps LGBM_DatasetGetNumFeature.
	DatasetGetNumFeature(h Handle) (int32, Status)

	// DatasetDumpText wraps LGBM_DatasetDumpText.
	DatasetDumpText(h Handle, filename string) Status

	// DatasetFree wraps LGBM_DatasetFree.
	DatasetFree(h Handle) Status

	// LastError wraps LGBM_GetLastError and returns the native layer's last
	// error message for the calling thread.
	LastError() string
}
