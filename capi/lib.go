package capi

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Lib binds the real LightGBM shared library. All methods delegate straight
// to the registered native symbols with no extra checking; that is package
// lgbm's job.
type Lib struct {
	datasetCreateFromFile func(filename string, parameters string, reference uintptr, out *uintptr) int32
	datasetCreateFromMat  func(data unsafe.Pointer, dtype int32, nrow int32, ncol int32, isRowMajor int32, parameters string, reference uintptr, out *uintptr) int32
	datasetSetField       func(h uintptr, field string, data unsafe.Pointer, count int32, dtype int32) int32
	datasetGetField       func(h uintptr, field string, outLen *int32, outPtr *unsafe.Pointer, outType *int32) int32
	datasetGetNumData     func(h uintptr, out *int32) int32
	datasetGetNumFeature  func(h uintptr, out *int32) int32
	datasetDumpText       func(h uintptr, filename string) int32
	datasetFree           func(h uintptr) int32
	getLastError          func() string
}

var _ API = (*Lib)(nil)

// DefaultLibraryName returns the conventional file name of the LightGBM
// shared library on the current platform.
func DefaultLibraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "lib_lightgbm.dylib"
	case "windows":
		return "lib_lightgbm.dll"
	default:
		return "lib_lightgbm.so"
	}
}

func (l *Lib) register(handle uintptr) {
	purego.RegisterLibFunc(&l.datasetCreateFromFile, handle, "LGBM_DatasetCreateFromFile")
	purego.RegisterLibFunc(&l.datasetCreateFromMat, handle, "LGBM_DatasetCreateFromMat")
	purego.RegisterLibFunc(&l.datasetSetField, handle, "LGBM_DatasetSetField")
	purego.RegisterLibFunc(&l.datasetGetField, handle, "LGBM_DatasetGetField")
	purego.RegisterLibFunc(&l.datasetGetNumData, handle, "LGBM_DatasetGetNumData")
	purego.RegisterLibFunc(&l.datasetGetNumFeature, handle, "LGBM_DatasetGetNumFeature")
	purego.RegisterLibFunc(&l.datasetDumpText, handle, "LGBM_DatasetDumpText")
	purego.RegisterLibFunc(&l.datasetFree, handle, "LGBM_DatasetFree")
	purego.RegisterLibFunc(&l.getLastError, handle, "LGBM_GetLastError")
}

// DatasetCreateFromFile implements API.
func (l *Lib) DatasetCreateFromFile(filename, parameters string, reference Handle) (Handle, Status) {
	var out uintptr
	st := l.datasetCreateFromFile(filename, parameters, uintptr(reference), &out)
	return Handle(out), Status(st)
}

// DatasetCreateFromMat implements API.
func (l *Lib) DatasetCreateFromMat(data unsafe.Pointer, dtype DType, nrow, ncol int32, rowMajor bool, parameters string, reference Handle) (Handle, Status) {
	var isRowMajor int32
	if rowMajor {
		isRowMajor = 1
	}
	var out uintptr
	st := l.datasetCreateFromMat(data, int32(dtype), nrow, ncol, isRowMajor, parameters, uintptr(reference), &out)
	return Handle(out), Status(st)
}

// DatasetSetField implements API.
func (l *Lib) DatasetSetField(h Handle, field string, data unsafe.Pointer, count int32, dtype DType) Status {
	return Status(l.datasetSetField(uintptr(h), field, data, count, int32(dtype)))
}

// DatasetGetField implements API.
func (l *Lib) DatasetGetField(h Handle, field string) (int32, unsafe.Pointer, DType, Status) {
	var (
		outLen  int32
		outPtr  unsafe.Pointer
		outType int32
	)
	st := l.datasetGetField(uintptr(h), field, &outLen, &outPtr, &outType)
	return outLen, outPtr, DType(outType), Status(st)
}

// DatasetGetNumData implements API.
func (l *Lib) DatasetGetNumData(h Handle) (int32, Status) {
	var out int32
	st := l.datasetGetNumData(uintptr(h), &out)
	return out, Status(st)
}

// DatasetGetNumFeature implements API.
func (l *Lib) DatasetGetNumFeature(h Handle) (int32, Status) {
	var out int32
	st := l.datasetGetNumFeature(uintptr(h), &out)
	return out, Status(st)
}

// DatasetDumpText implements API.
func (l *Lib) DatasetDumpText(h Handle, filename string) Status {
	return Status(l.datasetDumpText(uintptr(h), filename))
}

// DatasetFree implements API.
func (l *Lib) DatasetFree(h Handle) Status {
	return Status(l.datasetFree(uintptr(h)))
}

// LastError implements API.
func (l *Lib) LastError() string {
	return l.getLastError()
}
