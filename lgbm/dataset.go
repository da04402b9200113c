package lgbm

import (
	"unsafe"

	"github.com/Teamon9161/lgbm-go/capi"
	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
)

// Dataset exclusively owns one native dataset handle. The handle is non-null
// from successful construction until Close, which releases it exactly once.
// A Dataset must not be copied; pass it by pointer.
//
// Operations on one Dataset are not safe for concurrent use; callers that
// share a Dataset across goroutines must serialize access externally.
type Dataset struct {
	lib    *Library
	handle capi.Handle
}

// DatasetFromFile builds a dataset from a file in one of the native
// library's accepted formats (LibSVM/TSV/CSV text or its own binary format).
// reference, when non-nil, makes the new dataset reuse that dataset's
// feature binning; it is read during the call only and its ownership is not
// affected. params may be nil.
func (l *Library) DatasetFromFile(path string, reference *Dataset, params *Parameters) (*Dataset, error) {
	const op = "DatasetCreateFromFile"
	if err := checkCString(op, path); err != nil {
		return nil, err
	}
	ps := params.String()
	if err := checkCString(op, ps); err != nil {
		return nil, err
	}
	h, st := l.api.DatasetCreateFromFile(path, ps, refHandle(reference))
	if err := l.check(op, st); err != nil {
		return nil, err
	}
	l.log.Debug().Str("op", op).Str("path", path).Msg("dataset created")
	return &Dataset{lib: l, handle: h}, nil
}

// DatasetFromMat builds a dataset from an in-memory feature matrix. The
// matrix buffer is read during the call and not retained by the native
// layer. Row and column counts must fit the native 32-bit width; overflow is
// reported as a RangeError before the native call. reference and params are
// as in DatasetFromFile.
func DatasetFromMat[T FeatureData](l *Library, m *Mat[T], reference *Dataset, params *Parameters) (*Dataset, error) {
	const op = "DatasetCreateFromMat"
	nrow, err := narrow(op, "rows", m.rows)
	if err != nil {
		return nil, err
	}
	ncol, err := narrow(op, "columns", m.cols)
	if err != nil {
		return nil, err
	}
	ps := params.String()
	if err := checkCString(op, ps); err != nil {
		return nil, err
	}
	h, st := l.api.DatasetCreateFromMat(
		dataPtr(m.data), dtypeOf[T](), nrow, ncol, m.layout == RowMajor, ps, refHandle(reference))
	if err := l.check(op, st); err != nil {
		return nil, err
	}
	l.log.Debug().Str("op", op).
		Int32("rows", nrow).Int32("columns", ncol).Stringer("layout", m.layout).
		Msg("dataset created")
	return &Dataset{lib: l, handle: h}, nil
}

// SetField replaces the dataset's field with values. The buffer is read by
// the native call and not retained, so the caller keeps ownership.
func SetField[T Data](d *Dataset, field Field[T], values []T) error {
	const op = "DatasetSetField"
	if err := d.live(op); err != nil {
		return err
	}
	count, err := narrow(op, "length", len(values))
	if err != nil {
		return err
	}
	st := d.lib.api.DatasetSetField(d.handle, field.Name(), dataPtr(values), count, dtypeOf[T]())
	return d.lib.check(op, st)
}

// GetField returns a view over the native layer's own copy of the field.
// The backing memory belongs to the native library: the slice is valid only
// while d is alive and must not be retained past Close or across a mutation
// of the same field. Callers that need a longer-lived value must copy it.
//
// If the native layer reports an element type other than the descriptor's,
// GetField fails with a TypeMismatchError and never touches the buffer.
func GetField[T Data](d *Dataset, field Field[T]) ([]T, error) {
	const op = "DatasetGetField"
	if err := d.live(op); err != nil {
		return nil, err
	}
	count, ptr, dtype, st := d.lib.api.DatasetGetField(d.handle, field.Name())
	if err := d.lib.check(op, st); err != nil {
		return nil, err
	}
	if want := dtypeOf[T](); dtype != want {
		return nil, scierr.NewTypeMismatchError(field.Name(), want.String(), dtype.String())
	}
	if count == 0 || ptr == nil {
		return nil, nil
	}
	return unsafe.Slice((*T)(ptr), int(count)), nil
}

// NumData returns the number of rows in the dataset.
func (d *Dataset) NumData() (int, error) {
	const op = "DatasetGetNumData"
	if err := d.live(op); err != nil {
		return 0, err
	}
	n, st := d.lib.api.DatasetGetNumData(d.handle)
	if err := d.lib.check(op, st); err != nil {
		return 0, err
	}
	return int(n), nil
}

// NumFeature returns the number of feature columns in the dataset.
func (d *Dataset) NumFeature() (int, error) {
	const op = "DatasetGetNumFeature"
	if err := d.live(op); err != nil {
		return 0, err
	}
	n, st := d.lib.api.DatasetGetNumFeature(d.handle)
	if err := d.lib.check(op, st); err != nil {
		return 0, err
	}
	return int(n), nil
}

// DumpText writes the dataset to path in the native library's diagnostic
// text format.
func (d *Dataset) DumpText(path string) error {
	const op = "DatasetDumpText"
	if err := d.live(op); err != nil {
		return err
	}
	if err := checkCString(op, path); err != nil {
		return err
	}
	return d.lib.check(op, d.lib.api.DatasetDumpText(d.handle, path))
}

// Close releases the native handle. Calling Close more than once is safe;
// only the first call frees. A failing native free happens outside any
// recoverable control flow — it means the handle itself is corrupt — so it
// panics rather than returning an error.
func (d *Dataset) Close() {
	if d == nil || d.handle == capi.NullHandle {
		return
	}
	h := d.handle
	d.handle = capi.NullHandle
	if st := d.lib.api.DatasetFree(h); st != capi.StatusOK {
		err := scierr.NewNativeError("DatasetFree", int(st), d.lib.api.LastError())
		d.lib.log.Error().Err(err).Msg("dataset release failed")
		panic(err)
	}
	d.lib.log.Debug().Str("op", "DatasetFree").Msg("dataset released")
}

// live guards every operation against use after Close.
func (d *Dataset) live(op string) error {
	if d == nil || d.handle == capi.NullHandle {
		return scierr.NewStateError(op, "dataset")
	}
	return nil
}

// refHandle resolves an optional reference dataset to the value the C API
// expects: the dataset's raw handle, read-only, or the null sentinel.
// Ownership never transfers; the reference must outlive the call it is used
// in.
func refHandle(d *Dataset) capi.Handle {
	if d == nil {
		return capi.NullHandle
	}
	return d.handle
}
