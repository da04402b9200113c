package capi

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// Fake is an in-memory stand-in for the native library, close enough in
// behavior for exercising the wrapper layer: handles are allocated from a
// counter, fields are stored as raw bytes tagged with their dtype, and every
// failure sets the last-error message the way the C API does.
//
// It also records enough call history (creation arguments, free counts) for
// tests to assert on the exact values that crossed the boundary.
type Fake struct {
	mu         sync.Mutex
	nextHandle Handle
	datasets   map[Handle]*fakeDataset
	lastError  string

	// FailAll makes every call after construction return a failing status.
	FailAll bool

	// Call history.
	CreateFromMatCalls  []CreateFromMatCall
	CreateFromFileCalls []CreateFromFileCall
	FreeCalls           map[Handle]int
}

// CreateFromMatCall records one DatasetCreateFromMat invocation.
type CreateFromMatCall struct {
	DType     DType
	NRow      int32
	NCol      int32
	RowMajor  bool
	Reference Handle
}

// CreateFromFileCall records one DatasetCreateFromFile invocation.
type CreateFromFileCall struct {
	Filename  string
	Reference Handle
}

type fakeDataset struct {
	numData    int32
	numFeature int32
	fields     map[string]*fakeField
}

type fakeField struct {
	dtype DType
	data  []byte
}

var _ API = (*Fake)(nil)

// NewFake returns an empty fake native library.
func NewFake() *Fake {
	return &Fake{
		nextHandle: 1,
		datasets:   make(map[Handle]*fakeDataset),
		FreeCalls:  make(map[Handle]int),
	}
}

func (f *Fake) fail(msg string) Status {
	f.lastError = msg
	return Status(-1)
}

func (f *Fake) lookup(h Handle) (*fakeDataset, bool) {
	d, ok := f.datasets[h]
	return d, ok
}

// DatasetCreateFromFile implements API. The file must exist; dimensions of
// file-loaded datasets are not modeled.
func (f *Fake) DatasetCreateFromFile(filename, parameters string, reference Handle) (Handle, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateFromFileCalls = append(f.CreateFromFileCalls, CreateFromFileCall{Filename: filename, Reference: reference})
	if f.FailAll {
		return NullHandle, f.fail("injected failure")
	}
	if _, err := os.Stat(filename); err != nil {
		return NullHandle, f.fail(fmt.Sprintf("cannot open %q", filename))
	}
	return f.insert(&fakeDataset{fields: map[string]*fakeField{}}), StatusOK
}

// DatasetCreateFromMat implements API.
func (f *Fake) DatasetCreateFromMat(data unsafe.Pointer, dtype DType, nrow, ncol int32, rowMajor bool, parameters string, reference Handle) (Handle, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateFromMatCalls = append(f.CreateFromMatCalls, CreateFromMatCall{
		DType: dtype, NRow: nrow, NCol: ncol, RowMajor: rowMajor, Reference: reference,
	})
	if f.FailAll {
		return NullHandle, f.fail("injected failure")
	}
	if dtype != Float32 && dtype != Float64 {
		return NullHandle, f.fail("feature matrix must be float32 or float64")
	}
	if nrow < 0 || ncol <= 0 {
		return NullHandle, f.fail("invalid matrix dimensions")
	}
	return f.insert(&fakeDataset{
		numData:    nrow,
		numFeature: ncol,
		fields:     map[string]*fakeField{},
	}), StatusOK
}

func (f *Fake) insert(d *fakeDataset) Handle {
	h := f.nextHandle
	f.nextHandle++
	f.datasets[h] = d
	return h
}

// DatasetSetField implements API. The incoming buffer is copied, matching the
// native library's behavior of not retaining caller memory.
func (f *Fake) DatasetSetField(h Handle, field string, data unsafe.Pointer, count int32, dtype DType) Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return f.fail("injected failure")
	}
	d, ok := f.lookup(h)
	if !ok {
		return f.fail("invalid dataset handle")
	}
	if count < 0 {
		return f.fail("negative field length")
	}
	if dtype.Size() == 0 {
		return f.fail("unknown element type")
	}
	n := int(count) * dtype.Size()
	buf := make([]byte, n)
	if n > 0 {
		copy(buf, unsafe.Slice((*byte)(data), n))
	}
	d.fields[field] = &fakeField{dtype: dtype, data: buf}
	return StatusOK
}

// DatasetGetField implements API. The returned pointer addresses the fake's
// own copy, so it stays valid until the dataset is freed, as with the real
// library.
func (f *Fake) DatasetGetField(h Handle, field string) (int32, unsafe.Pointer, DType, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return 0, nil, 0, f.fail("injected failure")
	}
	d, ok := f.lookup(h)
	if !ok {
		return 0, nil, 0, f.fail("invalid dataset handle")
	}
	fld, ok := d.fields[field]
	if !ok {
		return 0, nil, 0, f.fail(fmt.Sprintf("field %q is not set", field))
	}
	count := int32(len(fld.data) / fld.dtype.Size())
	if count == 0 {
		return 0, nil, fld.dtype, StatusOK
	}
	return count, unsafe.Pointer(&fld.data[0]), fld.dtype, StatusOK
}

// OverrideFieldType rewrites the stored dtype tag of a field without touching
// its bytes. Tests use it to simulate a native layer answering with an
// unexpected element type.
func (f *Fake) OverrideFieldType(h Handle, field string, dtype DType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.lookup(h); ok {
		if fld, ok := d.fields[field]; ok {
			fld.dtype = dtype
		}
	}
}

// DatasetGetNumData implements API.
func (f *Fake) DatasetGetNumData(h Handle) (int32, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.lookup(h)
	if !ok {
		return 0, f.fail("invalid dataset handle")
	}
	return d.numData, StatusOK
}

// DatasetGetNumFeature implements API.
func (f *Fake) DatasetGetNumFeature(h Handle) (int32, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.lookup(h)
	if !ok {
		return 0, f.fail("invalid dataset handle")
	}
	return d.numFeature, StatusOK
}

// DatasetDumpText implements API. It writes a minimal text stand-in for the
// native diagnostic dump.
func (f *Fake) DatasetDumpText(h Handle, filename string) Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.lookup(h)
	if !ok {
		return f.fail("invalid dataset handle")
	}
	text := fmt.Sprintf("num_data=%d\nnum_feature=%d\n", d.numData, d.numFeature)
	if err := os.WriteFile(filename, []byte(text), 0o644); err != nil {
		return f.fail(err.Error())
	}
	return StatusOK
}

// DatasetFree implements API.
func (f *Fake) DatasetFree(h Handle) Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FreeCalls[h]++
	if _, ok := f.lookup(h); !ok {
		return f.fail("invalid dataset handle")
	}
	delete(f.datasets, h)
	return StatusOK
}

// LastError implements API.
func (f *Fake) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// Live returns the number of datasets that have been created and not freed.
func (f *Fake) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.datasets)
}
