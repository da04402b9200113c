package lgbm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teamon9161/lgbm-go/capi"
	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
)

func newTestLibrary() (*Library, *capi.Fake) {
	fake := capi.NewFake()
	return NewLibrary(fake), fake
}

func mustMat32(t *testing.T, rows, cols int, layout Layout, data []float32) *Mat[float32] {
	t.Helper()
	m, err := NewMat(rows, cols, layout, data)
	require.NoError(t, err)
	return m
}

// The canonical end-to-end scenario: a 4x2 row-major float32 matrix, a label
// field set and read back, and both metadata queries.
func TestDatasetFromMatBasic(t *testing.T) {
	lib, fake := newTestLibrary()

	m := mustMat32(t, 4, 2, RowMajor, []float32{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer ds.Close()

	labels := []float32{0.0, 1.0, 0.0, 1.0}
	require.NoError(t, SetField(ds, Label, labels))

	got, err := GetField(ds, Label)
	require.NoError(t, err)
	assert.Equal(t, labels, got)

	numData, err := ds.NumData()
	require.NoError(t, err)
	assert.Equal(t, 4, numData)

	numFeature, err := ds.NumFeature()
	require.NoError(t, err)
	assert.Equal(t, 2, numFeature)

	call := fake.CreateFromMatCalls[0]
	assert.Equal(t, capi.Float32, call.DType)
	assert.True(t, call.RowMajor)
}

func TestDatasetFromMatColumnMajor(t *testing.T) {
	lib, fake := newTestLibrary()

	data := []float64{1, 2, 3, 10, 20, 30} // 3x2, column by column
	m, err := NewMat(3, 2, ColMajor, data)
	require.NoError(t, err)
	assert.Equal(t, 20.0, m.At(1, 1))

	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer ds.Close()

	call := fake.CreateFromMatCalls[0]
	assert.False(t, call.RowMajor)
	assert.Equal(t, int32(3), call.NRow)
	assert.Equal(t, int32(2), call.NCol)
	assert.Equal(t, capi.Float64, call.DType)
}

// Round-trip law: set then get with the same descriptor returns exactly what
// was set, for each of the four element types. The int64 case uses a
// locally built descriptor since no canonical field carries that type.
func TestFieldRoundTrip(t *testing.T) {
	lib, _ := newTestLibrary()

	newDataset := func(t *testing.T) *Dataset {
		t.Helper()
		m := mustMat32(t, 3, 1, RowMajor, []float32{1, 2, 3})
		ds, err := DatasetFromMat(lib, m, nil, nil)
		require.NoError(t, err)
		t.Cleanup(ds.Close)
		return ds
	}

	t.Run("float32 label", func(t *testing.T) {
		ds := newDataset(t)
		want := []float32{0.5, -1.5, 3.25}
		require.NoError(t, SetField(ds, Label, want))
		got, err := GetField(ds, Label)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("float32 weight", func(t *testing.T) {
		ds := newDataset(t)
		want := []float32{1, 1, 2}
		require.NoError(t, SetField(ds, Weight, want))
		got, err := GetField(ds, Weight)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("float64 init_score", func(t *testing.T) {
		ds := newDataset(t)
		want := []float64{0.1, 0.2, 0.3}
		require.NoError(t, SetField(ds, InitScore, want))
		got, err := GetField(ds, InitScore)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("int32 group", func(t *testing.T) {
		ds := newDataset(t)
		want := []int32{2, 1}
		require.NoError(t, SetField(ds, Group, want))
		got, err := GetField(ds, Group)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("int64", func(t *testing.T) {
		ds := newDataset(t)
		position := newField[int64]("position\x00")
		want := []int64{7, 8, 9}
		require.NoError(t, SetField(ds, position, want))
		got, err := GetField(ds, position)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestGetFieldTypeMismatch(t *testing.T) {
	lib, fake := newTestLibrary()

	m := mustMat32(t, 2, 1, RowMajor, []float32{1, 2})
	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer ds.Close()

	require.NoError(t, SetField(ds, Label, []float32{0, 1}))

	// Simulate the native layer answering with the wrong element tag.
	fake.OverrideFieldType(ds.handle, "label", capi.Float64)

	_, err = GetField(ds, Label)
	require.Error(t, err)

	var mismatch *scierr.TypeMismatchError
	require.True(t, scierr.As(err, &mismatch))
	assert.Equal(t, "float32", mismatch.Expected)
	assert.Equal(t, "float64", mismatch.Got)
}

func TestGetFieldUnset(t *testing.T) {
	lib, _ := newTestLibrary()

	m := mustMat32(t, 2, 1, RowMajor, []float32{1, 2})
	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer ds.Close()

	_, err = GetField(ds, Weight)
	require.Error(t, err)

	var native *scierr.NativeError
	assert.True(t, scierr.As(err, &native))
}

func TestDatasetFromMatRowOverflow(t *testing.T) {
	lib, fake := newTestLibrary()

	const big = int64(1) << 32
	rows := int(big)
	if int64(rows) != big {
		t.Skip("requires 64-bit int")
	}

	// Built directly so no real allocation of 2^32 elements is needed; the
	// overflow check must fire before the buffer is ever dereferenced.
	m := &Mat[float32]{rows: rows, cols: 2, layout: RowMajor}

	_, err := DatasetFromMat(lib, m, nil, nil)
	require.Error(t, err)

	var rangeErr *scierr.RangeError
	require.True(t, scierr.As(err, &rangeErr))
	assert.Equal(t, "rows", rangeErr.What)

	// The native construction call must never have been issued.
	assert.Empty(t, fake.CreateFromMatCalls)
}

func TestReferenceChaining(t *testing.T) {
	lib, fake := newTestLibrary()

	m := mustMat32(t, 2, 2, RowMajor, []float32{1, 2, 3, 4})

	train, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer train.Close()
	assert.Equal(t, capi.NullHandle, fake.CreateFromMatCalls[0].Reference)

	valid, err := DatasetFromMat(lib, m, train, nil)
	require.NoError(t, err)
	defer valid.Close()
	assert.Equal(t, train.handle, fake.CreateFromMatCalls[1].Reference)
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	lib, fake := newTestLibrary()

	m := mustMat32(t, 2, 1, RowMajor, []float32{1, 2})
	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)

	h := ds.handle
	ds.Close()
	ds.Close() // second close must be a no-op

	assert.Equal(t, 1, fake.FreeCalls[h])
	assert.Equal(t, 0, fake.Live())

	// Operations on a released dataset fail with a StateError.
	err = SetField(ds, Label, []float32{0, 1})
	var state *scierr.StateError
	require.True(t, scierr.As(err, &state))

	_, err = ds.NumData()
	assert.True(t, scierr.As(err, &state))
}

func TestDatasetFromFile(t *testing.T) {
	lib, fake := newTestLibrary()

	dir := t.TempDir()
	path := filepath.Join(dir, "train.tsv")
	require.NoError(t, os.WriteFile(path, []byte("0\t1.0\t2.0\n1\t3.0\t4.0\n"), 0o644))

	params := NewParameters().Set("header", false)
	ds, err := lib.DatasetFromFile(path, nil, params)
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, path, fake.CreateFromFileCalls[0].Filename)
	assert.Equal(t, capi.NullHandle, fake.CreateFromFileCalls[0].Reference)
}

func TestDatasetFromFileMissing(t *testing.T) {
	lib, _ := newTestLibrary()

	_, err := lib.DatasetFromFile(filepath.Join(t.TempDir(), "missing.tsv"), nil, nil)
	require.Error(t, err)

	var native *scierr.NativeError
	require.True(t, scierr.As(err, &native))
	assert.Contains(t, native.Message, "cannot open")
}

func TestDatasetFromFileEncoding(t *testing.T) {
	lib, fake := newTestLibrary()

	_, err := lib.DatasetFromFile("bad\x00path", nil, nil)
	require.Error(t, err)

	var enc *scierr.EncodingError
	require.True(t, scierr.As(err, &enc))

	// The encoding check fires before the native layer is touched.
	assert.Empty(t, fake.CreateFromFileCalls)
}

func TestDumpText(t *testing.T) {
	lib, _ := newTestLibrary()

	m := mustMat32(t, 2, 2, RowMajor, []float32{1, 2, 3, 4})
	ds, err := DatasetFromMat(lib, m, nil, nil)
	require.NoError(t, err)
	defer ds.Close()

	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, ds.DumpText(path))

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// A destination the native layer cannot write surfaces as a NativeError.
	err = ds.DumpText(filepath.Join(t.TempDir(), "no", "such", "dir", "dump.txt"))
	var native *scierr.NativeError
	require.True(t, scierr.As(err, &native))
}

func TestNativeFailureTranslation(t *testing.T) {
	lib, fake := newTestLibrary()
	fake.FailAll = true

	m := mustMat32(t, 1, 1, RowMajor, []float32{1})
	_, err := DatasetFromMat(lib, m, nil, nil)
	require.Error(t, err)

	var native *scierr.NativeError
	require.True(t, scierr.As(err, &native))
	assert.Equal(t, "DatasetCreateFromMat", native.Op)
	assert.Equal(t, "injected failure", native.Message)
}

func TestNarrow(t *testing.T) {
	n, err := narrow("op", "length", 42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)

	_, err = narrow("op", "length", -1)
	var rangeErr *scierr.RangeError
	assert.True(t, scierr.As(err, &rangeErr))
}
