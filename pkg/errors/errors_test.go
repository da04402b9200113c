package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewNativeError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		code    int
		message string
		wantMsg string
	}{
		{
			name:    "with native message",
			op:      "DatasetCreateFromFile",
			code:    -1,
			message: "could not open train.bin",
			wantMsg: "lgbm: DatasetCreateFromFile: native call failed (status -1): could not open train.bin",
		},
		{
			name:    "without native message",
			op:      "DatasetGetNumData",
			code:    -1,
			message: "",
			wantMsg: "lgbm: DatasetGetNumData: native call failed (status -1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNativeError(tt.op, tt.code, tt.message)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// Stack trace is attached by the constructor.
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("expected stack trace to contain test file name")
			}

			var nativeErr *NativeError
			if !As(err, &nativeErr) {
				t.Error("error should be castable to *NativeError")
			}
			if nativeErr.Code != tt.code {
				t.Errorf("Code = %d, want %d", nativeErr.Code, tt.code)
			}
		})
	}
}

func TestNewTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("label", "float32", "float64")

	want := `lgbm: field "label": element type mismatch: expected float32, got float64`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var mismatch *TypeMismatchError
	if !As(err, &mismatch) {
		t.Fatal("error should be castable to *TypeMismatchError")
	}
	if mismatch.Expected != "float32" || mismatch.Got != "float64" {
		t.Errorf("unexpected fields: %+v", mismatch)
	}
}

func TestNewRangeError(t *testing.T) {
	err := NewRangeError("DatasetFromMat", "rows", 1<<33, 1<<31-1)

	var rangeErr *RangeError
	if !As(err, &rangeErr) {
		t.Fatal("error should be castable to *RangeError")
	}
	if rangeErr.Value != 1<<33 {
		t.Errorf("Value = %d, want %d", rangeErr.Value, int64(1<<33))
	}
	if !strings.Contains(err.Error(), "exceeds native integer range") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestNewEncodingError(t *testing.T) {
	err := NewEncodingError("DatasetFromFile", "bad\x00path", "interior NUL byte")

	var encErr *EncodingError
	if !As(err, &encErr) {
		t.Fatal("error should be castable to *EncodingError")
	}
	if !strings.Contains(err.Error(), "cannot encode") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestNewStateError(t *testing.T) {
	err := NewStateError("SetField", "dataset")

	want := "lgbm: SetField: dataset has been released"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewTypeMismatchError("group", "int32", "int64")
	wrapped := Wrap(base, "reading ranking groups")

	var mismatch *TypeMismatchError
	if !As(wrapped, &mismatch) {
		t.Error("wrapped error should still match *TypeMismatchError")
	}
	if !strings.Contains(wrapped.Error(), "reading ranking groups") {
		t.Errorf("wrap message missing: %v", wrapped)
	}
}
