package lgbm

import "strings"

// Field identifies one of a dataset's typed attribute arrays. The type
// parameter pins the element type of the field at compile time and has no
// runtime representation: a Field[float32] cannot be used to read or write
// anything but float32 data.
//
// The four canonical fields are package-level constants; callers never
// construct their own.
type Field[T Data] struct {
	// wire is the name the C API expects, stored with its NUL terminator.
	wire string
}

// newField validates the wire name at package initialization time. A name
// without a trailing NUL is a contract violation in this package, not a
// runtime condition, so it panics.
func newField[T Data](wire string) Field[T] {
	if len(wire) < 2 || wire[len(wire)-1] != 0 {
		panic("lgbm: field wire name must be NUL-terminated")
	}
	if strings.ContainsRune(wire[:len(wire)-1], 0) {
		panic("lgbm: field wire name contains interior NUL")
	}
	return Field[T]{wire: wire}
}

// The canonical dataset fields and their element types, fixed by the C API.
var (
	Label     = newField[float32]("label\x00")
	Weight    = newField[float32]("weight\x00")
	InitScore = newField[float64]("init_score\x00")
	Group     = newField[int32]("group\x00")
)

// Name returns the field's wire name without the terminator.
func (f Field[T]) Name() string {
	return strings.TrimSuffix(f.wire, "\x00")
}

// WireName returns the NUL-terminated byte sequence passed to the native
// layer.
func (f Field[T]) WireName() []byte {
	return []byte(f.wire)
}
