//go:build windows

package capi

import (
	"golang.org/x/sys/windows"

	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
)

// Load opens the LightGBM shared library at path and binds the dataset entry
// points. An empty path falls back to DefaultLibraryName, resolved through
// the platform's usual library search order.
func Load(path string) (*Lib, error) {
	if path == "" {
		path = DefaultLibraryName()
	}
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, scierr.Wrapf(err, "loading LightGBM library %q", path)
	}
	lib := &Lib{}
	lib.register(uintptr(handle))
	return lib, nil
}
