//go:build darwin || freebsd || linux

package capi

import (
	"github.com/ebitengine/purego"

	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
)

// Load opens the LightGBM shared library at path and binds the dataset entry
// points. An empty path falls back to DefaultLibraryName, resolved through
// the platform's usual library search order.
func Load(path string) (*Lib, error) {
	if path == "" {
		path = DefaultLibraryName()
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, scierr.Wrapf(err, "loading LightGBM library %q", path)
	}
	lib := &Lib{}
	lib.register(handle)
	return lib, nil
}
