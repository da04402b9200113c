package lgbm

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Teamon9161/lgbm-go/capi"
	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
	"github.com/Teamon9161/lgbm-go/pkg/log"
)

// Library is an open binding to the native LightGBM shared library and the
// factory for datasets. The zero value is not usable; construct one with
// Open or NewLibrary.
type Library struct {
	api capi.API
	log zerolog.Logger
}

// Open loads the shared library at path and binds the dataset entry points.
// An empty path loads the platform's default library name through the usual
// search order.
func Open(path string) (*Library, error) {
	api, err := capi.Load(path)
	if err != nil {
		return nil, err
	}
	return NewLibrary(api), nil
}

// NewLibrary wraps an existing native binding. It is the entry point for
// callers that supply their own capi.API implementation, including tests
// running against capi.Fake.
func NewLibrary(api capi.API) *Library {
	return &Library{api: api, log: log.Logger()}
}

// WithLogger returns a copy of the library that logs through logger.
func (l *Library) WithLogger(logger zerolog.Logger) *Library {
	cp := *l
	cp.log = logger
	return &cp
}

// check is the error translation boundary: every native call in this package
// funnels its status through here before any output value is trusted.
func (l *Library) check(op string, st capi.Status) error {
	if st == capi.StatusOK {
		return nil
	}
	return scierr.NewNativeError(op, int(st), l.api.LastError())
}

// checkCString rejects strings that cannot cross the C boundary intact.
func checkCString(op, s string) error {
	if strings.ContainsRune(s, 0) {
		return scierr.NewEncodingError(op, s, "interior NUL byte")
	}
	return nil
}

// narrow converts a count to the native 32-bit integer width, reporting
// overflow before any native call is attempted.
func narrow(op, what string, n int) (int32, error) {
	if n < 0 || int64(n) > math.MaxInt32 {
		return 0, scierr.NewRangeError(op, what, int64(n), math.MaxInt32)
	}
	return int32(n), nil
}
