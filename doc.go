// Package lgbmgo provides Go bindings to the LightGBM gradient-boosting
// library's dataset subsystem.
//
// The module wraps the native C API behind a small, memory-safe surface:
// datasets are single-owner handles released exactly once, field access is
// statically typed, and every native status code is translated into a
// structured error.
//
// # Packages
//
//   - lgbm: the dataset wrapper — construction from files or matrices,
//     typed field get/set, metadata queries, text dump, deterministic release.
//   - capi: the raw C ABI surface, bound at runtime via purego, plus an
//     in-memory fake for testing without the native library.
//   - pkg/errors: structured error types built on cockroachdb/errors.
//   - pkg/log: the module's zerolog logger.
//
// # Quick Start
//
//	lib, err := lgbm.Open("") // loads lib_lightgbm for the platform
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	features, _ := lgbm.NewMat(4, 2, lgbm.RowMajor, []float32{
//	    1, 10,
//	    2, 20,
//	    3, 30,
//	    4, 40,
//	})
//	train, err := lgbm.DatasetFromMat(lib, features, nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer train.Close()
//
// # License
//
// Released under the MIT License.
package lgbmgo
