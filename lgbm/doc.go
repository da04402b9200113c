// Package lgbm is a memory-safe, handle-based binding to the LightGBM
// dataset C API.
//
// The package owns no learning logic of its own: datasets are opaque native
// resources, and this layer's job is deterministic ownership, statically
// typed field access, and a single error-translation boundary in front of
// every native call.
//
// # Basic Usage
//
// Load the shared library once, then build datasets from files or in-memory
// matrices:
//
//	lib, err := lgbm.Open("") // platform default library name
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
//	if err := lgbm.SetField(train, lgbm.Label, []float32{0, 1, 0, 1}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Typed Fields
//
// The four dataset fields are descriptors whose element type is part of
// their static identity: Label and Weight carry float32, InitScore float64,
// Group int32. Reading a field through the wrong descriptor does not
// compile; a native layer answering with an unexpected element tag yields a
// TypeMismatchError instead of a reinterpreted buffer:
//
//	labels, err := lgbm.GetField(train, lgbm.Label) // []float32, borrowed
//
// The slice returned by GetField views native-owned memory and is only valid
// while the dataset is alive.
//
// # Validation Sets
//
// Passing an existing dataset as the reference argument makes the new
// dataset reuse its feature binning, which LightGBM requires for validation
// data:
//
//	valid, err := lib.DatasetFromFile("valid.tsv", train, nil)
//
// # Lifetime
//
// Every successfully constructed dataset must be closed exactly once; Close
// is idempotent and releases the native handle deterministically.
package lgbm
