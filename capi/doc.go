// Package capi is the raw surface of the LightGBM C API used by this module.
//
// It deliberately stays one-to-one with the native ABI: functions take and
// return native-width integers and untyped pointers, statuses are raw ints,
// and nothing here allocates or owns native resources. All safety — status
// checking, type tags, lifetimes — is layered on top by package lgbm.
//
// Two implementations of the API interface exist: Lib, which binds the real
// shared library at runtime via purego, and Fake, an in-memory double for
// tests and environments without the native library.
package capi
