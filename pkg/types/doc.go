// Package types defines the shared vocabulary of palettekit: RGB555 colors,
// 12-bit fixed point effect strengths, bits-per-pixel and compression modes,
// the hardware palette geometry and typed errors.
//
// Design goals:
//   - Value types small enough to copy freely (Color is a uint16, Fixed an int32).
//   - Typed errors with stable categories (out-of-memory/invalid-parameter/...).
//   - No behavior beyond conversions; banks and effects live in other packages.
//
// This package has no dependencies beyond the standard library.
package types
