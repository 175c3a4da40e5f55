// Package types defines the stable vocabulary shared by the pngkit packages:
// a typed error taxonomy callers can branch on, and the plain result records
// returned by listing and inspection operations.
//
// Design goals:
//   - Typed errors with stable categories (signature/truncated/crc/...).
//   - Records that serialize cleanly to JSON for tooling.
//
// This package has no dependencies beyond the standard library.
package types
