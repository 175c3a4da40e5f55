// Package mmfile provides platform-specific helpers for mapping input files
// into memory. Callers parse the mapping and copy out what they keep before
// releasing it.
package mmfile
