// Package fs provides the filesystem seam used by the store, with
// implementations for production use and for fault injection in tests.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the store performs
//   - [Real]: production implementation using the [os] package
//   - [Fault]: testing implementation that injects errors at armed operations
//
// Example usage:
//
//	fsys := fs.NewReal()
//	data, err := fsys.ReadFile("db.json")
//	if err != nil {
//	    return err
//	}
package fs

import "os"

// FS defines the filesystem operations the store performs: one full
// read at open, an existence probe, and an atomic whole-file rewrite
// per mutation.
//
// Implementations in this package:
//   - [Real]: production use, wraps the [os] package
//   - [Fault]: testing use, injects errors at armed operations
//
// All methods mirror their [os] package equivalents but can be
// intercepted for testing with fault injection. Paths use OS semantics
// (like the os package and path/filepath), not the slash-separated
// paths of io/fs.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so a crash never exposes a partial write.
	// This is safer than [os.WriteFile] for critical data.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
