package fs

import (
	"errors"
	"os"
	"sync"
)

// Op identifies a single [FS] operation for fault arming.
type Op string

// Operations that can be armed on a [Fault].
const (
	OpReadFile        Op = "readfile"
	OpWriteFileAtomic Op = "writefileatomic"
	OpExists          Op = "exists"
)

// InjectedError marks an error as intentionally injected by [Fault].
//
// It wraps the underlying error so errors.Is/As continue to work, which
// lets tests distinguish injected failures from real OS errors.
type InjectedError struct {
	Err error
}

// Error returns the underlying error's message.
func (e *InjectedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected by
// a [Fault]. Returns false if err is nil.
func IsInjected(err error) bool {
	var injected *InjectedError

	return errors.As(err, &injected)
}

// Fault wraps an [FS] and fails armed operations with an injected error.
//
// Unlike probabilistic fault injection, arming is deterministic: an armed
// operation fails every time until it is disarmed. This gives consistency
// tests exact failure points.
//
// Safe for concurrent use.
type Fault struct {
	inner FS

	mu    sync.Mutex
	armed map[Op]error
}

// NewFault creates a [Fault] wrapping the given filesystem.
// Panics if inner is nil.
func NewFault(inner FS) *Fault {
	if inner == nil {
		panic("inner is nil")
	}

	return &Fault{
		inner: inner,
		armed: make(map[Op]error),
	}
}

// Arm makes op fail with err until [Fault.Disarm] is called.
// Panics if err is nil.
func (f *Fault) Arm(op Op, err error) {
	if err == nil {
		panic("err is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.armed[op] = err
}

// Disarm restores passthrough behavior for op.
func (f *Fault) Disarm(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.armed, op)
}

// check returns the injected error for op, or nil if op is not armed.
func (f *Fault) check(op Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err, ok := f.armed[op]
	if !ok {
		return nil
	}

	return &InjectedError{Err: err}
}

func (f *Fault) ReadFile(path string) ([]byte, error) {
	if err := f.check(OpReadFile); err != nil {
		return nil, err
	}

	return f.inner.ReadFile(path)
}

func (f *Fault) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := f.check(OpWriteFileAtomic); err != nil {
		return err
	}

	return f.inner.WriteFileAtomic(path, data, perm)
}

func (f *Fault) Exists(path string) (bool, error) {
	if err := f.check(OpExists); err != nil {
		return false, err
	}

	return f.inner.Exists(path)
}

// Compile-time interface check.
var _ FS = (*Fault)(nil)
