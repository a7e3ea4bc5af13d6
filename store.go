package memodoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/memodoc/memodoc/pkg/fs"
)

// Document is the identity capability a stored type must provide.
//
// The store never interprets the id's internal format; it only compares
// ids for equality and assigns a fresh one when a pushed document's id
// is empty.
type Document interface {
	// GetID returns the current id, empty string if unassigned.
	GetID() string

	// SetID overwrites the id in place.
	SetID(id string)
}

// DocumentOf is the constraint for a document's pointer type: it must
// point at T and carry the [Document] capability. Holding the capability
// on the pointer type lets the store keep documents by value (callers
// always receive copies) while still assigning ids in place.
type DocumentOf[T any] interface {
	*T
	Document
}

// filePerms is the mode of the backing file.
const filePerms = 0o644

// Store is an ordered collection of documents of type T bound to a
// backing JSON file. Documents are held by value; T's pointer type PT
// carries the [Document] capability so the store can assign ids in
// place.
//
// Docs is deliberately exported: the owning process may inspect or edit
// it directly, at the price of bypassing the persistence cycle until
// the next mutating call.
//
// Not safe for concurrent use; the store assumes exclusive ownership of
// its backing file for its entire lifetime.
type Store[T any, PT DocumentOf[T]] struct {
	path string
	fsys fs.FS

	// Docs is the in-memory document sequence, insertion order
	// preserved. After any successful Push or Del it matches the
	// backing file exactly.
	Docs []T
}

// Open binds a store to path using the real filesystem.
//
// If a file exists at path its full contents are read once and decoded
// as a JSON array of T; decode failure returns an error wrapping
// [ErrDecode] and no store. If no file exists the store starts empty
// and nothing is created until the first mutating call.
func Open[T any, PT DocumentOf[T]](path string) (*Store[T, PT], error) {
	return OpenFS[T, PT](fs.NewReal(), path)
}

// OpenFS is [Open] with an explicit filesystem, typically for tests
// that inject faults. Panics if fsys is nil.
func OpenFS[T any, PT DocumentOf[T]](fsys fs.FS, path string) (*Store[T, PT], error) {
	if fsys == nil {
		panic("fsys is nil")
	}

	if path == "" {
		return nil, errors.New("memodoc: path is empty")
	}

	s := &Store[T, PT]{
		path: path,
		fsys: fsys,
	}

	exists, err := fsys.Exists(path)
	if err != nil {
		return nil, errors.Join(ErrIO, fmt.Errorf("stat %q: %w", path, err))
	}

	if !exists {
		return s, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrIO, fmt.Errorf("read %q: %w", path, err))
	}

	if err := json.Unmarshal(data, &s.Docs); err != nil {
		return nil, errors.Join(ErrDecode, fmt.Errorf("decode %q: %w", path, err))
	}

	return s, nil
}

// Path returns the backing file location the store was opened with.
func (s *Store[T, PT]) Path() string {
	return s.path
}

// Len returns the number of documents currently in the store.
func (s *Store[T, PT]) Len() int {
	return len(s.Docs)
}

// Push appends doc to the store and persists the whole sequence.
//
// If doc's id is empty a fresh random id is assigned via [Document.SetID]
// before storing. A non-empty caller-supplied id is appended even if it
// duplicates an existing id; collision protection is only guaranteed for
// auto-assigned ids.
//
// On encode or write failure the append is rolled back and the error
// wraps [ErrEncode] or [ErrIO]; memory and disk remain as they were
// before the call.
//
// Returns the stored copy, so callers observe the assigned id.
func (s *Store[T, PT]) Push(doc T) (T, error) {
	if PT(&doc).GetID() == "" {
		PT(&doc).SetID(uuid.NewString())
	}

	s.Docs = append(s.Docs, doc)

	if err := s.persist(); err != nil {
		s.Docs = s.Docs[:len(s.Docs)-1]

		var zero T

		return zero, err
	}

	return doc, nil
}

// Get returns a copy of the first document whose id equals id
// (case-sensitive exact match), or false if none matches.
//
// Pure read: no file access, no mutation.
func (s *Store[T, PT]) Get(id string) (T, bool) {
	if idx := s.index(id); idx >= 0 {
		return s.Docs[idx], true
	}

	var zero T

	return zero, false
}

// Del removes the first document whose id equals id, persists the
// remaining sequence, and returns a copy of the removed document.
//
// If no document matches, returns an error wrapping [ErrNotFound] and
// performs no write. On encode or write failure the document is
// re-inserted at its original position before the error returns.
func (s *Store[T, PT]) Del(id string) (T, error) {
	var zero T

	idx := s.index(id)
	if idx < 0 {
		return zero, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}

	removed := s.Docs[idx]
	s.Docs = slices.Delete(s.Docs, idx, idx+1)

	if err := s.persist(); err != nil {
		s.Docs = slices.Insert(s.Docs, idx, removed)

		return zero, err
	}

	return removed, nil
}

// index returns the position of the first document with the given id,
// or -1 if none matches.
func (s *Store[T, PT]) index(id string) int {
	for i := range s.Docs {
		if PT(&s.Docs[i]).GetID() == id {
			return i
		}
	}

	return -1
}

// persist re-encodes the full sequence and atomically overwrites the
// backing file. The file always holds a JSON array, never null.
func (s *Store[T, PT]) persist() error {
	docs := s.Docs
	if docs == nil {
		docs = []T{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return errors.Join(ErrEncode, fmt.Errorf("encode %q: %w", s.path, err))
	}

	if err := s.fsys.WriteFileAtomic(s.path, data, filePerms); err != nil {
		return errors.Join(ErrIO, fmt.Errorf("write %q: %w", s.path, err))
	}

	return nil
}
