// Package memodoc provides a minimal durable document store: an
// in-process ordered collection of records backed by a single JSON file,
// rewritten in full after every mutation.
//
// # Basic Usage
//
//	type Task struct {
//	    UUID string `json:"uuid"`
//	    Name string `json:"name"`
//	}
//
//	func (t *Task) GetID() string   { return t.UUID }
//	func (t *Task) SetID(id string) { t.UUID = id }
//
//	store, err := memodoc.Open[Task]("./db.json")
//	if err != nil {
//	    // handle [ErrDecode]/[ErrIO]
//	}
//
//	stored, err := store.Push(Task{Name: "a"}) // id auto-assigned
//	task, ok := store.Get(stored.UUID)
//	removed, err := store.Del(stored.UUID)
//
// # Durability
//
// Every mutating call re-encodes the whole collection and atomically
// overwrites the backing file before returning. On any failure the
// in-memory change is rolled back, so memory and disk never diverge.
// There is no Close: a store that is discarded has already persisted
// everything.
//
// # Concurrency
//
// A store assumes exclusive ownership of its backing file and provides
// no internal locking. Opening multiple stores against the same path is
// last-writer-wins.
//
// # Error Handling
//
// Operations return sentinel errors ([ErrIO], [ErrDecode], [ErrEncode],
// [ErrNotFound]) joined with their underlying cause; check them with
// errors.Is. The package never logs and never retries.
package memodoc
