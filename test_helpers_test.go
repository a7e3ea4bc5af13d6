package memodoc_test

import (
	"path/filepath"
	"testing"

	"github.com/memodoc/memodoc"
)

// task is the document type used by most store tests.
type task struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Prio int    `json:"prio,omitempty"`
}

func (t *task) GetID() string   { return t.UUID }
func (t *task) SetID(id string) { t.UUID = id }

// dbPath returns a path to a not-yet-existing db file in a temp dir.
func dbPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "db.json")
}

// openTasks opens a task store and fails the test on error.
func openTasks(t *testing.T, path string) *memodoc.Store[task, *task] {
	t.Helper()

	store, err := memodoc.Open[task](path)
	if err != nil {
		t.Fatalf("open %q: %v", path, err)
	}

	return store
}
