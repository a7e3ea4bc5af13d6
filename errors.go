package memodoc

import "errors"

// Sentinel errors returned by store operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, memodoc.ErrNotFound) {
//	    // nothing was deleted
//	}
//
// Each error is joined with its underlying cause, so errors.Is also
// matches the original os or json error.
var (
	// ErrIO indicates an underlying filesystem operation failed.
	//
	// The store never retries; the in-memory sequence is unchanged.
	//
	// Recovery: fix the filesystem problem and repeat the call.
	ErrIO = errors.New("memodoc: io")

	// ErrDecode indicates the backing file does not parse as a document
	// sequence. Only returned by [Open] and [OpenFS]; no store is
	// constructed.
	//
	// Recovery: repair or delete the backing file.
	ErrDecode = errors.New("memodoc: decode")

	// ErrEncode indicates the in-memory sequence could not be serialized.
	// The triggering mutation has been rolled back.
	//
	// This is a programming error in the document type (for example a
	// field value JSON cannot represent).
	ErrEncode = errors.New("memodoc: encode")

	// ErrNotFound indicates a delete was requested for an id with no
	// matching document. No side effect occurred.
	ErrNotFound = errors.New("memodoc: not found")
)
