package driven

import (
	"context"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// StoreLocator finds the message store on disk.
type StoreLocator interface {
	// Locate returns the first candidate path that exists and is readable.
	// Returns an error wrapping domain.ErrStoreNotFound otherwise.
	Locate() (string, error)

	// Candidates returns the ordered list of paths Locate checks.
	Candidates() []string
}

// MessageReader reads recent messages from the store at path.
// Implementations must never write to the store.
type MessageReader interface {
	// ReadMessages returns at most limit messages, most recent first.
	// Rows whose text cannot be recovered are skipped.
	// Errors wrap domain.ErrStoreOpen or domain.ErrQuery.
	ReadMessages(ctx context.Context, path string, limit int) ([]domain.CandidateMessage, error)
}

// BodyDecoder extracts best-effort text from a rich-body blob.
type BodyDecoder interface {
	// Decode returns the text and true, or "" and false when nothing
	// usable could be recovered. It never panics.
	Decode(body []byte) (string, bool)
}

// StoreWatcher reports writes to the message store.
type StoreWatcher interface {
	// Watch emits on the returned channel whenever the store at path
	// changes. Bursts are coalesced. The channel closes when ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
