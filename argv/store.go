package argv

import (
	"errors"

	"github.com/arisucli/go-argv/internal/bucket"
)

// Bucket identifies one of the three classification buckets.
type Bucket int

const (
	Positionals Bucket = iota
	ProgramOptions
	CommandOptions
	numBuckets
)

func (b Bucket) String() string {
	switch b {
	case Positionals:
		return "positionals"
	case ProgramOptions:
		return "program options"
	case CommandOptions:
		return "command options"
	default:
		return "unknown"
	}
}

// Store realizes three append-only, order-preserving token sequences. The
// classifier drives it through this interface and never inspects internals,
// so the heap-growable and arena-backed strategies are interchangeable.
type Store interface {
	// Append adds tok at the end of bucket b.
	Append(b Bucket, tok string) error
	// Tokens returns bucket b in insertion order. The slice aliases store
	// internals and is only valid until Release.
	Tokens(b Bucket) []string
	// Len returns the number of tokens in bucket b.
	Len(b Bucket) int
	// Release frees any owned storage. Must be safe on a never-populated
	// store and for repeated calls.
	Release()
}

// HeapStore backs each bucket with an independently growable list. Buckets
// allocate lazily on first append, so classifying an empty argument vector
// performs no allocation.
type HeapStore struct {
	buckets [numBuckets]bucket.List[string]
}

// NewHeapStore returns a heap store with unbounded growth.
func NewHeapStore() *HeapStore { return &HeapStore{} }

// NewHeapStoreLimit returns a heap store that refuses to hold more than max
// tokens per bucket. Exceeding the limit surfaces as a fatal
// storage-exhausted error, the recoverable stand-in for heap exhaustion.
func NewHeapStoreLimit(max int) *HeapStore {
	s := &HeapStore{}
	for i := range s.buckets {
		s.buckets[i] = *bucket.NewListLimit[string](max)
	}
	return s
}

// Append implements Store.
func (s *HeapStore) Append(b Bucket, tok string) error {
	if err := s.buckets[b].Append(tok); err != nil {
		if errors.Is(err, bucket.ErrLimitExceeded) {
			return NewParseError(ErrorTypeStorageExhausted, tok,
				"Unable to grow storage for %s beyond the configured limit.", b)
		}
		return err
	}
	return nil
}

// Tokens implements Store.
func (s *HeapStore) Tokens(b Bucket) []string { return s.buckets[b].Items() }

// Len implements Store.
func (s *HeapStore) Len(b Bucket) int { return s.buckets[b].Len() }

// Reset truncates all buckets for reuse, keeping their capacity.
func (s *HeapStore) Reset() {
	for i := range s.buckets {
		s.buckets[i].Reset()
	}
}

// Release drops the three owned bucket arrays.
func (s *HeapStore) Release() {
	for i := range s.buckets {
		s.buckets[i].Release()
	}
}

// ArenaStore backs the three buckets with views into one caller-owned slot
// buffer. It allocates nothing: every append claims the next free slot of
// the shared arena. The caller must size the buffer to at least the number
// of non-program-name tokens and owns its lifetime.
type ArenaStore struct {
	arena bucket.Arena
	views [numBuckets]bucket.View
}

// NewArenaStore wires three empty views over slots.
func NewArenaStore(slots []string) *ArenaStore {
	s := &ArenaStore{}
	s.arena = *bucket.NewArena(slots)
	for i := range s.views {
		s.views[i] = *bucket.NewView(&s.arena)
	}
	return s
}

// Append implements Store.
func (s *ArenaStore) Append(b Bucket, tok string) error {
	if err := s.views[b].Append(tok); err != nil {
		switch {
		case errors.Is(err, bucket.ErrArenaFull):
			return NewParseError(ErrorTypeStorageExhausted, tok,
				"Slot buffer too small: no free slot left for '%s'.", tok)
		case errors.Is(err, bucket.ErrNonContiguous):
			return NewParseError(ErrorTypeInternal, tok,
				"Bucket %s resumed after another bucket claimed slots.", b)
		}
		return err
	}
	return nil
}

// Tokens implements Store.
func (s *ArenaStore) Tokens(b Bucket) []string { return s.views[b].Tokens() }

// Len implements Store.
func (s *ArenaStore) Len(b Bucket) int { return s.views[b].Len() }

// Reset rewinds the shared cursor and empties all views so the same slot
// buffer can back a fresh classification.
func (s *ArenaStore) Reset() {
	s.arena.Reset()
	for i := range s.views {
		s.views[i].Reset()
	}
}

// Release is a no-op: the slot buffer belongs to the caller.
func (s *ArenaStore) Release() {}
