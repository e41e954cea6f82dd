package bucket

import "errors"

// Errors reported by the arena path. ErrArenaFull means the caller sized the
// slot buffer below the number of tokens appended across all views.
// ErrNonContiguous means a view was asked to append after another view
// claimed slots past its window, which would break the offset+length model.
var (
	ErrArenaFull     = errors.New("bucket: arena slot buffer exhausted")
	ErrNonContiguous = errors.New("bucket: non-contiguous view append")
)

// Arena bump-allocates string slots out of one caller-owned buffer. Its only
// operation is claiming the next free slot, so claims are totally ordered by
// construction and views carved from the same arena can never overlap.
//
// The arena does not own the buffer; releasing it is the caller's job.
type Arena struct {
	slots []string
	next  int
}

// NewArena wraps a caller-supplied slot buffer. The buffer must stay alive
// for as long as any view into the arena is read.
func NewArena(slots []string) *Arena { return &Arena{slots: slots} }

// Claim writes tok into the next free slot and returns its index.
func (a *Arena) Claim(tok string) (int, error) {
	if a.next >= len(a.slots) {
		return 0, ErrArenaFull
	}
	i := a.next
	a.slots[i] = tok
	a.next++
	return i, nil
}

// Remaining returns how many unclaimed slots are left.
func (a *Arena) Remaining() int { return len(a.slots) - a.next }

// Reset rewinds the cursor so the slot buffer can back a fresh
// classification. Views carved before the reset must be reset too.
func (a *Arena) Reset() { a.next = 0 }

// View is one logical sequence living inside a shared arena: a starting
// offset, fixed lazily at the first append, plus a length. Entries are valid
// only while they form a single contiguous run, which holds as long as no
// other view claims a slot between two appends of this one.
type View struct {
	arena  *Arena
	off    int
	length int
}

// NewView returns an empty view over arena with no slots claimed.
func NewView(arena *Arena) *View { return &View{arena: arena} }

// Append claims the arena's next slot for this view. The first append fixes
// the view's offset; every later append must land directly after the view's
// current window or the offset+length model would misrepresent the sequence,
// in which case ErrNonContiguous is returned and nothing is recorded.
func (v *View) Append(tok string) error {
	if v.length > 0 && v.arena.next != v.off+v.length {
		return ErrNonContiguous
	}
	i, err := v.arena.Claim(tok)
	if err != nil {
		return err
	}
	if v.length == 0 {
		v.off = i
	}
	v.length++
	return nil
}

// Len returns the number of entries appended to this view.
func (v *View) Len() int { return v.length }

// Reset empties the view without touching the arena cursor.
func (v *View) Reset() { v.off = 0; v.length = 0 }

// Tokens returns the view's contiguous window into the arena, in insertion
// order. The slice aliases the caller-owned slot buffer.
func (v *View) Tokens() []string {
	if v.length == 0 {
		return nil
	}
	return v.arena.slots[v.off : v.off+v.length]
}
