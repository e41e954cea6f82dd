package bucket

import "testing"

// TestArenaClaimOrder: claims hand out consecutive slots of the caller's
// buffer, in order.
func TestArenaClaimOrder(t *testing.T) {
	slots := make([]string, 3)
	a := NewArena(slots)

	for i, tok := range []string{"x", "y", "z"} {
		got, err := a.Claim(tok)
		if err != nil {
			t.Fatalf("claim %d: %v", i, err)
		}
		if got != i {
			t.Errorf("claim %d: expected slot %d, got %d", i, i, got)
		}
	}
	if a.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", a.Remaining())
	}
	if slots[0] != "x" || slots[1] != "y" || slots[2] != "z" {
		t.Errorf("expected [x y z] in caller buffer, got %v", slots)
	}
}

// TestArenaFull: claiming past the buffer end fails without writing.
func TestArenaFull(t *testing.T) {
	a := NewArena(make([]string, 1))
	if _, err := a.Claim("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Claim("y"); err != ErrArenaFull {
		t.Fatalf("expected ErrArenaFull, got %v", err)
	}
}

// TestViewLazyOffset: a view's offset is fixed by its first append, wherever
// the shared cursor happens to be.
func TestViewLazyOffset(t *testing.T) {
	slots := make([]string, 4)
	a := NewArena(slots)
	early := NewView(a)
	late := NewView(a)

	if err := early.Append("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := early.Append("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := late.Append("c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := late.Tokens()
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected late view [c], got %v", got)
	}
	if &got[0] != &slots[2] {
		t.Error("expected late view to start at slot 2")
	}
}

// TestViewEmptyTokens: a view with no appends reads back nil.
func TestViewEmptyTokens(t *testing.T) {
	v := NewView(NewArena(make([]string, 1)))
	if v.Tokens() != nil {
		t.Errorf("expected nil tokens for empty view, got %v", v.Tokens())
	}
	if v.Len() != 0 {
		t.Errorf("expected length 0, got %d", v.Len())
	}
}

// TestViewRefusesNonContiguousAppend: once another view moves the cursor
// past a view's window, resuming that view is an error and claims nothing.
func TestViewRefusesNonContiguousAppend(t *testing.T) {
	a := NewArena(make([]string, 4))
	first := NewView(a)
	second := NewView(a)

	if err := first.Append("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := second.Append("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.Append("c"); err != ErrNonContiguous {
		t.Fatalf("expected ErrNonContiguous, got %v", err)
	}
	if first.Len() != 1 || a.Remaining() != 2 {
		t.Errorf("refused append must not claim a slot: len=%d remaining=%d",
			first.Len(), a.Remaining())
	}
}

// TestViewAppendZeroAlloc: the claim path must not allocate.
func TestViewAppendZeroAlloc(t *testing.T) {
	slots := make([]string, 8)
	a := NewArena(slots)
	v := NewView(a)
	toks := []string{"-a", "x", "y"}

	allocs := testing.AllocsPerRun(1000, func() {
		a.Reset()
		v.Reset()
		for _, tok := range toks {
			if err := v.Append(tok); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op for view appends, got %.2f", allocs)
	}
}
