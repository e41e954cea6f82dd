package argv

// Result is the outcome of a successful classification: the program name
// plus three read-only token sequences. Token data is borrowed from the
// argument vector handed to Classify, which must outlive the result.
//
// The zero value is a valid empty result; Release on it is a no-op.
type Result struct {
	execFile string
	store    Store
}

// ExecFile returns the program path, argument vector index 0.
func (r *Result) ExecFile() string { return r.execFile }

// Positionals returns the non-flag arguments in input order.
func (r *Result) Positionals() []string { return r.tokens(Positionals) }

// ProgramOptions returns the flag tokens seen before the phase separator.
func (r *Result) ProgramOptions() []string { return r.tokens(ProgramOptions) }

// CommandOptions returns the flag tokens seen after the phase separator, or
// after the first positional.
func (r *Result) CommandOptions() []string { return r.tokens(CommandOptions) }

func (r *Result) tokens(b Bucket) []string {
	if r.store == nil {
		return nil
	}
	return r.store.Tokens(b)
}

// Release frees storage owned by the result's store. For a heap store this
// drops the three bucket arrays; for an arena store it does nothing, since
// the slot buffer belongs to the caller.
func (r *Result) Release() {
	if r.store != nil {
		r.store.Release()
	}
}
