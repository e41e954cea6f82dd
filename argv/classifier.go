// Package argv partitions a raw argument vector into three ordered buckets:
// positional arguments, program options (flags before the "--" separator)
// and command options (flags after it). It is not a flag parser: tokens are
// bucketed by position and the single separator, never split or typed.
//
// Two interchangeable storage strategies back the buckets. Parse grows three
// independent sequences on the heap; ParseNoHeap shares one caller-owned,
// fixed-capacity slot buffer between them and allocates nothing on the hot
// path.
package argv

const (
	flagMarker = '-'
	separator  = "--"
)

// Classify buckets every token of args into store and returns the result.
// args[0] is taken as the program path and is never classified. Processing
// stops at the first ordering violation; the partially filled store must be
// discarded by the caller along with the error.
func Classify(args []string, store Store) (*Result, error) {
	res := &Result{}
	if err := ClassifyInto(args, store, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ClassifyInto is the allocation-free core of Classify: it writes into a
// caller-provided Result so store and result can be reused across runs.
func ClassifyInto(args []string, store Store, res *Result) error {
	if len(args) == 0 {
		*res = Result{}
		return nil
	}
	res.execFile = args[0]
	res.store = store

	pastSeparator := false
	for _, arg := range args[1:] {
		if arg == separator {
			if store.Len(Positionals) > 0 {
				last := store.Tokens(Positionals)[store.Len(Positionals)-1]
				return NewParseError(ErrorTypeSeparatorAfterPositional, arg,
					"Double dash ('%s') cannot be specified after the positional argument ('%s').",
					arg, last)
			}
			// Repeated separators before any positional are swallowed.
			pastSeparator = true
			continue
		}
		if len(arg) > 0 && arg[0] == flagMarker {
			dst := ProgramOptions
			if pastSeparator {
				dst = CommandOptions
			}
			if err := store.Append(dst, arg); err != nil {
				return err
			}
			continue
		}
		if store.Len(CommandOptions) > 0 {
			return NewParseError(ErrorTypePositionalAfterCommandOption, arg,
				"Positional arguments ('%s') should be specified prior to command options.", arg)
		}
		if err := store.Append(Positionals, arg); err != nil {
			return err
		}
		// A positional closes the program-option phase just like the
		// separator does.
		pastSeparator = true
	}
	return nil
}

// Parse classifies args using a heap store with independently growable
// buckets. The returned result owns the bucket storage; call Release when
// done with it.
func Parse(args []string) (*Result, error) {
	return Classify(args, NewHeapStore())
}

// ParseNoHeap classifies args into views over the caller-owned slots buffer,
// which must hold at least len(args)-1 entries. The result borrows the
// buffer; Release is a no-op and the caller keeps ownership.
func ParseNoHeap(args []string, slots []string) (*Result, error) {
	return Classify(args, NewArenaStore(slots))
}
