package argvio

import (
	"fmt"
	"runtime"
)

// Symbols prefixed to reporter messages. Both are Unicode characters that
// may be unsupported by a terminal font; override via WithSymbols.
const (
	ErrorSym = "✖"
	InfoSym  = "●"
)

// Reporter formats titled error and info messages onto the manager's error
// stream, styled via an injected StyleSet. It is the message-formatting
// collaborator of the classifier: the classifier returns errors, the
// reporter renders them.
type Reporter struct {
	io       *IOManager
	styles   *StyleSet
	errorSym string
	infoSym  string
}

// NewReporter binds a reporter to a manager and a style set. The style set
// is held by reference so a later Toggle is picked up by the reporter.
func NewReporter(io *IOManager, styles *StyleSet) *Reporter {
	return &Reporter{io: io, styles: styles, errorSym: ErrorSym, infoSym: InfoSym}
}

// WithSymbols replaces the error and info symbols and returns the reporter
// for chaining.
func (r *Reporter) WithSymbols(errorSym, infoSym string) *Reporter {
	r.errorSym = errorSym
	r.infoSym = infoSym
	return r
}

// Errorf writes a titled error line: a red symbol, the title in bold, then
// the formatted message.
func (r *Reporter) Errorf(title, format string, a ...any) {
	s := r.styles
	fmt.Fprintf(r.io.Err(), "%s%s%s%s %s%s: %s\n",
		s.Error, r.errorSym, s.Reset, s.Bold, title, s.Reset,
		fmt.Sprintf(format, a...))
}

// Infof writes a titled info line with the bright blue symbol.
func (r *Reporter) Infof(title, format string, a ...any) {
	s := r.styles
	fmt.Fprintf(r.io.Err(), "%s%s%s%s %s%s: %s\n",
		s.Info, r.infoSym, s.Reset, s.Bold, title, s.Reset,
		fmt.Sprintf(format, a...))
}

// Debugf writes a message prefixed with the caller's dimmed file:line.
func (r *Reporter) Debugf(format string, a ...any) {
	s := r.styles
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 0
	}
	fmt.Fprintf(r.io.Err(), "%s%s:%d:%s %sDebug%s: %s\n",
		s.Dim, file, line, s.Reset, s.Bold, s.Reset,
		fmt.Sprintf(format, a...))
}
