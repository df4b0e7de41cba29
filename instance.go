package ulog

import (
	"log"
	"strings"
)

// Logger is a lightweight facade bound to one call-site identity. Every
// facade in a process shares the same Router; the facade itself holds only
// the identity record fixed at construction.
type Logger struct {
	router   *Router
	identity Meta
}

// New returns a facade scoped to the given source, using the shared process
// router. An empty source marks the instance as unknown_callee, which
// redirects every one of its calls to the bad-log warning path.
func New(source string, scoped ...Meta) *Logger {
	return NewWithRouter(Default(), source, scoped...)
}

// NewWithRouter is New with an explicit router, for tests and embedders that
// construct their own sink wiring.
func NewWithRouter(r *Router, source string, scoped ...Meta) *Logger {
	identity := Meta{}
	if len(scoped) > 0 {
		identity = scoped[0].Clone()
	}
	if source == "" {
		source = unknownCallee
	}
	identity["source"] = source
	if _, ok := identity["codeRepository"]; !ok {
		identity["codeRepository"] = codeRepositoryDefault()
	}
	return &Logger{router: r, identity: identity}
}

// Emerg logs at emergency level.
func (l *Logger) Emerg(args ...interface{}) {
	l.router.Dispatch(SeverityEmerg, l.identity, args...)
}

// Emergency is the documented synonym for Emerg.
func (l *Logger) Emergency(args ...interface{}) {
	l.Emerg(args...)
}

// Alert logs at alert level.
func (l *Logger) Alert(args ...interface{}) {
	l.router.Dispatch(SeverityAlert, l.identity, args...)
}

// Crit logs at critical level.
func (l *Logger) Crit(args ...interface{}) {
	l.router.Dispatch(SeverityCrit, l.identity, args...)
}

// Critical is the documented synonym for Crit.
func (l *Logger) Critical(args ...interface{}) {
	l.Crit(args...)
}

// Error logs at error level.
func (l *Logger) Error(args ...interface{}) {
	l.router.Dispatch(SeverityError, l.identity, args...)
}

// Warning logs at warning level.
func (l *Logger) Warning(args ...interface{}) {
	l.router.Dispatch(SeverityWarning, l.identity, args...)
}

// Notice logs at notice level.
func (l *Logger) Notice(args ...interface{}) {
	l.router.Dispatch(SeverityNotice, l.identity, args...)
}

// Info logs at info level.
func (l *Logger) Info(args ...interface{}) {
	l.router.Dispatch(SeverityInfo, l.identity, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(args ...interface{}) {
	l.router.Dispatch(SeverityDebug, l.identity, args...)
}

// RedirectStdLog points the standard library log package at this facade's
// debug handler, so stray log.Print calls flow through the same pipeline.
// Strictly opt-in: nothing in the core touches process-global print state.
func (l *Logger) RedirectStdLog() {
	log.SetFlags(0)
	log.SetOutput(stdlogWriter{l})
}

type stdlogWriter struct{ l *Logger }

func (w stdlogWriter) Write(p []byte) (int, error) {
	w.l.Debug(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
