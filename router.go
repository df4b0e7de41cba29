package ulog

const badLogPrefix = "BAD LOG, CANNOT FIND SOURCE. "

// Router is the shared dispatcher. A process normally holds exactly one,
// reached through Default; constructing more is for tests and embedders that
// wire their own sinks. Facades hold a reference to a Router plus an
// immutable identity, never dispatch state of their own.
type Router struct {
	sink   Sink
	global Meta
}

// NewRouter builds a dispatcher over the given sink. A nil global falls back
// to ProcessMeta.
func NewRouter(sink Sink, global Meta) *Router {
	if global == nil {
		global = ProcessMeta()
	}
	return &Router{sink: sink, global: global.Clone()}
}

// Dispatch builds and emits exactly one record. The final argument is
// per-call metadata when, and only when, it is a Meta value; everything else
// is a message fragment. A record whose merged source is missing or
// unknown_callee is redirected to a warning diagnostic instead of its
// requested level — redirected, never duplicated. Dispatch never fails back
// into the caller.
func (r *Router) Dispatch(sev Severity, identity Meta, args ...interface{}) {
	var call Meta
	if n := len(args); n > 0 {
		if m, ok := args[n-1].(Meta); ok {
			call = m
			args = args[:n-1]
		}
	}

	msg := assembleMessage(args)
	meta := mergeAndValidate(call, identity, r.global)

	if isMalformed(meta) {
		r.sink.Write(SeverityWarning, badLogPrefix+"\n\tLog: "+msg, meta)
		return
	}
	r.sink.Write(sev, msg, meta)
}
