package ulog

// Meta carries per-call or per-instance metadata. The named type doubles as
// the metadata marker: a trailing Meta argument is treated as metadata, while
// a plain map passed in the same position is logged as a message fragment.
type Meta map[string]interface{}

// The only keys allowed to reach a sink. Anything else is dropped before
// dispatch, silently.
var allowedKeys = map[string]struct{}{
	"codeRepository": {},
	"n-app":          {},
	"organization":   {},
	"request":        {},
	"user":           {},
	"source":         {},
}

// Sentinel source for call sites that never identified themselves.
const unknownCallee = "unknown_callee"

// Clone deep-copies the record. Nested maps are copied as Meta so later
// merges never write through to the original.
func (m Meta) Clone() Meta {
	out := make(Meta, len(m))
	for k, v := range m {
		if nested, ok := asMeta(v); ok {
			out[k] = nested.Clone()
			continue
		}
		out[k] = v
	}
	return out
}

func asMeta(v interface{}) (Meta, bool) {
	switch m := v.(type) {
	case Meta:
		return m, true
	case map[string]interface{}:
		return Meta(m), true
	}
	return nil, false
}

// deepMerge writes src over dst, descending into values that are maps on
// both sides. Map values coming from src are cloned, never aliased.
func deepMerge(dst, src Meta) {
	for k, v := range src {
		sm, sok := asMeta(v)
		if sok {
			if dm, dok := asMeta(dst[k]); dok {
				merged := dm.Clone()
				deepMerge(merged, sm)
				dst[k] = merged
				continue
			}
			dst[k] = sm.Clone()
			continue
		}
		dst[k] = v
	}
}

// mergeAndValidate produces the record handed to the sink: call-site fields
// deep-merged over a clone of the instance identity, filtered to the
// allow-list, then global fields applied last. The returned record never
// carries a key outside the allow-list plus hostname, whatever the caller
// passed in.
func mergeAndValidate(call, identity, global Meta) Meta {
	merged := identity.Clone()
	deepMerge(merged, call)

	// A literal "n-app" call-site source survives the merge no matter what
	// the identity carries. Exactly this one case, nothing more general.
	if src, ok := call["source"].(string); ok && src == "n-app" {
		merged["source"] = "n-app"
	}

	out := make(Meta, len(allowedKeys)+1)
	for k := range allowedKeys {
		if v, ok := merged[k]; ok {
			out[k] = v
		}
	}

	// hostname always wins; the global codeRepository only fills a gap.
	if h, ok := global["hostname"]; ok {
		out["hostname"] = h
	}
	if _, ok := out["codeRepository"]; !ok {
		if repo, ok := global["codeRepository"]; ok {
			out["codeRepository"] = repo
		}
	}
	return out
}

// isMalformed reports a record whose source is missing, empty, or still the
// unknown_callee sentinel. Such records are rerouted to the warning path.
func isMalformed(m Meta) bool {
	v, ok := m["source"]
	if !ok || v == nil {
		return true
	}
	if s, ok := v.(string); ok && (s == "" || s == unknownCallee) {
		return true
	}
	return false
}
