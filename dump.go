package ulog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Non-primitive message fragments are dumped at most this deep.
const dumpDepth = 4

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                dumpDepth,
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// formatFragment coerces one message fragment to its display string.
// Strings, errors and primitives print plainly; anything structured gets a
// depth-limited dump.
func formatFragment(arg interface{}) string {
	switch v := arg.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return stringify(v.Error)
	case fmt.Stringer:
		return stringify(v.String)
	}

	switch reflect.ValueOf(arg).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(arg)
	}

	return strings.TrimRight(dumpConfig.Sdump(arg), "\n")
}

// stringify calls a String or Error method, recovering when the fragment is
// a typed nil whose method dereferences its receiver. Coercion must never
// fail back into the dispatch path.
func stringify(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = "<nil>"
		}
	}()
	return fn()
}

// assembleMessage joins the coerced fragments with single spaces.
func assembleMessage(frags []interface{}) string {
	if len(frags) == 0 {
		return ""
	}
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = formatFragment(f)
	}
	return strings.Join(parts, " ")
}
