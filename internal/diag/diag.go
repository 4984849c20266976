// Package diag provides an optional panic hook for exported entry points.
//
// Without an installed reporter panics propagate unchanged. With one, Guard
// recovers the panic, hands a description to the reporter and returns the
// zero value of the call's result.
package diag

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// Reporter receives a description of a recovered panic.
type Reporter func(msg string)

var installed atomic.Pointer[Reporter]

// Install sets the process-wide reporter. A nil reporter removes the hook.
func Install(r Reporter) {
	if r == nil {
		installed.Store(nil)
		return
	}
	installed.Store(&r)
}

// Installed reports whether a reporter is active.
func Installed() bool {
	return installed.Load() != nil
}

// Guard runs fn. If fn panics while a reporter is installed, the panic is
// reported and Guard returns the zero value of T.
func Guard[T any](name string, fn func() T) (result T) {
	r := installed.Load()
	if r == nil {
		return fn()
	}

	defer func() {
		if v := recover(); v != nil {
			(*r)(Describe(name, v, debug.Stack()))
			var zero T
			result = zero
		}
	}()
	return fn()
}

// Describe formats a recovered panic value with its call site and stack.
func Describe(name string, v any, stack []byte) string {
	msg := fmt.Sprintf("panic in %s: %v", name, v)
	if len(stack) > 0 {
		msg += "\n" + string(stack)
	}
	return msg
}
