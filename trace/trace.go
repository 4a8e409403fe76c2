package trace

import (
	"github.com/go-stack/stack"
)

type CallStack = stack.CallStack

// Trace returns the caller's stack, starting at the function that called
// Trace and excluding runtime frames.
func Trace() CallStack {
	return stack.Trace().TrimBelow(stack.Caller(1)).TrimRuntime()
}
