// Package dynproxy adapts an arbitrary object (the delegate) to a target
// interface, even when the delegate's declared type does not implement it,
// as long as the delegate exposes exported methods with matching names.
//
// A Proxy wraps the delegate once. Bind either returns the delegate itself,
// when it already satisfies the target interface, or builds a forwarding
// view whose methods resolve a same-named delegate method on every call and
// invoke it reflectively. Resolution is by name only, ignores parameter and
// result shapes, and is intentionally never cached across calls.
//
// Go has no runtime facility for synthesizing an implementation of an
// arbitrary interface, so the forwarding view is a small hand-written
// trampoline type per target interface; Func and Call keep each trampoline
// method a one-liner while all dispatch semantics stay in this package.
package dynproxy
