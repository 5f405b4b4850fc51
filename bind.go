package dynproxy

import (
	"reflect"

	"go.uber.org/zap"
)

// Bind adapts p's delegate to the target interface T.
//
// If the delegate already satisfies T, the delegate itself is returned
// unwrapped; repeated calls keep returning that identical reference.
// Otherwise forward is called once to construct a forwarding view over p.
// Each of the view's methods should dispatch through Func or Call, which
// resolve the delegate method by name on every invocation.
//
// The direct-or-forwarded decision is made here, once per Bind call, and is
// fixed for the lifetime of the returned value.
func Bind[T any](p *Proxy, forward func(*Proxy) T) T {
	if direct, ok := p.delegate.(T); ok {
		p.logger.Debug("delegate satisfies target, returning it directly",
			zap.String("target", reflect.TypeOf((*T)(nil)).Elem().String()),
			zap.String("delegate", p.value.Type().String()))
		return direct
	}
	p.logger.Debug("constructing forwarding view",
		zap.String("target", reflect.TypeOf((*T)(nil)).Elem().String()),
		zap.String("delegate", p.value.Type().String()))
	return forward(p)
}

// Satisfies reports whether the delegate already satisfies T, i.e. whether
// Bind would return it without wrapping.
func Satisfies[T any](p *Proxy) bool {
	_, ok := p.delegate.(T)
	return ok
}
