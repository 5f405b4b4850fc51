package dynproxy

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Proxy wraps a delegate object so it can be adapted to interfaces the
// delegate's declared type does not implement. It holds the delegate by
// reference and is immutable after construction, so it is safe for
// concurrent use from multiple goroutines; thread-safety of the delegate's
// own methods remains the delegate's responsibility.
type Proxy struct {
	delegate any
	value    reflect.Value
	logger   *zap.Logger
}

// Option configures a Proxy at construction time.
type Option func(*Proxy)

// WithLogger sets the logger used for binding and dispatch diagnostics.
// The default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Proxy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// From wraps delegate in a new Proxy. The delegate's type is not inspected
// here; conformance and method resolution happen at bind and call time.
func From(delegate any, opts ...Option) (*Proxy, error) {
	if delegate == nil {
		return nil, ErrNilDelegate
	}
	p := &Proxy{
		delegate: delegate,
		value:    reflect.ValueOf(delegate),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustFrom is like From but panics on error.
// Use this for static wiring at init time.
func MustFrom(delegate any, opts ...Option) *Proxy {
	p, err := From(delegate, opts...)
	if err != nil {
		panic(fmt.Sprintf("dynproxy: %v", err))
	}
	return p
}

// Delegate returns the wrapped delegate.
func (p *Proxy) Delegate() any { return p.delegate }
