package dynproxy

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Call invokes the delegate method named method with the given arguments and
// returns its results. The method is resolved by exported-method name on
// every call; nothing about the resolution is cached. Arguments are handed to
// the delegate exactly as given, with no coercion, so a shape mismatch
// surfaces as an *InvocationError from the reflective call site rather than
// as a resolution failure.
func (p *Proxy) Call(method string, args ...any) ([]any, error) {
	m := p.value.MethodByName(method)
	if !m.IsValid() {
		p.logger.Debug("dispatch failed, no such method",
			zap.String("method", method),
			zap.String("delegate", p.value.Type().String()))
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
	out, err := invoke(method, m, inputValues(m.Type(), args), false)
	if err != nil {
		p.logger.Debug("dispatch failed", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// Func returns a function of type F that dispatches to the delegate method
// named method. F must be a function type; anything else panics immediately.
//
// The delegate method is re-resolved on every call of the returned function.
// A failed dispatch panics with an *InvocationError whose chain carries the
// cause, so trampoline methods with plain result signatures can still
// surface it; callers recover and inspect it with errors.Is / errors.As.
func Func[F any](p *Proxy, method string) F {
	ft := reflect.TypeOf((*F)(nil)).Elem()
	if ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("dynproxy: Func requires a function type, got %s", ft))
	}
	stub := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		m := p.value.MethodByName(method)
		if !m.IsValid() {
			p.logger.Debug("dispatch failed, no such method",
				zap.String("method", method),
				zap.String("delegate", p.value.Type().String()))
			panic(&InvocationError{Method: method, Err: fmt.Errorf("%w: %s", ErrMethodNotFound, method)})
		}
		out, err := invoke(method, m, in, ft.IsVariadic())
		if err != nil {
			p.logger.Debug("dispatch failed", zap.String("method", method), zap.Error(err))
			panic(err)
		}
		return conform(method, out, ft)
	})
	return stub.Interface().(F)
}

// invoke calls m and converts any reflective-call panic, including a panic
// raised by the delegate method itself, into an *InvocationError.
func invoke(method string, m reflect.Value, in []reflect.Value, variadicSlice bool) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InvocationError{Method: method, Err: fmt.Errorf("%v", r)}
		}
	}()
	if variadicSlice && m.Type().IsVariadic() {
		return m.CallSlice(in), nil
	}
	return m.Call(in), nil
}

// inputValues converts Call arguments to reflect values. A nil argument
// becomes the zero value of the corresponding parameter so that the
// reflective call site, not the conversion, decides whether the shape fits.
func inputValues(mt reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(paramType(mt, i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	return in
}

func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	if i < mt.NumIn() {
		return mt.In(i)
	}
	// Arity is wrong either way; let the reflective call report it.
	return reflect.TypeOf((*any)(nil)).Elem()
}

// conform reshapes the delegate's results into the trampoline's result
// types. Assignability is required as-is; nothing is coerced.
func conform(method string, out []reflect.Value, ft reflect.Type) []reflect.Value {
	if len(out) != ft.NumOut() {
		panic(&InvocationError{
			Method: method,
			Err:    fmt.Errorf("delegate returned %d values, trampoline expects %d", len(out), ft.NumOut()),
		})
	}
	results := make([]reflect.Value, len(out))
	for i, v := range out {
		rt := ft.Out(i)
		if !v.Type().AssignableTo(rt) {
			panic(&InvocationError{
				Method: method,
				Err:    fmt.Errorf("result %d: %s is not assignable to %s", i, v.Type(), rt),
			})
		}
		r := reflect.New(rt).Elem()
		r.Set(v)
		results[i] = r
	}
	return results
}
