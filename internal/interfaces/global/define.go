// Package global
package global

import "context"

type Callable interface {
	Invoke(ctx context.Context) error
}

// CallableFunc adapts a plain function to Callable
type CallableFunc func(ctx context.Context) error

func (f CallableFunc) Invoke(ctx context.Context) error { return f(ctx) }
