package main

import (
	"context"
	"fmt"

	lessonmark "github.com/alnah/go-lessonmark"
)

// poolAdapter exposes a *lessonmark.RendererPool through the Pool interface.
type poolAdapter struct {
	pool *lessonmark.RendererPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (Renderer, error) {
	r, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Release returns a renderer obtained from Acquire.
// Panics on any other type: that is a programmer error.
func (a *poolAdapter) Release(r Renderer) {
	renderer, ok := r.(*lessonmark.Renderer)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", r))
	}
	a.pool.Release(renderer)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
