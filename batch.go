package goose

import (
	"errors"
	"sync"

	"github.com/jeff-pow/silly-goose/internal/parallel"
)

// ErrLengthMismatch is returned by the batch shading functions when the
// destination and source slices differ in length.
var ErrLengthMismatch = errors.New("goose: dst and src lengths differ")

// parallelThreshold is the batch size below which fanning out to the
// worker pool costs more than shading sequentially.
const parallelThreshold = 1024

var (
	poolOnce sync.Once
	pool     *parallel.WorkerPool
)

// sharedPool lazily starts the package-wide worker pool. Stage
// invocations are independent, so one pool serves all batches.
func sharedPool() *parallel.WorkerPool {
	poolOnce.Do(func() {
		pool = parallel.NewWorkerPool(0)
		Logger().Debug("shading pool started", "workers", pool.Workers())
	})
	return pool
}

// ShadeVertices runs the vertex stage over src, writing the output for
// src[i] to dst[i]. The slices must be the same length. Large batches
// are split across a worker pool; invocations are independent so the
// split is unobservable in the results.
func ShadeVertices(dst []VertexOutput, src []VertexInput) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	if len(src) < parallelThreshold {
		for i, in := range src {
			dst[i] = ShadeVertex(in)
		}
		return nil
	}

	sharedPool().ForEachRange(len(src), func(r parallel.Range) {
		for i := r.Start; i < r.End; i++ {
			dst[i] = ShadeVertex(src[i])
		}
	})
	return nil
}

// ShadeFragments runs the fragment stage over src, writing the color
// for src[i] to dst[i]. The slices must be the same length. src holds
// already-interpolated vertex records, exactly what the rasterizer
// would hand each fragment invocation.
func ShadeFragments(dst []Vec4, src []VertexOutput) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	if len(src) < parallelThreshold {
		for i, in := range src {
			dst[i] = ShadeFragment(in)
		}
		return nil
	}

	sharedPool().ForEachRange(len(src), func(r parallel.Range) {
		for i := r.Start; i < r.End; i++ {
			dst[i] = ShadeFragment(src[i])
		}
	})
	return nil
}
