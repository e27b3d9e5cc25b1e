package pool

import (
	"strings"
	"sync"
)

// IntRowPool implements a pool of int slices used as dynamic-programming
// rows by the edit distance engine.
type IntRowPool struct {
	pool sync.Pool
	size int
}

// NewIntRowPool creates a new row pool with rows of the specified initial capacity.
func NewIntRowPool(size int) *IntRowPool {
	return &IntRowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row from the pool or creates a new one if none are available.
func (rp *IntRowPool) Get(n int) *[]int {
	row := rp.pool.Get().(*[]int)
	if cap(*row) < n {
		*row = make([]int, n)
	} else {
		*row = (*row)[:n]
	}
	return row
}

// Put returns a row to the pool for reuse.
func (rp *IntRowPool) Put(row *[]int) {
	*row = (*row)[:0]
	rp.pool.Put(row)
}

// StringBuilderPool implements a pool of strings.Builder for efficient string building.
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new strings.Builder pool.
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// Get retrieves a builder from the pool or creates a new one if none are available.
func (sbp *StringBuilderPool) Get() *strings.Builder {
	return sbp.pool.Get().(*strings.Builder)
}

// Put returns a builder to the pool for reuse.
func (sbp *StringBuilderPool) Put(sb *strings.Builder) {
	sb.Reset()
	sbp.pool.Put(sb)
}
