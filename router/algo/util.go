package algo

import (
	"math"
	"sync/atomic"
)

// atomicCost stores a float64 edge cost so that a single read never observes
// a partially written value.
type atomicCost struct {
	bits atomic.Uint64
}

func (c *atomicCost) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

func (c *atomicCost) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

func validCost(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
