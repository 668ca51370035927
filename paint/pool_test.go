package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillui/quill/geom"
)

func TestShapeBufferPoolGetReturnsEmpty(t *testing.T) {
	pool := NewShapeBufferPool()

	buf := pool.Get()
	assert.Empty(t, buf)

	buf = append(buf, ClippedShape{Shape: Noop})
	pool.Put(buf)

	again := pool.Get()
	assert.Empty(t, again, "Get after Put returns a reset buffer")
}

func TestShapeBufferPoolKeepsCapacity(t *testing.T) {
	pool := NewShapeBufferPool()
	pool.Warmup(1)

	buf := pool.Get()
	for i := 0; i < 512; i++ {
		buf = append(buf, ClippedShape{Shape: Noop})
	}
	grown := cap(buf)
	pool.Put(buf)

	// Single-goroutine Get right after Put sees the same buffer back.
	again := pool.Get()
	assert.GreaterOrEqual(t, cap(again), grown)
}

func TestShapeBufferPoolZeroCapPut(t *testing.T) {
	pool := NewShapeBufferPool()
	pool.Put(nil) // must not panic or poison the pool
	assert.Empty(t, pool.Get())
}

func TestDrainIntoAppendsToBuffer(t *testing.T) {
	g := NewGraphicLayers()
	cr := geom.RectFromMinMax(geom.P(0, 0), geom.P(10, 10))
	g.Entry(BackgroundLayer()).Add(cr, FilledRect(cr, 0, Red))

	buf := make([]ClippedShape, 0, 8)
	out := g.DrainInto(buf, nil, nil)
	assert.Len(t, out, 1)

	// With enough capacity, no reallocation happens.
	assert.Equal(t, 8, cap(out))
}
