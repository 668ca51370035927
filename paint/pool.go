package paint

import "sync"

// ShapeBufferPool manages reusable drained-shape buffers. Draining
// allocates a fresh buffer every frame; feeding drains from a pool and
// returning the buffer once the backend is done keeps a steady-state
// frame loop allocation-free.
//
// Usage:
//
//	buf := pool.Get()
//	buf = layers.DrainInto(buf, areaOrder, toGlobal)
//	// hand buf to the rendering backend...
//	pool.Put(buf)
type ShapeBufferPool struct {
	pool sync.Pool
}

// NewShapeBufferPool creates a new shape buffer pool.
func NewShapeBufferPool() *ShapeBufferPool {
	return &ShapeBufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]ClippedShape, 0, 256)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool.
func (p *ShapeBufferPool) Get() []ClippedShape {
	buf := p.pool.Get().(*[]ClippedShape)
	return (*buf)[:0]
}

// Put returns a buffer to the pool for reuse. The buffer must not be
// used afterwards.
func (p *ShapeBufferPool) Put(buf []ClippedShape) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:0]
	p.pool.Put(&buf)
}

// Warmup pre-allocates buffers so the first frames do not allocate.
func (p *ShapeBufferPool) Warmup(count int) {
	bufs := make([][]ClippedShape, count)
	for i := 0; i < count; i++ {
		bufs[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(bufs[i])
	}
}

// DefaultShapePool is a global shape buffer pool for convenience.
var DefaultShapePool = NewShapeBufferPool()

// GetShapeBuffer retrieves a buffer from the default pool.
func GetShapeBuffer() []ClippedShape {
	return DefaultShapePool.Get()
}

// PutShapeBuffer returns a buffer to the default pool.
func PutShapeBuffer(buf []ClippedShape) {
	DefaultShapePool.Put(buf)
}
