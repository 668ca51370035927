package paint

import (
	"fmt"
	"testing"

	"github.com/quillui/quill/geom"
)

// BenchmarkDrain measures the per-frame flatten across a realistic layer
// population: one backdrop, a handful of windows, a tooltip.
func BenchmarkDrain(b *testing.B) {
	for _, shapesPerLayer := range []int{16, 256} {
		b.Run(fmt.Sprintf("shapes=%d", shapesPerLayer), func(b *testing.B) {
			g := NewGraphicLayers()
			cr := geom.RectFromMinMax(geom.P(0, 0), geom.P(1920, 1080))

			background := BackgroundLayer()
			windows := make([]LayerID, 6)
			for i := range windows {
				windows[i] = NewLayerID(OrderMiddle, NewID("window").WithIndex(i))
			}
			tooltip := NewLayerID(OrderTooltip, NewID("tooltip"))
			areaOrder := append([]LayerID(nil), windows...)

			toGlobal := map[LayerID]geom.TSTransform{
				windows[0]: geom.TransformFromTranslation(geom.V(40, 40)),
				windows[1]: {Scaling: 1.5, Translation: geom.V(200, 100)},
			}

			fill := func() {
				for i := 0; i < shapesPerLayer; i++ {
					g.Entry(background).Add(cr, FilledRect(cr, 0, DarkGray))
					for _, w := range windows {
						g.Entry(w).Add(cr, FilledCircle(geom.P(float32(i), 0), 4, Red))
					}
					g.Entry(tooltip).Add(cr, TextLine(geom.P(0, 0), "tip", 12, Black))
				}
			}

			pool := NewShapeBufferPool()
			pool.Warmup(1)

			fill()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out := g.DrainInto(pool.Get(), areaOrder, toGlobal)
				b.StopTimer()
				pool.Put(out)
				fill()
				b.StartTimer()
			}
		})
	}
}

func BenchmarkPaintListAdd(b *testing.B) {
	var list PaintList
	cr := geom.RectFromMinMax(geom.P(0, 0), geom.P(100, 100))
	shape := FilledCircle(geom.P(50, 50), 10, Red)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Add(cr, shape)
		if list.Len() >= 4096 {
			b.StopTimer()
			list.takeAll(nil)
			b.StartTimer()
		}
	}
}
