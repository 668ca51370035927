package layout_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillui/quill"
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/layout"
	"github.com/quillui/quill/paint"
)

func testUi(spacing geom.Vec2) *quill.Ui {
	ctx := quill.NewContext()
	ctx.Style().ItemSpacing = spacing
	return quill.NewUi(ctx, paint.BackgroundLayer(),
		geom.RectFromMinMax(geom.P(0, 0), geom.P(200, 100)))
}

func TestStripHorizontalExact(t *testing.T) {
	ui := testUi(geom.V(10, 10))

	var rects []geom.Rect
	layout.NewStripBuilder(ui).
		Size(layout.Exact(30)).
		Size(layout.Exact(50)).
		Horizontal(func(strip *layout.Strip) {
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
		})

	require.Len(t, rects, 2)
	assert.Equal(t, geom.RectFromMinMax(geom.P(0, 0), geom.P(30, 100)), rects[0])
	// Second cell starts after the first plus the horizontal gap.
	assert.Equal(t, geom.RectFromMinMax(geom.P(40, 0), geom.P(90, 100)), rects[1])
}

func TestStripVerticalRemainder(t *testing.T) {
	ui := testUi(geom.V(0, 0))

	var rects []geom.Rect
	layout.NewStripBuilder(ui).
		Size(layout.Exact(20)).
		Size(layout.Remainder()).
		Vertical(func(strip *layout.Strip) {
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
		})

	require.Len(t, rects, 2)
	assert.InDelta(t, 20, rects[0].Height(), 1e-4)
	// The remainder cell takes everything below the exact one.
	assert.InDelta(t, 80, rects[1].Height(), 1e-4)
	assert.InDelta(t, 200, rects[1].Width(), 1e-4)
}

func TestStripUnusedCellsEmittedEmpty(t *testing.T) {
	ui := testUi(geom.V(0, 0))

	cells := 0
	resp := layout.NewStripBuilder(ui).
		Sizes(layout.Exact(25), 4).
		Vertical(func(strip *layout.Strip) {
			strip.Cell(func(ui *quill.Ui) { cells++ })
		})

	assert.Equal(t, 1, cells)
	// All four allocated cells count toward the strip's footprint.
	assert.InDelta(t, 100, resp.Rect.Height(), 1e-4)
}

func TestStripOverflowWarnsAndUsesFallbackLength(t *testing.T) {
	var buf bytes.Buffer
	quill.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer quill.SetLogger(nil)

	ui := testUi(geom.V(0, 0))

	var rects []geom.Rect
	layout.NewStripBuilder(ui).
		Size(layout.Exact(30)).
		Horizontal(func(strip *layout.Strip) {
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
			strip.Cell(func(ui *quill.Ui) { rects = append(rects, ui.MaxRect()) })
		})

	require.Len(t, rects, 2)
	assert.InDelta(t, 8, rects[1].Width(), 1e-4)
	assert.Contains(t, buf.String(), "more strip cells added than were pre-allocated")
}

func TestStripNested(t *testing.T) {
	ui := testUi(geom.V(0, 0))

	var inner []geom.Rect
	layout.NewStripBuilder(ui).
		Size(layout.Exact(40)).
		Vertical(func(strip *layout.Strip) {
			strip.Strip(func(b *layout.StripBuilder) {
				b.Sizes(layout.Relative(0.5), 2).
					Horizontal(func(strip *layout.Strip) {
						strip.Cell(func(ui *quill.Ui) { inner = append(inner, ui.MaxRect()) })
						strip.Cell(func(ui *quill.Ui) { inner = append(inner, ui.MaxRect()) })
					})
			})
		})

	require.Len(t, inner, 2)
	assert.InDelta(t, 100, inner[0].Width(), 1e-4)
	assert.InDelta(t, 40, inner[0].Height(), 1e-4)
	assert.InDelta(t, 100, inner[1].Width(), 1e-4)
}

func TestStripAllocatesUsedRectInParent(t *testing.T) {
	ui := testUi(geom.V(0, 0))

	layout.NewStripBuilder(ui).
		Size(layout.Exact(30)).
		Vertical(func(strip *layout.Strip) {
			strip.Empty()
		})

	min := ui.MinRect()
	assert.False(t, min.IsNegative())
	assert.InDelta(t, 30, min.Height(), 1e-4)
	assert.InDelta(t, 200, min.Width(), 1e-4)
}

func TestStripClippedCells(t *testing.T) {
	ui := testUi(geom.V(0, 0))

	layout.NewStripBuilder(ui).
		Clip(true).
		Size(layout.Exact(10)).
		Vertical(func(strip *layout.Strip) {
			strip.Cell(func(cell *quill.Ui) {
				// Painting escapes the cell in layout space but must be
				// clipped to it.
				assert.Equal(t, cell.MaxRect(), cell.Painter().ClipRect())
			})
		})
}
