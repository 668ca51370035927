package paint

import (
	"fmt"

	"github.com/quillui/quill/geom"
)

// Order is a layer category: the coarse position of a layer in the
// painter's order. Within a frame, everything in an earlier Order is
// painted before (behind) everything in a later one.
type Order uint8

// The layer categories, back to front.
const (
	// OrderBackground is painted behind all floating windows.
	OrderBackground Order = iota

	// OrderMiddle holds normal movable windows that are reordered by the
	// area manager.
	OrderMiddle

	// OrderForeground holds popups and menus, painted on top of windows.
	OrderForeground

	// OrderTooltip holds things floating on top of everything else.
	OrderTooltip

	// OrderDebug is the debug overlay, always painted last.
	OrderDebug
)

// OrderCount is the number of layer categories. Order values are used as
// dense array indices, so the enumeration is closed.
const OrderCount = 5

// AllOrders lists every Order in paint order, back to front. This array,
// not the numeric constant values, defines the paint sequence; the
// ordering contract is pinned by tests.
var AllOrders = [OrderCount]Order{
	OrderBackground,
	OrderMiddle,
	OrderForeground,
	OrderTooltip,
	OrderDebug,
}

// TopOrder is the category painted on top of everything else.
const TopOrder = OrderDebug

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderBackground:
		return "Background"
	case OrderMiddle:
		return "Middle"
	case OrderForeground:
		return "Foreground"
	case OrderTooltip:
		return "Tooltip"
	case OrderDebug:
		return "Debug"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ShortDebugFormat returns a fixed-width summary for log messages.
func (o Order) ShortDebugFormat() string {
	switch o {
	case OrderBackground:
		return "backg"
	case OrderMiddle:
		return "middl"
	case OrderForeground:
		return "foreg"
	case OrderTooltip:
		return "toolt"
	case OrderDebug:
		return "debug"
	default:
		return "?????"
	}
}

// AllowInteraction reports whether widgets on this layer may be
// interacted with.
func (o Order) AllowInteraction() bool {
	return true
}

// LayerID identifies a paint layer: an Order category plus a user id.
// Two layers are the same iff both fields match.
type LayerID struct {
	Order Order
	ID    ID
}

// NewLayerID returns the layer id for the given order and id.
func NewLayerID(order Order, id ID) LayerID {
	return LayerID{Order: order, ID: id}
}

// BackgroundLayer is the implicit full-window backdrop layer.
func BackgroundLayer() LayerID {
	return LayerID{Order: OrderBackground, ID: NewID("background")}
}

// DebugLayer is the always-on-top debug overlay layer.
func DebugLayer() LayerID {
	return LayerID{Order: OrderDebug, ID: NewID("debug")}
}

// ShortDebugFormat returns a short summary for log messages.
func (l LayerID) ShortDebugFormat() string {
	return l.Order.ShortDebugFormat() + " " + l.ID.ShortDebugFormat()
}

// layerMap is an insertion-ordered mapping from layer id to PaintList.
//
// Iteration follows first-touch order, which makes the paint order of
// layers not named in an area order deterministic (see GraphicLayers.Drain).
type layerMap struct {
	lists map[ID]*PaintList
	ids   []ID // first-touch order
}

// entry returns the list for id, creating an empty one on first access.
func (m *layerMap) entry(id ID) *PaintList {
	if list, ok := m.lists[id]; ok {
		return list
	}
	if m.lists == nil {
		m.lists = make(map[ID]*PaintList)
	}
	list := &PaintList{}
	m.lists[id] = list
	m.ids = append(m.ids, id)
	return list
}

// get returns the list for id without creating one.
func (m *layerMap) get(id ID) (*PaintList, bool) {
	list, ok := m.lists[id]
	return list, ok
}

// retainNonEmpty removes every empty list, preserving the first-touch
// order of the survivors.
func (m *layerMap) retainNonEmpty() {
	kept := m.ids[:0]
	for _, id := range m.ids {
		if m.lists[id].IsEmpty() {
			delete(m.lists, id)
		} else {
			kept = append(kept, id)
		}
	}
	m.ids = kept
}

// GraphicLayers is where painted shapes end up during a frame: one
// PaintList per (Order, id) pair that has been touched and not yet
// pruned. The instance persists between frames solely to retain the
// per-layer buffers; it is exclusively owned by the frame pipeline and
// not safe for concurrent use.
//
// The zero value is ready for use.
type GraphicLayers struct {
	byOrder [OrderCount]layerMap
}

// NewGraphicLayers returns an empty GraphicLayers.
func NewGraphicLayers() *GraphicLayers {
	return &GraphicLayers{}
}

// Entry returns the PaintList for the given layer, creating an empty one
// on first access. This is the write entry point used by widgets while
// building a frame.
func (g *GraphicLayers) Entry(layerID LayerID) *PaintList {
	return g.byOrder[layerID.Order].entry(layerID.ID)
}

// Get returns the PaintList for the given layer, or false if the layer
// has never been touched (or has been pruned).
func (g *GraphicLayers) Get(layerID LayerID) (*PaintList, bool) {
	return g.byOrder[layerID.Order].get(layerID.ID)
}

// Drain flattens all layers into a single sequence of clipped shapes in
// final paint order and empties the per-layer buffers. It is called
// exactly once per frame, after all widgets have finished drawing.
//
// areaOrder is the desired paint order for known floating areas; layers
// it names are painted first within their Order category, in the sequence
// given. Layers it does not name (typically created this frame, before
// the area manager has learned about them) follow in first-touch order.
//
// toGlobal maps a layer to the transform converting its local coordinate
// space into the shared global space. Absent entries mean the layer is
// already in global space. The transform is applied consistently to each
// entry's clip rectangle and shape.
//
// A layer whose list is empty when Drain starts received nothing since
// the previous drain; its slot is removed to reclaim memory. Surviving
// layers end up empty but keep their slots (and buffer capacity) for the
// next frame.
func (g *GraphicLayers) Drain(
	areaOrder []LayerID,
	toGlobal map[LayerID]geom.TSTransform,
) []ClippedShape {
	return g.DrainInto(nil, areaOrder, toGlobal)
}

// DrainInto is Drain appending into dst, typically a buffer obtained
// from a ShapeBufferPool, so a steady-state frame loop can drain
// without allocating.
func (g *GraphicLayers) DrainInto(
	dst []ClippedShape,
	areaOrder []LayerID,
	toGlobal map[LayerID]geom.TSTransform,
) []ClippedShape {
	all := dst

	for _, order := range AllOrders {
		m := &g.byOrder[order]

		// A layer that is empty at this point is old and defunct:
		// nobody has added to it since the last drain. Free it.
		m.retainNonEmpty()

		// First the layers the area manager knows about, in its order.
		for _, layerID := range areaOrder {
			if layerID.Order != order {
				continue
			}
			list, ok := m.get(layerID.ID)
			if !ok {
				continue
			}
			if t, ok := toGlobal[layerID]; ok {
				list.Transform(t)
			}
			all = list.takeAll(all)
		}

		// Then the layers missing from areaOrder, in first-touch order.
		for _, id := range m.ids {
			list := m.lists[id]
			if list.IsEmpty() {
				// Already emitted via areaOrder above.
				continue
			}
			layerID := LayerID{Order: order, ID: id}
			if t, ok := toGlobal[layerID]; ok {
				list.Transform(t)
			}
			all = list.takeAll(all)
		}
	}

	return all
}
