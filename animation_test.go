package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimateSnapsOnFirstSight(t *testing.T) {
	m := newAnimationManager()
	id := NewID("fade")

	// No animating into place: the first query jumps to the target.
	assert.EqualValues(t, 1, m.animate(id, 1, 0.2))

	// Same target again: stays put with no tween running.
	m.update(0.1)
	assert.EqualValues(t, 1, m.animate(id, 1, 0.2))
}

func TestAnimateMovesTowardsNewTarget(t *testing.T) {
	m := newAnimationManager()
	id := NewID("fade")

	m.animate(id, 1, 0.2)
	m.animate(id, 0, 0.2)

	// The retarget does not take effect until the next update.
	assert.EqualValues(t, 1, m.animate(id, 0, 0.2))

	m.update(0.1)
	mid := m.animate(id, 0, 0.2)
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	// Enough time passes for the tween to finish.
	m.update(1)
	assert.EqualValues(t, 0, m.animate(id, 0, 0.2))
}

func TestAnimateRetargetMidFlight(t *testing.T) {
	m := newAnimationManager()
	id := NewID("fade")

	m.animate(id, 0, 0.2)
	m.animate(id, 1, 0.2)
	m.update(0.1)
	mid := m.animate(id, 1, 0.2)

	// Reverse direction halfway: the new tween starts from the current
	// value, not from the old target.
	m.animate(id, 0, 0.2)
	m.update(0.001)
	after := m.animate(id, 0, 0.2)
	assert.InDelta(t, mid, after, 0.1)
}

func TestAnimateIdsAreIndependent(t *testing.T) {
	m := newAnimationManager()

	a := NewID("a")
	b := NewID("b")
	m.animate(a, 1, 0.2)
	m.animate(b, 0, 0.2)

	assert.EqualValues(t, 1, m.animate(a, 1, 0.2))
	assert.EqualValues(t, 0, m.animate(b, 0, 0.2))
}

func TestContextAnimateBool(t *testing.T) {
	ctx := NewContext()
	id := NewID("hover")

	assert.EqualValues(t, 1, ctx.AnimateBool(id, true))

	ctx.AnimateBool(id, false)
	ctx.BeginFrame(ctx.Style().AnimationTime / 2)
	mid := ctx.AnimateBool(id, false)
	assert.Less(t, mid, float32(1))

	ctx.BeginFrame(ctx.Style().AnimationTime * 2)
	assert.EqualValues(t, 0, ctx.AnimateBool(id, false))
}
