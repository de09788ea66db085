package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/layout"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

func TestLayoutStopLines(t *testing.T) {
	c := config.Default() // 800x800, road 120, stop offset 12
	l := layout.New(c)

	// north approach: rightmost lane of the southbound half, stop line
	// above the road band
	a := l.Approach(entity.DirectionNorth)
	pos := a.GetPositionByS(a.StopLineS())
	assert.InDelta(t, 370, pos.X, 1e-9) // cx - roadWidth/4
	assert.InDelta(t, 328, pos.Y, 1e-9) // cy - roadWidth/2 - stopOffset

	a = l.Approach(entity.DirectionEast)
	pos = a.GetPositionByS(a.StopLineS())
	assert.InDelta(t, 472, pos.X, 1e-9)
	assert.InDelta(t, 370, pos.Y, 1e-9)

	a = l.Approach(entity.DirectionSouth)
	pos = a.GetPositionByS(a.StopLineS())
	assert.InDelta(t, 430, pos.X, 1e-9)
	assert.InDelta(t, 472, pos.Y, 1e-9)

	a = l.Approach(entity.DirectionWest)
	pos = a.GetPositionByS(a.StopLineS())
	assert.InDelta(t, 328, pos.X, 1e-9)
	assert.InDelta(t, 430, pos.Y, 1e-9)
}

func TestLayoutSlotSpacing(t *testing.T) {
	c := config.Default()
	l := layout.New(c)
	gap := c.Geometry.SlotGap

	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		a := l.Approach(dir)
		require.Equal(t, c.Geometry.SlotCount, a.SlotCount())

		// slot 0 sits one gap behind the stop line, farther slots outward
		assert.InDelta(t, a.StopLineS()-gap, a.SlotS(0), 1e-9)
		for i := 1; i < a.SlotCount(); i++ {
			assert.InDelta(t, gap, a.SlotS(i-1)-a.SlotS(i), 1e-9)

			// canvas-space round trip: adjacent centers are exactly one gap apart
			p0 := a.GetPositionByS(a.SlotS(i - 1))
			p1 := a.GetPositionByS(a.SlotS(i))
			assert.InDelta(t, gap, math.Hypot(p0.X-p1.X, p0.Y-p1.Y), 1e-9)
		}

		// farthest slot center leaves room for the longest vehicle body
		assert.Greater(t, a.SlotS(a.SlotCount()-1), c.Vehicle.Car.Length/2)
	}
}

func TestLayoutPositionByS(t *testing.T) {
	c := config.Default()
	l := layout.New(c)

	// entry at the canvas edge, exit on the opposite edge
	a := l.Approach(entity.DirectionNorth)
	assert.InDelta(t, c.Geometry.CanvasHeight, a.Length(), 1e-9)
	entry := a.GetPositionByS(0)
	assert.InDelta(t, 0, entry.Y, 1e-9)
	exit := a.GetPositionByS(a.Length())
	assert.InDelta(t, c.Geometry.CanvasHeight, exit.Y, 1e-9)
	assert.Equal(t, entry.X, exit.X) // straight through, no turns

	// interpolation is linear along the travel axis
	mid := a.GetPositionByS(a.Length() / 2)
	assert.InDelta(t, c.Geometry.CanvasHeight/2, mid.Y, 1e-9)

	// out-of-range s clamps to the line
	beyond := a.GetPositionByS(a.Length() + 100)
	assert.Equal(t, exit, beyond)
}
