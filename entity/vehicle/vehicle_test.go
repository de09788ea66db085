package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/junction-sim-oss/task"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

func newContext(t *testing.T) *task.Context {
	t.Helper()
	c := config.Default()
	c.Spawn.Interval = 0
	return task.NewContext(c)
}

func TestActionMinMerge(t *testing.T) {
	ac := vehicle.Action{A: 1, TargetS: 100}
	ac.Update(vehicle.Action{A: -0.5, TargetS: 200})
	assert.Equal(t, -0.5, ac.A)
	assert.Equal(t, 100.0, ac.TargetS)

	ac.Update(vehicle.Action{A: 0.05, TargetS: 50}, vehicle.Action{A: -0.5, TargetS: 80})
	assert.Equal(t, -0.5, ac.A)
	assert.Equal(t, 50.0, ac.TargetS)
}

func TestSpeedRisesToDesiredAndCrosses(t *testing.T) {
	ctx := newContext(t)
	// north shows green from the first frame
	veh, err := ctx.VehicleManager().SpawnAt(entity.DirectionNorth, 0, entity.KindCar)
	require.NoError(t, err)

	a := ctx.ApproachManager().Get(entity.DirectionNorth)
	assert.Equal(t, a.SlotS(0), veh.S())
	assert.Equal(t, 0.0, veh.V())
	c := ctx.RuntimeConfig().All.Vehicle.Car
	require.GreaterOrEqual(t, veh.DesiredV(), c.MinSpeed)
	require.Less(t, veh.DesiredV(), c.MaxSpeed)

	prevV := 0.0
	for i := 0; i < 300 && veh.Status() != entity.StatusFinished; i++ {
		ctx.Step()
		// free road: speed never falls and never exceeds the desired speed
		assert.GreaterOrEqual(t, veh.V(), prevV)
		assert.LessOrEqual(t, veh.V(), veh.DesiredV())
		prevV = veh.V()
	}
	assert.True(t, veh.Crossed())
	assert.Equal(t, int32(0), a.WaitingCount())

	// keeps cruising until it leaves the canvas, then is recycled
	for i := 0; i < 600 && veh.Status() != entity.StatusFinished; i++ {
		ctx.Step()
	}
	assert.Equal(t, entity.StatusFinished, veh.Status())
	ctx.Step()
	_, err = ctx.VehicleManager().GetOrError(veh.ID())
	assert.Error(t, err)
	assert.Equal(t, int32(0), ctx.VehicleManager().Count())
}

func TestRedLightHoldsAtSlotZero(t *testing.T) {
	ctx := newContext(t)
	// east is red while the initial north green runs (600 frames)
	veh, err := ctx.VehicleManager().SpawnAt(entity.DirectionEast, 0, entity.KindCar)
	require.NoError(t, err)

	a := ctx.ApproachManager().Get(entity.DirectionEast)
	for i := 0; i < 500; i++ {
		ctx.Step()
		require.Equal(t, entity.StatusQueued, veh.Status())
		require.Equal(t, 0.0, veh.V())
		require.Equal(t, a.SlotS(0), veh.S())
	}
	assert.False(t, veh.Crossed())
}

func TestBlockedFollowerSnapsToSlotCenter(t *testing.T) {
	ctx := newContext(t)
	leader, err := ctx.VehicleManager().SpawnAt(entity.DirectionEast, 0, entity.KindCar)
	require.NoError(t, err)
	follower, err := ctx.VehicleManager().SpawnAt(entity.DirectionEast, 2, entity.KindBike)
	require.NoError(t, err)

	a := ctx.ApproachManager().Get(entity.DirectionEast)
	gap := ctx.RuntimeConfig().All.Geometry.SlotGap
	for i := 0; i < 400; i++ {
		ctx.Step()
		// east stays red: the leader pins slot 0, the follower may only
		// advance one slot and must never come closer than one gap
		require.Equal(t, a.SlotS(0), leader.S())
		require.GreaterOrEqual(t, leader.S()-follower.S(), gap-1e-9)
	}

	assert.Equal(t, 1, follower.SlotIndex())
	assert.Equal(t, a.SlotS(1), follower.S()) // snapped exactly, no drift
	assert.Equal(t, 0.0, follower.V())
	require.NotNil(t, a.Slot(1))
	assert.Equal(t, follower.ID(), a.Slot(1).Value.ID())
	assert.Nil(t, a.Slot(2))
}

func TestKindAttributes(t *testing.T) {
	ctx := newContext(t)
	c := ctx.RuntimeConfig().All.Vehicle

	for _, tc := range []struct {
		kind entity.VehicleKind
		attr config.KindAttr
		dir  entity.Direction
	}{
		{entity.KindCar, c.Car, entity.DirectionNorth},
		{entity.KindBike, c.Bike, entity.DirectionEast},
		{entity.KindAuto, c.Auto, entity.DirectionSouth},
	} {
		veh, err := ctx.VehicleManager().SpawnAt(tc.dir, 0, tc.kind)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, veh.Kind())
		assert.Equal(t, tc.attr.Length, veh.Length())
		assert.Equal(t, tc.attr.Width, veh.Width())
		assert.GreaterOrEqual(t, veh.DesiredV(), tc.attr.MinSpeed)
		assert.Less(t, veh.DesiredV(), tc.attr.MaxSpeed)
	}
}

func TestViewAxisAlignment(t *testing.T) {
	ctx := newContext(t)
	_, err := ctx.VehicleManager().SpawnAt(entity.DirectionNorth, 0, entity.KindCar)
	require.NoError(t, err)
	_, err = ctx.VehicleManager().SpawnAt(entity.DirectionWest, 0, entity.KindCar)
	require.NoError(t, err)
	ctx.Step()

	c := ctx.RuntimeConfig().All.Vehicle.Car
	views := ctx.VehicleManager().Views()
	require.Len(t, views, 2)
	for _, v := range views {
		if v.Direction.Vertical() {
			assert.Equal(t, c.Width, v.Width)
			assert.Equal(t, c.Length, v.Height)
		} else {
			assert.Equal(t, c.Length, v.Width)
			assert.Equal(t, c.Width, v.Height)
		}
	}
}
