package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/junction-sim-oss/clock"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/junction/signal"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

type stubContext struct {
	clk *clock.Clock
	rc  *config.RuntimeConfig
}

func (c *stubContext) Clock() *clock.Clock                      { return c.clk }
func (c *stubContext) RuntimeConfig() *config.RuntimeConfig     { return c.rc }
func (c *stubContext) ApproachManager() entity.IApproachManager { return nil }
func (c *stubContext) VehicleManager() entity.IVehicleManager   { return nil }
func (c *stubContext) Junction() entity.IJunction               { return nil }

type stubApproach struct {
	dir     entity.Direction
	waiting int32

	state            entity.LightState
	total, remaining int32
}

func (a *stubApproach) Direction() entity.Direction { return a.dir }
func (a *stubApproach) WaitingCount() int32         { return a.waiting }
func (a *stubApproach) SetLight(state entity.LightState, totalFrames, remainingFrames int32) {
	a.state, a.total, a.remaining = state, totalFrames, remainingFrames
}

func newStubWorld(c config.Config) (entity.ITaskContext, []entity.IApproachSignalSetter, []*stubApproach) {
	ctx := &stubContext{
		clk: clock.New(c.Control),
		rc:  config.NewRuntimeConfig(c),
	}
	stubs := make([]*stubApproach, entity.DirectionCount)
	setters := make([]entity.IApproachSignalSetter, entity.DirectionCount)
	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		stubs[dir] = &stubApproach{dir: dir}
		setters[dir] = stubs[dir]
	}
	return ctx, setters, stubs
}

func advance(s interface{ Update() }, n int) {
	for i := 0; i < n; i++ {
		s.Update()
	}
}

func TestAdaptiveInitialState(t *testing.T) {
	ctx, setters, _ := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)

	assert.Equal(t, entity.DirectionNorth, s.Active())
	assert.Equal(t, entity.PhaseGreen, s.Phase())
	// initial green defaults to base green: 10s at 60fps
	assert.Equal(t, int32(600), s.TotalFrames())
	assert.Equal(t, int32(600), s.RemainingFrames())
}

func TestAdaptiveCountdownDecrementsByOne(t *testing.T) {
	ctx, setters, _ := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)

	remaining := s.RemainingFrames()
	for i := 0; i < 599; i++ {
		s.Update()
		assert.Equal(t, remaining-1, s.RemainingFrames())
		assert.Equal(t, entity.PhaseGreen, s.Phase())
		remaining = s.RemainingFrames()
	}
}

func TestAdaptiveGreenToYellow(t *testing.T) {
	ctx, setters, _ := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)

	advance(s, 600)
	assert.Equal(t, entity.PhaseYellow, s.Phase())
	assert.Equal(t, entity.DirectionNorth, s.Active())
	// yellow: 3s at 60fps
	assert.Equal(t, int32(180), s.TotalFrames())
}

func TestAdaptiveGreenDurationFormula(t *testing.T) {
	// base=10s, factor=1.5, max=35s, fps=60
	for _, tc := range []struct {
		waiting int32
		frames  int32
	}{
		{1, 690},  // 10 + 1.5*1 = 11.5s
		{10, 1500}, // 10 + 1.5*10 = 25s
		{50, 2100}, // capped at 35s
	} {
		ctx, setters, stubs := newStubWorld(config.Default())
		s := signal.NewAdaptive(ctx, setters)
		stubs[entity.DirectionEast].waiting = tc.waiting

		advance(s, 600+180) // through green and yellow
		require.Equal(t, entity.PhaseGreen, s.Phase())
		assert.Equal(t, entity.DirectionEast, s.Active())
		assert.Equal(t, tc.frames, s.TotalFrames())
	}
}

func TestAdaptivePicksDensestDirection(t *testing.T) {
	ctx, setters, stubs := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)
	stubs[entity.DirectionEast].waiting = 2
	stubs[entity.DirectionWest].waiting = 5

	advance(s, 600+180)
	assert.Equal(t, entity.DirectionWest, s.Active())
}

func TestAdaptiveTieKeepsCurrentDirection(t *testing.T) {
	ctx, setters, stubs := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)
	stubs[entity.DirectionNorth].waiting = 3
	stubs[entity.DirectionSouth].waiting = 3

	advance(s, 600+180)
	// north is active and among the maxima: keep it
	assert.Equal(t, entity.DirectionNorth, s.Active())
	assert.Equal(t, entity.PhaseGreen, s.Phase())
}

func TestAdaptiveTieFixedOrder(t *testing.T) {
	ctx, setters, stubs := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)
	// north (active) is empty; east and west tie
	stubs[entity.DirectionEast].waiting = 2
	stubs[entity.DirectionWest].waiting = 2

	advance(s, 600+180)
	assert.Equal(t, entity.DirectionEast, s.Active())
}

func TestAdaptiveRotatesWhenAllEmpty(t *testing.T) {
	ctx, setters, _ := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)

	advance(s, 600+180)
	assert.Equal(t, entity.DirectionEast, s.Active())
	assert.Equal(t, entity.PhaseGreen, s.Phase())
	assert.Equal(t, int32(600), s.TotalFrames()) // base duration

	advance(s, 600+180)
	assert.Equal(t, entity.DirectionSouth, s.Active())
}

func TestAdaptivePushLightStates(t *testing.T) {
	ctx, setters, stubs := newStubWorld(config.Default())
	s := signal.NewAdaptive(ctx, setters)

	s.Prepare()
	assert.Equal(t, entity.LightStateGreen, stubs[entity.DirectionNorth].state)
	assert.Equal(t, int32(600), stubs[entity.DirectionNorth].remaining)
	for _, dir := range []entity.Direction{entity.DirectionEast, entity.DirectionSouth, entity.DirectionWest} {
		assert.Equal(t, entity.LightStateRed, stubs[dir].state)
	}

	advance(s, 600)
	s.Prepare()
	assert.Equal(t, entity.LightStateYellow, stubs[entity.DirectionNorth].state)
	assert.Equal(t, entity.LightStateRed, stubs[entity.DirectionEast].state)
}

func TestAdaptiveInitialGreenSecondsOverride(t *testing.T) {
	c := config.Default()
	c.Signal.InitialGreenSeconds = 15
	ctx, setters, _ := newStubWorld(c)
	s := signal.NewAdaptive(ctx, setters)

	assert.Equal(t, int32(900), s.TotalFrames())
	advance(s, 900)
	assert.Equal(t, entity.PhaseYellow, s.Phase())
}

func TestFixedRotation(t *testing.T) {
	c := config.Default()
	c.Signal.PreferFixed = true
	ctx, setters, stubs := newStubWorld(c)
	s := signal.NewFixed(ctx, setters)
	// density must not matter
	stubs[entity.DirectionWest].waiting = 100

	assert.Equal(t, entity.DirectionNorth, s.Active())
	want := []entity.Direction{
		entity.DirectionEast, entity.DirectionSouth,
		entity.DirectionWest, entity.DirectionNorth,
	}
	for _, dir := range want {
		advance(s, 600)
		assert.Equal(t, entity.PhaseYellow, s.Phase())
		advance(s, 180)
		assert.Equal(t, entity.PhaseGreen, s.Phase())
		assert.Equal(t, dir, s.Active())
		assert.Equal(t, int32(600), s.TotalFrames())
	}
}
