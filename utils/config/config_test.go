package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
	yaml "gopkg.in/yaml.v2"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	// kind speed ordering: car < auto < bike by range midpoint
	carMid := (c.Vehicle.Car.MinSpeed + c.Vehicle.Car.MaxSpeed) / 2
	autoMid := (c.Vehicle.Auto.MinSpeed + c.Vehicle.Auto.MaxSpeed) / 2
	bikeMid := (c.Vehicle.Bike.MinSpeed + c.Vehicle.Bike.MaxSpeed) / 2
	assert.Less(t, carMid, autoMid)
	assert.Less(t, autoMid, bikeMid)
}

func TestPartialOverrideKeepsDefaults(t *testing.T) {
	c := config.Default()
	data := []byte("signal:\n  base_green_seconds: 12\n")
	require.NoError(t, yaml.UnmarshalStrict(data, &c))
	assert.Equal(t, 12.0, c.Signal.BaseGreenSeconds)
	assert.Equal(t, 35.0, c.Signal.MaxGreenSeconds)
	assert.Equal(t, 6, c.Geometry.SlotCount)
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := config.Default()
	c.Signal.MaxGreenSeconds = 5
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Signal.InitialDirection = "up"
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Vehicle.Accel = c.Vehicle.Decel
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Vehicle.Car.Length = c.Geometry.SlotGap
	assert.Error(t, c.Validate())
}

func TestRuntimeConfigDerivedDefaults(t *testing.T) {
	c := config.Default()
	rc := config.NewRuntimeConfig(c)
	assert.Equal(t, c.Signal.BaseGreenSeconds, rc.All.Signal.InitialGreenSeconds)

	c.Signal.InitialGreenSeconds = 15
	rc = config.NewRuntimeConfig(c)
	assert.Equal(t, 15.0, rc.All.Signal.InitialGreenSeconds)
}
