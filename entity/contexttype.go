package entity

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/clock"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// task.Context的依赖倒置
type ITaskContext interface {
	Clock() *clock.Clock
	RuntimeConfig() *config.RuntimeConfig
	ApproachManager() IApproachManager
	VehicleManager() IVehicleManager
	Junction() IJunction
}
