package vehicle

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// kindAttr 按车种查找静态属性
// 说明：车种为封闭集合，属性表来自配置（已通过Validate），
// 非法车种属于数据错误，直接Fatalf
func kindAttr(c config.Vehicle, kind entity.VehicleKind) config.KindAttr {
	switch kind {
	case entity.KindCar:
		return c.Car
	case entity.KindBike:
		return c.Bike
	case entity.KindAuto:
		return c.Auto
	default:
		log.Fatalf("vehicle: unknown kind %v, please check the data", kind)
		return config.KindAttr{}
	}
}
