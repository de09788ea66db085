package task

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
)

// Frame 单帧展示数据
// 功能：供展示层每帧读取的只读快照
// 说明：车辆视图按ID升序，未过线计数按方向序
type Frame struct {
	Step     int32                        // 当前步数
	Time     string                       // 仿真时间（HH:MM:SS）
	Signal   entity.SignalView            // 信号灯视图
	Vehicles []entity.VehicleView         // 在场车辆视图
	Waiting  [entity.DirectionCount]int32 // 各方向未过线车辆数
}

// Frame 组装当前帧的展示数据（纯读取，不修改模拟状态）
func (ctx *Context) Frame() Frame {
	f := Frame{
		Step:     ctx.clock.InternalStep,
		Time:     ctx.clock.String(),
		Signal:   ctx.junction.SignalView(),
		Vehicles: ctx.vehicleManager.Views(),
	}
	for dir, a := range ctx.approachManager.Approaches() {
		f.Waiting[dir] = a.WaitingCount()
	}
	return f
}
