package junction

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
)

// 依赖倒置，表达junction对信号灯实现的接口需求

// 给展示层提供的信控读取接口
type ISignalControllerGetter interface {
	Active() entity.Direction  // 当前放行方向
	Phase() entity.SignalPhase // 当前相位
	TotalFrames() int32        // 当前相位总帧数
	RemainingFrames() int32    // 当前相位剩余帧数
}

// 信号灯控制器接口
type ISignalController interface {
	ISignalControllerGetter
	Prepare() // 准备阶段，将当前灯色推送到各进口道
	Update()  // 更新阶段，推进信号灯状态机一帧
}
