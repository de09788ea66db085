// 提供路口信号灯控制算法
// 一个方向放行（绿灯或清空黄灯），其余方向一律红灯；
// 所有时长以秒配置、按帧计数，剩余帧数每帧恰好减1，归零时才发生相位切换
package signal

import (
	"math"

	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
)

// phaseRuntime 信号灯运行时数据结构
// 功能：存储当前放行方向、相位与帧计数
type phaseRuntime struct {
	active          entity.Direction   // 当前放行方向
	phase           entity.SignalPhase // 当前相位
	totalFrames     int32              // 当前相位总帧数
	remainingFrames int32              // 当前相位剩余帧数
}

// reset 进入新相位并重置帧计数
func (r *phaseRuntime) reset(active entity.Direction, phase entity.SignalPhase, frames int32) {
	r.active = active
	r.phase = phase
	r.totalFrames = frames
	r.remainingFrames = frames
}

// lightState 当前相位对应的放行方向灯色
func (r *phaseRuntime) lightState() entity.LightState {
	if r.phase == entity.PhaseYellow {
		return entity.LightStateYellow
	}
	return entity.LightStateGreen
}

// framesOf 将秒数换算为帧数（四舍五入）
func framesOf(fps int32, seconds float64) int32 {
	return int32(math.Round(float64(fps) * seconds))
}

// push 将当前灯色写入各进口道
// 说明：放行方向得到绿/黄灯，其余方向红灯；帧计数一并下发供倒计时显示
func push(approaches []entity.IApproachSignalSetter, r *phaseRuntime) {
	state := r.lightState()
	for _, a := range approaches {
		if a.Direction() == r.active {
			a.SetLight(state, r.totalFrames, r.remainingFrames)
		} else {
			a.SetLight(entity.LightStateRed, r.totalFrames, r.remainingFrames)
		}
	}
}
