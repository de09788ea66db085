package signal

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// Fixed 固定轮转信号灯控制器
// 功能：按N->E->S->W固定次序轮转放行，绿灯时长恒为基础时长，不做密度反馈
type Fixed struct {
	ctx entity.ITaskContext

	approaches []entity.IApproachSignalSetter // 进口道数据（按方向序）
	c          config.Signal                  // 信号灯配置
	fps        int32
	runtime    phaseRuntime // 运行时数据
}

// NewFixed 创建固定轮转信号灯控制器
// 参数：ctx-任务上下文，approaches-按方向序排列的进口道列表
func NewFixed(ctx entity.ITaskContext, approaches []entity.IApproachSignalSetter) *Fixed {
	c := ctx.RuntimeConfig().All.Signal
	initial, err := entity.ParseDirection(c.InitialDirection)
	if err != nil {
		log.Panicf("fixed: %v", err)
	}
	s := &Fixed{
		ctx:        ctx,
		approaches: approaches,
		c:          c,
		fps:        ctx.Clock().FPS,
	}
	s.runtime.reset(initial, entity.PhaseGreen, framesOf(s.fps, c.InitialGreenSeconds))
	return s
}

// Prepare 准备阶段，将当前灯色推送到各进口道
func (s *Fixed) Prepare() {
	push(s.approaches, &s.runtime)
}

// Update 更新阶段，推进信号灯状态机一帧
// 说明：绿灯归零进入同方向黄灯，黄灯归零轮转到下一方向的基础时长绿灯
func (s *Fixed) Update() {
	r := &s.runtime
	if r.remainingFrames > 0 {
		r.remainingFrames--
	}
	if r.remainingFrames > 0 {
		return
	}
	switch r.phase {
	case entity.PhaseGreen:
		r.reset(r.active, entity.PhaseYellow, framesOf(s.fps, s.c.YellowSeconds))
	case entity.PhaseYellow:
		r.reset(r.active.Next(), entity.PhaseGreen, framesOf(s.fps, s.c.BaseGreenSeconds))
		log.Debugf("signal: rotate to %v green (%d frames)", r.active, r.totalFrames)
	}
}

// Active 获取当前放行方向
func (s *Fixed) Active() entity.Direction {
	return s.runtime.active
}

// Phase 获取当前相位
func (s *Fixed) Phase() entity.SignalPhase {
	return s.runtime.phase
}

// TotalFrames 获取当前相位总帧数
func (s *Fixed) TotalFrames() int32 {
	return s.runtime.totalFrames
}

// RemainingFrames 获取当前相位剩余帧数
func (s *Fixed) RemainingFrames() int32 {
	return s.runtime.remainingFrames
}
