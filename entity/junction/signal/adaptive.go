// 密度自适应信号灯控制
// 不按固定顺序轮转，而是在每次黄灯结束后统计各方向未过线车辆数，
// 选取排队最多的方向放行，绿灯时长随排队密度加成并钳制在[base, max]内
package signal

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/container"
)

// Adaptive 密度自适应信号灯控制器
// 功能：根据各进口道的排队密度动态选择下一个放行方向与绿灯时长
type Adaptive struct {
	ctx entity.ITaskContext

	approaches []entity.IApproachSignalSetter // 进口道数据（按方向序）
	c          config.Signal                  // 信号灯配置
	fps        int32
	runtime    phaseRuntime // 运行时数据
}

// NewAdaptive 创建密度自适应信号灯控制器
// 参数：ctx-任务上下文，approaches-按方向序排列的进口道列表
// 说明：初始为配置方向的绿灯，初始绿灯时长为独立配置项（缺省取基础时长）
func NewAdaptive(ctx entity.ITaskContext, approaches []entity.IApproachSignalSetter) *Adaptive {
	c := ctx.RuntimeConfig().All.Signal
	initial, err := entity.ParseDirection(c.InitialDirection)
	if err != nil {
		log.Panicf("adaptive: %v", err)
	}
	s := &Adaptive{
		ctx:        ctx,
		approaches: approaches,
		c:          c,
		fps:        ctx.Clock().FPS,
	}
	s.runtime.reset(initial, entity.PhaseGreen, framesOf(s.fps, c.InitialGreenSeconds))
	return s
}

// Prepare 准备阶段，将当前灯色推送到各进口道
// 说明：车辆基于这里推送的结果决策，状态机推进在更新阶段进行，
// 因此时长为G的绿灯对车辆恰好可见G帧
func (s *Adaptive) Prepare() {
	push(s.approaches, &s.runtime)
}

// Update 更新阶段，推进信号灯状态机一帧
// 算法说明：
// 1. 剩余帧数减1，未归零则保持当前相位
// 2. 绿灯归零进入同方向黄灯（固定时长）
// 3. 黄灯归零统计各方向未过线车辆数：
//   - 全部为零时按固定次序轮转到下一方向（防饿死）
//   - 否则取排队最多的方向，平局优先保持当前方向，再按N,E,S,W定序
//
// 4. 绿灯帧数 = round(FPS * clamp(base + factor*waiting, base, max))
func (s *Adaptive) Update() {
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
		log.Debugf("signal: %v green -> yellow (%d frames)", r.active, r.totalFrames)
	case entity.PhaseYellow:
		next, waiting := s.pickNext()
		seconds := lo.Clamp(
			s.c.BaseGreenSeconds+s.c.DensityFactor*float64(waiting),
			s.c.BaseGreenSeconds, s.c.MaxGreenSeconds,
		)
		prev := r.active
		r.reset(next, entity.PhaseGreen, framesOf(s.fps, seconds))
		log.Debugf("signal: %v yellow -> %v green (waiting %d, %d frames)",
			prev, next, waiting, r.totalFrames)
	}
}

// pickNext 选择下一个放行方向
// 返回：下一个放行方向及其未过线车辆数
// 算法说明：
// 1. 统计各方向未过线车辆数，全部为零时固定轮转到下一方向
// 2. 将排队数编码为优先级整数 waiting*8+bonus（当前方向bonus=4，
// 其余按N,E,S,W定序取3,2,1,0），取负压入小顶堆，堆顶即目标方向
// 说明：编码给出严格全序，不依赖堆的稳定性
func (s *Adaptive) pickNext() (entity.Direction, int32) {
	waiting := make([]int32, entity.DirectionCount)
	allZero := true
	for _, a := range s.approaches {
		w := a.WaitingCount()
		waiting[a.Direction()] = w
		if w > 0 {
			allZero = false
		}
	}
	if allZero {
		return s.runtime.active.Next(), 0
	}
	pq := container.NewPriorityQueue[entity.Direction]()
	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		bonus := int32(3 - dir)
		if dir == s.runtime.active {
			bonus = 4
		}
		pq.Push(dir, -float64(waiting[dir]*8+bonus)) // 小顶堆，排队越多越靠前
	}
	pq.Heapify()
	next := pq.First()
	return next, waiting[next]
}

// Active 获取当前放行方向
func (s *Adaptive) Active() entity.Direction {
	return s.runtime.active
}

// Phase 获取当前相位
func (s *Adaptive) Phase() entity.SignalPhase {
	return s.runtime.phase
}

// TotalFrames 获取当前相位总帧数
func (s *Adaptive) TotalFrames() int32 {
	return s.runtime.totalFrames
}

// RemainingFrames 获取当前相位剩余帧数
func (s *Adaptive) RemainingFrames() int32 {
	return s.runtime.remainingFrames
}
