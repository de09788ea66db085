package junction

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/junction/signal"
)

// Junction 路口实体
// 功能：持有信号灯控制器并对外提供信号灯展示视图
// 说明：本模拟只有一个四向路口，信控算法由配置选择
type Junction struct {
	ctx entity.ITaskContext

	controller ISignalController // 信号灯模块
}

// New 创建并初始化路口
// 参数：ctx-任务上下文，approachManager-进口道管理器
// 说明：按配置选择固定轮转信控或密度自适应信控
func New(ctx entity.ITaskContext, approachManager entity.IApproachManager) *Junction {
	j := &Junction{ctx: ctx}
	setters := lo.Map(approachManager.Approaches(),
		func(a entity.IApproach, _ int) entity.IApproachSignalSetter { return a })
	if ctx.RuntimeConfig().All.Signal.PreferFixed {
		// 使用固定轮转信号灯
		j.controller = signal.NewFixed(ctx, setters)
		log.Infof("junction: fixed rotation signal controller")
	} else {
		// 使用密度自适应信号灯
		j.controller = signal.NewAdaptive(ctx, setters)
		log.Infof("junction: adaptive density signal controller")
	}
	return j
}

// Prepare 准备阶段，向各进口道推送当前灯色
// 说明：车辆在本帧更新中读取的灯色即为这里推送的结果
func (j *Junction) Prepare() {
	j.controller.Prepare()
}

// Update 更新阶段，推进信号灯状态机一帧
func (j *Junction) Update() {
	j.controller.Update()
}

// SignalView 获取信号灯展示视图
// 说明：剩余秒数向上取整并钳制为非负，供倒计时显示
func (j *Junction) SignalView() entity.SignalView {
	fps := j.ctx.Clock().FPS
	remaining := j.controller.RemainingFrames()
	if remaining < 0 {
		remaining = 0
	}
	return entity.SignalView{
		Active:           j.controller.Active(),
		Phase:            j.controller.Phase(),
		SecondsRemaining: (remaining + fps - 1) / fps,
		TotalFrames:      j.controller.TotalFrames(),
		RemainingFrames:  remaining,
	}
}
