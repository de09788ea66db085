package vehicle

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
)

// controller 车辆控制器
// 功能：按槽位占用与信号灯为车辆产出本帧的控制动作
// 说明：各策略独立产出动作后取最小合并，保留最保守的决策；
// 减速率显著大于加速率，制动急促而起步平缓，避免冲入前车
type controller struct {
	// 控制器保持的参数

	self  *Vehicle
	accel float64 // 加速度（像素/帧²）
	decel float64 // 减速度（像素/帧²）

	// 每次update时更新

	approach entity.IApproach // 所在进口道
}

// newController 创建新的车辆控制器
// 参数：self-车辆实体
// 说明：加减速率为全局配置，所有车种共用
func newController(self *Vehicle) *controller {
	c := self.ctx.RuntimeConfig().All.Vehicle
	return &controller{
		self:  self,
		accel: c.Accel,
		decel: c.Decel,
	}
}

// update 产出车辆本帧的控制动作
// 算法说明：
// 1. 排队中：槽位大于0执行槽位跟进策略，0号槽位执行信号灯策略
// 2. 起步与过线后：向期望速度巡航，无位置上限（承诺完成通过）
// 3. 后处理：速度增量钳制在[-decel, accel]，
// 巡航保持由速度积分时对期望速度的钳制实现
func (l *controller) update() (ac Action) {
	veh := l.self
	ac = Action{A: mathutil.INF, TargetS: mathutil.INF}
	l.approach = veh.approach

	switch veh.status {
	case entity.StatusQueued:
		if veh.slot > 0 {
			ac.Update(l.policyFollow(veh.slot))
		} else {
			ac.Update(l.policySignal())
		}
	case entity.StatusDeparting, entity.StatusCrossed:
		// 无约束，巡航
	default:
		log.Panicf("vehicle %d: controller called on status %v", veh.id, veh.status)
	}

	// 后处理
	ac.A = lo.Clamp(ac.A, -l.decel, l.accel)
	return ac
}

// policyFollow 策略1：槽位跟进策略
// 功能：前方槽位空闲则向其中心推进，被占则制动并停驻在本槽位中心
// 说明：位置上限取目标槽位中心，消除越过中心的亚像素漂移，
// 到达中心后的槽位原子迁移由车辆主体完成；被堵时位置上限取
// 本槽位中心，车辆带余速滑行也不会越过自己的槽位
func (l *controller) policyFollow(slot int) Action {
	if ahead := slot - 1; l.approach.Slot(ahead) == nil {
		return Action{A: l.accel, TargetS: l.approach.SlotS(ahead)}
	}
	return Action{A: -l.decel, TargetS: l.approach.SlotS(slot)}
}

// policySignal 策略2：信号灯策略
// 功能：0号槽位的车辆仅在本进口道绿灯时起步，否则停驻在槽位中心
// 说明：黄灯视同红灯；越过0号槽位中心即转入起步状态，
// 之后不再受本策略约束
func (l *controller) policySignal() Action {
	if l.approach.IsNoEntry() {
		return Action{A: -l.decel, TargetS: l.approach.SlotS(0)}
	}
	return Action{A: l.accel, TargetS: mathutil.INF}
}
