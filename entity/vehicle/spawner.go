package vehicle

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/randengine"
)

// spawner 车辆生成器
// 功能：按固定帧间隔尝试生成车辆，受全局在场上限约束
// 说明：方向随机起点加固定轮转探测，槽位取最远空闲位，车种按权重抽取；
// 车辆生成即稳定停驻在槽位中心，对本帧的排队趟与展示立即可见
type spawner struct {
	ctx entity.ITaskContext
	m   *VehicleManager

	c           config.Spawn
	kindWeights []float64          // 车种权重表（按VehicleKind序）
	generator   *randengine.Engine // 随机数生成器，以配置种子初始化
}

// newSpawner 创建车辆生成器
// 参数：ctx-任务上下文，m-车辆管理器
func newSpawner(ctx entity.ITaskContext, m *VehicleManager) *spawner {
	c := ctx.RuntimeConfig().All.Spawn
	return &spawner{
		ctx:         ctx,
		m:           m,
		c:           c,
		kindWeights: []float64{c.CarWeight, c.BikeWeight, c.AutoWeight},
		generator:   randengine.New(c.Seed),
	}
}

// update 每帧调用一次，按间隔尝试生成一辆新车
// 算法说明：
// 1. 间隔为0（关闭）、间隔未到或在场车辆达到上限时直接返回
// 2. 随机选择起始方向，按固定轮转最多探测四个方向
// 3. 方向内查找可生成的最远空闲槽位，找到即生成并结束
// 4. 四个方向均不可生成则本帧放弃（不是错误）
func (s *spawner) update() {
	if s.c.Interval <= 0 || s.ctx.Clock().InternalStep%s.c.Interval != 0 {
		return
	}
	if s.m.Count() >= s.c.MaxVehicles {
		return
	}
	dir := entity.Direction(s.generator.Int31n(entity.DirectionCount))
	for range entity.DirectionCount {
		a := s.ctx.ApproachManager().Get(dir)
		if slot, ok := s.freeSlot(a); ok {
			kind := entity.VehicleKind(s.generator.DiscreteDistribution(s.kindWeights))
			veh := s.m.create(dir, slot, kind)
			log.Debugf("spawner: vehicle %d (%v) spawned at %v slot %d", veh.id, kind, dir, slot)
			return
		}
		dir = dir.Next()
	}
	log.Debugf("spawner: no free slot in any approach, skip this frame")
}

// freeSlot 查找进口道内可生成的最远空闲槽位
// 返回：槽位下标与是否找到
// 说明：自最远槽位向停止线扫描；紧邻外侧槽位的占用者若仍在
// 槽位间移行（尚未停驻到自己的中心），其车身可能压在本槽位上，
// 此时跳过本槽位继续向内扫描，保证生成不与任何车辆重叠
func (s *spawner) freeSlot(a entity.IApproach) (int, bool) {
	for i := a.SlotCount() - 1; i >= 0; i-- {
		if a.Slot(i) != nil {
			continue
		}
		if i+1 < a.SlotCount() {
			if holder := a.Slot(i + 1); holder != nil && holder.S > a.SlotS(i+1) {
				continue
			}
		}
		return i, true
	}
	return 0, false
}
