package approach

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/layout"
)

// Approach 进口道实体
// 功能：表示路口的一条进口道，包含几何信息、信号灯状态、排队车辆与槽位占用表
// 说明：排队链表按S升序排列（0号槽位最靠近停止线，S最大，位于链表尾部）；
// 槽位表记录每个槽位的占用者，未过线车辆与槽位一一对应
type Approach struct {
	ctx entity.ITaskContext

	dir  entity.Direction
	geom *layout.ApproachGeometry

	vehicles entity.VehicleList    // 排队车辆链表（未过线）
	slots    []*entity.VehicleNode // 槽位占用表，nil表示空闲

	lightState           entity.LightState // 进口道信号灯状态
	lightTotalFrames     int32             // 信号灯本相位总帧数
	lightRemainingFrames int32             // 信号灯本相位剩余帧数
}

// newApproach 创建并初始化一个新的Approach实例
// 参数：ctx-任务上下文，geom-进口道几何
// 说明：初始灯色为红灯，待信号灯控制器在准备阶段推送实际灯色
func newApproach(ctx entity.ITaskContext, geom *layout.ApproachGeometry) *Approach {
	a := &Approach{
		ctx:   ctx,
		dir:   geom.Direction(),
		geom:  geom,
		slots: make([]*entity.VehicleNode, geom.SlotCount()),
		vehicles: entity.VehicleList{
			ID: fmt.Sprintf("approach %v vehicles", geom.Direction()),
		},
		lightState: entity.LightStateRed,
	}
	return a
}

func (a *Approach) String() string {
	return fmt.Sprintf("Approach{dir=%v, queue=%v, light=%v}", a.dir, a.vehicles.Len(), a.lightState)
}

// 静态数据

// Direction 获取进口道方位
func (a *Approach) Direction() entity.Direction {
	return a.dir
}

// Length 获取进口道全长
func (a *Approach) Length() float64 {
	return a.geom.Length()
}

// StopLineS 获取停止线的S坐标
func (a *Approach) StopLineS() float64 {
	return a.geom.StopLineS()
}

// SlotCount 获取槽位数
func (a *Approach) SlotCount() int {
	return a.geom.SlotCount()
}

// SlotS 获取槽位i中心的S坐标
func (a *Approach) SlotS(i int) float64 {
	return a.geom.SlotS(i)
}

// GetPositionByS 将进口道s坐标转换为画布xy坐标
func (a *Approach) GetPositionByS(s float64) geometry.Point {
	return a.geom.GetPositionByS(s)
}

// 信号灯

// Light 获取信号灯状态
func (a *Approach) Light() (entity.LightState, int32, int32) {
	return a.lightState, a.lightTotalFrames, a.lightRemainingFrames
}

// SetLight 设置信号灯状态（由信号灯控制器在准备阶段推送）
func (a *Approach) SetLight(state entity.LightState, totalFrames, remainingFrames int32) {
	a.lightState = state
	a.lightTotalFrames = totalFrames
	a.lightRemainingFrames = remainingFrames
}

// IsNoEntry 检查是否不能通行（不是绿灯）
func (a *Approach) IsNoEntry() bool {
	return a.lightState != entity.LightStateGreen
}

// 排队与槽位

// WaitingCount 未过线车辆数，用于信号灯配时
func (a *Approach) WaitingCount() int32 {
	return int32(a.vehicles.Len())
}

// Slot 获取槽位i的占用者，空闲返回nil
func (a *Approach) Slot(i int) *entity.VehicleNode {
	if i < 0 || i >= len(a.slots) {
		log.Panicf("approach %v: no slot %d (slot count %d)", a.dir, i, len(a.slots))
	}
	return a.slots[i]
}

// FirstVehicle 获取最靠近停止线的排队车辆（S最大，链表尾部）
func (a *Approach) FirstVehicle() *entity.VehicleNode {
	return a.vehicles.Last()
}

// LastVehicle 获取最远离停止线的排队车辆（S最小，链表头部）
func (a *Approach) LastVehicle() *entity.VehicleNode {
	return a.vehicles.First()
}

// Vehicles 获取排队车辆链表
func (a *Approach) Vehicles() *entity.VehicleList {
	return &a.vehicles
}

// AddVehicle 将车辆插入链表并占据槽位（立即生效）
// 说明：生成车辆时调用，归并插入保持链表有序；
// 槽位必须空闲，否则属于生成器的结构性错误
func (a *Approach) AddVehicle(node *entity.VehicleNode, slot int) {
	if holder := a.Slot(slot); holder != nil {
		log.Panicf("approach %v: add vehicle %v into occupied slot %d (holder %v)",
			a.dir, node.Value, slot, holder.Value)
	}
	a.slots[slot] = node
	a.vehicles.Merge([]*entity.VehicleNode{node})
}

// ClaimSlot 原子迁移：释放from并占据to
// 说明：车辆到达前方槽位中心时调用；from必须由本车占据且to必须空闲，
// 逐车单趟最近优先的更新次序在结构上保证了这一点
func (a *Approach) ClaimSlot(node *entity.VehicleNode, from, to int) {
	if a.Slot(from) != node {
		log.Panicf("approach %v: vehicle %v claims from slot %d not held by it", a.dir, node.Value, from)
	}
	if holder := a.Slot(to); holder != nil {
		log.Panicf("approach %v: vehicle %v claims occupied slot %d (holder %v)",
			a.dir, node.Value, to, holder.Value)
	}
	a.slots[from] = nil
	a.slots[to] = node
}

// RemoveVehicle 过线时从链表和槽位中移除（立即生效）
// 说明：立即生效使同一帧内后车与生成器都能看到释放的槽位
func (a *Approach) RemoveVehicle(node *entity.VehicleNode, slot int) {
	if a.Slot(slot) != node {
		log.Panicf("approach %v: remove vehicle %v from slot %d not held by it", a.dir, node.Value, slot)
	}
	a.slots[slot] = nil
	a.vehicles.Remove(node)
}
