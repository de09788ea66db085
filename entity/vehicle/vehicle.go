package vehicle

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/container"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/randengine"
)

// Vehicle 车辆实体
// 功能：表示一辆驶向路口的车辆，管理其排队、起步、过线与离场的全生命周期
// 说明：未过线时占据且仅占据一个槽位；过线后不再受槽位与信号灯约束
type Vehicle struct {
	container.IncrementalItemBase
	ctx entity.ITaskContext
	m   *VehicleManager

	// 静态属性

	id       int32
	dir      entity.Direction
	kind     entity.VehicleKind
	length   float64 // 车身长度（沿行驶方向）
	width    float64 // 车身宽度
	desiredV float64 // 期望速度，创建时按车种区间抽取后不再变化

	approach   entity.IApproach
	node       *entity.VehicleNode
	controller *controller
	generator  *randengine.Engine // 随机数生成器，以ID为seed

	// 运行时数据，仅在更新阶段由单一写者修改

	status entity.VehicleStatus
	slot   int     // 当前占据的槽位（排队与起步状态有效）
	s      float64 // 沿进口道的中心位置
	v      float64 // 当前速度
	xy     geometry.Point
}

// newVehicle 创建并初始化一个新的Vehicle实例
// 参数：ctx-任务上下文，m-车辆管理器，id-车辆ID，dir-来向，slot-初始槽位，kind-车种
// 返回：初始化完成的Vehicle实例
// 说明：车辆以速度0稳定出现在槽位中心；期望速度用自身种子引擎
// 在车种区间内抽取，同一ID的抽取结果可复现
func newVehicle(
	ctx entity.ITaskContext,
	m *VehicleManager,
	id int32,
	dir entity.Direction,
	slot int,
	kind entity.VehicleKind,
) *Vehicle {
	a := ctx.ApproachManager().Get(dir)
	if slot < 0 || slot >= a.SlotCount() {
		log.Panicf("vehicle %d: slot %d out of range [0, %d)", id, slot, a.SlotCount())
	}
	attr := kindAttr(ctx.RuntimeConfig().All.Vehicle, kind)
	veh := &Vehicle{
		ctx:       ctx,
		m:         m,
		id:        id,
		dir:       dir,
		kind:      kind,
		length:    attr.Length,
		width:     attr.Width,
		approach:  a,
		generator: randengine.New(uint64(id)),
		status:    entity.StatusQueued,
		slot:      slot,
		s:         a.SlotS(slot),
	}
	veh.desiredV = veh.generator.UniformFloat64(attr.MinSpeed, attr.MaxSpeed)
	veh.node = &entity.VehicleNode{S: veh.s, Value: veh}
	veh.controller = newController(veh)
	veh.xy = a.GetPositionByS(veh.s)
	return veh
}

// update 排队与起步车辆的逐帧更新（每方向一趟，最近优先）
// 算法说明：
// 1. 控制器按槽位占用与信号灯产出动作，积分刷新速度与位置
// 2. 排队中：到达前方槽位中心则原子迁移槽位；
// 0号槽位的车辆越过槽位中心即转入起步状态（承诺完成通过）
// 3. 起步中：车头越过停止线即过线，立即从链表与槽位表移除，
// 同一帧内后车与生成器都能看到释放的槽位
func (veh *Vehicle) update() {
	veh.refreshRuntime(veh.controller.update())
	veh.node.S = veh.s
	switch veh.status {
	case entity.StatusQueued:
		if veh.slot > 0 {
			ahead := veh.slot - 1
			if veh.approach.Slot(ahead) == nil && veh.s >= veh.approach.SlotS(ahead) {
				veh.approach.ClaimSlot(veh.node, veh.slot, ahead)
				veh.slot = ahead
			}
		} else if veh.s > veh.approach.SlotS(0) {
			veh.status = entity.StatusDeparting
			log.Debugf("vehicle %d departs from %v", veh.id, veh.dir)
		}
	case entity.StatusDeparting:
		if veh.s+veh.length/2 >= veh.approach.StopLineS() {
			veh.approach.RemoveVehicle(veh.node, veh.slot)
			veh.slot = -1
			veh.status = entity.StatusCrossed
			log.Debugf("vehicle %d crossed the stop line of %v", veh.id, veh.dir)
		}
	default:
		log.Panicf("vehicle %d: bad status %v in queue pass", veh.id, veh.status)
	}
}

// updateCrossed 已过线车辆的逐帧更新（逐车独立）
// 说明：直线行驶至驶出画布后进入回收状态，槽位簿记不再适用
func (veh *Vehicle) updateCrossed() {
	veh.refreshRuntime(veh.controller.update())
	if veh.s > veh.approach.Length()+veh.length {
		veh.status = entity.StatusFinished
		veh.m.remove(veh)
	}
}

// refreshRuntime 按动作积分刷新运行时数据
// 算法说明：
// 1. v = clamp(v + A, 0, desiredV)，速度不越界也不为负
// 2. s = min(s + v, TargetS)，位置硬截断在目标中心，消除亚像素漂移
// 3. 画布坐标按截断后的s换算（越出进口道时取出口坐标）
func (veh *Vehicle) refreshRuntime(ac Action) {
	veh.v = lo.Clamp(veh.v+ac.A, 0, veh.desiredV)
	veh.s = math.Min(veh.s+veh.v, ac.TargetS)
	veh.xy = veh.approach.GetPositionByS(math.Min(veh.s, veh.approach.Length()))
}

// view 生成车辆的展示视图
// 说明：宽高按行驶轴向对齐到画布坐标轴
func (veh *Vehicle) view() entity.VehicleView {
	w, h := veh.length, veh.width
	if veh.dir.Vertical() {
		w, h = veh.width, veh.length
	}
	return entity.VehicleView{
		ID:        veh.id,
		Direction: veh.dir,
		Kind:      veh.kind,
		X:         veh.xy.X,
		Y:         veh.xy.Y,
		Width:     w,
		Height:    h,
		V:         veh.v,
		Crossed:   veh.Crossed(),
	}
}

// print

func (veh *Vehicle) String() string {
	return fmt.Sprintf("Vehicle{id=%d, dir=%v, kind=%v, status=%v, slot=%d, s=%v, v=%v}",
		veh.id, veh.dir, veh.kind, veh.status, veh.slot, veh.s, veh.v)
}

// 自身属性

// ID 获取车辆ID
func (veh *Vehicle) ID() int32 {
	return veh.id
}

// Direction 获取车辆来向
func (veh *Vehicle) Direction() entity.Direction {
	return veh.dir
}

// Kind 获取车种
func (veh *Vehicle) Kind() entity.VehicleKind {
	return veh.kind
}

// Length 获取车身长度（沿行驶方向）
func (veh *Vehicle) Length() float64 {
	return veh.length
}

// Width 获取车身宽度
func (veh *Vehicle) Width() float64 {
	return veh.width
}

// DesiredV 获取期望速度
func (veh *Vehicle) DesiredV() float64 {
	return veh.desiredV
}

// 运行时状态

// Status 获取生命周期状态
func (veh *Vehicle) Status() entity.VehicleStatus {
	return veh.status
}

// Crossed 是否已越过停止线
func (veh *Vehicle) Crossed() bool {
	return veh.status >= entity.StatusCrossed
}

// SlotIndex 当前占据的槽位（排队与起步状态有效）
func (veh *Vehicle) SlotIndex() int {
	return veh.slot
}

// S 沿进口道的中心位置
func (veh *Vehicle) S() float64 {
	return veh.s
}

// V 获取当前速度
func (veh *Vehicle) V() float64 {
	return veh.v
}

// XY 获取画布坐标
func (veh *Vehicle) XY() geometry.Point {
	return veh.xy
}
