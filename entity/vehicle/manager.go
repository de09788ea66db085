package vehicle

import (
	"fmt"
	"sort"
	"sync"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/container"
)

// VehicleManager 车辆管理器
// 功能：管理所有车辆实体，提供创建、查找、生成与逐帧推进
// 说明：在场集合使用增量数组，成员资格的增删延迟到准备阶段统一生效；
// 进口道的队列与槽位表变更则立即生效，同一帧内后车与生成器都能看到
type VehicleManager struct {
	ctx entity.ITaskContext

	data map[int32]*Vehicle

	// 在场车辆
	vehicles *container.IncrementalArray[*Vehicle]

	inserted      []*Vehicle // 本帧生成、尚未进入在场数组的车辆
	removed       []*Vehicle // 本帧离场、尚未回收的车辆
	insertedMutex sync.Mutex
	removedMutex  sync.Mutex
	nextID        int32

	spawner *spawner
}

// NewManager 创建车辆管理器实例
// 参数：ctx-任务上下文
func NewManager(ctx entity.ITaskContext) *VehicleManager {
	m := &VehicleManager{
		ctx:      ctx,
		data:     make(map[int32]*Vehicle),
		vehicles: container.NewIncrementalArray[*Vehicle](),
		inserted: make([]*Vehicle, 0),
		removed:  make([]*Vehicle, 0),
		nextID:   1,
	}
	m.spawner = newSpawner(ctx, m)
	return m
}

// Get 根据ID获取车辆实例，如果不存在则panic
func (m *VehicleManager) Get(id int32) entity.IVehicle {
	if veh, ok := m.data[id]; !ok {
		log.Panicf("no id %d in vehicle data", id)
		return nil
	} else {
		return veh
	}
}

// GetOrError 根据ID获取车辆实例，如果不存在则返回error
func (m *VehicleManager) GetOrError(id int32) (entity.IVehicle, error) {
	if veh, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in vehicle data", id)
	} else {
		return veh, nil
	}
}

// SpawnAt 在指定方向的指定槽位直接放置车辆（测试与初始布置）
// 返回：新车辆，槽位非法或被占时返回error
func (m *VehicleManager) SpawnAt(dir entity.Direction, slot int, kind entity.VehicleKind) (entity.IVehicle, error) {
	a := m.ctx.ApproachManager().Get(dir)
	if slot < 0 || slot >= a.SlotCount() {
		return nil, fmt.Errorf("spawn at %v: slot %d out of range [0, %d)", dir, slot, a.SlotCount())
	}
	if holder := a.Slot(slot); holder != nil {
		return nil, fmt.Errorf("spawn at %v: slot %d already held by %v", dir, slot, holder.Value)
	}
	return m.create(dir, slot, kind), nil
}

// create 创建车辆并立即占据槽位
// 说明：槽位占用与排队链表立即生效（排队趟与生成器同帧可见），
// 在场数组与ID索引的成员资格延迟到下一个准备阶段生效
func (m *VehicleManager) create(dir entity.Direction, slot int, kind entity.VehicleKind) *Vehicle {
	m.insertedMutex.Lock()
	defer m.insertedMutex.Unlock()
	veh := newVehicle(m.ctx, m, m.nextID, dir, slot, kind)
	m.nextID++
	veh.approach.AddVehicle(veh.node, slot)
	m.inserted = append(m.inserted, veh)
	m.vehicles.Add(veh)
	return veh
}

// remove 登记离场车辆（延迟到准备阶段统一回收）
func (m *VehicleManager) remove(veh *Vehicle) {
	m.removedMutex.Lock()
	defer m.removedMutex.Unlock()
	m.removed = append(m.removed, veh)
	m.vehicles.Remove(veh)
}

// live 当前在场车辆（含本帧生成、不含本帧离场）
func (m *VehicleManager) live() []*Vehicle {
	out := make([]*Vehicle, 0, m.vehicles.Len()+len(m.inserted))
	for _, veh := range m.vehicles.Data() {
		if veh.status != entity.StatusFinished {
			out = append(out, veh)
		}
	}
	return append(out, m.inserted...)
}

// Count 在场车辆总数
func (m *VehicleManager) Count() int32 {
	return int32(len(m.live()))
}

// Views 生成展示视图（按ID升序）
// 说明：按ID排序使展示结果与在场数组的压实次序无关
func (m *VehicleManager) Views() []entity.VehicleView {
	views := lo.Map(m.live(), func(veh *Vehicle, _ int) entity.VehicleView {
		return veh.view()
	})
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Prepare 准备阶段：应用延迟生效的车辆增删
// 说明：新车辆进入在场数组与ID索引，离场车辆从两者中回收
func (m *VehicleManager) Prepare() {
	for _, veh := range m.inserted {
		if _, ok := m.data[veh.id]; ok {
			log.Panicf("vehicle: same id %d between new vehicle and existed vehicle", veh.id)
		}
		m.data[veh.id] = veh
	}
	m.inserted = []*Vehicle{}

	for _, veh := range m.removed {
		delete(m.data, veh.id)
	}
	m.removed = []*Vehicle{}

	m.vehicles.Prepare()
}

// Update 更新阶段：生成尝试与车辆推进
// 算法说明：
// 1. 先取过线车辆清单，刚过线的车辆不在本帧二次推进
// 2. 生成器按间隔尝试生成一辆新车（消耗槽位占用表）
// 3. 排队趟：各方向并行（状态互不相交），方向内自链表尾向头
// （最近停止线优先）逐车推进；先取前驱再更新，过线摘除节点
// 不影响遍历；同帧释放的槽位对后车立即可见
// 4. 过线趟：已过线车辆逐车独立推进，驶出画布后登记离场
func (m *VehicleManager) Update() {
	crossed := lo.Filter(m.vehicles.Data(), func(veh *Vehicle, _ int) bool {
		return veh.status == entity.StatusCrossed
	})

	m.spawner.update()

	parallel.GoFor(m.ctx.ApproachManager().Approaches(), func(a entity.IApproach) {
		for node := a.FirstVehicle(); node != nil; {
			prev := node.Prev()
			node.Value.(*Vehicle).update()
			node = prev
		}
	})

	parallel.GoFor(crossed, func(veh *Vehicle) { veh.updateCrossed() })
}
