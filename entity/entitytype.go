package entity

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/container"
)

// Direction 进口道方位，表示车辆的来向
// 说明：北进口车辆自画布上缘向下行驶，其余依此类推（靠右行驶）
type Direction int32

const (
	DirectionNorth Direction = 0 // 北进口，自上而下行驶
	DirectionEast  Direction = 1 // 东进口，自右向左行驶
	DirectionSouth Direction = 2 // 南进口，自下而上行驶
	DirectionWest  Direction = 3 // 西进口，自左向右行驶

	DirectionCount = 4 // 方向总数
)

// String 获取方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "north"
	case DirectionEast:
		return "east"
	case DirectionSouth:
		return "south"
	case DirectionWest:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int32(d))
	}
}

// Next 按固定次序N->E->S->W->N轮转
func (d Direction) Next() Direction {
	return (d + 1) % DirectionCount
}

// Vertical 判断行驶方向是否沿画布纵轴
func (d Direction) Vertical() bool {
	return d == DirectionNorth || d == DirectionSouth
}

// ParseDirection 解析配置中的方向名
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north":
		return DirectionNorth, nil
	case "east":
		return DirectionEast, nil
	case "south":
		return DirectionSouth, nil
	case "west":
		return DirectionWest, nil
	default:
		return DirectionNorth, fmt.Errorf("unknown direction %q", s)
	}
}

// SignalPhase 当前放行方向所处的相位
// 说明：非放行方向一律为红灯，不单独建模
type SignalPhase int32

const (
	PhaseGreen  SignalPhase = 0 // 绿灯放行
	PhaseYellow SignalPhase = 1 // 黄灯清空
)

// String 获取相位的字符串表示
func (p SignalPhase) String() string {
	switch p {
	case PhaseGreen:
		return "green"
	case PhaseYellow:
		return "yellow"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// LightState 单个进口道显示的灯色
type LightState int32

const (
	LightStateRed    LightState = 0 // 红灯
	LightStateYellow LightState = 1 // 黄灯
	LightStateGreen  LightState = 2 // 绿灯
)

// String 获取灯色的字符串表示
func (s LightState) String() string {
	switch s {
	case LightStateRed:
		return "red"
	case LightStateYellow:
		return "yellow"
	case LightStateGreen:
		return "green"
	default:
		return fmt.Sprintf("light(%d)", int32(s))
	}
}

// VehicleKind 车种（封闭集合，属性见entity/vehicle/attr.go）
type VehicleKind int32

const (
	KindCar  VehicleKind = 0 // 小汽车
	KindBike VehicleKind = 1 // 自行车
	KindAuto VehicleKind = 2 // 三轮车

	KindCount = 3 // 车种总数
)

// String 获取车种的字符串表示
func (k VehicleKind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindBike:
		return "bike"
	case KindAuto:
		return "auto"
	default:
		return fmt.Sprintf("kind(%d)", int32(k))
	}
}

// VehicleStatus 车辆生命周期状态，只会单向推进
type VehicleStatus int32

const (
	StatusQueued    VehicleStatus = 0 // 占据槽位排队，受槽位与信号灯约束
	StatusDeparting VehicleStatus = 1 // 已从0号槽位起步，承诺完成通过
	StatusCrossed   VehicleStatus = 2 // 车头已越过停止线（永久）
	StatusFinished  VehicleStatus = 3 // 驶出画布，待回收
)

// String 获取状态的字符串表示
func (s VehicleStatus) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusDeparting:
		return "departing"
	case StatusCrossed:
		return "crossed"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// 车辆链表节点类型
type VehicleNode = container.ListNode[IVehicle, struct{}]

// 车辆链表类型
type VehicleList = container.List[IVehicle, struct{}]

// VehicleView 车辆的展示视图（画布坐标系）
// 说明：Width/Height已按行驶轴向对齐到画布坐标轴
type VehicleView struct {
	ID        int32
	Direction Direction
	Kind      VehicleKind
	X         float64 // 车辆中心X坐标
	Y         float64 // 车辆中心Y坐标
	Width     float64 // 画布横向尺寸
	Height    float64 // 画布纵向尺寸
	V         float64 // 当前速度
	Crossed   bool    // 是否已越过停止线
}

// SignalView 信号灯的展示视图
type SignalView struct {
	Active           Direction   // 当前放行方向
	Phase            SignalPhase // 当前相位
	SecondsRemaining int32       // 剩余秒数（向上取整，非负）
	TotalFrames      int32       // 当前相位总帧数
	RemainingFrames  int32       // 当前相位剩余帧数
}

// entity/vehicle/vehicle.go的依赖倒置
type IVehicle interface {
	// 自身属性

	ID() int32              // 获取车辆ID
	Direction() Direction   // 获取车辆来向
	Kind() VehicleKind      // 获取车种
	Length() float64        // 获取车身长度（沿行驶方向）
	Width() float64         // 获取车身宽度
	DesiredV() float64      // 获取期望速度

	// 运行时状态

	Status() VehicleStatus // 获取生命周期状态
	Crossed() bool         // 是否已越过停止线
	SlotIndex() int        // 当前占据的槽位（排队与起步状态有效）
	S() float64            // 沿进口道的中心位置
	V() float64            // 获取当前速度
	XY() geometry.Point    // 获取画布坐标

	// print

	String() string
}

// 进口道的信控接口
type IApproachSignalSetter interface {
	Direction() Direction                                         // 获取进口道方位
	WaitingCount() int32                                          // 未过线车辆数，用于信号灯配时
	SetLight(state LightState, totalFrames, remainingFrames int32) // 设置信号灯状态
}

// entity/approach/approach.go的依赖倒置
type IApproach interface {
	IApproachSignalSetter

	// print

	String() string

	// getter

	Length() float64                                               // 获取进口道全长
	StopLineS() float64                                            // 获取停止线的S坐标
	SlotCount() int                                                // 获取槽位数
	SlotS(i int) float64                                           // 获取槽位i中心的S坐标
	Slot(i int) *VehicleNode                                       // 获取槽位i的占用者，空闲返回nil
	GetPositionByS(s float64) geometry.Point                       // 将进口道s坐标转换为xy坐标
	Light() (state LightState, totalFrames, remainingFrames int32) // 获取信号灯状态
	IsNoEntry() bool                                               // 检查是否不能通行（不是绿灯）

	// 获取特定位置车辆

	FirstVehicle() *VehicleNode // 获取最靠近停止线的排队车辆
	LastVehicle() *VehicleNode  // 获取最远离停止线的排队车辆
	Vehicles() *VehicleList     // 获取排队车辆链表

	// 链表与槽位操作（立即生效）

	AddVehicle(node *VehicleNode, slot int)    // 将车辆插入链表并占据槽位
	ClaimSlot(node *VehicleNode, from, to int) // 原子迁移：释放from并占据to
	RemoveVehicle(node *VehicleNode, slot int) // 过线时从链表和槽位中移除
}

// entity/junction/junction.go的依赖倒置
type IJunction interface {
	SignalView() SignalView // 获取信号灯展示视图
	Prepare()               // 向各进口道推送灯色
	Update()                // 推进信号灯状态机一帧
}
