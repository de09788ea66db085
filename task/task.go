package task

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/clock"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/approach"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/junction"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/layout"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代全局变量
// 说明：持有时钟、布局与各管理器；车辆集合与槽位占用表由
// 更新管线独占写入，展示层只通过Frame()读取
type Context struct {

	// 时钟
	clock *clock.Clock

	// 路口布局（启动时一次性计算，运行期不可变）
	layout *layout.Layout
	// 进口道管理器
	approachManager entity.IApproachManager
	// 车辆管理器
	vehicleManager entity.IVehicleManager
	// 路口（信号灯）
	junction entity.IJunction

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件
// 参数：c-配置对象（调用方应已通过Validate）
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 创建时钟与运行时配置
// 2. 由几何配置计算路口布局（纯计算，不合法的几何直接Fatalf）
// 3. 依次创建进口道管理器、路口与车辆管理器
func NewContext(c config.Config) *Context {
	ctx := &Context{}
	ctx.clock = clock.New(c.Control)
	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	ctx.layout = layout.New(c)

	// 新建各类模拟对象
	ctx.approachManager = approach.NewManager(ctx, ctx.layout)
	ctx.junction = junction.New(ctx, ctx.approachManager)
	ctx.vehicleManager = vehicle.NewManager(ctx)

	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Layout() *layout.Layout {
	return ctx.layout
}

func (ctx *Context) ApproachManager() entity.IApproachManager {
	return ctx.approachManager
}

func (ctx *Context) VehicleManager() entity.IVehicleManager {
	return ctx.vehicleManager
}

func (ctx *Context) Junction() entity.IJunction {
	return ctx.junction
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}
