package task

import (
	"flag"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 600, "心跳日志间隔步数")
)

// prepare 准备阶段，每帧执行一次
// 算法说明：
// 1. 心跳日志：按固定间隔输出当前步数、仿真时间与在场车辆数
// 2. 车辆管理器准备：应用延迟生效的车辆增删
// 3. 路口准备：将当前灯色推送到各进口道
// 说明：车辆在更新阶段读取的灯色即为本帧推送的结果，
// 时长为G的绿灯对车辆恰好可见G帧
func (ctx *Context) prepare() {
	if int(ctx.clock.InternalStep)%*heartBeatInterval == 0 {
		log.Infof(
			"STEP: %d(%v) vehicles: %d",
			ctx.clock.InternalStep, ctx.clock, ctx.vehicleManager.Count(),
		)
	}

	ctx.vehicleManager.Prepare()
	ctx.junction.Prepare()
}

// update 更新阶段，每帧执行一次
// 算法说明：
// 1. 信号灯状态机推进一帧
// 2. 车辆管理器推进：生成尝试、各方向排队趟与过线趟
// 说明：信号灯先行推进不影响本帧车辆的决策，
// 车辆读取的是准备阶段推送到进口道的灯色
func (ctx *Context) update() {
	ctx.junction.Update()
	ctx.vehicleManager.Update()
}

// Step 推进一帧
// 返回：模拟区间是否尚未耗尽
// 说明：区间[start, start+total)耗尽后调用无副作用，始终返回false
func (ctx *Context) Step() bool {
	if ctx.clock.Done() {
		return false
	}
	ctx.prepare()
	ctx.update()
	ctx.clock.Tick()
	return !ctx.clock.Done()
}

// Run 运行至模拟区间耗尽
func (ctx *Context) Run() {
	for ctx.Step() {
	}
	log.Infof("engine complete")
}
