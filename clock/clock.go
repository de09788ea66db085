package clock

import (
	"fmt"

	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// Clock 仿真时钟管理器
// 功能：管理逐帧推进的仿真时间，一步即一帧
// 说明：维护当前步数和仿真秒数，提供时间格式化
type Clock struct {
	FPS        int32   // 每秒帧数
	DT         float64 // 每帧时间间隔（秒）
	START_STEP int32   // 起始步
	END_STEP   int32   // 结束步，模拟区间[START, END)

	T            float64 // 当前时间（秒）
	InternalStep int32   // 当前步数
}

// New 根据控制配置创建新的时钟实例
// 参数：control-控制配置，包含帧率与步数区间
// 算法说明：
// 1. 按帧率计算每帧时长：dt = 1 / fps
// 2. 计算起始和结束步数
// 3. 初始化时钟状态
func New(control config.Control) *Clock {
	c := &Clock{
		FPS:        control.FPS,
		DT:         1 / float64(control.FPS),
		START_STEP: control.Step.Start,
		END_STEP:   control.Step.Start + control.Step.Total,
	}
	c.Init()
	return c
}

// Init 重置时钟状态到起始步
func (c *Clock) Init() {
	c.InternalStep = c.START_STEP
	c.T = float64(c.InternalStep) * c.DT
}

// Tick 前进一帧并更新仿真时间
func (c *Clock) Tick() {
	c.InternalStep++
	c.T = float64(c.InternalStep) * c.DT
}

// Done 判断模拟区间是否已耗尽
func (c *Clock) Done() bool {
	return c.InternalStep >= c.END_STEP
}

// String 获取时钟的字符串表示（HH:MM:SS）
func (c *Clock) String() string {
	t := c.T
	h := int(t / 3600)
	t -= float64(h * 3600)
	m := int(t / 60)
	t -= float64(m * 60)
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 返回：小时、分钟、秒（秒为浮点数，支持亚秒级精度）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}
