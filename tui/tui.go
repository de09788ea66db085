// 终端可视化查看器
// 功能：用tcell在终端中按配置帧率逐帧绘制路口、车辆与信号灯
// 说明：只消费task.Context的Step与Frame读模型，不反向修改模拟状态；
// 空格暂停/继续，q、Esc或Ctrl-C退出
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/tsinghua-fib-lab/junction-sim-oss/task"
)

// viewer 终端查看器
// 功能：持有屏幕与绘制状态，驱动模拟按帧推进
type viewer struct {
	ctx    *task.Context
	screen tcell.Screen

	width, height int  // 终端尺寸（单元格）
	paused        bool // 暂停标志
	exhausted     bool // 模拟区间是否已耗尽
}

// Run 启动终端查看器并阻塞至退出
// 参数：ctx-仿真任务上下文
// 说明：模拟区间耗尽后保留最后一帧画面，等待退出按键
func Run(ctx *task.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()

	v := &viewer{ctx: ctx, screen: screen}
	v.width, v.height = screen.Size()
	v.run()
	return nil
}

// run 主循环
// 算法说明：
// 1. 按配置帧率创建定时器，一次滴答推进一帧并重绘
// 2. 独立协程阻塞轮询终端事件并写入通道，主循环select二者
func (v *viewer) run() {
	fps := v.ctx.Clock().FPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !v.paused && !v.exhausted {
				v.exhausted = !v.ctx.Step()
			}
			v.draw()
		}
	}
}

// handleInput 处理终端事件
// 返回：是否继续运行
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			v.paused = !v.paused
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}
