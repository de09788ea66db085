package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/layout"
	"github.com/tsinghua-fib-lab/junction-sim-oss/task"
)

// statusRows 顶部状态栏占用的行数，其余区域绘制路口画布
const statusRows = 2

var (
	styleRoad   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)

	// 灯色样式
	lightStyles = map[entity.LightState]tcell.Style{
		entity.LightStateRed:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		entity.LightStateYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		entity.LightStateGreen:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}

	// 车种样式
	kindStyles = map[entity.VehicleKind]tcell.Style{
		entity.KindCar:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		entity.KindBike: tcell.StyleDefault.Foreground(tcell.ColorLightGreen),
		entity.KindAuto: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}

	// 行驶朝向符号（按来向）：北进口向下行驶，依此类推
	directionGlyphs = [entity.DirectionCount]rune{
		entity.DirectionNorth: 'v',
		entity.DirectionEast:  '<',
		entity.DirectionSouth: '^',
		entity.DirectionWest:  '>',
	}
)

// draw 绘制一帧
func (v *viewer) draw() {
	f := v.ctx.Frame()
	l := v.ctx.Layout()

	v.screen.Clear()
	v.drawRoads(l)
	v.drawStopLines(l, f.Signal)
	v.drawVehicles(l, f.Vehicles)
	v.drawStatus(f)
	v.screen.Show()
}

// cellOf 将画布坐标换算为终端单元格坐标（状态栏下方的绘制区）
func (v *viewer) cellOf(l *layout.Layout, x, y float64) (int, int) {
	cx := int(x / l.Width * float64(v.width))
	cy := statusRows + int(y/l.Height*float64(v.height-statusRows))
	return cx, cy
}

// drawRoads 绘制两条垂直相交的道路带
func (v *viewer) drawRoads(l *layout.Layout) {
	x0, _ := v.cellOf(l, l.Center.X-l.RoadWidth/2, 0)
	x1, _ := v.cellOf(l, l.Center.X+l.RoadWidth/2, 0)
	_, y0 := v.cellOf(l, 0, l.Center.Y-l.RoadWidth/2)
	_, y1 := v.cellOf(l, 0, l.Center.Y+l.RoadWidth/2)

	for y := statusRows; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			inVertical := x >= x0 && x <= x1
			inHorizontal := y >= y0 && y <= y1
			if inVertical || inHorizontal {
				v.screen.SetContent(x, y, '.', nil, styleRoad)
			}
		}
	}
}

// drawStopLines 按进口道灯色绘制停止线
// 说明：停止线横跨进口道所在的半幅道路，放行方向为绿/黄，其余为红
func (v *viewer) drawStopLines(l *layout.Layout, s entity.SignalView) {
	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		state := entity.LightStateRed
		if dir == s.Active {
			state = entity.LightStateGreen
			if s.Phase == entity.PhaseYellow {
				state = entity.LightStateYellow
			}
		}
		style := lightStyles[state]

		a := l.Approach(dir)
		pos := a.GetPositionByS(a.StopLineS())
		// 进口道占右侧半幅：北进口在路轴左侧，东进口在路轴上侧，依此类推
		var fx0, fy0, fx1, fy1 float64
		switch dir {
		case entity.DirectionNorth:
			fx0, fx1 = l.Center.X-l.RoadWidth/2, l.Center.X
			fy0, fy1 = pos.Y, pos.Y
		case entity.DirectionSouth:
			fx0, fx1 = l.Center.X, l.Center.X+l.RoadWidth/2
			fy0, fy1 = pos.Y, pos.Y
		case entity.DirectionEast:
			fx0, fx1 = pos.X, pos.X
			fy0, fy1 = l.Center.Y-l.RoadWidth/2, l.Center.Y
		case entity.DirectionWest:
			fx0, fx1 = pos.X, pos.X
			fy0, fy1 = l.Center.Y, l.Center.Y+l.RoadWidth/2
		}
		x0, y0 := v.cellOf(l, fx0, fy0)
		x1, y1 := v.cellOf(l, fx1, fy1)
		glyph := '-'
		if x0 == x1 {
			glyph = '|'
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				v.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}
}

// drawVehicles 绘制在场车辆
// 说明：车辆包围盒按画布比例缩放为单元格矩形填充，
// 符号表示行驶朝向，颜色表示车种，已过线车辆变暗
func (v *viewer) drawVehicles(l *layout.Layout, views []entity.VehicleView) {
	for _, view := range views {
		x0, y0 := v.cellOf(l, view.X-view.Width/2, view.Y-view.Height/2)
		x1, y1 := v.cellOf(l, view.X+view.Width/2, view.Y+view.Height/2)
		style := kindStyles[view.Kind]
		if view.Crossed {
			style = style.Dim(true)
		}
		glyph := directionGlyphs[view.Direction]
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if x >= 0 && x < v.width && y >= statusRows && y < v.height {
					v.screen.SetContent(x, y, glyph, nil, style)
				}
			}
		}
	}
}

// drawStatus 绘制顶部状态栏
func (v *viewer) drawStatus(f task.Frame) {
	pause := ""
	if v.paused {
		pause = "  [PAUSED]"
	}
	if v.exhausted {
		pause = "  [DONE]"
	}
	v.drawText(0, 0, styleStatus, fmt.Sprintf(
		"STEP %d (%s)%s   [space] pause  [q] quit", f.Step, f.Time, pause))
	v.drawText(0, 1, styleStatus, fmt.Sprintf(
		"signal: %v %v %ds | waiting N:%d E:%d S:%d W:%d | vehicles: %d",
		f.Signal.Active, f.Signal.Phase, f.Signal.SecondsRemaining,
		f.Waiting[entity.DirectionNorth], f.Waiting[entity.DirectionEast],
		f.Waiting[entity.DirectionSouth], f.Waiting[entity.DirectionWest],
		len(f.Vehicles)))
}

// drawText 从指定单元格起水平输出文本
func (v *viewer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
