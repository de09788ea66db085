package layout

import (
	"fmt"
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

// ApproachGeometry 单个进口道的几何信息
// 功能：描述一条进口道的中心线、停止线与槽位坐标
// 说明：中心线为两点折线，从画布边缘的入口指向对面出口，
// S为沿中心线累计的弧长（入口处为0）
type ApproachGeometry struct {
	dir entity.Direction

	line        []geometry.Point // 中心线
	lineLengths []float64        // 中心线累计长度
	length      float64          // 进口道全长
	stopLineS   float64          // 停止线的S坐标
	slotS       []float64        // 各槽位中心的S坐标，0号最靠近停止线
}

// String 获取进口道几何的字符串表示
func (g *ApproachGeometry) String() string {
	return fmt.Sprintf("ApproachGeometry{dir=%v, length=%v, stopLineS=%v, slots=%v}",
		g.dir, g.length, g.stopLineS, len(g.slotS))
}

// Direction 获取进口道方位
func (g *ApproachGeometry) Direction() entity.Direction {
	return g.dir
}

// Length 获取进口道全长
func (g *ApproachGeometry) Length() float64 {
	return g.length
}

// StopLineS 获取停止线的S坐标
func (g *ApproachGeometry) StopLineS() float64 {
	return g.stopLineS
}

// SlotCount 获取槽位数
func (g *ApproachGeometry) SlotCount() int {
	return len(g.slotS)
}

// SlotS 获取槽位i中心的S坐标
func (g *ApproachGeometry) SlotS(i int) float64 {
	return g.slotS[i]
}

// GetPositionByS 将进口道s坐标转换为画布xy坐标
// 算法说明：
// 1. 越界时钳制到[0, length]
// 2. 二分查找所在分段，线性插值得到坐标
func (g *ApproachGeometry) GetPositionByS(s float64) geometry.Point {
	if s < 0 || s > g.length {
		log.Debugf("get position with s %v out of range{%v,%v}", s, 0, g.length)
		s = lo.Clamp(s, 0, g.length)
	}
	i := sort.SearchFloat64s(g.lineLengths, s)
	if i == 0 {
		return g.line[0]
	}
	sHigh, sLow := g.lineLengths[i], g.lineLengths[i-1]
	k := (s - sLow) / (sHigh - sLow)
	pos := geometry.Blend(g.line[i-1], g.line[i], k)
	if k < 0 || k > 1 {
		log.Panicf("layout: GetPositionByS(), bad k %v due to pos %v. sHigh=%f, sLow=%f, s=%f",
			k, pos, sHigh, sLow, s)
	}
	return pos
}

// Layout 路口布局
// 功能：由几何配置计算四个进口道的全部静态坐标
// 说明：画布原点在左上角，y向下增长；靠右行驶，
// 进口道中心线偏离道路轴线roadWidth/4
type Layout struct {
	Width     float64        // 画布宽度
	Height    float64        // 画布高度
	Center    geometry.Point // 路口中心
	RoadWidth float64        // 道路带宽度

	approaches [entity.DirectionCount]*ApproachGeometry
}

// New 根据配置构建路口布局
// 参数：c-全局配置（几何与车辆部分用于适配性校验）
// 算法说明：
// 1. 对每个方向计算入口、出口与停止线坐标
// 2. 自停止线向外按slotGap等距排布slotCount个槽位
// 3. 校验最远槽位完整落在画布内，失败直接Fatalf
func New(c config.Config) *Layout {
	g := c.Geometry
	cx, cy := g.CanvasWidth/2, g.CanvasHeight/2
	laneOffset := g.RoadWidth / 4

	l := &Layout{
		Width:     g.CanvasWidth,
		Height:    g.CanvasHeight,
		Center:    geometry.Point{X: cx, Y: cy},
		RoadWidth: g.RoadWidth,
	}

	// 每个方向的入口、出口与停止线（S为沿行驶方向的弧长）
	type approachSpec struct {
		entry, exit geometry.Point
		stopLineS   float64
	}
	specs := [entity.DirectionCount]approachSpec{
		entity.DirectionNorth: {
			entry:     geometry.Point{X: cx - laneOffset, Y: 0},
			exit:      geometry.Point{X: cx - laneOffset, Y: g.CanvasHeight},
			stopLineS: cy - g.RoadWidth/2 - g.StopOffset,
		},
		entity.DirectionEast: {
			entry:     geometry.Point{X: g.CanvasWidth, Y: cy - laneOffset},
			exit:      geometry.Point{X: 0, Y: cy - laneOffset},
			stopLineS: g.CanvasWidth - cx - g.RoadWidth/2 - g.StopOffset,
		},
		entity.DirectionSouth: {
			entry:     geometry.Point{X: cx + laneOffset, Y: g.CanvasHeight},
			exit:      geometry.Point{X: cx + laneOffset, Y: 0},
			stopLineS: g.CanvasHeight - cy - g.RoadWidth/2 - g.StopOffset,
		},
		entity.DirectionWest: {
			entry:     geometry.Point{X: 0, Y: cy + laneOffset},
			exit:      geometry.Point{X: g.CanvasWidth, Y: cy + laneOffset},
			stopLineS: cx - g.RoadWidth/2 - g.StopOffset,
		},
	}

	maxLength := math.Max(c.Vehicle.Car.Length, math.Max(c.Vehicle.Bike.Length, c.Vehicle.Auto.Length))
	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		spec := specs[dir]
		line := []geometry.Point{spec.entry, spec.exit}
		ag := &ApproachGeometry{
			dir:         dir,
			line:        line,
			lineLengths: geometry.GetPolylineLengths2D(line),
			stopLineS:   spec.stopLineS,
			slotS:       make([]float64, g.SlotCount),
		}
		ag.length = ag.lineLengths[len(ag.lineLengths)-1]
		for i := 0; i < g.SlotCount; i++ {
			ag.slotS[i] = ag.stopLineS - float64(i+1)*g.SlotGap
		}
		farthest := ag.slotS[g.SlotCount-1]
		if farthest < maxLength/2 {
			log.Fatalf("layout: approach %v slot %d center %v does not fit the canvas (max vehicle length %v), "+
				"reduce slot_count or slot_gap", dir, g.SlotCount-1, farthest, maxLength)
		}
		l.approaches[dir] = ag
	}
	return l
}

// Approach 获取指定方向的进口道几何
func (l *Layout) Approach(dir entity.Direction) *ApproachGeometry {
	if dir < 0 || dir >= entity.DirectionCount {
		log.Panicf("no direction %v in layout", dir)
	}
	return l.approaches[dir]
}
