package approach

import (
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity"
	"github.com/tsinghua-fib-lab/junction-sim-oss/entity/layout"
)

// ApproachManager Approach管理器
// 功能：管理四个方向的进口道，提供按方向查找的功能
type ApproachManager struct {
	ctx entity.ITaskContext

	approaches [entity.DirectionCount]*Approach
}

// NewManager 创建Approach管理器实例
// 参数：ctx-任务上下文，l-路口布局
// 说明：按方向序为每个进口道创建实体
func NewManager(ctx entity.ITaskContext, l *layout.Layout) *ApproachManager {
	m := &ApproachManager{ctx: ctx}
	for dir := entity.Direction(0); dir < entity.DirectionCount; dir++ {
		m.approaches[dir] = newApproach(ctx, l.Approach(dir))
	}
	return m
}

// Get 根据方向获取进口道，方向非法则panic
func (m *ApproachManager) Get(dir entity.Direction) entity.IApproach {
	if dir < 0 || dir >= entity.DirectionCount {
		log.Panicf("no direction %v in approach data", dir)
	}
	return m.approaches[dir]
}

// Approaches 按方向序返回全部进口道
func (m *ApproachManager) Approaches() []entity.IApproach {
	out := make([]entity.IApproach, entity.DirectionCount)
	for dir, a := range m.approaches {
		out[dir] = a
	}
	return out
}
