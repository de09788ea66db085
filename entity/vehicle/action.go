package vehicle

// Action 车辆动作结构体
// 功能：描述车辆本帧的控制动作，包括速度增量与位置上限
type Action struct {
	A       float64 // 速度增量（像素/帧²），正为加速，负为减速
	TargetS float64 // 本帧不可越过的位置上限（最严格的目标中心）
}

// Update 更新车辆动作
// 功能：采用取最小的方式合并动作，保留最保守的决策
// 参数：others-其他动作列表
// 算法说明：
// 1. 对于速度增量，取所有动作中的最小值（最保守的制动）
// 2. 对于位置上限，取所有动作中的最小值（最严格的限位）
func (a *Action) Update(others ...Action) {
	for _, o := range others {
		if o.A < a.A {
			a.A = o.A
		}
		if o.TargetS < a.TargetS {
			a.TargetS = o.TargetS
		}
	}
}
