package entity

// Manager依赖倒置

// entity/approach/manager.go的依赖倒置
type IApproachManager interface {
	// 输入方向，查找进口道，方向非法则panic
	Get(dir Direction) IApproach
	// 按方向序返回全部进口道
	Approaches() []IApproach
}

// entity/vehicle/manager.go的依赖倒置
type IVehicleManager interface {
	// 输入车辆ID，查找车辆，如果不存在则panic
	Get(id int32) IVehicle
	// 输入车辆ID，查找车辆，如果不存在则返回error
	GetOrError(id int32) (IVehicle, error)

	// 在指定方向的指定槽位直接放置车辆（测试与初始布置）
	SpawnAt(dir Direction, slot int, kind VehicleKind) (IVehicle, error)

	Count() int32         // 在场车辆总数
	Views() []VehicleView // 展示视图（按ID升序）

	Prepare() // 准备阶段：应用延迟生效的车辆增删
	Update()  // 更新阶段：生成尝试与车辆推进
}
