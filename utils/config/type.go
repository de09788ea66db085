package config

// Geometry 路口几何配置
// 功能：定义画布尺寸、道路宽度与槽位布局
// 说明：所有长度单位为像素，槽位沿停止线向外等距排布
type Geometry struct {
	CanvasWidth  float64 `yaml:"canvas_width"`  // 画布宽度
	CanvasHeight float64 `yaml:"canvas_height"` // 画布高度
	RoadWidth    float64 `yaml:"road_width"`    // 道路带宽度
	StopOffset   float64 `yaml:"stop_offset"`   // 停止线距道路带边缘的距离
	SlotGap      float64 `yaml:"slot_gap"`      // 相邻槽位中心间距
	SlotCount    int     `yaml:"slot_count"`    // 每个进口道的槽位数
}

// Signal 信号灯配置
// 说明：时长均以秒给出，内部按帧计数
type Signal struct {
	BaseGreenSeconds    float64 `yaml:"base_green_seconds"`     // 绿灯基础时长
	MaxGreenSeconds     float64 `yaml:"max_green_seconds"`      // 绿灯时长上限
	YellowSeconds       float64 `yaml:"yellow_seconds"`         // 黄灯固定时长
	DensityFactor       float64 `yaml:"density_factor"`         // 排队密度加成系数（秒/辆）
	InitialDirection    string  `yaml:"initial_direction"`      // 初始放行方向（north/east/south/west）
	InitialGreenSeconds float64 `yaml:"initial_green_seconds"`  // 初始绿灯时长，0表示取基础时长
	PreferFixed         bool    `yaml:"prefer_fixed,omitempty"` // 优先使用固定轮转信控
}

// Spawn 车辆生成配置
type Spawn struct {
	Interval    int32   `yaml:"interval"`     // 生成尝试间隔（帧），0表示关闭
	MaxVehicles int32   `yaml:"max_vehicles"` // 全局在场车辆上限
	CarWeight   float64 `yaml:"car_weight"`   // 小汽车权重
	BikeWeight  float64 `yaml:"bike_weight"`  // 自行车权重
	AutoWeight  float64 `yaml:"auto_weight"`  // 三轮车权重
	Seed        uint64  `yaml:"seed"`         // 生成器随机种子
}

// KindAttr 单一车种的静态属性配置
// 说明：长度沿行驶方向，宽度垂直于行驶方向，速度单位为像素/帧
type KindAttr struct {
	Length   float64 `yaml:"length"`    // 车身长度
	Width    float64 `yaml:"width"`     // 车身宽度
	MinSpeed float64 `yaml:"min_speed"` // 期望速度下限
	MaxSpeed float64 `yaml:"max_speed"` // 期望速度上限
}

// Vehicle 车辆运动学与车种属性配置
type Vehicle struct {
	Accel float64  `yaml:"accel"` // 加速度（像素/帧^2）
	Decel float64  `yaml:"decel"` // 减速度（像素/帧^2）
	Car   KindAttr `yaml:"car"`
	Bike  KindAttr `yaml:"bike"`
	Auto  KindAttr `yaml:"auto"`
}

// ControlStep 指定模拟时间范围的配置项
type ControlStep struct {
	Start int32 `yaml:"start"` // 开始步数
	Total int32 `yaml:"total"` // 总步数
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
	FPS  int32       `yaml:"fps"` // 每秒帧数（每帧即一步）
}

// Config YAML配置文件的根结构
type Config struct {
	Geometry Geometry `yaml:"geometry"` // 路口几何
	Signal   Signal   `yaml:"signal"`   // 信号灯
	Spawn    Spawn    `yaml:"spawn"`    // 车辆生成
	Vehicle  Vehicle  `yaml:"vehicle"`  // 车辆属性
	Control  Control  `yaml:"control"`  // 模拟过程控制
}

// Default 返回可直接运行的默认配置
// 说明：YAML文件在该默认值基础上做覆盖（见Load/Decode）
func Default() Config {
	return Config{
		Geometry: Geometry{
			CanvasWidth:  800,
			CanvasHeight: 800,
			RoadWidth:    120,
			StopOffset:   12,
			SlotGap:      48,
			SlotCount:    6,
		},
		Signal: Signal{
			BaseGreenSeconds: 10,
			MaxGreenSeconds:  35,
			YellowSeconds:    3,
			DensityFactor:    1.5,
			InitialDirection: "north",
		},
		Spawn: Spawn{
			Interval:    45,
			MaxVehicles: 24,
			CarWeight:   0.6,
			BikeWeight:  0.25,
			AutoWeight:  0.15,
			Seed:        1,
		},
		Vehicle: Vehicle{
			Accel: 0.05,
			Decel: 0.5,
			Car:   KindAttr{Length: 36, Width: 18, MinSpeed: 2.0, MaxSpeed: 2.6},
			Bike:  KindAttr{Length: 22, Width: 10, MinSpeed: 2.8, MaxSpeed: 3.4},
			Auto:  KindAttr{Length: 30, Width: 16, MinSpeed: 2.4, MaxSpeed: 3.0},
		},
		Control: Control{
			Step: ControlStep{Start: 0, Total: 36000},
			FPS:  60,
		},
	}
}
