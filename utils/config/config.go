package config

import (
	"math"

	"github.com/pkg/errors"
)

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，填充派生默认值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 参数：config-原始配置对象（应已通过Validate）
// 算法说明：
// 1. 复制配置并填充派生默认值（初始绿灯时长缺省取基础时长）
// 2. 暴露常用的控制配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	if config.Signal.InitialGreenSeconds == 0 {
		config.Signal.InitialGreenSeconds = config.Signal.BaseGreenSeconds
	}
	rc.All = config
	rc.C = config.Control

	return rc
}

// Validate 校验配置的数值范围和相互关系
// 返回：首个校验失败的错误，配置可用时返回nil
// 说明：几何与车身长度的适配在layout构建时进一步校验
func (c Config) Validate() error {
	g := c.Geometry
	if g.CanvasWidth <= 0 || g.CanvasHeight <= 0 {
		return errors.Errorf("geometry: canvas %vx%v must be positive", g.CanvasWidth, g.CanvasHeight)
	}
	if g.RoadWidth <= 0 || g.RoadWidth >= math.Min(g.CanvasWidth, g.CanvasHeight) {
		return errors.Errorf("geometry: road width %v must be in (0, min(canvas))", g.RoadWidth)
	}
	if g.StopOffset < 0 {
		return errors.Errorf("geometry: stop offset %v must be non-negative", g.StopOffset)
	}
	if g.SlotGap <= 0 || g.SlotCount <= 0 {
		return errors.Errorf("geometry: slot gap %v and slot count %v must be positive", g.SlotGap, g.SlotCount)
	}

	s := c.Signal
	if s.BaseGreenSeconds <= 0 || s.YellowSeconds <= 0 {
		return errors.Errorf("signal: green %vs and yellow %vs must be positive", s.BaseGreenSeconds, s.YellowSeconds)
	}
	if s.MaxGreenSeconds < s.BaseGreenSeconds {
		return errors.Errorf("signal: max green %vs is below base green %vs", s.MaxGreenSeconds, s.BaseGreenSeconds)
	}
	if s.DensityFactor < 0 {
		return errors.Errorf("signal: density factor %v must be non-negative", s.DensityFactor)
	}
	if s.InitialGreenSeconds < 0 || s.InitialGreenSeconds > s.MaxGreenSeconds {
		return errors.Errorf("signal: initial green %vs must be in [0, max green]", s.InitialGreenSeconds)
	}
	switch s.InitialDirection {
	case "north", "east", "south", "west":
	default:
		return errors.Errorf("signal: unknown initial direction %q", s.InitialDirection)
	}

	p := c.Spawn
	if p.Interval < 0 || p.MaxVehicles < 0 {
		return errors.Errorf("spawn: interval %v and max vehicles %v must be non-negative", p.Interval, p.MaxVehicles)
	}
	if p.CarWeight < 0 || p.BikeWeight < 0 || p.AutoWeight < 0 ||
		p.CarWeight+p.BikeWeight+p.AutoWeight <= 0 {
		return errors.Errorf("spawn: kind weights %v/%v/%v must be non-negative with positive sum",
			p.CarWeight, p.BikeWeight, p.AutoWeight)
	}

	v := c.Vehicle
	if v.Accel <= 0 || v.Decel <= 0 || v.Accel >= v.Decel {
		return errors.Errorf("vehicle: accel %v must be positive and below decel %v", v.Accel, v.Decel)
	}
	for _, kind := range []KindAttr{v.Car, v.Bike, v.Auto} {
		if kind.Length <= 0 || kind.Width <= 0 {
			return errors.Errorf("vehicle: kind size %vx%v must be positive", kind.Length, kind.Width)
		}
		if kind.MinSpeed <= 0 || kind.MaxSpeed < kind.MinSpeed {
			return errors.Errorf("vehicle: kind speed range [%v, %v] is invalid", kind.MinSpeed, kind.MaxSpeed)
		}
		if kind.Length+1 > c.Geometry.SlotGap {
			return errors.Errorf("vehicle: kind length %v does not fit slot gap %v", kind.Length, c.Geometry.SlotGap)
		}
	}

	if c.Control.FPS <= 0 {
		return errors.Errorf("control: fps %v must be positive", c.Control.FPS)
	}
	if c.Control.Step.Total <= 0 || c.Control.Step.Start < 0 {
		return errors.Errorf("control: step window [%v, +%v) is invalid", c.Control.Step.Start, c.Control.Step.Total)
	}
	return nil
}
