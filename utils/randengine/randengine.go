// 随机数引擎，包装了golang.org/x/exp/rand，提供确定性的随机数生成方法
package randengine

import (
	"flag"
	"log"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于整体调整随机数序列
)

// Engine 随机数引擎
// 功能：为车辆生成与属性抽样提供可复现的随机数
// 说明：每个使用方持有独立引擎（按ID或配置种子初始化），
// 相同种子与配置下仿真结果完全一致
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 参数：seed-随机数种子（实际种子为seed+全局偏移量）
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// DiscreteDistribution 按给定权重分布抽取索引
// 参数：weight-权重数组，每个元素表示对应索引的概率权重
// 返回：[0, len(weight))范围内的随机索引
// 算法说明：
// 1. 计算总权重并在[0, 总权重)内取随机数
// 2. 沿权重数组累积，返回第一个累积值超过随机数的索引
func (e *Engine) DiscreteDistribution(weight []float64) int32 {
	random := .0
	for _, w := range weight {
		random += w
	}
	random *= e.Float64()
	sum := 0.
	for i, w := range weight {
		sum += w
		if sum > random {
			return int32(i)
		}
	}
	log.Panicf("randengine: DiscreteDistribution: sum: %f random: %f", sum, random)
	return -1
}

// UniformFloat64 在[low, high)范围内均匀抽取浮点数
// 说明：用于按车种速度区间抽取期望速度
func (e *Engine) UniformFloat64(low, high float64) float64 {
	return low + (high-low)*e.Float64()
}
