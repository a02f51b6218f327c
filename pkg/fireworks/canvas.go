// Package fireworks 实现烟花粒子效果的核心逻辑
//
// 三个实体自上而下组合：Scene 持有 Projectile 列表，Projectile 持有固定数量的 Spark。
// 每次 Scene.Tick() 推进一帧并通过 Canvas 绘制，核心逻辑不依赖任何调度器，
// 由宿主（Ebitengine 游戏循环、无头模式的 ticker）决定何时调用。
package fireworks

import "image/color"

// Canvas 二维绘图上下文
//
// 只需要两个绘图原语：清除矩形区域、填充圆形。
// render.DisplayList 实现此接口，测试中可以使用记录型实现。
type Canvas interface {
	// ClearRect 清除矩形区域
	ClearRect(x, y, width, height float64)

	// FillCircle 以 (x, y) 为圆心填充半径为 radius 的圆
	FillCircle(x, y, radius float64, clr color.Color)
}

// Rand 随机数来源，返回 [0, 1) 区间的浮点数
// *math/rand.Rand 满足此接口
type Rand interface {
	Float64() float64
}

// between 返回 [lo, hi) 区间的均匀随机数
func between(rng Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
