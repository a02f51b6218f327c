package fireworks

import (
	"image/color"
	"math"

	"github.com/decker502/fireworks/pkg/config"
)

// Spark 爆炸碎片
//
// 在 Projectile 构造时创建（而不是爆炸时），因此同一枚烟花的火花共享预先决定的配色。
// 爆炸后每个 tick 独立移动、衰减，寿命耗尽后不再绘制。
type Spark struct {
	// 位置
	X, Y float64

	// 运动方向（弧度）与速度（像素/tick）
	Angle float64
	Speed float64

	// Life 剩余寿命（tick），允许小数
	Life float64

	Color  color.Color
	Radius float64

	alive bool
}

// newSpark 在 (x, y) 处创建火花
// 随机抽取顺序：角度、速度、寿命
func newSpark(rng Rand, x, y float64, clr color.Color, cfg config.SparkConfig) *Spark {
	return &Spark{
		X:      x,
		Y:      y,
		Angle:  between(rng, 0, 2*math.Pi),
		Speed:  between(rng, cfg.SpeedMin, cfg.SpeedMax),
		Life:   between(rng, cfg.LifeMin, cfg.LifeMax),
		Color:  clr,
		Radius: cfg.Radius,
		alive:  true,
	}
}

// Alive 是否仍然存活
// 一旦变为 false 不会恢复
func (s *Spark) Alive() bool {
	return s.alive
}

// UpdateAndDraw 推进一帧并绘制
//
// 寿命减到 <= 0 的那一帧标记死亡，不再移动也不再绘制。
func (s *Spark) UpdateAndDraw(canvas Canvas) {
	if !s.alive {
		return
	}

	s.Life--
	if s.Life <= 0 {
		s.alive = false
		return
	}

	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle) * s.Speed

	canvas.FillCircle(s.X, s.Y, s.Radius, s.Color)
}
