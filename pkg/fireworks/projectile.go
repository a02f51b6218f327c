package fireworks

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

// Projectile 一枚上升中的烟花
//
// 从画布底部的发射带出发，线性飞向上半区的随机目标点，
// 经过 TotalTicks 个 tick 后爆炸，此后把每帧的更新委托给自己的火花。
type Projectile struct {
	// 起点与目标点
	OriginX, OriginY float64
	TargetX, TargetY float64

	// TotalTicks 上升阶段总 tick 数
	TotalTicks int

	Mode BurstMode

	elapsed  int
	exploded bool
	sparks   []*Spark

	// 上升轨迹（线性缓动），按已经过 tick 数取值
	tweenX *gween.Tween
	tweenY *gween.Tween

	markerRadius float64
	markerColor  color.Color
}

// newProjectile 针对场景当前的边界创建一枚烟花
//
// 随机抽取顺序：起点 X、目标 X、目标 Y、爆炸模式、基础色相，
// 然后依次为每个火花抽取（random 模式下的）色相、角度、速度、寿命。
func newProjectile(s *Scene) *Projectile {
	cfg := s.cfg
	rng := s.rng

	p := &Projectile{
		OriginX:      between(rng, s.SpawnLeft, s.SpawnRight),
		OriginY:      s.Height,
		TargetX:      between(rng, 0, s.Width),
		TargetY:      between(rng, 0, s.Height/2),
		TotalTicks:   cfg.Launch.FlightTicks,
		markerRadius: cfg.Launch.MarkerRadius,
		markerColor:  colornames.White,
	}

	if rng.Float64() < cfg.Palette.RandomBurstChance {
		p.Mode = BurstRandom
	} else {
		p.Mode = BurstAll
	}
	base := randomHue(rng, cfg.Palette)

	p.sparks = make([]*Spark, cfg.Launch.SparkCount)
	for i := range p.sparks {
		clr := base
		if p.Mode == BurstRandom {
			clr = randomHue(rng, cfg.Palette)
		}
		// 火花从目标点（尚未到达的爆炸点）出发
		p.sparks[i] = newSpark(rng, p.TargetX, p.TargetY, clr, cfg.Spark)
	}

	p.initFlight()
	return p
}

// initFlight 根据起点、目标点和总 tick 数建立上升轨迹
// 起点与目标重合时轨迹退化为一个点，仍然在 TotalTicks 时爆炸
func (p *Projectile) initFlight() {
	duration := float32(p.TotalTicks)
	p.tweenX = gween.New(float32(p.OriginX), float32(p.TargetX), duration, ease.Linear)
	p.tweenY = gween.New(float32(p.OriginY), float32(p.TargetY), duration, ease.Linear)
}

// Elapsed 已经过的上升 tick 数
func (p *Projectile) Elapsed() int {
	return p.elapsed
}

// Exploded 是否已爆炸
// 恰好在 Elapsed 第一次到达 TotalTicks 时变为 true
func (p *Projectile) Exploded() bool {
	return p.exploded
}

// Sparks 返回火花列表（只读）
func (p *Projectile) Sparks() []*Spark {
	return p.sparks
}

// AliveSparks 返回仍存活的火花数量
func (p *Projectile) AliveSparks() int {
	n := 0
	for _, spark := range p.sparks {
		if spark.Alive() {
			n++
		}
	}
	return n
}

// Position 返回当前 tick 对应的上升位置
// tick 0 为起点，tick TotalTicks 为目标点
//
// 轨迹由 gween 以 float32 计算，返回值是起点/目标点经 float32 舍入后的结果，
// 与 OriginX/TargetX（float64）比较时需要留出误差，例如 1e-3。
func (p *Projectile) Position() (x, y float64) {
	t := float32(p.elapsed)
	cx, _ := p.tweenX.Set(t)
	cy, _ := p.tweenY.Set(t)
	return float64(cx), float64(cy)
}

// UpdateAndDraw 推进一帧并绘制
//
// 上升阶段只绘制当前帧的标记点，不保留轨迹历史。
// 返回 false 表示已爆炸且所有火花都已熄灭，场景应移除此烟花。
func (p *Projectile) UpdateAndDraw(canvas Canvas) bool {
	if !p.exploded {
		p.elapsed++
		if p.elapsed >= p.TotalTicks {
			p.exploded = true
		}

		x, y := p.Position()
		canvas.FillCircle(x, y, p.markerRadius, p.markerColor)
		return true
	}

	active := false
	for _, spark := range p.sparks {
		spark.UpdateAndDraw(canvas)
		if spark.Alive() {
			active = true
		}
	}
	return active
}
