package fireworks

import (
	"log"

	"github.com/decker502/fireworks/pkg/config"
)

// Scene 烟花场景控制器
//
// 持有画布尺寸、活跃烟花列表和一个循环计数器（周期为发射间隔），
// 计数器归零的那一帧发射一枚新烟花。
type Scene struct {
	cfg    *config.FireworksConfig
	canvas Canvas
	rng    Rand

	// 画布尺寸（固定配置）
	Width, Height float64

	// Center 水平中心（取整）
	Center float64

	// SpawnLeft, SpawnRight 发射带的水平范围，以中心为轴、半宽为 Center/4
	SpawnLeft, SpawnRight float64

	projectiles []*Projectile
	counter     int
	launched    int
}

// NewScene 创建场景并计算边界
func NewScene(cfg *config.FireworksConfig, canvas Canvas, rng Rand) *Scene {
	s := &Scene{
		cfg:         cfg,
		canvas:      canvas,
		rng:         rng,
		projectiles: make([]*Projectile, 0),
	}
	s.Resize()
	return s
}

// Resize 根据固定的画布尺寸重新计算派生边界
//
// 画布尺寸是固定配置，窗口大小变化时只重新计算，不改变画布。
func (s *Scene) Resize() {
	s.Width = float64(s.cfg.Canvas.Width)
	s.Height = float64(s.cfg.Canvas.Height)
	s.Center = float64(int(s.Width / 2))
	s.SpawnLeft = float64(int(s.Center - s.Center/4))
	s.SpawnRight = float64(int(s.Center + s.Center/4))
}

// Spawn 追加一枚新烟花
func (s *Scene) Spawn() {
	p := newProjectile(s)
	s.projectiles = append(s.projectiles, p)
	s.launched++
	log.Printf("[Fireworks] launch #%d: (%.0f, %.0f) -> (%.0f, %.0f), burst=%s",
		s.launched, p.OriginX, p.OriginY, p.TargetX, p.TargetY, p.Mode)
}

// Tick 推进一帧
//
// 顺序：清屏 → 计数器为 0 时发射 → 计数器循环递增 → 更新所有烟花并移除已熄灭的。
// 移除时保持剩余烟花的顺序。
func (s *Scene) Tick() {
	s.canvas.ClearRect(0, 0, s.Width, s.Height)

	if s.counter == 0 {
		s.Spawn()
	}
	s.counter = (s.counter + 1) % s.cfg.Launch.Interval

	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.UpdateAndDraw(s.canvas) {
			kept = append(kept, p)
		}
	}
	// 清空尾部引用，便于回收
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = kept
}

// Projectiles 返回活跃烟花列表（只读）
func (s *Scene) Projectiles() []*Projectile {
	return s.projectiles
}

// Counter 返回发射计数器当前值
func (s *Scene) Counter() int {
	return s.counter
}

// Launched 返回累计发射数量
func (s *Scene) Launched() int {
	return s.launched
}

// SparksAlive 返回所有已爆炸烟花中仍存活的火花总数
func (s *Scene) SparksAlive() int {
	n := 0
	for _, p := range s.projectiles {
		if p.Exploded() {
			n += p.AliveSparks()
		}
	}
	return n
}
