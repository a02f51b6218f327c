package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/fireworks"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoCanvas 绘图表面不可用，场景无法启动
var ErrNoCanvas = errors.New("fireworks: drawing surface unavailable")

// FireworksScene 烟花效果场景
//
// 挂载时注册窗口尺寸观察者并开始逐帧推进，卸载时停止并取消注册。
// 每次 Update 恰好执行一次 Scene.Tick()，绘图指令记录在 DisplayList 中，
// Draw 时回放到离屏画布，再以配置的不透明度合成到屏幕背景上。
type FireworksScene struct {
	cfg    *config.FireworksConfig
	scene  *fireworks.Scene
	frame  *render.DisplayList
	canvas *ebiten.Image

	resize      *game.ResizeNotifier
	unsubscribe func()
	mounted     bool

	ticks   int
	resizes int
}

// NewFireworksScene 创建烟花场景
//
// 参数:
//   - cfg: 烟花配置
//   - canvas: 离屏画布（通常为 cfg.Canvas 尺寸），为 nil 时 OnMount 返回 ErrNoCanvas
//   - resize: 窗口尺寸观察者注册表，可为 nil
//   - rng: 随机数来源
func NewFireworksScene(cfg *config.FireworksConfig, canvas *ebiten.Image, resize *game.ResizeNotifier, rng fireworks.Rand) *FireworksScene {
	frame := render.NewDisplayList(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	return &FireworksScene{
		cfg:    cfg,
		scene:  fireworks.NewScene(cfg, frame, rng),
		frame:  frame,
		canvas: canvas,
		resize: resize,
	}
}

// OnMount 启动动画并注册窗口尺寸观察者
func (s *FireworksScene) OnMount() error {
	if s.canvas == nil {
		return ErrNoCanvas
	}
	if s.mounted {
		return nil
	}

	if s.resize != nil {
		s.unsubscribe = s.resize.Subscribe(s.onResize)
	}
	s.mounted = true
	log.Printf("[FireworksScene] mounted, canvas %dx%d", s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	return nil
}

// OnUnmount 停止动画并取消注册窗口尺寸观察者
func (s *FireworksScene) OnUnmount() {
	if !s.mounted {
		return
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.mounted = false
	log.Printf("[FireworksScene] unmounted after %d ticks", s.ticks)
}

// Mounted 是否处于挂载状态
func (s *FireworksScene) Mounted() bool {
	return s.mounted
}

// onResize 画布尺寸固定，只重新计算派生边界
func (s *FireworksScene) onResize(outsideWidth, outsideHeight int) {
	s.resizes++
	s.scene.Resize()
	log.Printf("[FireworksScene] resize to %dx%d, spawn band [%.0f, %.0f]",
		outsideWidth, outsideHeight, s.scene.SpawnLeft, s.scene.SpawnRight)
}

// Update 推进一帧
// 未挂载时不做任何事
func (s *FireworksScene) Update(deltaTime float64) {
	if !s.mounted {
		return
	}
	s.scene.Tick()
	s.ticks++
}

// Draw 回放本帧绘图指令并合成到屏幕
func (s *FireworksScene) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	s.frame.Replay(s.canvas)

	screen.Fill(s.cfg.BackgroundColor())
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(s.cfg.Canvas.Opacity))
	screen.DrawImage(s.canvas, op)
}

// Scene 返回底层烟花场景（只读使用）
func (s *FireworksScene) Scene() *fireworks.Scene {
	return s.scene
}

// Ticks 返回挂载期间执行的 tick 总数
func (s *FireworksScene) Ticks() int {
	return s.ticks
}

// Resizes 返回收到的窗口尺寸变化次数
func (s *FireworksScene) Resizes() int {
	return s.resizes
}

// DebugText 返回调试信息（用于 --debug 叠加层）
func (s *FireworksScene) DebugText() string {
	return fmt.Sprintf("tick %d  counter %d/%d\nprojectiles %d  sparks %d\nlaunched %d",
		s.ticks, s.scene.Counter(), s.cfg.Launch.Interval,
		len(s.scene.Projectiles()), s.scene.SparksAlive(), s.scene.Launched())
}
