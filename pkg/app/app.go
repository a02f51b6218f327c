// Package app 提供烟花效果应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载嵌入配置、创建离屏画布、
// 挂载烟花场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 在画面左上角叠加调试信息
	Debug bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是烟花应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.FireworksConfig
	sceneManager *game.SceneManager
	resize       *game.ResizeNotifier
	fireworks    *scenes.FireworksScene
	debug        bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 返回的错误都是致命的初始化错误。
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	fwCfg, err := config.LoadFireworksConfig(config.FireworksConfigPath)
	if err != nil {
		return nil, fmt.Errorf("烟花配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载烟花配置: %s", config.FireworksConfigPath)

	canvas := ebiten.NewImage(fwCfg.Canvas.Width, fwCfg.Canvas.Height)
	return newApp(cfg, fwCfg, canvas)
}

// newApp 使用已加载的配置和画布组装应用
func newApp(cfg Config, fwCfg *config.FireworksConfig, canvas *ebiten.Image) (*App, error) {
	seed := resolveSeed(cfg.Seed)
	log.Printf("[App] random seed: %d", seed)

	resize := game.NewResizeNotifier()
	fireworksScene := scenes.NewFireworksScene(fwCfg, canvas, resize, rand.New(rand.NewSource(seed)))

	sceneManager := game.NewSceneManager()
	if err := sceneManager.SwitchTo(fireworksScene); err != nil {
		return nil, fmt.Errorf("烟花场景启动失败: %w", err)
	}

	return &App{
		cfg:          fwCfg,
		sceneManager: sceneManager,
		resize:       resize,
		fireworks:    fireworksScene,
		debug:        cfg.Debug,
	}, nil
}

// ConfigureLogging 非 verbose 模式下丢弃日志
// 窗口模式和 headless 模式共用
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次），每次推进烟花场景一帧
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\nTPS %.0f  FPS %.0f",
			a.fireworks.DebugText(), ebiten.ActualTPS(), ebiten.ActualFPS()), 8, 8)
	}
}

// Layout 返回逻辑屏幕尺寸
//
// 画布尺寸固定，Ebitengine 会自动处理缩放；外部尺寸变化时通知窗口尺寸观察者。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.resize.Notify(outsideWidth, outsideHeight)
	return a.cfg.Canvas.Width, a.cfg.Canvas.Height
}

// WindowSize 返回窗口初始尺寸
func (a *App) WindowSize() (int, int) {
	return a.cfg.Canvas.Width, a.cfg.Canvas.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Shutdown 卸载当前场景（停止动画、取消注册窗口尺寸观察者）
// 可重复调用
func (a *App) Shutdown() {
	a.sceneManager.Close()
	log.Printf("[App] shutdown")
}
