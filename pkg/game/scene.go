package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen hosted by the app.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Mountable 是一个可选接口，用于接收宿主的生命周期事件
//
// SceneManager 在切换到场景时调用 OnMount()，在切换走或关闭时调用 OnUnmount()。
// OnMount() 返回错误表示场景无法启动（例如绘图表面不可用），宿主应将其视为致命错误。
type Mountable interface {
	OnMount() error
	OnUnmount()
}
