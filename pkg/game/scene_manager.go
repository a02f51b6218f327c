package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the app's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
//
// 旧场景（如果实现 Mountable）先卸载，新场景再挂载。
// 挂载失败时不保留任何活动场景，并返回错误。
func (sm *SceneManager) SwitchTo(scene Scene) error {
	sm.unmountCurrent()

	if m, ok := scene.(Mountable); ok {
		if err := m.OnMount(); err != nil {
			return fmt.Errorf("failed to mount scene: %w", err)
		}
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] 切换到场景: %T", scene)
	return nil
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 卸载当前场景
// 宿主退出时调用，可重复调用
func (sm *SceneManager) Close() {
	sm.unmountCurrent()
}

func (sm *SceneManager) unmountCurrent() {
	if sm.currentScene == nil {
		return
	}
	if m, ok := sm.currentScene.(Mountable); ok {
		m.OnUnmount()
	}
	log.Printf("[SceneManager] 卸载场景: %T", sm.currentScene)
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
