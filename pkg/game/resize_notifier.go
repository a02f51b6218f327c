package game

import "log"

// ResizeFunc 窗口尺寸变化回调
type ResizeFunc func(outsideWidth, outsideHeight int)

// ResizeNotifier 窗口尺寸观察者注册表
//
// Ebitengine 每帧都会调用 Layout()，Notify() 只在外部尺寸真正变化时通知订阅者。
// 所有调用都发生在游戏循环线程上，不需要加锁。
type ResizeNotifier struct {
	observers map[int]ResizeFunc
	nextID    int

	lastWidth, lastHeight int
}

// NewResizeNotifier 创建空的注册表
func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{observers: make(map[int]ResizeFunc)}
}

// Subscribe 注册观察者，返回取消注册函数
// 取消函数可重复调用
func (n *ResizeNotifier) Subscribe(fn ResizeFunc) (unsubscribe func()) {
	id := n.nextID
	n.nextID++
	n.observers[id] = fn
	return func() {
		delete(n.observers, id)
	}
}

// Observers 返回当前注册的观察者数量
func (n *ResizeNotifier) Observers() int {
	return len(n.observers)
}

// Notify 报告当前外部尺寸，变化时通知所有观察者
func (n *ResizeNotifier) Notify(outsideWidth, outsideHeight int) {
	if outsideWidth == n.lastWidth && outsideHeight == n.lastHeight {
		return
	}
	n.lastWidth, n.lastHeight = outsideWidth, outsideHeight

	log.Printf("[Resize] outside size %dx%d, %d observer(s)", outsideWidth, outsideHeight, len(n.observers))
	for _, fn := range n.observers {
		fn(outsideWidth, outsideHeight)
	}
}
