package fireworks

import (
	"image/color"
	"math/rand"
)

// circleCall 记录一次 FillCircle 调用
type circleCall struct {
	X, Y, Radius float64
	Color        color.Color
}

// recordingCanvas 记录绘图调用的测试画布
type recordingCanvas struct {
	clears  int
	circles []circleCall
}

func (c *recordingCanvas) ClearRect(x, y, width, height float64) {
	c.clears++
}

func (c *recordingCanvas) FillCircle(x, y, radius float64, clr color.Color) {
	c.circles = append(c.circles, circleCall{X: x, Y: y, Radius: radius, Color: clr})
}

func (c *recordingCanvas) reset() {
	c.clears = 0
	c.circles = c.circles[:0]
}

// scriptedRand 先按顺序返回预设值，用完后回退到带种子的随机源
type scriptedRand struct {
	values   []float64
	next     int
	fallback *rand.Rand
}

func newScriptedRand(seed int64, values ...float64) *scriptedRand {
	return &scriptedRand{values: values, fallback: rand.New(rand.NewSource(seed))}
}

func (r *scriptedRand) Float64() float64 {
	if r.next < len(r.values) {
		v := r.values[r.next]
		r.next++
		return v
	}
	return r.fallback.Float64()
}
