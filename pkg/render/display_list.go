// Package render 把同步的烟花核心逻辑接到 Ebitengine 的 Update/Draw 分离模型上
//
// 核心逻辑在 Update 中通过 fireworks.Canvas 发出绘图指令，DisplayList 只负责记录；
// Draw 时再把记录的指令按顺序回放到一张持久的离屏图像上。
// 离屏图像在帧与帧之间保留像素，行为与 HTML canvas 一致。
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OpKind 绘图指令类型
type OpKind int

const (
	// OpClear 清除矩形区域
	OpClear OpKind = iota
	// OpCircle 填充圆形
	OpCircle
)

// Op 一条绘图指令
type Op struct {
	Kind OpKind

	// 矩形 (X, Y, Width, Height) 或圆心 (X, Y) + Radius
	X, Y          float64
	Width, Height float64
	Radius        float64

	Color color.Color
}

// DisplayList 绘图指令记录器，实现 fireworks.Canvas
type DisplayList struct {
	ops []Op

	// 目标画布尺寸，用于识别整屏清除
	width, height float64
}

// NewDisplayList 创建空的指令列表
// width, height 为回放目标画布的尺寸
func NewDisplayList(width, height float64) *DisplayList {
	return &DisplayList{
		ops:    make([]Op, 0, 256),
		width:  width,
		height: height,
	}
}

// ClearRect 记录清除指令
//
// 覆盖整个画布的清除会让之前记录的指令全部失效，直接丢弃，
// 这样多次 Update 之间没有 Draw 时列表也只保留最后一帧。
func (d *DisplayList) ClearRect(x, y, width, height float64) {
	if d.coversCanvas(x, y, width, height) {
		d.Reset()
	}
	d.ops = append(d.ops, Op{Kind: OpClear, X: x, Y: y, Width: width, Height: height})
}

func (d *DisplayList) coversCanvas(x, y, width, height float64) bool {
	if d.width <= 0 || d.height <= 0 {
		return false
	}
	return x <= 0 && y <= 0 && x+width >= d.width && y+height >= d.height
}

// FillCircle 记录填充圆形指令
func (d *DisplayList) FillCircle(x, y, radius float64, clr color.Color) {
	d.ops = append(d.ops, Op{Kind: OpCircle, X: x, Y: y, Radius: radius, Color: clr})
}

// Ops 返回尚未回放的指令（只读）
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len 返回尚未回放的指令数量
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Circles 返回尚未回放的填充圆形指令数量
func (d *DisplayList) Circles() int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == OpCircle {
			n++
		}
	}
	return n
}

// Reset 丢弃所有指令，保留底层容量
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Replay 按记录顺序把指令回放到 dst，然后清空列表
//
// Update 在两次 Draw 之间运行多次时，整屏清除之前的指令已被丢弃，回放得到最后一帧的结果；
// Draw 比 Update 更频繁时列表为空，dst 保持上一帧的像素。
func (d *DisplayList) Replay(dst *ebiten.Image) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			rect := image.Rect(int(op.X), int(op.Y), int(op.X+op.Width), int(op.Y+op.Height))
			if sub, ok := dst.SubImage(rect).(*ebiten.Image); ok {
				sub.Clear()
			}
		case OpCircle:
			vector.DrawFilledCircle(dst, float32(op.X), float32(op.Y), float32(op.Radius), op.Color, true)
		}
	}
	d.Reset()
}
