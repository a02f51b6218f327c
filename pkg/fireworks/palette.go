package fireworks

import (
	"image/color"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/lucasb-eyer/go-colorful"
)

// BurstMode 爆炸配色模式
type BurstMode int

const (
	// BurstAll 所有火花共用同一个随机色相
	BurstAll BurstMode = iota
	// BurstRandom 每个火花独立随机色相
	BurstRandom
)

func (m BurstMode) String() string {
	switch m {
	case BurstAll:
		return "all"
	case BurstRandom:
		return "random"
	default:
		return "unknown"
	}
}

// HSL 将色相 (0-360)、饱和度与亮度 (0-1) 转换为不透明 RGBA
func HSL(hue, saturation, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// randomHue 在 palette 的饱和度/亮度下随机取一个色相
func randomHue(rng Rand, palette config.PaletteConfig) color.RGBA {
	return HSL(between(rng, 0, 360), palette.Saturation, palette.Lightness)
}
