package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/fireworks/pkg/embedded"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// FireworksConfigPath 嵌入配置文件路径
const FireworksConfigPath = "data/fireworks.yaml"

// FireworksConfig 烟花效果配置
//
// 所有值在编译期嵌入（见 embed.go），运行时不可修改。
//
// 配置文件位置: data/fireworks.yaml
type FireworksConfig struct {
	// Canvas 画布尺寸与合成参数
	Canvas CanvasConfig `yaml:"canvas"`

	// Launch 发射节奏与上升阶段
	Launch LaunchConfig `yaml:"launch"`

	// Spark 火花粒子参数
	Spark SparkConfig `yaml:"spark"`

	// Palette 爆炸配色
	Palette PaletteConfig `yaml:"palette"`
}

// CanvasConfig 画布配置
type CanvasConfig struct {
	// Width, Height 逻辑尺寸（像素）
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background 背景颜色名（golang.org/x/image/colornames 中的名称，如 "black"）
	Background string `yaml:"background"`

	// Opacity 画布合成到屏幕时的不透明度 (0-1)
	Opacity float64 `yaml:"opacity"`
}

// LaunchConfig 发射配置
type LaunchConfig struct {
	// Interval 发射间隔（tick），每 Interval 次 Tick 发射一枚
	Interval int `yaml:"interval"`

	// FlightTicks 上升阶段持续 tick 数，到达后爆炸
	FlightTicks int `yaml:"flightTicks"`

	// SparkCount 每枚烟花的火花数量
	SparkCount int `yaml:"sparkCount"`

	// MarkerRadius 上升阶段标记点半径
	MarkerRadius float64 `yaml:"markerRadius"`
}

// SparkConfig 火花配置
type SparkConfig struct {
	Radius float64 `yaml:"radius"`

	// SpeedMin, SpeedMax 速度范围（像素/tick）
	SpeedMin float64 `yaml:"speedMin"`
	SpeedMax float64 `yaml:"speedMax"`

	// LifeMin, LifeMax 寿命范围（tick，可以是小数）
	LifeMin float64 `yaml:"lifeMin"`
	LifeMax float64 `yaml:"lifeMax"`
}

// PaletteConfig 配色配置
type PaletteConfig struct {
	// Saturation, Lightness HSL 饱和度与亮度 (0-1)
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`

	// RandomBurstChance 使用 "random" 爆炸模式（每个火花独立取色）的概率
	RandomBurstChance float64 `yaml:"randomBurstChance"`
}

// DefaultFireworksConfig 返回默认配置
// 与 data/fireworks.yaml 保持一致
func DefaultFireworksConfig() *FireworksConfig {
	return &FireworksConfig{
		Canvas: CanvasConfig{
			Width:      600,
			Height:     500,
			Background: "black",
			Opacity:    0.9,
		},
		Launch: LaunchConfig{
			Interval:     50,
			FlightTicks:  120,
			SparkCount:   100,
			MarkerRadius: 2,
		},
		Spark: SparkConfig{
			Radius:   1,
			SpeedMin: 0.5,
			SpeedMax: 2,
			LifeMin:  30,
			LifeMax:  70,
		},
		Palette: PaletteConfig{
			Saturation:        1.0,
			Lightness:         0.8,
			RandomBurstChance: 0.5,
		},
	}
}

// LoadFireworksConfig 加载烟花配置
//
// 从嵌入文件系统读取 YAML 格式的配置文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/fireworks.yaml"）
//
// 返回:
//   - *FireworksConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadFireworksConfig(path string) (*FireworksConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fireworks config: %w", err)
	}
	return ParseFireworksConfig(data)
}

// ParseFireworksConfig 解析并验证 YAML 配置
// 未出现的字段保留默认值
func ParseFireworksConfig(data []byte) (*FireworksConfig, error) {
	config := DefaultFireworksConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse fireworks config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fireworks config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 画布尺寸、发射间隔、上升 tick 数必须为正
//   - 范围的 Min 应小于等于 Max
//   - 比例值必须在 [0, 1] 内
//   - 背景颜色名必须可识别
func (c *FireworksConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, ok := colornames.Map[c.Canvas.Background]; !ok {
		return fmt.Errorf("unknown canvas background color %q", c.Canvas.Background)
	}
	if err := checkUnit("canvas opacity", c.Canvas.Opacity); err != nil {
		return err
	}

	if c.Launch.Interval <= 0 {
		return fmt.Errorf("launch interval must be positive, got %d", c.Launch.Interval)
	}
	if c.Launch.FlightTicks <= 0 {
		return fmt.Errorf("flight ticks must be positive, got %d", c.Launch.FlightTicks)
	}
	if c.Launch.SparkCount < 0 {
		return fmt.Errorf("spark count must not be negative, got %d", c.Launch.SparkCount)
	}
	if c.Launch.MarkerRadius < 0 || c.Spark.Radius < 0 {
		return fmt.Errorf("radius must not be negative (marker %.1f, spark %.1f)",
			c.Launch.MarkerRadius, c.Spark.Radius)
	}

	if c.Spark.SpeedMin < 0 || c.Spark.SpeedMin > c.Spark.SpeedMax {
		return fmt.Errorf("spark speed range invalid: min(%.2f) max(%.2f)",
			c.Spark.SpeedMin, c.Spark.SpeedMax)
	}
	if c.Spark.LifeMin < 0 || c.Spark.LifeMin > c.Spark.LifeMax {
		return fmt.Errorf("spark life range invalid: min(%.2f) max(%.2f)",
			c.Spark.LifeMin, c.Spark.LifeMax)
	}

	if err := checkUnit("palette saturation", c.Palette.Saturation); err != nil {
		return err
	}
	if err := checkUnit("palette lightness", c.Palette.Lightness); err != nil {
		return err
	}
	return checkUnit("random burst chance", c.Palette.RandomBurstChance)
}

// BackgroundColor 返回背景颜色
// Validate() 通过后总能找到
func (c *FireworksConfig) BackgroundColor() color.RGBA {
	return colornames.Map[c.Canvas.Background]
}

func checkUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %.2f", name, v)
	}
	return nil
}
