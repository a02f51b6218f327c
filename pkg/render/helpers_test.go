package render

import "github.com/decker502/fireworks/pkg/config"

// fixedRand 始终返回同一个值
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func defaultConfig() *config.FireworksConfig {
	return config.DefaultFireworksConfig()
}
