// Package main 校验烟花配置文件
//
// Usage:
//
//	go run ./cmd/validate_config [path]
//
// 默认校验 data/fireworks.yaml，并检查其与内置默认值是否一致。
package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"

	"github.com/decker502/fireworks/pkg/config"
)

func main() {
	flag.Parse()

	path := config.FireworksConfigPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseFireworksConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 画布 %dx%d, 每 %d tick 发射, 上升 %d tick, %d 个火花\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Launch.Interval, cfg.Launch.FlightTicks, cfg.Launch.SparkCount)

	if !reflect.DeepEqual(cfg, config.DefaultFireworksConfig()) {
		fmt.Printf("❌ 与 DefaultFireworksConfig() 不一致，请同步更新\n")
		os.Exit(1)
	}
	fmt.Printf("✅ 与内置默认值一致\n")
}
