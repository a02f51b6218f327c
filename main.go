// Command fireworks 在窗口中循环播放烟花粒子效果
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose         Enable verbose logging
//	--debug           Overlay tick / projectile / spark counters
//	--seed <n>        Random seed (0 = current time)
//	--headless        Run without a window and print statistics
//	--ticks <n>       Headless: number of ticks to run (0 = until interrupted)
//	--tps <n>         Headless: ticks per second (0 = as fast as possible)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/fireworks/pkg/app"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	debugFlag    = flag.Bool("debug", false, "Overlay debug counters")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = current time)")
	headlessFlag = flag.Bool("headless", false, "Run without a window and print statistics")
	ticksFlag    = flag.Int("ticks", 600, "Headless: number of ticks to run (0 = until interrupted)")
	tpsFlag      = flag.Int("tps", 0, "Headless: ticks per second (0 = as fast as possible)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	if *headlessFlag {
		runHeadless()
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Debug:   *debugFlag,
		Seed:    *seedFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func runHeadless() {
	app.ConfigureLogging(*verboseFlag)

	cfg, err := config.LoadFireworksConfig(config.FireworksConfigPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("烟花配置加载失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := app.RunHeadless(ctx, cfg, app.HeadlessOptions{
		Ticks: *ticksFlag,
		TPS:   *tpsFlag,
		Seed:  *seedFlag,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatalf("headless run failed: %v", err)
	}

	fmt.Printf("ticks=%d launched=%d active=%d peak_projectiles=%d peak_sparks=%d circles=%d\n",
		stats.Ticks, stats.Launched, stats.Active, stats.PeakProjectiles, stats.PeakSparks, stats.Circles)
}
