package app

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/fireworks"
	"github.com/decker502/fireworks/pkg/render"
)

// ErrUnboundedRun 无节奏且无 tick 上限的无头运行永远不会结束
var ErrUnboundedRun = errors.New("headless run needs a tick limit or a tick rate")

// HeadlessOptions 无头模式参数
type HeadlessOptions struct {
	// Ticks 运行的 tick 数，<= 0 表示直到 ctx 取消
	Ticks int
	// TPS 每秒 tick 数，<= 0 表示不限速
	TPS int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// HeadlessStats 无头运行统计
type HeadlessStats struct {
	Ticks           int
	Launched        int
	Circles         int
	PeakProjectiles int
	PeakSparks      int
	Active          int
}

// RunHeadless 在没有窗口的情况下驱动烟花场景
//
// 核心逻辑只暴露同步的 Tick()，这里用普通循环或 time.Ticker 代替游戏循环，
// 用于 CI 和性能观察。ctx 取消时提前结束并返回已收集的统计。
func RunHeadless(ctx context.Context, cfg *config.FireworksConfig, opts HeadlessOptions) (HeadlessStats, error) {
	var stats HeadlessStats
	if opts.Ticks <= 0 && opts.TPS <= 0 {
		return stats, ErrUnboundedRun
	}

	seed := resolveSeed(opts.Seed)
	frame := render.NewDisplayList(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	scene := fireworks.NewScene(cfg, frame, rand.New(rand.NewSource(seed)))
	log.Printf("[Headless] start: ticks=%d tps=%d seed=%d", opts.Ticks, opts.TPS, seed)

	var tick <-chan time.Time
	if opts.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	for opts.Ticks <= 0 || stats.Ticks < opts.Ticks {
		if tick != nil {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		scene.Tick()
		stats.record(scene, frame)
		frame.Reset()
	}

	log.Printf("[Headless] done: %+v", stats)
	return stats, nil
}

func (s *HeadlessStats) record(scene *fireworks.Scene, frame *render.DisplayList) {
	s.Ticks++
	s.Launched = scene.Launched()
	s.Circles += frame.Circles()
	s.Active = len(scene.Projectiles())
	if s.Active > s.PeakProjectiles {
		s.PeakProjectiles = s.Active
	}
	if sparks := scene.SparksAlive(); sparks > s.PeakSparks {
		s.PeakSparks = sparks
	}
}
