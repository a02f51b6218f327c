package fireworks

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/fireworks/pkg/config"
)

func TestNewScene_Bounds(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(1)))

	if s.Width != 600 || s.Height != 500 {
		t.Errorf("expected 600x500, got %fx%f", s.Width, s.Height)
	}
	if s.Center != 300 {
		t.Errorf("expected center = 300, got %f", s.Center)
	}
	if s.SpawnLeft != 225 || s.SpawnRight != 375 {
		t.Errorf("expected spawn band [225, 375], got [%f, %f]", s.SpawnLeft, s.SpawnRight)
	}
	if len(s.Projectiles()) != 0 || s.Counter() != 0 {
		t.Error("new scene should be empty with counter 0")
	}
}

// TestScene_ResizeTruncates 取整规则：奇数宽度时中心与发射带向下取整
func TestScene_ResizeTruncates(t *testing.T) {
	cfg := config.DefaultFireworksConfig()
	cfg.Canvas.Width = 601
	s := NewScene(cfg, &recordingCanvas{}, rand.New(rand.NewSource(1)))

	// center = 300, 300 - 75 = 225, 300 + 75 = 375
	if s.Center != 300 || s.SpawnLeft != 225 || s.SpawnRight != 375 {
		t.Errorf("unexpected bounds center=%f band=[%f, %f]", s.Center, s.SpawnLeft, s.SpawnRight)
	}

	cfg.Canvas.Width = 610
	s.Resize()
	// center = 305, 305 - 76.25 → 228, 305 + 76.25 → 381
	if s.Center != 305 || s.SpawnLeft != 228 || s.SpawnRight != 381 {
		t.Errorf("unexpected bounds after resize center=%f band=[%f, %f]", s.Center, s.SpawnLeft, s.SpawnRight)
	}
}

// TestScene_SpawnCadence 从第一次 Tick 开始，每 50 次 Tick 发射一枚
func TestScene_SpawnCadence(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(2)))

	for n := 1; n <= 500; n++ {
		s.Tick()
		want := (n + 49) / 50
		if s.Launched() != want {
			t.Fatalf("after %d ticks expected %d launches, got %d", n, want, s.Launched())
		}
		if s.Counter() != n%50 {
			t.Fatalf("after %d ticks expected counter %d, got %d", n, n%50, s.Counter())
		}
	}
}

func TestScene_TickClearsCanvas(t *testing.T) {
	s, canvas := newTestScene(rand.New(rand.NewSource(3)))
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if canvas.clears != 10 {
		t.Errorf("expected one clear per tick, got %d", canvas.clears)
	}
}

// TestScene_EndToEnd 完整生命周期：发射 → 上升 120 tick → 爆炸 → 火花熄灭后移除
func TestScene_EndToEnd(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(42)))

	s.Tick()
	if len(s.Projectiles()) != 1 {
		t.Fatalf("expected exactly 1 projectile after first tick, got %d", len(s.Projectiles()))
	}
	first := s.Projectiles()[0]
	if first.Elapsed() != 1 || first.Exploded() {
		t.Fatalf("expected elapsed = 1 and not exploded, got %d / %v", first.Elapsed(), first.Exploded())
	}

	for i := 0; i < 119; i++ {
		s.Tick()
	}
	if first.Elapsed() != 120 || !first.Exploded() {
		t.Fatalf("expected elapsed = 120 and exploded, got %d / %v", first.Elapsed(), first.Exploded())
	}
	if first.AliveSparks() != 100 {
		t.Fatalf("expected 100 freshly released sparks, got %d", first.AliveSparks())
	}

	maxLife := 0.0
	for _, spark := range first.Sparks() {
		maxLife = math.Max(maxLife, spark.Life)
	}

	ticks := 0
	for contains(s.Projectiles(), first) {
		s.Tick()
		ticks++
		if ticks > 100 {
			t.Fatal("first projectile was never removed")
		}
	}
	if want := int(math.Ceil(maxLife)); ticks != want {
		t.Errorf("expected removal %d ticks after the explosion, got %d", want, ticks)
	}
}

// TestScene_RetainInvariant 列表中的烟花要么未爆炸，要么至少有一个火花存活
func TestScene_RetainInvariant(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(7)))

	removed := 0
	for i := 0; i < 2000; i++ {
		before := append([]*Projectile(nil), s.Projectiles()...)
		s.Tick()

		for _, p := range s.Projectiles() {
			if p.Exploded() && p.AliveSparks() == 0 {
				t.Fatalf("tick %d: retained a fully decayed projectile", i)
			}
		}
		for _, p := range before {
			if !contains(s.Projectiles(), p) {
				removed++
				if !p.Exploded() || p.AliveSparks() != 0 {
					t.Fatalf("tick %d: removed an active projectile", i)
				}
			}
		}
	}

	if removed == 0 {
		t.Error("expected some projectiles to be removed over 2000 ticks")
	}
	// 节奏固定时，活跃数量自我约束
	if n := len(s.Projectiles()); n > 10 {
		t.Errorf("active projectile count should stay small, got %d", n)
	}
}

func TestScene_OrderPreserved(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(8)))
	for i := 0; i < 400; i++ {
		s.Tick()
		ps := s.Projectiles()
		for j := 1; j < len(ps); j++ {
			if ps[j-1].Elapsed() < ps[j].Elapsed() {
				t.Fatalf("tick %d: projectiles out of launch order", i)
			}
		}
	}
}

func TestScene_SparksAlive(t *testing.T) {
	s, _ := newTestScene(rand.New(rand.NewSource(9)))
	for i := 0; i < 120; i++ {
		s.Tick()
	}
	// 只有第一枚烟花爆炸了
	if got := s.SparksAlive(); got != 100 {
		t.Errorf("expected 100 live sparks right after the first explosion, got %d", got)
	}
}

func contains(ps []*Projectile, target *Projectile) bool {
	for _, p := range ps {
		if p == target {
			return true
		}
	}
	return false
}
