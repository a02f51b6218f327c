package fireworks

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/fireworks/pkg/config"
)

func testSpark(life float64) *Spark {
	return &Spark{
		X:      100,
		Y:      100,
		Angle:  0,
		Speed:  1,
		Life:   life,
		Color:  color.RGBA{R: 255, A: 255},
		Radius: 1,
		alive:  true,
	}
}

// TestSpark_MinimumLifeBoundary 寿命为 30 的火花在第 30 次更新时熄灭
func TestSpark_MinimumLifeBoundary(t *testing.T) {
	canvas := &recordingCanvas{}
	s := testSpark(30)

	for i := 1; i <= 29; i++ {
		s.UpdateAndDraw(canvas)
		if !s.Alive() {
			t.Fatalf("第 %d 次更新后火花不应熄灭", i)
		}
	}
	if len(canvas.circles) != 29 {
		t.Errorf("expected 29 draws, got %d", len(canvas.circles))
	}

	s.UpdateAndDraw(canvas)
	if s.Alive() {
		t.Fatal("第 30 次更新后火花应该熄灭")
	}
	if len(canvas.circles) != 29 {
		t.Errorf("熄灭的那一帧不应绘制，draws = %d", len(canvas.circles))
	}
}

// TestSpark_FractionalLife 小数寿命：30.5 在第 31 次更新时熄灭
func TestSpark_FractionalLife(t *testing.T) {
	canvas := &recordingCanvas{}
	s := testSpark(30.5)

	for i := 0; i < 30; i++ {
		s.UpdateAndDraw(canvas)
	}
	if !s.Alive() {
		t.Fatalf("剩余寿命 %.2f 时应该存活", s.Life)
	}

	s.UpdateAndDraw(canvas)
	if s.Alive() {
		t.Fatal("第 31 次更新后火花应该熄灭")
	}
}

func TestSpark_MovementAndMonotonicLife(t *testing.T) {
	canvas := &recordingCanvas{}
	s := testSpark(10)
	s.Angle = math.Pi / 2
	s.Speed = 2

	prevLife := s.Life
	for i := 1; i <= 5; i++ {
		s.UpdateAndDraw(canvas)
		if s.Life > prevLife {
			t.Fatalf("life increased: %f -> %f", prevLife, s.Life)
		}
		prevLife = s.Life
	}

	const tolerance = 1e-9
	if math.Abs(s.X-100) > tolerance {
		t.Errorf("expected X unchanged at 100, got %f", s.X)
	}
	if math.Abs(s.Y-110) > tolerance {
		t.Errorf("expected Y = 110 after 5 steps of speed 2 downward, got %f", s.Y)
	}

	last := canvas.circles[len(canvas.circles)-1]
	if last.X != s.X || last.Y != s.Y || last.Radius != 1 {
		t.Errorf("draw should use the new position and radius 1, got %+v", last)
	}
	if last.Color != s.Color {
		t.Errorf("draw should use the spark color, got %v", last.Color)
	}
}

func TestSpark_NoMotionAfterDeath(t *testing.T) {
	canvas := &recordingCanvas{}
	s := testSpark(2)

	s.UpdateAndDraw(canvas) // life 1
	s.UpdateAndDraw(canvas) // life 0 → 熄灭
	if s.Alive() {
		t.Fatal("spark should be dead")
	}

	x, y, life := s.X, s.Y, s.Life
	for i := 0; i < 10; i++ {
		s.UpdateAndDraw(canvas)
	}
	if s.X != x || s.Y != y {
		t.Errorf("dead spark moved: (%f, %f) -> (%f, %f)", x, y, s.X, s.Y)
	}
	if s.Life != life {
		t.Errorf("dead spark life changed: %f -> %f", life, s.Life)
	}
	if s.Alive() {
		t.Error("alive must not flip back to true")
	}
	if len(canvas.circles) != 1 {
		t.Errorf("expected exactly 1 draw, got %d", len(canvas.circles))
	}
}

// TestNewSpark_Ranges 随机抽取结果落在配置范围内
func TestNewSpark_Ranges(t *testing.T) {
	cfg := config.DefaultFireworksConfig().Spark

	tests := []struct {
		name  string
		draws []float64
	}{
		{name: "lower bounds", draws: []float64{0, 0, 0}},
		{name: "midpoints", draws: []float64{0.5, 0.5, 0.5}},
		{name: "near upper bounds", draws: []float64{0.999, 0.999, 0.999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := newScriptedRand(1, tt.draws...)
			s := newSpark(rng, 10, 20, color.White, cfg)

			if s.X != 10 || s.Y != 20 {
				t.Errorf("expected position (10, 20), got (%f, %f)", s.X, s.Y)
			}
			if s.Angle < 0 || s.Angle >= 2*math.Pi {
				t.Errorf("angle %f out of [0, 2π)", s.Angle)
			}
			if s.Speed < cfg.SpeedMin || s.Speed > cfg.SpeedMax {
				t.Errorf("speed %f out of [%f, %f]", s.Speed, cfg.SpeedMin, cfg.SpeedMax)
			}
			if s.Life < cfg.LifeMin || s.Life > cfg.LifeMax {
				t.Errorf("life %f out of [%f, %f]", s.Life, cfg.LifeMin, cfg.LifeMax)
			}
			if !s.Alive() {
				t.Error("new spark should be alive")
			}
		})
	}

	// 抽取顺序：角度、速度、寿命
	rng := newScriptedRand(1, 0.25, 0, 1)
	s := newSpark(rng, 0, 0, color.White, cfg)
	if math.Abs(s.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("expected angle π/2 from first draw, got %f", s.Angle)
	}
	if s.Speed != cfg.SpeedMin {
		t.Errorf("expected minimum speed from second draw, got %f", s.Speed)
	}
	if s.Life != cfg.LifeMax {
		t.Errorf("expected maximum life from third draw, got %f", s.Life)
	}
}
