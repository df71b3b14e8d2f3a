package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
)

// offsetProjector 每格 10 像素、无镜头偏移
type offsetProjector struct{}

func (offsetProjector) WorldToScreen(p grid.Vec2) (float64, float64) {
	return p.X * 10, p.Y * 10
}

func TestEnergyBarRenderSystem_Bars(t *testing.T) {
	em := ecs.NewEntityManager()
	_, full := spawnShield(t, em, grid.Cell{X: 4, Z: 6}, 3)
	_, half := spawnShield(t, em, grid.Cell{X: 20, Z: 6}, 3)
	_, broken := spawnShield(t, em, grid.Cell{X: 40, Z: 6}, 3)
	_, unpowered := spawnShield(t, em, grid.Cell{X: 60, Z: 6}, 3)

	half.Energy().Damage(50)
	broken.Energy().Break()
	unpowered.Energy().SetPowered(false)

	bars := NewEnergyBarRenderSystem(em).bars(offsetProjector{})
	if len(bars) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(bars))
	}

	tests := []struct {
		name     string
		bar      energyBar
		fraction float64
		color    color.RGBA
	}{
		{"满能量", bars[0], 1, energyBarFill},
		{"半能量", bars[1], 0.5, energyBarFill},
		{"击穿", bars[2], 0, energyBarBroken},
		{"断电", bars[3], 1, energyBarUnpowered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.bar.Fraction-tt.fraction) > 1e-9 {
				t.Errorf("fraction = %v, want %v", tt.bar.Fraction, tt.fraction)
			}
			if tt.bar.Color != tt.color {
				t.Errorf("color = %v, want %v", tt.bar.Color, tt.color)
			}
		})
	}

	// 能量条居中于护盾中心下方
	center := full.Center()
	if bars[0].X != center.X*10-energyBarWidth/2 || bars[0].Y != center.Y*10+energyBarOffsetY {
		t.Errorf("bar position = (%v, %v)", bars[0].X, bars[0].Y)
	}
}
