package systems

import (
	"image/color"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 能量条外观（像素）
const (
	energyBarWidth   = 36.0
	energyBarHeight  = 4.0
	energyBarOffsetY = 10.0
)

var (
	energyBarBackground = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	energyBarFill       = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	energyBarBroken     = color.RGBA{R: 220, G: 70, B: 60, A: 255}
	energyBarUnpowered  = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// ScreenProjector 世界坐标到屏幕坐标的投影
// render.EbitenRenderer 实现此接口
type ScreenProjector interface {
	WorldToScreen(p grid.Vec2) (float64, float64)
}

// energyBar 一条能量条的屏幕几何
type energyBar struct {
	X, Y     float64
	Fraction float64
	Color    color.RGBA
}

// EnergyBarRenderSystem 在护盾发生器下方绘制能量条
type EnergyBarRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewEnergyBarRenderSystem 创建能量条渲染系统
func NewEnergyBarRenderSystem(em *ecs.EntityManager) *EnergyBarRenderSystem {
	return &EnergyBarRenderSystem{entityManager: em}
}

// Draw 绘制所有护盾的能量条
func (s *EnergyBarRenderSystem) Draw(screen *ebiten.Image, projector ScreenProjector) {
	for _, bar := range s.bars(projector) {
		vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), energyBarWidth, energyBarHeight, energyBarBackground, false)
		if bar.Fraction > 0 {
			vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(energyBarWidth*bar.Fraction), energyBarHeight, bar.Color, false)
		}
	}
}

// bars 计算能量条几何，与绘制分离便于测试
func (s *EnergyBarRenderSystem) bars(projector ScreenProjector) []energyBar {
	ids := ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager)
	bars := make([]energyBar, 0, len(ids))

	for _, id := range ids {
		comp, _ := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
		if comp.Shield == nil {
			continue
		}
		energy := comp.Shield.Energy()

		x, y := projector.WorldToScreen(comp.Shield.Center())
		bar := energyBar{
			X:        x - energyBarWidth/2,
			Y:        y + energyBarOffsetY,
			Fraction: energy.Fraction(),
			Color:    energyBarFill,
		}
		switch {
		case energy.Broken():
			bar.Color = energyBarBroken
			// 重启期间只显示底色
			bar.Fraction = 0
		case !energy.Powered():
			bar.Color = energyBarUnpowered
		}
		bars = append(bars, bar)
	}
	return bars
}
