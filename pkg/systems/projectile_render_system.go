package systems

import (
	"image/color"
	"math"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
	"github.com/decker502/radial-shield/pkg/shield"
)

// 弹道与命中闪光的外观
const (
	projectileSize = 0.35
)

var (
	projectileMaterial = &render.Material{Name: "projectile", Color: color.RGBA{R: 255, G: 230, B: 120, A: 255}}
	impactFlashColor   = color.RGBA{R: 255, G: 255, B: 255, A: 220}
)

// ProjectileRenderSystem 弹道与命中闪光渲染系统
type ProjectileRenderSystem struct {
	entityManager *ecs.EntityManager
	mesh          *render.Mesh
}

// NewProjectileRenderSystem 创建弹道渲染系统
// mesh 为单位圆盘网格（通常与护盾共用）
func NewProjectileRenderSystem(em *ecs.EntityManager, mesh *render.Mesh) *ProjectileRenderSystem {
	return &ProjectileRenderSystem{entityManager: em, mesh: mesh}
}

// Draw 提交弹道与命中闪光的绘制请求
func (s *ProjectileRenderSystem) Draw(r shield.Renderer, viewport grid.CellRect) {
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos := p.Position()
		if !viewport.Contains(grid.Cell{X: int(math.Floor(pos.X)), Z: int(math.Floor(pos.Y))}) {
			continue
		}
		r.DrawMesh(s.mesh, discTransform(pos, render.LayerProjectile, projectileSize), projectileMaterial, 0)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ImpactFlashComponent, *components.LifetimeComponent](s.entityManager) {
		flash, _ := ecs.GetComponent[*components.ImpactFlashComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		// 闪光随剩余寿命淡出并略微扩大
		remaining := lifetime.Remaining()
		c := impactFlashColor
		c.A = uint8(float64(c.A) * remaining)
		mat := &render.Material{Name: "impact_flash", Color: c}
		size := flash.Size * (1.5 - 0.5*remaining)
		r.DrawMesh(s.mesh, discTransform(flash.Point, render.LayerMoteLow, size), mat, 0)
	}
}

func discTransform(p grid.Vec2, layer render.AltitudeLayer, size float64) render.Transform {
	return render.TRS(grid.Vec3{X: p.X, Y: render.AltitudeFor(layer), Z: p.Y}, 0, grid.Vec3{X: size, Y: 1, Z: size})
}
