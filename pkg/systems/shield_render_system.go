package systems

import (
	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/shield"
)

// ShieldRenderSystem 护盾渲染系统
//
// 激活的护盾绘制圆盘（是否真正绘制由护盾自身的渲染开关与视口剔除决定），
// 被选中的护盾额外绘制半径圆环。未激活（无能量、半径为0）的护盾不绘制圆盘。
type ShieldRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewShieldRenderSystem 创建护盾渲染系统
func NewShieldRenderSystem(em *ecs.EntityManager) *ShieldRenderSystem {
	return &ShieldRenderSystem{entityManager: em}
}

// Draw 向渲染器提交所有护盾的绘制请求
func (s *ShieldRenderSystem) Draw(r shield.Renderer, viewport grid.CellRect) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager) {
		comp, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
		if !ok || comp.Shield == nil {
			continue
		}

		if comp.Shield.IsActive() {
			comp.Shield.DrawShield(r, viewport)
		}

		// 选中圆环不受渲染开关与能量状态影响
		if ecs.HasComponent[*components.SelectedComponent](s.entityManager, id) {
			comp.Shield.DrawSelectionOverlay(r)
		}
	}
}
