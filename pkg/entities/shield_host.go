package entities

import (
	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/shield"
)

// EntityHost 将 ECS 实体适配为护盾宿主
// 每次调用都重新读取组件，实体移动或换阵营后护盾立即跟随
type EntityHost struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

var _ shield.Host = (*EntityHost)(nil)

// NewEntityHost 创建宿主适配器
func NewEntityHost(em *ecs.EntityManager, id ecs.EntityID) *EntityHost {
	return &EntityHost{em: em, id: id}
}

// EntityID 宿主实体ID
func (h *EntityHost) EntityID() ecs.EntityID {
	return h.id
}

// Position 宿主所在格子，没有 PositionComponent 时为原点
func (h *EntityHost) Position() grid.Cell {
	pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, h.id)
	if !ok {
		return grid.Cell{}
	}
	return pos.Cell
}

// IsPlayerOwned 宿主是否属于玩家阵营
func (h *EntityHost) IsPlayerOwned() bool {
	faction, ok := ecs.GetComponent[*components.FactionComponent](h.em, h.id)
	return ok && faction.Faction == components.FactionPlayer
}
