package systems

import (
	"math"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/shield"
)

// SelectionSystem 护盾选择
// 同一时刻最多一个实体带 SelectedComponent
type SelectionSystem struct {
	entityManager *ecs.EntityManager
}

// NewSelectionSystem 创建选择系统
func NewSelectionSystem(em *ecs.EntityManager) *SelectionSystem {
	return &SelectionSystem{entityManager: em}
}

// Selected 当前选中的实体
func (s *SelectionSystem) Selected() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.SelectedComponent](s.entityManager)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Select 选中实体，取消其他选择
func (s *SelectionSystem) Select(id ecs.EntityID) {
	s.ClearSelection()
	ecs.AddComponent(s.entityManager, id, &components.SelectedComponent{})
}

// ClearSelection 取消所有选择
func (s *SelectionSystem) ClearSelection() {
	for _, id := range ecs.GetEntitiesWith1[*components.SelectedComponent](s.entityManager) {
		ecs.RemoveComponent[*components.SelectedComponent](s.entityManager, id)
	}
}

// SelectNext 按实体ID顺序循环选中下一个护盾
func (s *SelectionSystem) SelectNext() (ecs.EntityID, bool) {
	shields := ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager)
	if len(shields) == 0 {
		s.ClearSelection()
		return 0, false
	}

	next := shields[0]
	if current, ok := s.Selected(); ok {
		for i, id := range shields {
			if id == current {
				next = shields[(i+1)%len(shields)]
				break
			}
		}
	}

	s.Select(next)
	return next, true
}

// SelectAt 选中覆盖该点、且中心距离最近的护盾；没有护盾覆盖时取消选择
func (s *SelectionSystem) SelectAt(point grid.Vec2) (ecs.EntityID, bool) {
	var (
		best     ecs.EntityID
		bestDist = math.MaxFloat64
		found    bool
	)

	for _, id := range ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
		if comp.Shield == nil || !comp.Shield.Collision(point) {
			continue
		}
		if d := grid.Distance(comp.Shield.Center(), point); d < bestDist {
			best, bestDist, found = id, d, true
		}
	}

	if !found {
		s.ClearSelection()
		return 0, false
	}
	s.Select(best)
	return best, true
}

// SelectedShield 当前选中的护盾
func (s *SelectionSystem) SelectedShield() (*shield.RadialShield, bool) {
	id, ok := s.Selected()
	if !ok {
		return nil, false
	}
	comp, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
	if !ok || comp.Shield == nil {
		return nil, false
	}
	return comp.Shield, true
}

// SelectedGizmos 当前选中护盾的操作按钮，未选中时为空
func (s *SelectionSystem) SelectedGizmos() []shield.Gizmo {
	sh, ok := s.SelectedShield()
	if !ok {
		return nil
	}
	return sh.Gizmos()
}
