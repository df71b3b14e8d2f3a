package systems

import (
	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
)

// ShieldSystem 护盾能量系统
// 每帧推进所有护盾的充能、维持消耗与击穿重启倒计时
type ShieldSystem struct {
	entityManager *ecs.EntityManager
}

// NewShieldSystem 创建护盾能量系统
func NewShieldSystem(em *ecs.EntityManager) *ShieldSystem {
	return &ShieldSystem{entityManager: em}
}

// Update 推进 deltaTime 秒
func (s *ShieldSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager) {
		comp, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
		if !ok || comp.Shield == nil {
			continue
		}
		comp.Shield.Tick(deltaTime)
	}
}
