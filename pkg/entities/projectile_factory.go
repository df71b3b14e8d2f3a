package entities

import (
	"fmt"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
)

// ImpactFlashDuration 护盾命中闪光持续时间（秒）
const ImpactFlashDuration = 0.25

// ProjectileSpec 弹道参数
type ProjectileSpec struct {
	Origin    grid.Vec2
	Direction grid.Vec2
	Speed     float64
	Damage    int
	MaxRange  float64
	Faction   components.Faction
}

// NewProjectile 创建直线弹道实体
// 方向向量会被归一化，零向量视为非法
func NewProjectile(em *ecs.EntityManager, spec ProjectileSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Direction.Length() == 0 {
		return 0, fmt.Errorf("projectile direction cannot be zero")
	}
	if spec.Speed <= 0 {
		return 0, fmt.Errorf("projectile speed must be > 0, got %.2f", spec.Speed)
	}
	if spec.MaxRange <= 0 {
		return 0, fmt.Errorf("projectile max range must be > 0, got %.2f", spec.MaxRange)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.ProjectileComponent{
		Origin:    spec.Origin,
		Direction: spec.Direction.Normalized(),
		Speed:     spec.Speed,
		MaxRange:  spec.MaxRange,
		Damage:    spec.Damage,
		Faction:   spec.Faction,
	})
	return entityID, nil
}

// NewImpactFlash 创建护盾命中闪光
func NewImpactFlash(em *ecs.EntityManager, point grid.Vec2, size float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.ImpactFlashComponent{Point: point, Size: size})
	em.AddComponent(entityID, &components.LifetimeComponent{MaxLifetime: ImpactFlashDuration})
	return entityID
}
