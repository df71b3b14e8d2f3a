package entities

import (
	"fmt"
	"log"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/config"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
	"github.com/decker502/radial-shield/pkg/shield"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 所有护盾共用同一个单位圆盘网格
	shieldDiscMesh *render.Mesh
	// 材质按护盾类型缓存
	shieldMaterials = map[string]*render.Material{}
)

// ShieldDiscMesh 返回共享的护盾圆盘网格
func ShieldDiscMesh() *render.Mesh {
	if shieldDiscMesh == nil {
		shieldDiscMesh = render.NewDiscMesh(config.DiscMeshSegments, config.DiscCenterAlpha)
	}
	return shieldDiscMesh
}

// shieldMaterial 获取或创建护盾类型对应的材质
func shieldMaterial(defName string, def *config.ShieldDef) *render.Material {
	if mat, ok := shieldMaterials[defName]; ok {
		return mat
	}
	mat := &render.Material{
		Name:  "shield/" + defName,
		Color: def.RGBA(),
		Blend: ebiten.BlendSourceOver,
	}
	shieldMaterials[defName] = mat
	return mat
}

// ShieldProps 将配置转换为护盾参数
func ShieldProps(defName string, def *config.ShieldDef) (shield.Props, shield.EnergyProps) {
	props := shield.Props{
		MaxRadius:       def.MaxRadius,
		MinRadius:       def.MinRadius,
		CollisionMargin: def.Margin(),
		VisualScale:     def.Scale(),
		Mesh:            ShieldDiscMesh(),
		Material:        shieldMaterial(defName, def),
	}
	energy := shield.EnergyProps{
		Max:               def.Energy.Max,
		RechargePerSecond: def.Energy.RechargePerSecond,
		UpkeepBase:        def.Energy.UpkeepBase,
		UpkeepPerCell:     def.Energy.UpkeepPerCell,
		EnergyPerDamage:   def.Energy.EnergyPerDamage,
		ResetDelay:        def.Energy.ResetDelay,
	}
	return props, energy
}

// NewRadialShield 创建圆形护盾发生器实体
//
// 参数:
//   - em: 实体管理器
//   - defName: 护盾类型名（同时作为材质缓存键）
//   - def: 护盾类型配置
//   - cell: 护盾中心格子
//   - faction: 所属阵营
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败时返回 0
//   - error: 配置非法时返回错误（包装 shield.ErrInvalidProps）
func NewRadialShield(em *ecs.EntityManager, defName string, def *config.ShieldDef, cell grid.Cell, faction components.Faction) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if def == nil {
		return 0, fmt.Errorf("shield def %s cannot be nil", defName)
	}

	props, energyProps := ShieldProps(defName, def)

	// 先校验参数，失败时不创建实体
	if err := props.Validate(); err != nil {
		return 0, fmt.Errorf("failed to create shield %s: %w", defName, err)
	}
	if err := energyProps.Validate(); err != nil {
		return 0, fmt.Errorf("failed to create shield %s: %w", defName, err)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{Cell: cell})
	em.AddComponent(entityID, &components.FactionComponent{Faction: faction})

	s, err := shield.NewRadialShield(NewEntityHost(em, entityID), props, energyProps)
	if err != nil {
		em.DestroyEntity(entityID)
		return 0, fmt.Errorf("failed to create shield %s: %w", defName, err)
	}

	em.AddComponent(entityID, &components.ShieldComponent{Shield: s, DefName: defName})

	log.Printf("[ShieldFactory] 创建护盾 %d: type=%s, center=%s, faction=%s, radius=%d, cells=%d",
		entityID, defName, cell, faction, s.Radius(), s.ProtectedCellCount())

	return entityID, nil
}
