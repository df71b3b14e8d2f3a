package systems

import (
	"testing"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/config"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/entities"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
	"github.com/decker502/radial-shield/pkg/shield"
)

// spyRenderer 记录渲染调用
type spyRenderer struct {
	meshes    []render.Transform
	materials []*render.Material
	rings     []grid.Cell
}

func (r *spyRenderer) DrawMesh(mesh *render.Mesh, t render.Transform, mat *render.Material, layer int) {
	r.meshes = append(r.meshes, t)
	r.materials = append(r.materials, mat)
}

func (r *spyRenderer) DrawRadiusRing(center grid.Cell, radius float64) {
	r.rings = append(r.rings, center)
}

// spySound 记录播放的音效
type spySound struct {
	played []string
}

func (s *spySound) PlaySound(soundID string) bool {
	s.played = append(s.played, soundID)
	return true
}

func (s *spySound) count(soundID string) int {
	n := 0
	for _, id := range s.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// testShieldDef 能量 100、无充能/维持消耗、每点伤害 1 能量
func testShieldDef(maxRadius int) *config.ShieldDef {
	return &config.ShieldDef{
		MaxRadius: maxRadius,
		MinRadius: 1,
		Energy: config.ShieldEnergyDef{
			Max:               100,
			RechargePerSecond: 0,
			EnergyPerDamage:   1,
			ResetDelay:        1,
		},
	}
}

func spawnShield(t *testing.T, em *ecs.EntityManager, cell grid.Cell, maxRadius int) (ecs.EntityID, *shield.RadialShield) {
	t.Helper()
	id, err := entities.NewRadialShield(em, "test", testShieldDef(maxRadius), cell, components.FactionPlayer)
	if err != nil {
		t.Fatalf("NewRadialShield() error: %v", err)
	}
	comp, _ := ecs.GetComponent[*components.ShieldComponent](em, id)
	return id, comp.Shield
}

func spawnProjectile(t *testing.T, em *ecs.EntityManager, origin, dir grid.Vec2, speed float64, damage int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewProjectile(em, entities.ProjectileSpec{
		Origin:    origin,
		Direction: dir,
		Speed:     speed,
		Damage:    damage,
		MaxRange:  100,
		Faction:   components.FactionHostile,
	})
	if err != nil {
		t.Fatalf("NewProjectile() error: %v", err)
	}
	return id
}
