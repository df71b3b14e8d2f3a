package systems

import (
	"log"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/entities"
	"github.com/decker502/radial-shield/pkg/game"
	"github.com/decker502/radial-shield/pkg/grid"
)

// impactFlashSize 命中闪光直径（格）
const impactFlashSize = 1.2

// ShieldProjectileSystem 弹道飞行与护盾拦截
//
// 每帧：
//  1. 弹道前进 Speed*dt，超出射程的销毁
//  2. 以弹道发射点为射线起点、已飞行距离为检测距离，依次询问激活的护盾
//  3. 护盾返回的射线起点本身在护盾外时才拦截（护盾内部发射的弹道可以穿出）
//  4. 护盾吸收伤害则销毁弹道并产生命中闪光；护盾被击穿时弹道继续飞行
type ShieldProjectileSystem struct {
	entityManager *ecs.EntityManager
	sound         SoundPlayer
}

// NewShieldProjectileSystem 创建弹道拦截系统
//
// 参数:
//   - em: 实体管理器
//   - sound: 音效播放器，可为 nil
func NewShieldProjectileSystem(em *ecs.EntityManager, sound SoundPlayer) *ShieldProjectileSystem {
	return &ShieldProjectileSystem{entityManager: em, sound: sound}
}

// Update 推进 deltaTime 秒
func (s *ShieldProjectileSystem) Update(deltaTime float64) {
	shields := ecs.GetEntitiesWith1[*components.ShieldComponent](s.entityManager)

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		p, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if !ok {
			continue
		}

		p.Traveled += p.Speed * deltaTime
		if p.Traveled >= p.MaxRange {
			s.entityManager.DestroyEntity(id)
			continue
		}

		if s.intercept(p, shields) {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}

// intercept 检查弹道是否被某个护盾吸收
func (s *ShieldProjectileSystem) intercept(p *components.ProjectileComponent, shields []ecs.EntityID) bool {
	ray := p.Ray()

	for _, shieldID := range shields {
		comp, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, shieldID)
		if !ok || comp.Shield == nil || !comp.Shield.IsActive() {
			continue
		}
		sh := comp.Shield

		origin, hit := sh.CollisionRay(ray, p.Traveled)
		if !hit || sh.Collision(origin) {
			continue
		}

		point := ray.GetPoint(p.Traveled)
		if sh.Damage(p.Damage, grid.Vec3{X: point.X, Z: point.Y}) {
			entities.NewImpactFlash(s.entityManager, point, impactFlashSize)
			playSound(s.sound, game.SoundShieldHit)
			if sh.Energy().Broken() {
				log.Printf("[ShieldProjectileSystem] Shield %d depleted by projectile (damage=%d)", shieldID, p.Damage)
				playSound(s.sound, game.SoundShieldBreak)
			}
			return true
		}

		if sh.Energy().Broken() {
			log.Printf("[ShieldProjectileSystem] Shield %d broken by projectile (damage=%d)", shieldID, p.Damage)
			playSound(s.sound, game.SoundShieldBreak)
		}
	}

	return false
}
