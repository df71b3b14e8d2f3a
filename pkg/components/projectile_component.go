package components

import "github.com/decker502/radial-shield/pkg/grid"

// ProjectileComponent 直线飞行的弹道
//
// 弹道不记录当前位置：当前位置 = Origin + Direction * Traveled，
// 护盾碰撞以 Origin 为射线起点、Traveled 为检测距离。
type ProjectileComponent struct {
	Origin    grid.Vec2 // 发射点（格坐标）
	Direction grid.Vec2 // 飞行方向（单位向量）
	Speed     float64   // 速度（格/秒）
	Traveled  float64   // 已飞行距离（格）
	MaxRange  float64   // 最大射程（格），超出后销毁
	Damage    int       // 命中伤害
	Faction   Faction   // 发射方阵营，拦截判定不使用
}

// Ray 返回弹道对应的射线
func (p *ProjectileComponent) Ray() grid.Ray2D {
	return grid.NewRay2D(p.Origin, p.Direction)
}

// Position 返回弹道当前位置
func (p *ProjectileComponent) Position() grid.Vec2 {
	return p.Ray().GetPoint(p.Traveled)
}

// ImpactFlashComponent 护盾拦截弹道时的闪光
// 配合 LifetimeComponent 使用，Alpha 随剩余寿命衰减
type ImpactFlashComponent struct {
	Point grid.Vec2 // 拦截位置
	Size  float64   // 闪光直径（格）
}
