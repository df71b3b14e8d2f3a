// Package shield 实现圆形护盾的几何/状态模型
//
// 核心类型：
//   - RadialState: 半径、覆盖格子数、渲染开关，以及碰撞判定与绘制
//   - Energy: 能量模型，决定护盾是否激活以及伤害是否被吸收
//   - RadialShield: RadialState + Energy，完整实现 Shield 接口
//
// 本包不依赖 ECS：中心位置与阵营通过 Host 接口注入，
// 渲染通过 Renderer 接口输出，持久化通过 Store 接口读写。
// 所有操作都在游戏主循环线程上同步执行，不加锁。
package shield

import (
	"errors"
	"fmt"

	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
)

// ErrInvalidProps 护盾配置不合法（负半径或倒置的半径范围）
var ErrInvalidProps = errors.New("invalid shield props")

// Shield 护盾能力接口，任何形状的护盾都应实现
type Shield interface {
	// IsActive 护盾当前是否在拦截
	IsActive() bool
	// Collision 点是否落在护盾内
	Collision(point grid.Vec2) bool
	// CollisionRay 射线在 limit 距离处是否命中护盾，命中时返回射线起点
	CollisionRay(ray grid.Ray2D, limit float64) (grid.Vec2, bool)
	// Damage 对护盾造成伤害，返回是否被护盾吸收
	Damage(amount int, impact grid.Vec3) bool
	// DrawShield 绘制护盾
	DrawShield(r Renderer, viewport grid.CellRect)
}

// Host 护盾的宿主实体（只读）
type Host interface {
	// Position 宿主所在格子，即护盾中心
	Position() grid.Cell
	// IsPlayerOwned 宿主是否属于玩家阵营
	IsPlayerOwned() bool
}

// Renderer 护盾使用的渲染原语
type Renderer interface {
	DrawMesh(mesh *render.Mesh, t render.Transform, mat *render.Material, layer int)
	DrawRadiusRing(center grid.Cell, radius float64)
}

// Props 护盾类型参数
type Props struct {
	MaxRadius int
	// MinRadius 只约束 UI 滑块，SetRadius 不使用
	MinRadius int
	// CollisionMargin 碰撞边界在半径之外的额外距离
	CollisionMargin float64
	// VisualScale 圆盘网格直径 = 半径 * VisualScale
	VisualScale float64

	Mesh     *render.Mesh
	Material *render.Material
}

// Validate 检查半径范围
func (p Props) Validate() error {
	if p.MaxRadius < 0 {
		return fmt.Errorf("%w: maxRadius %d < 0", ErrInvalidProps, p.MaxRadius)
	}
	if p.MinRadius < 0 {
		return fmt.Errorf("%w: minRadius %d < 0", ErrInvalidProps, p.MinRadius)
	}
	if p.MinRadius > p.MaxRadius {
		return fmt.Errorf("%w: minRadius %d > maxRadius %d", ErrInvalidProps, p.MinRadius, p.MaxRadius)
	}
	if float64(p.MaxRadius) > grid.MaxRadialPatternRadius {
		return fmt.Errorf("%w: maxRadius %d exceeds radial pattern limit", ErrInvalidProps, p.MaxRadius)
	}
	if p.CollisionMargin < 0 {
		return fmt.Errorf("%w: collisionMargin %.2f < 0", ErrInvalidProps, p.CollisionMargin)
	}
	return nil
}
