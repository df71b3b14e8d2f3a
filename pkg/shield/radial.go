package shield

import (
	"fmt"

	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
)

// RadialState 圆形护盾状态
//
// 不变量：
//   - 0 <= radius <= MaxRadius
//   - cellCount == grid.NumCellsInRadius(radius)，只在半径变化时重算
type RadialState struct {
	host  Host
	props Props

	radius        int
	cellCount     int
	renderVisible bool
}

// NewRadialState 创建并初始化护盾状态，配置非法时返回 ErrInvalidProps
func NewRadialState(host Host, props Props) (*RadialState, error) {
	if host == nil {
		return nil, fmt.Errorf("shield host cannot be nil")
	}
	if err := props.Validate(); err != nil {
		return nil, err
	}

	s := &RadialState{host: host, props: props}
	s.Initialize()
	return s, nil
}

// Initialize 护盾展开到最大半径并开启渲染
func (s *RadialState) Initialize() {
	s.renderVisible = true
	s.SetRadius(s.props.MaxRadius)
}

// Props 护盾参数
func (s *RadialState) Props() Props {
	return s.props
}

// Host 护盾宿主
func (s *RadialState) Host() Host {
	return s.host
}

// Radius 当前半径（格）
func (s *RadialState) Radius() int {
	return s.radius
}

// SetRadius 设置半径，超出 [0, MaxRadius] 时截断
//
// 截断后的写入同样会重算覆盖格子数。
func (s *RadialState) SetRadius(value int) {
	if value < 0 {
		value = 0
	}
	if value > s.props.MaxRadius {
		value = s.props.MaxRadius
	}
	s.radius = value
	s.cellCount = grid.NumCellsInRadius(float64(value))
}

// ProtectedCellCount 护盾覆盖的格子数（缓存值）
func (s *RadialState) ProtectedCellCount() int {
	return s.cellCount
}

// CoveredCells 护盾覆盖的格子，与 ProtectedCellCount 一致
func (s *RadialState) CoveredCells() []grid.Cell {
	return grid.RadialCellsAround(s.host.Position(), float64(s.radius), true)
}

// RenderVisible 是否绘制护盾
func (s *RadialState) RenderVisible() bool {
	return s.renderVisible
}

// ToggleRender 切换护盾绘制开关
func (s *RadialState) ToggleRender() {
	s.renderVisible = !s.renderVisible
}

// Center 护盾中心的平面坐标
func (s *RadialState) Center() grid.Vec2 {
	return s.host.Position().ToVector2()
}

// Collision 点到中心的距离严格小于 radius + CollisionMargin 时视为命中
func (s *RadialState) Collision(point grid.Vec2) bool {
	return grid.Distance(s.Center(), point) < float64(s.radius)+s.props.CollisionMargin
}

// CollisionRay 检查射线上距起点 limit 处的点
//
// 命中时返回的是射线起点而不是命中点：调用方据此判断弹道来自护盾内还是护盾外。
func (s *RadialState) CollisionRay(ray grid.Ray2D, limit float64) (grid.Vec2, bool) {
	if s.Collision(ray.GetPoint(limit)) {
		return ray.Origin, true
	}
	return grid.Vec2{}, false
}

// Bounds 护盾覆盖圆的包围盒
func (s *RadialState) Bounds() grid.CellRect {
	return grid.CenteredOn(s.host.Position(), s.radius)
}

// Draw 绘制护盾圆盘
//
// 渲染关闭或包围盒不在视口内时不产生任何绘制调用。
func (s *RadialState) Draw(r Renderer, viewport grid.CellRect) {
	if !s.renderVisible {
		return
	}
	if !viewport.Overlaps(s.Bounds()) {
		return
	}

	position := s.host.Position().ToVector3()
	position.Y = render.AltitudeFor(render.LayerMoteOverhead)

	scaling := float64(s.radius) * s.props.VisualScale
	t := render.TRS(position, 0, grid.Vec3{X: scaling, Y: 1, Z: scaling})
	r.DrawMesh(s.props.Mesh, t, s.props.Material, 0)
}

// DrawSelectionOverlay 选中时绘制半径圆环，不受渲染开关影响
func (s *RadialState) DrawSelectionOverlay(r Renderer) {
	r.DrawRadiusRing(s.host.Position(), float64(s.radius))
}
