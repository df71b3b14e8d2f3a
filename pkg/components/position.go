package components

import "github.com/decker502/radial-shield/pkg/grid"

// PositionComponent 实体所在的地图格子
// 护盾中心、炮塔等静态实体使用
type PositionComponent struct {
	Cell grid.Cell
}

// UIPositionComponent UI 元素左上角的屏幕坐标（像素）
type UIPositionComponent struct {
	X float64
	Y float64
}
