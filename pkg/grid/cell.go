package grid

import "fmt"

// Cell 离散网格坐标
type Cell struct {
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// String 用于日志输出
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// Add 格子坐标相加
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Z: c.Z + o.Z}
}

// ToVector2 转换为平面连续坐标
//
// 注意：不做半格偏移，格子 (0,0) 对应 (0,0)。
// 碰撞判定里的 +0.5 边距正是为了补偿这一点。
func (c Cell) ToVector2() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Z)}
}

// ToVector3 转换为三维坐标，高度为 0
func (c Cell) ToVector3() Vec3 {
	return Vec3{X: float64(c.X), Y: 0, Z: float64(c.Z)}
}

// LengthHorizontalSquared 到原点距离的平方
func (c Cell) LengthHorizontalSquared() int {
	return c.X*c.X + c.Z*c.Z
}

// CellRect 轴对齐格子矩形，边界均为闭区间
type CellRect struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// NewCellRect 由左上角与尺寸创建矩形
func NewCellRect(minX, minZ, width, height int) CellRect {
	return CellRect{
		MinX: minX,
		MinZ: minZ,
		MaxX: minX + width - 1,
		MaxZ: minZ + height - 1,
	}
}

// CenteredOn 以 center 为中心、向四周扩展 radius 格的矩形
//
// 即半径为 radius 的圆形覆盖区域的包围盒。
func CenteredOn(center Cell, radius int) CellRect {
	return CellRect{
		MinX: center.X - radius,
		MinZ: center.Z - radius,
		MaxX: center.X + radius,
		MaxZ: center.Z + radius,
	}
}

// Width 矩形宽度（格）
func (r CellRect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height 矩形高度（格）
func (r CellRect) Height() int {
	return r.MaxZ - r.MinZ + 1
}

// Contains 格子是否在矩形内
func (r CellRect) Contains(c Cell) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Z >= r.MinZ && c.Z <= r.MaxZ
}

// Overlaps 两个矩形是否有公共格子
func (r CellRect) Overlaps(o CellRect) bool {
	return r.MinX <= o.MaxX &&
		r.MaxX >= o.MinX &&
		r.MinZ <= o.MaxZ &&
		r.MaxZ >= o.MinZ
}

// ExpandedBy 向四周各扩展 n 格
func (r CellRect) ExpandedBy(n int) CellRect {
	return CellRect{
		MinX: r.MinX - n,
		MinZ: r.MinZ - n,
		MaxX: r.MaxX + n,
		MaxZ: r.MaxZ + n,
	}
}
