package grid

import "math"

// Vec2 平面连续坐标（单位：格）
//
// X 对应格子列方向，Y 对应格子 Z 方向（俯视平面）。
type Vec2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized 返回单位向量，零向量原样返回
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance 两点间欧氏距离
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Vec3 三维坐标，Y 为高度（渲染层高度或命中高度）
type Vec3 struct {
	X, Y, Z float64
}

// ToVector2 投影到俯视平面（丢弃高度）
func (v Vec3) ToVector2() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// Ray2D 平面射线
type Ray2D struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay2D 创建射线，方向会被归一化
func NewRay2D(origin, direction Vec2) Ray2D {
	return Ray2D{Origin: origin, Direction: direction.Normalized()}
}

// GetPoint 返回沿射线方向距离起点 distance 处的点
func (r Ray2D) GetPoint(distance float64) Vec2 {
	return r.Origin.Add(r.Direction.Normalized().Scale(distance))
}
