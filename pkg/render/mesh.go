package render

import (
	"image/color"
	"math"

	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshVertex 网格顶点（局部坐标，单位：格）
type MeshVertex struct {
	X, Y  float64
	U, V  float32 // 纹理坐标 (0~1)
	Alpha float32 // 顶点透明度权重 (0~1)，与材质颜色相乘
}

// Mesh 三角形网格
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Indices  []uint16
}

// NewDiscMesh 创建直径为 1 的平面圆盘网格（三角扇）
//
// 圆心透明度为 centerAlpha，边缘为 1，形成由内向外渐强的护盾光晕。
// segments 小于 8 时按 8 处理。
func NewDiscMesh(segments int, centerAlpha float32) *Mesh {
	if segments < 8 {
		segments = 8
	}

	mesh := &Mesh{
		Name:     "disc",
		Vertices: make([]MeshVertex, 0, segments+1),
		Indices:  make([]uint16, 0, segments*3),
	}

	// 圆心
	mesh.Vertices = append(mesh.Vertices, MeshVertex{U: 0.5, V: 0.5, Alpha: centerAlpha})

	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := 0.5 * math.Cos(angle)
		y := 0.5 * math.Sin(angle)
		mesh.Vertices = append(mesh.Vertices, MeshVertex{
			X:     x,
			Y:     y,
			U:     float32(x + 0.5),
			V:     float32(y + 0.5),
			Alpha: 1,
		})
	}

	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		mesh.Indices = append(mesh.Indices, 0, uint16(i+1), uint16(next))
	}

	return mesh
}

// Material 网格材质
type Material struct {
	Name  string
	Color color.RGBA
	// Image 纹理，nil 时使用纯白像素（仅由顶点颜色着色）
	Image *ebiten.Image
	Blend ebiten.Blend
}

// Transform 平移-旋转-缩放变换
//
// Position.Y 是高度（见 AltitudeFor），Scale.Y 对平面网格无效。
type Transform struct {
	Position    grid.Vec3
	RotationDeg float64 // 绕竖直轴旋转角度
	Scale       grid.Vec3
}

// TRS 创建变换
func TRS(position grid.Vec3, rotationDeg float64, scale grid.Vec3) Transform {
	return Transform{Position: position, RotationDeg: rotationDeg, Scale: scale}
}

// Altitude 变换的高度分量
func (t Transform) Altitude() float64 {
	return t.Position.Y
}

// GeoM 转换为俯视平面上的 ebiten 几何矩阵（世界坐标，单位：格）
//
// 顺序：缩放 → 旋转 → 平移。
func (t Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(t.Scale.X, t.Scale.Z)
	if t.RotationDeg != 0 {
		g.Rotate(t.RotationDeg * math.Pi / 180)
	}
	g.Translate(t.Position.X, t.Position.Z)
	return g
}
