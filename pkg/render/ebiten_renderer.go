package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// whitePixel 返回 1x1 纯白子图，作为无纹理材质的源图
// 取 3x3 图片中心像素，避免边缘采样溢出
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// RingColor 选中叠加圆环颜色
var RingColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}

type meshCommand struct {
	mesh      *Mesh
	transform Transform
	material  *Material
	layer     int
	order     int
}

type ringCommand struct {
	center grid.Cell
	radius float64
}

// EbitenRenderer 将网格与圆环绘制请求排队，在 Flush 时统一绘制到屏幕
//
// DrawMesh/DrawRadiusRing 可在系统 Update/Draw 任意时机调用，
// 绘制顺序：layer 升序 → 高度升序 → 提交顺序；圆环总在网格之上。
type EbitenRenderer struct {
	// CellSize 每格像素尺寸
	CellSize float64
	// Camera 屏幕左上角对应的世界坐标（格）
	Camera grid.Vec2
	// RingWidth 圆环线宽（像素）
	RingWidth float32

	meshes []meshCommand
	rings  []ringCommand

	// 复用顶点/索引缓冲，避免每帧分配
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenRenderer 创建渲染器
func NewEbitenRenderer(cellSize float64) *EbitenRenderer {
	return &EbitenRenderer{
		CellSize:  cellSize,
		RingWidth: 1.5,
		vertices:  make([]ebiten.Vertex, 0, 128),
		indices:   make([]uint16, 0, 384),
	}
}

// DrawMesh 提交一次网格绘制
func (r *EbitenRenderer) DrawMesh(mesh *Mesh, t Transform, mat *Material, layer int) {
	if mesh == nil || mat == nil {
		return
	}
	r.meshes = append(r.meshes, meshCommand{
		mesh:      mesh,
		transform: t,
		material:  mat,
		layer:     layer,
		order:     len(r.meshes),
	})
}

// DrawRadiusRing 提交一次圆环绘制
func (r *EbitenRenderer) DrawRadiusRing(center grid.Cell, radius float64) {
	r.rings = append(r.rings, ringCommand{center: center, radius: radius})
}

// Pending 当前排队的绘制请求数（网格数, 圆环数）
func (r *EbitenRenderer) Pending() (meshes, rings int) {
	return len(r.meshes), len(r.rings)
}

// WorldToScreen 世界坐标（格）转屏幕像素坐标
func (r *EbitenRenderer) WorldToScreen(p grid.Vec2) (float64, float64) {
	return (p.X - r.Camera.X) * r.CellSize, (p.Y - r.Camera.Y) * r.CellSize
}

// Flush 绘制所有排队请求并清空队列
func (r *EbitenRenderer) Flush(screen *ebiten.Image) {
	sort.SliceStable(r.meshes, func(i, j int) bool {
		a, b := r.meshes[i], r.meshes[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		if a.transform.Altitude() != b.transform.Altitude() {
			return a.transform.Altitude() < b.transform.Altitude()
		}
		return a.order < b.order
	})

	for _, cmd := range r.meshes {
		r.drawMesh(screen, cmd)
	}

	for _, ring := range r.rings {
		cx, cy := r.WorldToScreen(ring.center.ToVector2())
		vector.StrokeCircle(screen,
			float32(cx), float32(cy), float32(ring.radius*r.CellSize),
			r.RingWidth, RingColor, true)
	}

	r.meshes = r.meshes[:0]
	r.rings = r.rings[:0]
}

// drawMesh 将单个网格转换为屏幕空间三角形
func (r *EbitenRenderer) drawMesh(screen *ebiten.Image, cmd meshCommand) {
	geoM := cmd.transform.GeoM()
	geoM.Translate(-r.Camera.X, -r.Camera.Y)
	geoM.Scale(r.CellSize, r.CellSize)

	src := cmd.material.Image
	if src == nil {
		src = whitePixel()
	}
	bounds := src.Bounds()
	srcW, srcH := float32(bounds.Dx()), float32(bounds.Dy())

	c := cmd.material.Color
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	r.vertices = r.vertices[:0]
	for _, v := range cmd.mesh.Vertices {
		x, y := geoM.Apply(v.X, v.Y)
		// 默认 ColorScaleModeStraightAlpha：颜色分量不预乘
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(bounds.Min.X) + v.U*srcW,
			SrcY:   float32(bounds.Min.Y) + v.V*srcH,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca * v.Alpha,
		})
	}
	r.indices = append(r.indices[:0], cmd.mesh.Indices...)

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = cmd.material.Blend
	screen.DrawTriangles(r.vertices, r.indices, src, op)
}

// ViewportRect 计算屏幕可见范围对应的格子矩形
//
// 向外多取一格，避免半格可见的物体被剔除。
func ViewportRect(camera grid.Vec2, screenWidth, screenHeight int, cellSize float64) grid.CellRect {
	minX := int(math.Floor(camera.X)) - 1
	minZ := int(math.Floor(camera.Y)) - 1
	maxX := int(math.Ceil(camera.X+float64(screenWidth)/cellSize)) + 1
	maxZ := int(math.Ceil(camera.Y+float64(screenHeight)/cellSize)) + 1
	return grid.CellRect{MinX: minX, MinZ: minZ, MaxX: maxX, MaxZ: maxZ}
}
