package systems

import (
	"math"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/grid"
)

// CameraFocusDuration 聚焦护盾时的镜头动画时长（秒）
const CameraFocusDuration = 0.4

// CameraSystem 管理镜头移动和平滑动画。
// 镜头位置直接写入外部持有的 grid.Vec2（通常是 render.EbitenRenderer.Camera）。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	camera        *grid.Vec2
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头控制系统。
func NewCameraSystem(em *ecs.EntityManager, camera *grid.Vec2) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		camera:        camera,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		EasingType: "easeInOut",
	})

	return cs
}

// Update 推进镜头动画。
func (cs *CameraSystem) Update(dt float64) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok || !cameraComp.IsAnimating {
		return
	}

	cameraComp.Elapsed += dt
	progress := 1.0
	if cameraComp.Duration > 0 {
		progress = math.Min(1, cameraComp.Elapsed/cameraComp.Duration)
	}

	var eased float64
	switch cameraComp.EasingType {
	case "linear":
		eased = progress
	case "easeOut":
		eased = cs.easeOutQuad(progress)
	default:
		eased = cs.easeInOutQuad(progress)
	}

	delta := cameraComp.Target.Sub(cameraComp.Start)
	*cs.camera = cameraComp.Start.Add(delta.Scale(eased))

	if progress >= 1 {
		*cs.camera = cameraComp.Target
		cameraComp.IsAnimating = false
	}
}

// MoveTo 在 duration 秒内把镜头左上角移动到 target。
// duration <= 0 时立即到达。
func (cs *CameraSystem) MoveTo(target grid.Vec2, duration float64) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	cameraComp.Start = *cs.camera
	cameraComp.Target = target
	cameraComp.Duration = duration
	cameraComp.Elapsed = 0
	cameraComp.IsAnimating = true

	if duration <= 0 {
		cs.StopAnimation()
	}
}

// FocusOn 把镜头移动到以 center 为屏幕中心的位置。
//
// 参数:
//   - center: 世界坐标（格）
//   - screenWidth, screenHeight: 逻辑屏幕尺寸（像素）
//   - cellSize: 每格像素尺寸
func (cs *CameraSystem) FocusOn(center grid.Vec2, screenWidth, screenHeight int, cellSize float64) {
	target := grid.Vec2{
		X: center.X - float64(screenWidth)/cellSize/2,
		Y: center.Y - float64(screenHeight)/cellSize/2,
	}
	cs.MoveTo(target, CameraFocusDuration)
}

// Pan 手动平移镜头，会打断正在进行的动画。
func (cs *CameraSystem) Pan(delta grid.Vec2) {
	if delta == (grid.Vec2{}) {
		return
	}
	if cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		cameraComp.IsAnimating = false
	}
	*cs.camera = cs.camera.Add(delta)
}

// StopAnimation 停止镜头动画，立即设置到目标位置。
func (cs *CameraSystem) StopAnimation() {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	cameraComp.IsAnimating = false
	*cs.camera = cameraComp.Target
}

// IsAnimating 返回镜头是否正在动画中。
func (cs *CameraSystem) IsAnimating() bool {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return false
	}
	return cameraComp.IsAnimating
}

// easeInOutQuad 二次缓动函数（先加速后减速）。
func (cs *CameraSystem) easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// easeOutQuad 减速缓动函数。
func (cs *CameraSystem) easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
