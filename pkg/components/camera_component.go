package components

import "github.com/decker502/radial-shield/pkg/grid"

// CameraComponent 镜头平移动画状态
// 用于选中护盾后把镜头平滑移动到护盾附近
type CameraComponent struct {
	// Start 动画起点（镜头左上角，世界坐标）
	Start grid.Vec2
	// Target 动画终点
	Target grid.Vec2

	// Duration 动画总时长（秒）
	Duration float64
	// Elapsed 已播放时间（秒）
	Elapsed float64

	// IsAnimating 是否正在动画中
	IsAnimating bool

	// EasingType 缓动类型：
	// - "linear": 线性运动
	// - "easeInOut": 二次缓动（先加速后减速）
	// - "easeOut": 减速运动
	EasingType string
}
