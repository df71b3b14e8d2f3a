package config

// 渲染与窗口配置
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 960
	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 640

	// CellSize 每格像素尺寸
	CellSize = 16.0

	// CameraPanSpeed 方向键平移镜头速度（格/秒）
	CameraPanSpeed = 20.0

	// DiscMeshSegments 护盾圆盘网格分段数
	DiscMeshSegments = 48
	// DiscCenterAlpha 护盾圆盘中心透明度权重（边缘为 1）
	DiscCenterAlpha = 0.25
)

// 弹道配置
const (
	// ProjectileSpeed 弹道速度（格/秒）
	ProjectileSpeed = 18.0
	// ProjectileDamage 单发伤害
	ProjectileDamage = 12
	// ProjectileMaxRange 最大射程（格），超出后销毁
	ProjectileMaxRange = 80.0
	// ProjectileSpawnInterval 沙盒中敌方弹道发射间隔（秒）
	ProjectileSpawnInterval = 0.35
)
