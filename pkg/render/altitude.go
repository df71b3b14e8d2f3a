package render

// AltitudeLayer 渲染高度层
//
// 数值越大越靠上。俯视 2D 渲染中高度只决定绘制顺序，
// 但保留连续的高度值，便于同层内再细分。
type AltitudeLayer int

const (
	LayerTerrain AltitudeLayer = iota
	LayerFloor
	LayerBuilding
	LayerPawn
	LayerProjectile
	LayerMoteLow
	LayerMoteOverhead
	LayerMetaOverlays
)

// LayerSpacing 相邻高度层之间的高度差
const LayerSpacing = 0.46875

// AltitudeFor 返回高度层对应的高度值
func AltitudeFor(layer AltitudeLayer) float64 {
	return float64(layer) * LayerSpacing
}

// String 用于日志输出
func (l AltitudeLayer) String() string {
	switch l {
	case LayerTerrain:
		return "Terrain"
	case LayerFloor:
		return "Floor"
	case LayerBuilding:
		return "Building"
	case LayerPawn:
		return "Pawn"
	case LayerProjectile:
		return "Projectile"
	case LayerMoteLow:
		return "MoteLow"
	case LayerMoteOverhead:
		return "MoteOverhead"
	case LayerMetaOverlays:
		return "MetaOverlays"
	default:
		return "Unknown"
	}
}
