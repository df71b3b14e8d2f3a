package components

import "github.com/decker502/radial-shield/pkg/shield"

// ShieldComponent 护盾发生器
// Shield 持有半径/能量状态，宿主位置与阵营从同一实体的
// PositionComponent / FactionComponent 读取
type ShieldComponent struct {
	Shield  *shield.RadialShield
	DefName string // data/shields.yaml 中的类型名
}

// SelectedComponent 标记当前被选中的实体（绘制半径圆环、显示操作按钮）
type SelectedComponent struct{}

// SaveKeyComponent 存档键
// 只有带此组件的护盾实体才会被 ShieldSaveManager 保存/恢复
type SaveKeyComponent struct {
	Key string
}
