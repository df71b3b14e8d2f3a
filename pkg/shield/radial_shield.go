package shield

import (
	"github.com/decker502/radial-shield/pkg/grid"
)

// RadialShield 完整的圆形护盾：几何状态 + 能量模型
type RadialShield struct {
	*RadialState
	energy *Energy
}

var _ Shield = (*RadialShield)(nil)

// NewRadialShield 创建圆形护盾
func NewRadialShield(host Host, props Props, energyProps EnergyProps) (*RadialShield, error) {
	state, err := NewRadialState(host, props)
	if err != nil {
		return nil, err
	}
	energy, err := NewEnergy(energyProps)
	if err != nil {
		return nil, err
	}
	return &RadialShield{RadialState: state, energy: energy}, nil
}

// Energy 护盾能量池
func (s *RadialShield) Energy() *Energy {
	return s.energy
}

// IsActive 有能量且半径大于 0
func (s *RadialShield) IsActive() bool {
	return s.energy.Active() && s.Radius() > 0
}

// Damage 由能量池吸收伤害
func (s *RadialShield) Damage(amount int, impact grid.Vec3) bool {
	if !s.IsActive() {
		return false
	}
	return s.energy.Damage(amount)
}

// DrawShield 同 Draw
func (s *RadialShield) DrawShield(r Renderer, viewport grid.CellRect) {
	s.Draw(r, viewport)
}

// Tick 推进能量模型，维持消耗按当前覆盖格子数计算
func (s *RadialShield) Tick(dt float64) {
	s.energy.Tick(dt, s.ProtectedCellCount())
}

// Persist 写入几何状态与能量状态
func (s *RadialShield) Persist(store Store) {
	s.RadialState.Persist(store)
	s.energy.Persist(store)
}

// Restore 读取几何状态与能量状态
func (s *RadialShield) Restore(store Store) {
	s.RadialState.Restore(store)
	s.energy.Restore(store)
}
