package shield

import (
	"fmt"
	"log"
)

// EnergyProps 能量参数
type EnergyProps struct {
	Max               float64
	RechargePerSecond float64
	// 每秒维持消耗 = UpkeepBase + UpkeepPerCell * 覆盖格子数
	UpkeepBase      float64
	UpkeepPerCell   float64
	EnergyPerDamage float64
	// ResetDelay 击穿后重启等待时间（秒）
	ResetDelay float64
}

// Validate 检查能量参数
func (p EnergyProps) Validate() error {
	if p.Max <= 0 {
		return fmt.Errorf("%w: energy max %.2f <= 0", ErrInvalidProps, p.Max)
	}
	if p.EnergyPerDamage <= 0 {
		return fmt.Errorf("%w: energyPerDamage %.2f <= 0", ErrInvalidProps, p.EnergyPerDamage)
	}
	if p.RechargePerSecond < 0 || p.UpkeepBase < 0 || p.UpkeepPerCell < 0 || p.ResetDelay < 0 {
		return fmt.Errorf("%w: negative energy rate", ErrInvalidProps)
	}
	return nil
}

// Energy 护盾能量池
//
// 护盾激活条件：通电、未处于击穿重启中、能量大于 0。
type Energy struct {
	props      EnergyProps
	current    float64
	powered    bool
	resetTimer float64
}

// NewEnergy 创建满能量、已通电的能量池
func NewEnergy(props EnergyProps) (*Energy, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &Energy{props: props, current: props.Max, powered: true}, nil
}

// Active 能量是否足以维持护盾
func (e *Energy) Active() bool {
	return e.powered && e.resetTimer <= 0 && e.current > 0
}

// Current 当前能量
func (e *Energy) Current() float64 {
	return e.current
}

// Max 能量上限
func (e *Energy) Max() float64 {
	return e.props.Max
}

// Fraction 能量百分比 (0~1)
func (e *Energy) Fraction() float64 {
	return e.current / e.props.Max
}

// Powered 是否通电
func (e *Energy) Powered() bool {
	return e.powered
}

// SetPowered 设置通电状态
func (e *Energy) SetPowered(powered bool) {
	e.powered = powered
}

// Broken 是否处于击穿后的重启等待
func (e *Energy) Broken() bool {
	return e.resetTimer > 0
}

// ResetRemaining 剩余重启时间（秒）
func (e *Energy) ResetRemaining() float64 {
	return e.resetTimer
}

// Damage 扣除伤害对应的能量
//
// 能量不足以承受本次伤害时护盾被击穿，返回 false（伤害未被吸收）；
// 伤害恰好耗尽能量时吸收本次伤害并击穿护盾。
func (e *Energy) Damage(amount int) bool {
	if !e.Active() {
		return false
	}
	if amount <= 0 {
		return true
	}

	cost := float64(amount) * e.props.EnergyPerDamage
	if cost > e.current {
		e.Break()
		return false
	}
	e.current -= cost
	// 恰好耗尽：本次伤害已吸收，但护盾同样进入重启
	if e.current <= 0 {
		e.Break()
	}
	return true
}

// Break 击穿护盾：能量清零并进入重启等待
func (e *Energy) Break() {
	e.current = 0
	e.resetTimer = e.props.ResetDelay
	log.Printf("[ShieldEnergy] Shield broken, reset in %.1fs", e.props.ResetDelay)
}

// Tick 推进 dt 秒：重启倒计时，或充能并扣除维持消耗
func (e *Energy) Tick(dt float64, cellCount int) {
	if dt <= 0 {
		return
	}

	if e.resetTimer > 0 {
		e.resetTimer -= dt
		if e.resetTimer <= 0 {
			e.resetTimer = 0
			log.Printf("[ShieldEnergy] Shield reset complete")
		}
		return
	}

	if !e.powered {
		return
	}

	upkeep := e.props.UpkeepBase + e.props.UpkeepPerCell*float64(cellCount)
	e.current = clampFloat(e.current+(e.props.RechargePerSecond-upkeep)*dt, 0, e.props.Max)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
