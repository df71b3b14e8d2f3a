package shield

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/radial-shield/pkg/grid"
)

func TestNewEnergy_Invalid(t *testing.T) {
	props := testEnergyProps()
	props.Max = 0
	if _, err := NewEnergy(props); !errors.Is(err, ErrInvalidProps) {
		t.Errorf("expected ErrInvalidProps, got %v", err)
	}

	props = testEnergyProps()
	props.EnergyPerDamage = 0
	if _, err := NewEnergy(props); !errors.Is(err, ErrInvalidProps) {
		t.Errorf("expected ErrInvalidProps, got %v", err)
	}
}

func TestEnergy_Damage(t *testing.T) {
	e, _ := NewEnergy(testEnergyProps())

	if !e.Damage(40) {
		t.Fatal("40 damage should be absorbed")
	}
	if e.Current() != 60 {
		t.Errorf("energy = %v, want 60", e.Current())
	}
	if !e.Damage(0) {
		t.Error("zero damage should be absorbed")
	}

	// 能量不足：击穿
	if e.Damage(61) {
		t.Error("61 damage should break the shield")
	}
	if !e.Broken() || e.Current() != 0 || e.Active() {
		t.Errorf("expected broken state, got broken=%v energy=%v active=%v", e.Broken(), e.Current(), e.Active())
	}

	// 击穿后不再吸收伤害
	if e.Damage(1) {
		t.Error("broken shield must not absorb damage")
	}
}

func TestEnergy_ExactDepletionBreaks(t *testing.T) {
	e, _ := NewEnergy(testEnergyProps())

	if !e.Damage(100) {
		t.Fatal("damage equal to remaining energy should be absorbed")
	}
	if !e.Broken() || e.Current() != 0 || e.Active() {
		t.Fatalf("expected broken state, got broken=%v energy=%v active=%v", e.Broken(), e.Current(), e.Active())
	}

	// 与超额伤害一样需要等待完整的重启时间
	e.Tick(1, 0)
	if e.Current() != 0 || !e.Broken() {
		t.Errorf("shield should not recharge during reset, energy=%v broken=%v", e.Current(), e.Broken())
	}
	e.Tick(1, 0)
	if e.Broken() {
		t.Error("reset should be complete after ResetDelay")
	}
}

func TestEnergy_TickResetAndRecharge(t *testing.T) {
	e, _ := NewEnergy(testEnergyProps())
	e.Break()

	e.Tick(1.5, 0)
	if !e.Broken() {
		t.Fatal("shield should still be resetting after 1.5s of 2s")
	}
	if e.Current() != 0 {
		t.Error("no recharge while resetting")
	}

	e.Tick(0.5, 0)
	if e.Broken() {
		t.Fatal("reset should be complete after 2s")
	}

	// 充能 10/s，维持 1 + 0.1*cells
	e.Tick(1, 10)
	if math.Abs(e.Current()-8) > 1e-9 {
		t.Errorf("energy = %v, want 8", e.Current())
	}
	if !e.Active() {
		t.Error("shield should be active again")
	}
}

func TestEnergy_UpkeepDrains(t *testing.T) {
	e, _ := NewEnergy(testEnergyProps())

	// 维持消耗 1 + 0.1*190 = 20 > 充能 10
	e.Tick(5, 190)
	if math.Abs(e.Current()-50) > 1e-9 {
		t.Errorf("energy = %v, want 50", e.Current())
	}
	e.Tick(100, 190)
	if e.Current() != 0 || e.Active() {
		t.Errorf("energy should bottom out at 0 and deactivate, got %v", e.Current())
	}
}

func TestEnergy_ClampsAtMaxAndUnpowered(t *testing.T) {
	e, _ := NewEnergy(testEnergyProps())
	e.Tick(10, 0)
	if e.Current() != 100 {
		t.Errorf("energy = %v, want clamped 100", e.Current())
	}

	e.Damage(50)
	e.SetPowered(false)
	if e.Active() {
		t.Error("unpowered shield must be inactive")
	}
	e.Tick(10, 0)
	if e.Current() != 50 {
		t.Errorf("unpowered shield should not recharge, energy = %v", e.Current())
	}
	if e.Fraction() != 0.5 {
		t.Errorf("Fraction = %v, want 0.5", e.Fraction())
	}
}

func TestRadialShield_IsActiveAndDamage(t *testing.T) {
	s, err := NewRadialShield(&mockHost{}, testProps(10, 0), testEnergyProps())
	if err != nil {
		t.Fatal(err)
	}

	if !s.IsActive() {
		t.Fatal("new shield should be active")
	}
	if !s.Damage(10, grid.Vec3{X: 1}) {
		t.Error("damage should be absorbed")
	}

	s.SetRadius(0)
	if s.IsActive() {
		t.Error("zero radius shield must be inactive")
	}
	if s.Damage(1, grid.Vec3{}) {
		t.Error("inactive shield must not absorb damage")
	}
	if s.Energy().Current() != 90 {
		t.Errorf("inactive shield should not consume energy, got %v", s.Energy().Current())
	}
}

func TestRadialShield_TickUsesCellCount(t *testing.T) {
	s, _ := NewRadialShield(&mockHost{}, testProps(10, 0), testEnergyProps())
	s.Energy().Damage(50)
	s.SetRadius(2) // 13 格：维持 1 + 1.3 = 2.3

	s.Tick(1)
	want := 50 + 10 - 2.3
	if math.Abs(s.Energy().Current()-want) > 1e-9 {
		t.Errorf("energy = %v, want %v", s.Energy().Current(), want)
	}
}

func TestRadialShield_DrawShield(t *testing.T) {
	s, _ := NewRadialShield(&mockHost{}, testProps(10, 0), testEnergyProps())
	r := &spyRenderer{}

	s.DrawShield(r, grid.CenteredOn(grid.Cell{}, 1))
	if len(r.meshes) != 1 {
		t.Errorf("expected 1 mesh call, got %d", len(r.meshes))
	}
	s.DrawShield(r, grid.NewCellRect(100, 100, 5, 5))
	if len(r.meshes) != 1 {
		t.Errorf("off-screen shield should not draw, got %d calls", len(r.meshes))
	}
}
