package shield

import (
	"testing"

	"github.com/decker502/radial-shield/pkg/grid"
)

func TestPersist_WritesExactlyRadiusAndRenderField(t *testing.T) {
	s := newTestState(10, 0, &mockHost{})
	s.SetRadius(7)
	s.ToggleRender()

	store := mapStore{}
	s.Persist(store)

	if len(store) != 2 {
		t.Fatalf("persisted %d keys (%v), want exactly radius and renderField", len(store), store)
	}
	if store[KeyRadius] != 7 {
		t.Errorf("radius = %v, want 7", store[KeyRadius])
	}
	if store[KeyRenderField] != false {
		t.Errorf("renderField = %v, want false", store[KeyRenderField])
	}
}

func TestPersistRestore_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		radius  int
		visible bool
	}{
		{"默认", 10, true},
		{"缩小且隐藏", 3, false},
		{"半径为0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestState(10, 0, &mockHost{})
			src.SetRadius(tt.radius)
			if src.RenderVisible() != tt.visible {
				src.ToggleRender()
			}

			store := mapStore{}
			src.Persist(store)

			dst := newTestState(10, 0, &mockHost{})
			dst.Restore(store)

			if dst.Radius() != tt.radius {
				t.Errorf("radius = %d, want %d", dst.Radius(), tt.radius)
			}
			if dst.RenderVisible() != tt.visible {
				t.Errorf("renderVisible = %v, want %v", dst.RenderVisible(), tt.visible)
			}
			if dst.ProtectedCellCount() != grid.NumCellsInRadius(float64(tt.radius)) {
				t.Errorf("cell count not re-derived: %d", dst.ProtectedCellCount())
			}
		})
	}
}

func TestRestore_Defaults(t *testing.T) {
	t.Run("缺少 renderField 时默认可见", func(t *testing.T) {
		s := newTestState(10, 0, &mockHost{})
		s.ToggleRender()
		s.Restore(mapStore{KeyRadius: 4})
		if !s.RenderVisible() {
			t.Error("renderVisible should default to true")
		}
		if s.Radius() != 4 {
			t.Errorf("radius = %d, want 4", s.Radius())
		}
	})

	t.Run("缺少 radius 时为0", func(t *testing.T) {
		s := newTestState(10, 0, &mockHost{})
		s.Restore(mapStore{})
		if s.Radius() != 0 {
			t.Errorf("radius = %d, want 0", s.Radius())
		}
		if s.ProtectedCellCount() != 1 {
			t.Errorf("cell count = %d, want 1", s.ProtectedCellCount())
		}
	})
}

func TestRestore_ClampsWhenMaxRadiusShrinks(t *testing.T) {
	src := newTestState(20, 0, &mockHost{})
	src.SetRadius(18)
	store := mapStore{}
	src.Persist(store)

	// 配置变更后最大半径变小
	dst := newTestState(12, 0, &mockHost{})
	dst.Restore(store)

	if dst.Radius() != 12 {
		t.Errorf("radius = %d, want clamped 12", dst.Radius())
	}
	if dst.ProtectedCellCount() != grid.NumCellsInRadius(12) {
		t.Errorf("cell count = %d, want %d", dst.ProtectedCellCount(), grid.NumCellsInRadius(12))
	}

	// 存档中的负值同样截断
	dst.Restore(mapStore{KeyRadius: -8, KeyRenderField: true})
	if dst.Radius() != 0 {
		t.Errorf("radius = %d, want 0", dst.Radius())
	}
}

func TestEnergyPersistRestore(t *testing.T) {
	src, _ := NewEnergy(testEnergyProps())
	src.Damage(30)
	src.SetPowered(false)

	store := mapStore{}
	src.Persist(store)

	dst, _ := NewEnergy(testEnergyProps())
	dst.Restore(store)
	if dst.Current() != 70 || dst.Powered() {
		t.Errorf("restored energy = %v powered=%v, want 70/false", dst.Current(), dst.Powered())
	}

	// 缺失字段：满能量、通电
	fresh, _ := NewEnergy(testEnergyProps())
	fresh.Restore(mapStore{})
	if fresh.Current() != 100 || !fresh.Powered() || fresh.Broken() {
		t.Errorf("defaults not applied: %v/%v/%v", fresh.Current(), fresh.Powered(), fresh.Broken())
	}

	// 超出上限的能量被截断
	fresh.Restore(mapStore{KeyEnergy: 500.0})
	if fresh.Current() != 100 {
		t.Errorf("energy = %v, want clamped 100", fresh.Current())
	}
}

func TestRadialShield_PersistRestore(t *testing.T) {
	src, err := NewRadialShield(&mockHost{}, testProps(10, 2), testEnergyProps())
	if err != nil {
		t.Fatal(err)
	}
	src.SetRadius(6)
	src.Energy().Damage(25)

	store := mapStore{}
	src.Persist(store)

	dst, _ := NewRadialShield(&mockHost{}, testProps(10, 2), testEnergyProps())
	dst.Restore(store)

	if dst.Radius() != 6 {
		t.Errorf("radius = %d, want 6", dst.Radius())
	}
	if dst.Energy().Current() != 75 {
		t.Errorf("energy = %v, want 75", dst.Energy().Current())
	}
}
