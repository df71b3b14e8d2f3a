package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testCellComponent struct {
	X, Z int
}

type testRadiusComponent struct {
	Radius int
}

type testEnergyComponent struct {
	Current float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID 从 1 开始，0 保留为无效 ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if !em.EntityExists(id1) || em.EntityExists(0) {
		t.Error("EntityExists mismatch")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testCellComponent{X: 3, Z: -4})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testCellComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	cell := comp.(*testCellComponent)
	if cell.X != 3 || cell.Z != -4 {
		t.Errorf("Component data mismatch, got (%d, %d)", cell.X, cell.Z)
	}

	// 同类型组件覆盖
	em.AddComponent(id, &testCellComponent{X: 7})
	comp, _ = em.GetComponent(id, reflect.TypeOf(&testCellComponent{}))
	if comp.(*testCellComponent).X != 7 {
		t.Error("AddComponent should replace the existing component of the same type")
	}

	// 不存在的实体上添加组件无效
	em.AddComponent(99, &testCellComponent{})
	if em.EntityExists(99) {
		t.Error("AddComponent must not create entities")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCellComponent{})
	em.AddComponent(id, &testRadiusComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testRadiusComponent{}))

	if em.HasComponent(id, reflect.TypeOf(&testRadiusComponent{})) {
		t.Error("removed component should be gone")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testCellComponent{})) {
		t.Error("other components should be untouched")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCellComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记

	// 清理前实体仍存在
	if !em.EntityExists(id) || !em.HasComponent(id, reflect.TypeOf(&testCellComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("Entity should be removed after cleanup")
	}

	// 清理后队列为空，再次清理无副作用
	other := em.CreateEntity()
	em.RemoveMarkedEntities()
	if !em.EntityExists(other) {
		t.Error("unmarked entity removed by a second cleanup")
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()
	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for _, id := range ids {
		em.AddComponent(id, &testCellComponent{})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])
	em.RemoveMarkedEntities()

	got := em.GetEntitiesWith(reflect.TypeOf(&testCellComponent{}))
	if len(got) != 1 || got[0] != ids[1] {
		t.Errorf("expected only %d to survive, got %v", ids[1], got)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testCellComponent{})
	em.AddComponent(id1, &testRadiusComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testCellComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testRadiusComponent{})

	tests := []struct {
		name  string
		types []reflect.Type
		want  []EntityID
	}{
		{"位置+半径", []reflect.Type{reflect.TypeOf(&testCellComponent{}), reflect.TypeOf(&testRadiusComponent{})}, []EntityID{id1}},
		{"只查位置", []reflect.Type{reflect.TypeOf(&testCellComponent{})}, []EntityID{id1, id2}},
		{"只查半径", []reflect.Type{reflect.TypeOf(&testRadiusComponent{})}, []EntityID{id1, id3}},
		{"无实体拥有", []reflect.Type{reflect.TypeOf(&testEnergyComponent{})}, []EntityID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.GetEntitiesWith(tt.types...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetEntitiesWith() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEntitiesWith_SortedByID(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		if i%3 != 0 {
			em.AddComponent(id, &testEnergyComponent{Current: float64(i)})
		}
	}

	// map 遍历顺序随机，多次查询都必须升序
	for round := 0; round < 5; round++ {
		ids := em.GetEntitiesWith(reflect.TypeOf(&testEnergyComponent{}))
		for i := 1; i < len(ids); i++ {
			if ids[i-1] >= ids[i] {
				t.Fatalf("round %d: IDs not sorted: %v", round, ids)
			}
		}
	}
}

func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testCellComponent{X: 1, Z: 2})
	AddComponent(em, id, &testRadiusComponent{Radius: 5})

	cell, ok := GetComponent[*testCellComponent](em, id)
	if !ok || cell.X != 1 || cell.Z != 2 {
		t.Errorf("GetComponent = %+v, %v", cell, ok)
	}
	if _, ok := GetComponent[*testEnergyComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
	if !HasComponent[*testRadiusComponent](em, id) {
		t.Error("HasComponent should be true")
	}

	if got := GetEntitiesWith2[*testCellComponent, *testRadiusComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("GetEntitiesWith2 = %v", got)
	}
	if got := GetEntitiesWith3[*testCellComponent, *testRadiusComponent, *testEnergyComponent](em); len(got) != 0 {
		t.Errorf("GetEntitiesWith3 = %v, want empty", got)
	}

	RemoveComponent[*testRadiusComponent](em, id)
	if HasComponent[*testRadiusComponent](em, id) {
		t.Error("component should be removed")
	}
	if got := GetEntitiesWith1[*testCellComponent](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith1 = %v", got)
	}
}
