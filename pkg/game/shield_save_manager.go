package game

import (
	"fmt"
	"log"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
const (
	shieldsObject = "shields"
)

// ShieldSaveManager 护盾存档管理器
//
// 每个带 SaveKeyComponent 的护盾实体保存为 gdata 对象 "shields" 下的一个属性，
// 属性名即存档键，内容为 FieldStore 的 YAML。
// 读档只恢复场景中已存在的护盾（按存档键匹配），不会创建新实体。
type ShieldSaveManager struct {
	gdataManager  *gdata.Manager // 可为 nil（降级模式，仅内存）
	entityManager *ecs.EntityManager
	memory        map[string][]byte // 降级模式下的内存存档
}

// NewShieldSaveManager 创建护盾存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，存档只保留在内存中）
//   - em: 实体管理器
func NewShieldSaveManager(gdataManager *gdata.Manager, em *ecs.EntityManager) *ShieldSaveManager {
	if gdataManager == nil {
		log.Printf("[ShieldSaveManager] Warning: no gdata manager, saves are kept in memory only")
	}
	return &ShieldSaveManager{
		gdataManager:  gdataManager,
		entityManager: em,
		memory:        make(map[string][]byte),
	}
}

// IsPersistent 存档是否写入磁盘
func (m *ShieldSaveManager) IsPersistent() bool {
	return m.gdataManager != nil
}

// Save 保存所有带存档键的护盾
//
// 返回：
//   - int: 保存的护盾数量
//   - error: 任一护盾保存失败时返回错误（之前的护盾已写入）
func (m *ShieldSaveManager) Save() (int, error) {
	saved := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShieldComponent, *components.SaveKeyComponent](m.entityManager) {
		comp, _ := ecs.GetComponent[*components.ShieldComponent](m.entityManager, id)
		key, _ := ecs.GetComponent[*components.SaveKeyComponent](m.entityManager, id)
		if comp.Shield == nil || key.Key == "" {
			continue
		}

		store := NewFieldStore()
		comp.Shield.Persist(store)
		data, err := store.Marshal()
		if err != nil {
			return saved, fmt.Errorf("shield %s: %w", key.Key, err)
		}
		if err := m.write(key.Key, data); err != nil {
			return saved, fmt.Errorf("failed to save shield %s: %w", key.Key, err)
		}
		saved++
	}

	log.Printf("[ShieldSaveManager] Saved %d shields (persistent=%v)", saved, m.IsPersistent())
	return saved, nil
}

// Load 恢复所有带存档键、且存在存档的护盾
//
// 没有存档的护盾保持当前状态。
//
// 返回：
//   - int: 恢复的护盾数量
//   - error: 读取或反序列化失败时返回错误
func (m *ShieldSaveManager) Load() (int, error) {
	loaded := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShieldComponent, *components.SaveKeyComponent](m.entityManager) {
		comp, _ := ecs.GetComponent[*components.ShieldComponent](m.entityManager, id)
		key, _ := ecs.GetComponent[*components.SaveKeyComponent](m.entityManager, id)
		if comp.Shield == nil || !m.HasSave(key.Key) {
			continue
		}

		data, err := m.read(key.Key)
		if err != nil {
			return loaded, fmt.Errorf("failed to load shield %s: %w", key.Key, err)
		}
		store, err := ParseFieldStore(data)
		if err != nil {
			return loaded, fmt.Errorf("shield %s: %w", key.Key, err)
		}
		comp.Shield.Restore(store)
		loaded++
	}

	log.Printf("[ShieldSaveManager] Loaded %d shields", loaded)
	return loaded, nil
}

// HasSave 检查存档键是否有存档
func (m *ShieldSaveManager) HasSave(key string) bool {
	if key == "" {
		return false
	}
	if m.gdataManager == nil {
		_, ok := m.memory[key]
		return ok
	}
	return m.gdataManager.ObjectPropExists(shieldsObject, key)
}

func (m *ShieldSaveManager) write(key string, data []byte) error {
	if m.gdataManager == nil {
		m.memory[key] = data
		return nil
	}
	return m.gdataManager.SaveObjectProp(shieldsObject, key, data)
}

func (m *ShieldSaveManager) read(key string) ([]byte, error) {
	if m.gdataManager == nil {
		return m.memory[key], nil
	}
	return m.gdataManager.LoadObjectProp(shieldsObject, key)
}
