package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/decker502/radial-shield/pkg/shield"
	"gopkg.in/yaml.v3"
)

// FieldStore 内存键值存档，实现 shield.Store
//
// 序列化为扁平的 YAML 映射。YAML 不区分 100 与 100.0，
// 因此读取时整数与浮点数可以互相转换。
type FieldStore struct {
	fields map[string]interface{}
}

var _ shield.Store = (*FieldStore)(nil)

// NewFieldStore 创建空存档
func NewFieldStore() *FieldStore {
	return &FieldStore{fields: make(map[string]interface{})}
}

// ParseFieldStore 从 YAML 数据解析存档
func ParseFieldStore(data []byte) (*FieldStore, error) {
	fields := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal field store: %w", err)
	}
	return &FieldStore{fields: fields}, nil
}

// Marshal 序列化为 YAML
func (s *FieldStore) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s.fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field store: %w", err)
	}
	return data, nil
}

// Keys 返回排序后的字段名
func (s *FieldStore) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *FieldStore) SetInt(key string, value int)       { s.fields[key] = value }
func (s *FieldStore) SetBool(key string, value bool)     { s.fields[key] = value }
func (s *FieldStore) SetFloat(key string, value float64) { s.fields[key] = value }

// GetInt 读取整数；整数值的浮点数也可读取，其他类型返回 def
func (s *FieldStore) GetInt(key string, def int) int {
	switch v := s.fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	}
	return def
}

// GetBool 读取布尔值
func (s *FieldStore) GetBool(key string, def bool) bool {
	if v, ok := s.fields[key].(bool); ok {
		return v
	}
	return def
}

// GetFloat 读取浮点数，整数同样接受
func (s *FieldStore) GetFloat(key string, def float64) float64 {
	switch v := s.fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
