package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/decker502/radial-shield/pkg/embedded"
	"github.com/decker502/radial-shield/pkg/grid"
	"gopkg.in/yaml.v3"
)

// 护盾默认参数
const (
	// DefaultCollisionMargin 碰撞边距：中心是离散格子而弹道是连续坐标，
	// 向外扩展半格，使瞄准最外圈格子的弹道也能被拦截
	DefaultCollisionMargin = 0.5

	// DefaultVisualScale 网格直径缩放系数（纯视觉，与碰撞边界无关）
	DefaultVisualScale = 2.2

	// ShieldDefsPath 护盾定义文件路径
	ShieldDefsPath = "data/shields.yaml"
)

// DefaultShieldColor 护盾默认颜色（半透明蓝）
var DefaultShieldColor = color.RGBA{R: 90, G: 180, B: 255, A: 110}

// ShieldEnergyDef 护盾能量配置
type ShieldEnergyDef struct {
	Max               float64 `yaml:"max"`               // 能量上限
	RechargePerSecond float64 `yaml:"rechargePerSecond"` // 每秒充能
	UpkeepBase        float64 `yaml:"upkeepBase"`        // 每秒基础维持消耗
	UpkeepPerCell     float64 `yaml:"upkeepPerCell"`     // 每个受保护格子每秒维持消耗
	EnergyPerDamage   float64 `yaml:"energyPerDamage"`   // 每点伤害消耗的能量
	ResetDelay        float64 `yaml:"resetDelay"`        // 护盾击穿后重启等待时间（秒）
}

// ShieldDef 单个护盾类型的配置
type ShieldDef struct {
	Label           string          `yaml:"label"`           // 显示名称（翻译键）
	MaxRadius       int             `yaml:"maxRadius"`       // 最大半径（格）
	MinRadius       int             `yaml:"minRadius"`       // 最小半径（格），仅由 UI 滑块使用
	CollisionMargin *float64        `yaml:"collisionMargin"` // 碰撞边距，缺省为 0.5
	VisualScale     *float64        `yaml:"visualScale"`     // 视觉缩放，缺省为 2.2
	Color           []int           `yaml:"color"`           // RGBA，缺省为 DefaultShieldColor
	Energy          ShieldEnergyDef `yaml:"energy"`          // 能量配置
}

// ShieldDefsConfig 护盾定义文件结构
type ShieldDefsConfig struct {
	Shields map[string]ShieldDef `yaml:"shields"`
}

// Margin 返回碰撞边距
func (d *ShieldDef) Margin() float64 {
	if d.CollisionMargin == nil {
		return DefaultCollisionMargin
	}
	return *d.CollisionMargin
}

// Scale 返回视觉缩放系数
func (d *ShieldDef) Scale() float64 {
	if d.VisualScale == nil {
		return DefaultVisualScale
	}
	return *d.VisualScale
}

// RGBA 返回护盾颜色
func (d *ShieldDef) RGBA() color.RGBA {
	if len(d.Color) != 4 {
		return DefaultShieldColor
	}
	return color.RGBA{R: uint8(d.Color[0]), G: uint8(d.Color[1]), B: uint8(d.Color[2]), A: uint8(d.Color[3])}
}

// Validate 验证单个护盾定义
//
// 半径范围非法时必须直接报错，不能静默产生负数或倒置的范围。
func (d *ShieldDef) Validate() error {
	if d.MaxRadius < 0 {
		return fmt.Errorf("maxRadius must be >= 0, got %d", d.MaxRadius)
	}
	if d.MinRadius < 0 {
		return fmt.Errorf("minRadius must be >= 0, got %d", d.MinRadius)
	}
	if d.MinRadius > d.MaxRadius {
		return fmt.Errorf("minRadius(%d) > maxRadius(%d)", d.MinRadius, d.MaxRadius)
	}
	if float64(d.MaxRadius) > grid.MaxRadialPatternRadius {
		return fmt.Errorf("maxRadius(%d) exceeds radial pattern limit %.1f", d.MaxRadius, grid.MaxRadialPatternRadius)
	}
	if d.Margin() < 0 {
		return fmt.Errorf("collisionMargin must be >= 0, got %.2f", d.Margin())
	}
	if d.Scale() <= 0 {
		return fmt.Errorf("visualScale must be > 0, got %.2f", d.Scale())
	}
	if len(d.Color) != 0 && len(d.Color) != 4 {
		return fmt.Errorf("color must have 4 components (RGBA), got %d", len(d.Color))
	}
	for _, v := range d.Color {
		if v < 0 || v > 255 {
			return fmt.Errorf("color component out of range [0, 255]: %d", v)
		}
	}

	e := d.Energy
	if e.Max <= 0 {
		return fmt.Errorf("energy.max must be > 0, got %.2f", e.Max)
	}
	if e.RechargePerSecond < 0 || e.UpkeepBase < 0 || e.UpkeepPerCell < 0 {
		return fmt.Errorf("energy rates must be >= 0")
	}
	if e.EnergyPerDamage <= 0 {
		return fmt.Errorf("energy.energyPerDamage must be > 0, got %.2f", e.EnergyPerDamage)
	}
	if e.ResetDelay < 0 {
		return fmt.Errorf("energy.resetDelay must be >= 0, got %.2f", e.ResetDelay)
	}
	return nil
}

// Validate 验证整个定义文件
func (c *ShieldDefsConfig) Validate() error {
	if len(c.Shields) == 0 {
		return fmt.Errorf("at least one shield definition is required")
	}
	for _, name := range c.Names() {
		def := c.Shields[name]
		if err := def.Validate(); err != nil {
			return fmt.Errorf("shield %s: %w", name, err)
		}
	}
	return nil
}

// Names 返回按字母排序的护盾类型名
func (c *ShieldDefsConfig) Names() []string {
	names := make([]string, 0, len(c.Shields))
	for name := range c.Shields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get 获取指定类型的护盾定义
func (c *ShieldDefsConfig) Get(name string) (*ShieldDef, error) {
	def, ok := c.Shields[name]
	if !ok {
		return nil, fmt.Errorf("unknown shield type: %s", name)
	}
	return &def, nil
}

// ParseShieldDefs 解析并验证 YAML 格式的护盾定义
func ParseShieldDefs(data []byte) (*ShieldDefsConfig, error) {
	var cfg ShieldDefsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shield defs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shield defs: %w", err)
	}
	return &cfg, nil
}

// LoadShieldDefs 从磁盘加载护盾定义
func LoadShieldDefs(path string) (*ShieldDefsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shield defs %s: %w", path, err)
	}
	cfg, err := ParseShieldDefs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedShieldDefs 从嵌入资源加载护盾定义
func LoadEmbeddedShieldDefs() (*ShieldDefsConfig, error) {
	data, err := embedded.ReadFile(ShieldDefsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded shield defs: %w", err)
	}
	return ParseShieldDefs(data)
}
