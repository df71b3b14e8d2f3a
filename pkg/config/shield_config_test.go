package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/radial-shield/pkg/embedded"
)

const validShieldDefs = `
shields:
  small:
    label: small.label
    maxRadius: 8
    minRadius: 3
    color: [10, 20, 30, 40]
    energy:
      max: 600
      rechargePerSecond: 30
      upkeepBase: 1
      upkeepPerCell: 0.05
      energyPerDamage: 1
      resetDelay: 4
  tuned:
    maxRadius: 12
    minRadius: 12
    collisionMargin: 0.75
    visualScale: 3
    energy:
      max: 100
      energyPerDamage: 2
`

func TestParseShieldDefs_Valid(t *testing.T) {
	cfg, err := ParseShieldDefs([]byte(validShieldDefs))
	if err != nil {
		t.Fatalf("ParseShieldDefs failed: %v", err)
	}

	if names := cfg.Names(); len(names) != 2 || names[0] != "small" || names[1] != "tuned" {
		t.Fatalf("Names() = %v, want [small tuned]", names)
	}

	small, err := cfg.Get("small")
	if err != nil {
		t.Fatalf("Get(small) failed: %v", err)
	}
	if small.MaxRadius != 8 || small.MinRadius != 3 {
		t.Errorf("small radius range = [%d, %d], want [3, 8]", small.MinRadius, small.MaxRadius)
	}
	// 未配置时使用默认常量
	if small.Margin() != DefaultCollisionMargin {
		t.Errorf("small margin = %v, want default %v", small.Margin(), DefaultCollisionMargin)
	}
	if small.Scale() != DefaultVisualScale {
		t.Errorf("small scale = %v, want default %v", small.Scale(), DefaultVisualScale)
	}
	if c := small.RGBA(); c.R != 10 || c.G != 20 || c.B != 30 || c.A != 40 {
		t.Errorf("small color = %+v", c)
	}
	if small.Energy.UpkeepPerCell != 0.05 {
		t.Errorf("small upkeepPerCell = %v, want 0.05", small.Energy.UpkeepPerCell)
	}

	tuned, _ := cfg.Get("tuned")
	if tuned.Margin() != 0.75 || tuned.Scale() != 3 {
		t.Errorf("tuned margin/scale = %v/%v, want 0.75/3", tuned.Margin(), tuned.Scale())
	}
	if tuned.RGBA() != DefaultShieldColor {
		t.Errorf("tuned color should fall back to default, got %+v", tuned.RGBA())
	}

	if _, err := cfg.Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
}

func TestShieldDef_Validate(t *testing.T) {
	base := func() ShieldDef {
		return ShieldDef{
			MaxRadius: 10,
			MinRadius: 2,
			Energy:    ShieldEnergyDef{Max: 100, EnergyPerDamage: 1},
		}
	}
	negative := -0.5

	tests := []struct {
		name    string
		mutate  func(d *ShieldDef)
		wantErr string
	}{
		{"合法配置", func(d *ShieldDef) {}, ""},
		{"最大半径为0", func(d *ShieldDef) { d.MaxRadius = 0; d.MinRadius = 0 }, ""},
		{"最大半径为负", func(d *ShieldDef) { d.MaxRadius = -1; d.MinRadius = 0 }, "maxRadius"},
		{"最小半径为负", func(d *ShieldDef) { d.MinRadius = -1 }, "minRadius"},
		{"范围倒置", func(d *ShieldDef) { d.MinRadius = 11 }, "minRadius(11) > maxRadius(10)"},
		{"超出径向表", func(d *ShieldDef) { d.MaxRadius = 100 }, "radial pattern"},
		{"负碰撞边距", func(d *ShieldDef) { d.CollisionMargin = &negative }, "collisionMargin"},
		{"颜色分量不足", func(d *ShieldDef) { d.Color = []int{1, 2, 3} }, "4 components"},
		{"颜色越界", func(d *ShieldDef) { d.Color = []int{1, 2, 3, 300} }, "out of range"},
		{"能量上限为0", func(d *ShieldDef) { d.Energy.Max = 0 }, "energy.max"},
		{"伤害能耗为0", func(d *ShieldDef) { d.Energy.EnergyPerDamage = 0 }, "energyPerDamage"},
		{"负维持消耗", func(d *ShieldDef) { d.Energy.UpkeepBase = -1 }, "rates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseShieldDefs_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"空文件", "shields: {}\n"},
		{"YAML语法错误", "shields: [\n"},
		{"范围倒置", `
shields:
  bad:
    maxRadius: 3
    minRadius: 5
    energy: {max: 10, energyPerDamage: 1}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseShieldDefs([]byte(tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadShieldDefs(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "shields.yaml")
	if err := os.WriteFile(path, []byte(validShieldDefs), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadShieldDefs(path)
	if err != nil {
		t.Fatalf("LoadShieldDefs failed: %v", err)
	}
	if len(cfg.Shields) != 2 {
		t.Errorf("expected 2 shields, got %d", len(cfg.Shields))
	}

	if _, err := LoadShieldDefs(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEmbeddedShieldDefs(t *testing.T) {
	embedded.Init(fstest.MapFS{
		ShieldDefsPath: &fstest.MapFile{Data: []byte(validShieldDefs)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadEmbeddedShieldDefs()
	if err != nil {
		t.Fatalf("LoadEmbeddedShieldDefs failed: %v", err)
	}
	if _, err := cfg.Get("small"); err != nil {
		t.Error(err)
	}
}

// TestShippedShieldDefs 验证仓库自带的 data/shields.yaml 合法
func TestShippedShieldDefs(t *testing.T) {
	cfg, err := LoadShieldDefs(filepath.Join("..", "..", ShieldDefsPath))
	if err != nil {
		t.Fatalf("shipped shield defs invalid: %v", err)
	}
	for _, name := range []string{"radial_small", "radial_large", "radial_fixed"} {
		if _, err := cfg.Get(name); err != nil {
			t.Errorf("shipped defs missing %s", name)
		}
	}
}
