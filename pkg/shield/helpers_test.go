package shield

import (
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/render"
)

// mockHost 测试用宿主
type mockHost struct {
	pos         grid.Cell
	playerOwned bool
}

func (h *mockHost) Position() grid.Cell { return h.pos }
func (h *mockHost) IsPlayerOwned() bool { return h.playerOwned }

// meshCall 记录一次 DrawMesh 调用
type meshCall struct {
	mesh      *render.Mesh
	transform render.Transform
	material  *render.Material
	layer     int
}

// ringCall 记录一次 DrawRadiusRing 调用
type ringCall struct {
	center grid.Cell
	radius float64
}

// spyRenderer 记录所有渲染调用
type spyRenderer struct {
	meshes []meshCall
	rings  []ringCall
}

func (r *spyRenderer) DrawMesh(mesh *render.Mesh, t render.Transform, mat *render.Material, layer int) {
	r.meshes = append(r.meshes, meshCall{mesh: mesh, transform: t, material: mat, layer: layer})
}

func (r *spyRenderer) DrawRadiusRing(center grid.Cell, radius float64) {
	r.rings = append(r.rings, ringCall{center: center, radius: radius})
}

// mapStore 测试用键值存档
type mapStore map[string]interface{}

func (m mapStore) SetInt(key string, value int) { m[key] = value }
func (m mapStore) SetBool(key string, value bool) { m[key] = value }
func (m mapStore) SetFloat(key string, value float64) { m[key] = value }

func (m mapStore) GetInt(key string, def int) int {
	if v, ok := m[key].(int); ok {
		return v
	}
	return def
}

func (m mapStore) GetBool(key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func (m mapStore) GetFloat(key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}

var (
	testMesh     = render.NewDiscMesh(16, 0.5)
	testMaterial = &render.Material{Name: "shield"}
)

func testProps(maxRadius, minRadius int) Props {
	return Props{
		MaxRadius:       maxRadius,
		MinRadius:       minRadius,
		CollisionMargin: 0.5,
		VisualScale:     2.2,
		Mesh:            testMesh,
		Material:        testMaterial,
	}
}

func testEnergyProps() EnergyProps {
	return EnergyProps{
		Max:               100,
		RechargePerSecond: 10,
		UpkeepBase:        1,
		UpkeepPerCell:     0.1,
		EnergyPerDamage:   1,
		ResetDelay:        2,
	}
}

func newTestState(maxRadius, minRadius int, host *mockHost) *RadialState {
	s, err := NewRadialState(host, testProps(maxRadius, minRadius))
	if err != nil {
		panic(err)
	}
	return s
}
