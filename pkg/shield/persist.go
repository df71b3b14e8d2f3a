package shield

// 存档字段名
const (
	KeyRadius      = "radius"
	KeyRenderField = "renderField"

	KeyEnergy     = "energy"
	KeyPowered    = "powered"
	KeyResetTimer = "resetTimer"
)

// Store 键值存档
//
// 读取时键不存在返回 def。
type Store interface {
	SetInt(key string, value int)
	SetBool(key string, value bool)
	SetFloat(key string, value float64)
	GetInt(key string, def int) int
	GetBool(key string, def bool) bool
	GetFloat(key string, def float64) float64
}

// Persist 写入 {radius, renderField}，覆盖格子数不存档
func (s *RadialState) Persist(store Store) {
	store.SetInt(KeyRadius, s.radius)
	store.SetBool(KeyRenderField, s.renderVisible)
}

// Restore 读取存档
//
// 半径重新走 SetRadius 截断（读档时的 MaxRadius 可能与存档时不同），
// 覆盖格子数随之重算；renderField 缺失时默认开启。
func (s *RadialState) Restore(store Store) {
	s.SetRadius(store.GetInt(KeyRadius, 0))
	s.renderVisible = store.GetBool(KeyRenderField, true)
}

// Persist 写入能量状态
func (e *Energy) Persist(store Store) {
	store.SetFloat(KeyEnergy, e.current)
	store.SetBool(KeyPowered, e.powered)
	store.SetFloat(KeyResetTimer, e.resetTimer)
}

// Restore 读取能量状态，缺失字段按满能量、通电、未击穿处理
func (e *Energy) Restore(store Store) {
	e.current = clampFloat(store.GetFloat(KeyEnergy, e.props.Max), 0, e.props.Max)
	e.powered = store.GetBool(KeyPowered, true)
	e.resetTimer = store.GetFloat(KeyResetTimer, 0)
	if e.resetTimer < 0 {
		e.resetTimer = 0
	}
}
