package shield

// GizmoKind 操作按钮类型
type GizmoKind int

const (
	// GizmoToggle 开关按钮
	GizmoToggle GizmoKind = iota
	// GizmoAction 点击后打开整数滑块弹窗
	GizmoAction
)

// 按钮翻译键与图标
const (
	RenderFieldLabelKey = "fd.shield.render_field.label"
	RenderFieldDescKey  = "fd.shield.render_field.description"
	RadiusLabelKey      = "radius.label"
	RadiusDescKey       = "radius.description"

	IconBlank     = "UiBlank"
	IconSetRadius = "UiSetRadius"

	// SoundClick 打开半径滑块时播放的音效
	SoundClick = "Click"
)

// IntSliderRequest 整数滑块弹窗请求
type IntSliderRequest struct {
	Label string
	Min   int
	Max   int
	Get   func() int
	Set   func(int)
}

// Gizmo 选中护盾实体时显示的操作按钮描述
type Gizmo struct {
	Kind        GizmoKind
	Label       string // 翻译键
	Description string // 翻译键
	Icon        string
	Sound       string

	// GizmoToggle
	IsActive func() bool
	Toggle   func()

	// GizmoAction
	Slider *IntSliderRequest
}

// Gizmos 返回按钮列表
//
// 渲染开关总是存在；半径滑块只对玩家阵营、且半径范围可调的护盾提供。
func (s *RadialState) Gizmos() []Gizmo {
	gizmos := []Gizmo{{
		Kind:        GizmoToggle,
		Label:       RenderFieldLabelKey,
		Description: RenderFieldDescKey,
		Icon:        IconBlank,
		IsActive:    s.RenderVisible,
		Toggle:      s.ToggleRender,
	}}

	if s.host.IsPlayerOwned() && s.props.MinRadius != s.props.MaxRadius {
		gizmos = append(gizmos, Gizmo{
			Kind:        GizmoAction,
			Label:       RadiusLabelKey,
			Description: RadiusDescKey,
			Icon:        IconSetRadius,
			Sound:       SoundClick,
			Slider: &IntSliderRequest{
				Label: RadiusLabelKey,
				Min:   s.props.MinRadius,
				Max:   s.props.MaxRadius,
				Get:   s.Radius,
				Set:   s.SetRadius,
			},
		})
	}

	return gizmos
}
