package modules

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/render"
	"github.com/decker502/radial-shield/pkg/shield"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 半径滑块面板布局
const (
	radiusSliderWidth      = 240.0
	radiusSliderSlotHeight = 10.0
	radiusSliderKnobWidth  = 12.0
	radiusSliderKnobHeight = 22.0
	radiusSliderPadding    = 14.0
	radiusSliderLabelSize  = 14.0
)

var (
	radiusPanelColor = color.RGBA{R: 20, G: 24, B: 32, A: 220}
	radiusSlotColor  = color.RGBA{R: 70, G: 80, B: 96, A: 255}
	radiusFillColor  = color.RGBA{R: 90, G: 180, B: 255, A: 255}
	radiusKnobColor  = color.RGBA{R: 230, G: 236, B: 245, A: 255}
	radiusKnobActive = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RadiusSliderModule 整数滑块弹窗
//
// 职责：
//   - 根据 shield.IntSliderRequest 创建滑块实体（SliderComponent + UIPositionComponent）
//   - 将 SliderSystem 产生的 0.0~1.0 值映射为 [Min, Max] 的整数并回写 Set
//   - 绘制面板、滑槽、滑块与 "label: value" 文字
//
// 同一时刻只打开一个弹窗；再次 Open 会替换当前请求。
// 交互由外部的 SliderSystem 驱动，本模块只负责创建实体与渲染。
type RadiusSliderModule struct {
	entityManager *ecs.EntityManager

	request      *shield.IntSliderRequest
	sliderEntity ecs.EntityID
	isOpen       bool

	labelFont text.Face

	// 面板中心（屏幕坐标）
	centerX float64
	centerY float64
}

// NewRadiusSliderModule 创建半径滑块模块
//
// 参数:
//   - em: EntityManager 实例
//   - centerX, centerY: 弹窗中心的屏幕坐标
func NewRadiusSliderModule(em *ecs.EntityManager, centerX, centerY float64) *RadiusSliderModule {
	return &RadiusSliderModule{
		entityManager: em,
		centerX:       centerX,
		centerY:       centerY,
	}
}

// Open 打开滑块弹窗
func (m *RadiusSliderModule) Open(req *shield.IntSliderRequest) error {
	if req == nil || req.Get == nil || req.Set == nil {
		return fmt.Errorf("invalid slider request")
	}
	if req.Min > req.Max {
		return fmt.Errorf("invalid slider range [%d, %d]", req.Min, req.Max)
	}

	m.Close()

	m.request = req
	m.sliderEntity = m.entityManager.CreateEntity()
	slotX, slotY := m.slotOrigin()
	ecs.AddComponent(m.entityManager, m.sliderEntity, &components.UIPositionComponent{X: slotX, Y: slotY})
	ecs.AddComponent(m.entityManager, m.sliderEntity, &components.SliderComponent{
		SlotWidth:     radiusSliderWidth,
		SlotHeight:    radiusSliderSlotHeight,
		KnobWidth:     radiusSliderKnobWidth,
		KnobHeight:    radiusSliderKnobHeight,
		Value:         ToSliderValue(req.Get(), req.Min, req.Max),
		Label:         req.Label,
		OnValueChange: m.onValueChange,
		ClickSoundID:  shield.SoundClick,
	})
	m.isOpen = true

	log.Printf("[RadiusSliderModule] Opened: %s [%d, %d] = %d", req.Label, req.Min, req.Max, req.Get())
	return nil
}

// Close 关闭弹窗并销毁滑块实体
func (m *RadiusSliderModule) Close() {
	if !m.isOpen {
		return
	}
	m.entityManager.DestroyEntity(m.sliderEntity)
	m.isOpen = false
	m.request = nil
	m.sliderEntity = 0
}

// IsOpen 弹窗是否打开
func (m *RadiusSliderModule) IsOpen() bool {
	return m.isOpen
}

// Value 当前整数值，弹窗关闭时返回 0
func (m *RadiusSliderModule) Value() int {
	if !m.isOpen {
		return 0
	}
	return m.request.Get()
}

// onValueChange SliderSystem 回调
func (m *RadiusSliderModule) onValueChange(value float64) {
	if m.request == nil {
		return
	}
	m.request.Set(FromSliderValue(value, m.request.Min, m.request.Max))
}

// slotOrigin 滑槽左上角的屏幕坐标
func (m *RadiusSliderModule) slotOrigin() (float64, float64) {
	return m.centerX - radiusSliderWidth/2, m.centerY + radiusSliderPadding/2
}

// Draw 绘制弹窗
func (m *RadiusSliderModule) Draw(screen *ebiten.Image) {
	if !m.isOpen {
		return
	}
	slider, ok := ecs.GetComponent[*components.SliderComponent](m.entityManager, m.sliderEntity)
	if !ok {
		return
	}
	if m.labelFont == nil {
		m.labelFont = render.LabelFace(radiusSliderLabelSize)
	}

	slotX, slotY := m.slotOrigin()

	// 面板
	panelX := slotX - radiusSliderPadding
	panelY := m.centerY - radiusSliderLabelSize - radiusSliderPadding*1.5
	panelW := radiusSliderWidth + radiusSliderPadding*2
	panelH := (slotY + radiusSliderKnobHeight + radiusSliderPadding) - panelY
	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), radiusPanelColor, false)

	// 滑槽与已填充部分
	vector.DrawFilledRect(screen, float32(slotX), float32(slotY), float32(slider.SlotWidth), float32(slider.SlotHeight), radiusSlotColor, false)
	vector.DrawFilledRect(screen, float32(slotX), float32(slotY), float32(slider.SlotWidth*slider.Value), float32(slider.SlotHeight), radiusFillColor, false)

	// 滑块
	knobColor := radiusKnobColor
	if slider.IsDragging || slider.IsHovered {
		knobColor = radiusKnobActive
	}
	knobX := slotX + slider.SlotWidth*slider.Value - slider.KnobWidth/2
	knobY := slotY + slider.SlotHeight/2 - slider.KnobHeight/2
	vector.DrawFilledRect(screen, float32(knobX), float32(knobY), float32(slider.KnobWidth), float32(slider.KnobHeight), knobColor, true)

	// 标签
	label := fmt.Sprintf("%s: %d", slider.Label, m.Value())
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(slotX, panelY+radiusSliderPadding/2)
	opts.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, m.labelFont, opts)
}

// ToSliderValue 整数值映射为 0.0~1.0，Min == Max 时为 0
func ToSliderValue(v, minValue, maxValue int) float64 {
	if maxValue <= minValue {
		return 0
	}
	f := float64(v-minValue) / float64(maxValue-minValue)
	return math.Max(0, math.Min(1, f))
}

// FromSliderValue 0.0~1.0 映射为 [Min, Max] 的整数（四舍五入）
func FromSliderValue(value float64, minValue, maxValue int) int {
	value = math.Max(0, math.Min(1, value))
	return minValue + int(math.Round(value*float64(maxValue-minValue)))
}
