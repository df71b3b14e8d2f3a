package systems

import (
	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SliderMouseInput 滑块系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type SliderMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// ebitenSliderMouseInput Ebitengine 默认实现
type ebitenSliderMouseInput struct{}

func (e *ebitenSliderMouseInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (e *ebitenSliderMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

// defaultSliderMouseInput 默认鼠标输入实例
var defaultSliderMouseInput SliderMouseInput = &ebitenSliderMouseInput{}

// SliderSystem 滑块交互系统
// 负责处理滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内
//   - 检测鼠标左键按下/拖拽状态
//   - 计算点击位置并转换为 0.0~1.0 的 Value
//   - 更新 SliderComponent.Value 并调用 OnValueChange 回调
//   - 拖拽结束时播放 ClickSoundID
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    SliderMouseInput
	sound         SoundPlayer
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager, sound SoundPlayer) *SliderSystem {
	return NewSliderSystemWithInput(em, sound, defaultSliderMouseInput)
}

// NewSliderSystemWithInput 创建带自定义鼠标输入的滑块交互系统（用于测试）
func NewSliderSystemWithInput(em *ecs.EntityManager, sound SoundPlayer, input SliderMouseInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
		sound:         sound,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.UIPositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.UIPositionComponent](s.entityManager, entityID)
		if slider == nil || pos == nil {
			continue
		}

		isInSlot := s.isMouseInSlot(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider.SlotWidth, slider.SlotHeight)
		slider.IsHovered = isInSlot

		wasDragging := slider.IsDragging

		if mousePressed {
			if isInSlot || slider.IsDragging {
				slider.IsDragging = true

				newValue := s.calculateValue(float64(mouseX), pos.X, slider.SlotWidth)
				if newValue < 0.0 {
					newValue = 0.0
				}
				if newValue > 1.0 {
					newValue = 1.0
				}

				if newValue != slider.Value {
					slider.Value = newValue
					if slider.OnValueChange != nil {
						slider.OnValueChange(newValue)
					}
				}
			}
		} else {
			slider.IsDragging = false

			// 只在真正拖拽过后释放时播放
			if wasDragging {
				playSound(s.sound, slider.ClickSoundID)
			}
		}
	}
}

// isMouseInSlot 检测鼠标是否在滑槽区域内
func (s *SliderSystem) isMouseInSlot(mouseX, mouseY, slotX, slotY, slotWidth, slotHeight float64) bool {
	return mouseX >= slotX &&
		mouseX <= slotX+slotWidth &&
		mouseY >= slotY &&
		mouseY <= slotY+slotHeight
}

// calculateValue 根据鼠标X坐标计算滑块值
func (s *SliderSystem) calculateValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	return (mouseX - slotX) / slotWidth
}
