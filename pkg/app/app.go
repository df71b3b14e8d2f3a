// Package app 提供护盾沙盒应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，main.go 通过 NewApp() 创建应用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/radial-shield/pkg/components"
	"github.com/decker502/radial-shield/pkg/config"
	"github.com/decker502/radial-shield/pkg/ecs"
	"github.com/decker502/radial-shield/pkg/entities"
	"github.com/decker502/radial-shield/pkg/game"
	"github.com/decker502/radial-shield/pkg/grid"
	"github.com/decker502/radial-shield/pkg/modules"
	"github.com/decker502/radial-shield/pkg/render"
	"github.com/decker502/radial-shield/pkg/shield"
	"github.com/decker502/radial-shield/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储目录名
const DefaultAppName = "radial_shield_sandbox"

// 沙盒世界尺寸（格）
const (
	worldWidth  = 96
	worldHeight = 64
)

var backgroundColor = color.RGBA{R: 28, G: 34, B: 30, A: 255}

// sandboxShield 沙盒初始护盾布局
type sandboxShield struct {
	DefName string
	Cell    grid.Cell
	Faction components.Faction
	SaveKey string
}

var sandboxLayout = []sandboxShield{
	{DefName: "radial_large", Cell: grid.Cell{X: 30, Z: 30}, Faction: components.FactionPlayer, SaveKey: "player_main"},
	{DefName: "radial_small", Cell: grid.Cell{X: 52, Z: 22}, Faction: components.FactionPlayer, SaveKey: "player_outpost"},
	{DefName: "radial_fixed", Cell: grid.Cell{X: 70, Z: 44}, Faction: components.FactionHostile, SaveKey: "hostile_bunker"},
}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AppName gdata 存储目录名，为空时使用 DefaultAppName
	AppName string
	// Seed 弹道随机种子，0 表示使用固定默认种子
	Seed int64
}

// App 是沙盒应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	renderer      *render.EbitenRenderer
	rng           *rand.Rand
	verbose       bool

	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	saveManager     *game.ShieldSaveManager

	cameraSystem           *systems.CameraSystem
	shieldSystem           *systems.ShieldSystem
	projectileSystem       *systems.ShieldProjectileSystem
	lifetimeSystem         *systems.LifetimeSystem
	selectionSystem        *systems.SelectionSystem
	sliderSystem           *systems.SliderSystem
	shieldRenderSystem     *systems.ShieldRenderSystem
	projectileRenderSystem *systems.ProjectileRenderSystem
	energyBarRenderSystem  *systems.EnergyBarRenderSystem

	radiusSlider *modules.RadiusSliderModule

	spawnTimer float64
	status     string
	hudFont    text.Face

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化沙盒应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	defs, err := config.LoadEmbeddedShieldDefs()
	if err != nil {
		return nil, fmt.Errorf("护盾配置加载失败: %w", err)
	}
	log.Printf("[Config] 成功加载 %d 个护盾类型: %v", len(defs.Shields), defs.Names())

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	gdataManager := openStorage(appName)

	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(audio.NewContext(48000), settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	em := ecs.NewEntityManager()
	renderer := render.NewEbitenRenderer(config.CellSize)
	a := &App{
		entityManager:          em,
		renderer:               renderer,
		rng:                    rand.New(rand.NewSource(seed)),
		verbose:                cfg.Verbose,
		settingsManager:        settingsManager,
		audioManager:           audioManager,
		saveManager:            game.NewShieldSaveManager(gdataManager, em),
		cameraSystem:           systems.NewCameraSystem(em, &renderer.Camera),
		shieldSystem:           systems.NewShieldSystem(em),
		projectileSystem:       systems.NewShieldProjectileSystem(em, audioManager),
		lifetimeSystem:         systems.NewLifetimeSystem(em),
		selectionSystem:        systems.NewSelectionSystem(em),
		sliderSystem:           systems.NewSliderSystem(em, audioManager),
		shieldRenderSystem:     systems.NewShieldRenderSystem(em),
		projectileRenderSystem: systems.NewProjectileRenderSystem(em, entities.ShieldDiscMesh()),
		energyBarRenderSystem:  systems.NewEnergyBarRenderSystem(em),
		radiusSlider:           modules.NewRadiusSliderModule(em, config.ScreenWidth/2, config.ScreenHeight-70),
	}

	for _, s := range sandboxLayout {
		def, err := defs.Get(s.DefName)
		if err != nil {
			return nil, err
		}
		id, err := entities.NewRadialShield(em, s.DefName, def, s.Cell, s.Faction)
		if err != nil {
			return nil, fmt.Errorf("创建护盾 %s 失败: %w", s.SaveKey, err)
		}
		ecs.AddComponent(em, id, &components.SaveKeyComponent{Key: s.SaveKey})
	}

	// 镜头初始对准世界中心
	a.cameraSystem.MoveTo(grid.Vec2{
		X: worldWidth/2 - config.ScreenWidth/config.CellSize/2,
		Y: worldHeight/2 - config.ScreenHeight/config.CellSize/2,
	}, 0)

	if n, err := a.saveManager.Load(); err != nil {
		log.Printf("[App] Warning: Failed to load shield saves: %v", err)
	} else if n > 0 {
		log.Printf("[App] Restored %d shields from save", n)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a.status = "Tab 选择 / R 渲染开关 / S 半径 / P 电源 / F5 保存 / F9 读档"
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为内存模式）
func openStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (saves are kept in memory)", err)
		return nil
	}
	return manager
}

// Update 更新沙盒逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.handleInput(deltaTime)

	a.cameraSystem.Update(deltaTime)
	a.sliderSystem.Update(deltaTime)
	a.shieldSystem.Update(deltaTime)
	a.spawnProjectiles(deltaTime)
	a.projectileSystem.Update(deltaTime)
	a.lifetimeSystem.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()
	return nil
}

// toggleFullscreen 切换全屏并写入设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

// handleInput 处理键盘与鼠标输入
func (a *App) handleInput(deltaTime float64) {
	a.panCamera(deltaTime)

	if a.radiusSlider.IsOpen() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
			a.radiusSlider.Close()
		}
		// 弹窗打开时鼠标交给 SliderSystem
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.selectionSystem.SelectAt(a.screenToWorld(x, y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if _, ok := a.selectionSystem.SelectNext(); ok {
			a.focusSelected()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.selectionSystem.ClearSelection()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.activateGizmo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.activateGizmo(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if sh, ok := a.selectionSystem.SelectedShield(); ok {
			sh.Energy().SetPowered(!sh.Energy().Powered())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		a.settingsManager.ToggleEnergyBars()
		a.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settingsManager.SetSoundEnabled(!a.settingsManager.GetSettings().SoundEnabled)
		a.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.load()
	}
}

// activateGizmo 触发选中护盾的第 index 个操作按钮
func (a *App) activateGizmo(index int) {
	gizmos := a.selectionSystem.SelectedGizmos()
	if index >= len(gizmos) {
		return
	}
	g := gizmos[index]
	if g.Sound != "" {
		a.audioManager.PlaySound(g.Sound)
	}

	switch g.Kind {
	case shield.GizmoToggle:
		g.Toggle()
	case shield.GizmoAction:
		if err := a.radiusSlider.Open(g.Slider); err != nil {
			log.Printf("[App] Warning: Failed to open slider: %v", err)
		}
	}
}

// panCamera 方向键平移镜头
func (a *App) panCamera(deltaTime float64) {
	step := config.CameraPanSpeed * deltaTime
	var delta grid.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		delta.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		delta.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		delta.Y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		delta.Y += step
	}
	a.cameraSystem.Pan(delta)
}

// focusSelected 镜头移动到选中的护盾
func (a *App) focusSelected() {
	if sh, ok := a.selectionSystem.SelectedShield(); ok {
		a.cameraSystem.FocusOn(sh.Center(), config.ScreenWidth, config.ScreenHeight, a.renderer.CellSize)
	}
}

// screenToWorld 屏幕像素坐标转世界坐标（格）
func (a *App) screenToWorld(x, y int) grid.Vec2 {
	return grid.Vec2{
		X: a.renderer.Camera.X + float64(x)/a.renderer.CellSize,
		Y: a.renderer.Camera.Y + float64(y)/a.renderer.CellSize,
	}
}

// spawnProjectiles 按固定间隔从世界边缘向玩家护盾发射敌方弹道
func (a *App) spawnProjectiles(deltaTime float64) {
	a.spawnTimer += deltaTime
	for a.spawnTimer >= config.ProjectileSpawnInterval {
		a.spawnTimer -= config.ProjectileSpawnInterval
		a.spawnProjectile()
	}
}

func (a *App) spawnProjectile() {
	var targets []grid.Vec2
	for _, id := range ecs.GetEntitiesWith2[*components.ShieldComponent, *components.FactionComponent](a.entityManager) {
		comp, _ := ecs.GetComponent[*components.ShieldComponent](a.entityManager, id)
		faction, _ := ecs.GetComponent[*components.FactionComponent](a.entityManager, id)
		if faction.Faction == components.FactionPlayer && comp.Shield != nil {
			targets = append(targets, comp.Shield.Center())
		}
	}
	if len(targets) == 0 {
		return
	}

	origin := a.randomEdgePoint()
	target := targets[a.rng.Intn(len(targets))]
	// 目标附近随机偏移，部分弹道会从护盾边缘擦过
	target.X += (a.rng.Float64() - 0.5) * 8
	target.Y += (a.rng.Float64() - 0.5) * 8

	_, err := entities.NewProjectile(a.entityManager, entities.ProjectileSpec{
		Origin:    origin,
		Direction: target.Sub(origin),
		Speed:     config.ProjectileSpeed,
		Damage:    config.ProjectileDamage,
		MaxRange:  config.ProjectileMaxRange,
		Faction:   components.FactionHostile,
	})
	if err != nil {
		log.Printf("[App] Warning: Failed to spawn projectile: %v", err)
	}
}

// randomEdgePoint 世界边界上的随机点
func (a *App) randomEdgePoint() grid.Vec2 {
	t := a.rng.Float64()
	switch a.rng.Intn(4) {
	case 0:
		return grid.Vec2{X: t * worldWidth, Y: 0}
	case 1:
		return grid.Vec2{X: t * worldWidth, Y: worldHeight}
	case 2:
		return grid.Vec2{X: 0, Y: t * worldHeight}
	default:
		return grid.Vec2{X: worldWidth, Y: t * worldHeight}
	}
}

func (a *App) save() {
	n, err := a.saveManager.Save()
	if err != nil {
		a.status = fmt.Sprintf("保存失败: %v", err)
		log.Printf("[App] Save failed: %v", err)
		return
	}
	where := "磁盘"
	if !a.saveManager.IsPersistent() {
		where = "内存"
	}
	a.status = fmt.Sprintf("已保存 %d 个护盾（%s）", n, where)
}

func (a *App) load() {
	n, err := a.saveManager.Load()
	if err != nil {
		a.status = fmt.Sprintf("读档失败: %v", err)
		log.Printf("[App] Load failed: %v", err)
		return
	}
	a.status = fmt.Sprintf("已恢复 %d 个护盾", n)
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制沙盒画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	viewport := render.ViewportRect(a.renderer.Camera, config.ScreenWidth, config.ScreenHeight, a.renderer.CellSize)
	a.shieldRenderSystem.Draw(a.renderer, viewport)
	a.projectileRenderSystem.Draw(a.renderer, viewport)
	a.renderer.Flush(screen)

	if a.settingsManager.GetSettings().ShowEnergyBars {
		a.energyBarRenderSystem.Draw(screen, a.renderer)
	}

	a.radiusSlider.Draw(screen)
	a.drawHUD(screen)
}

// drawHUD 绘制状态栏与选中护盾信息
func (a *App) drawHUD(screen *ebiten.Image) {
	if a.hudFont == nil {
		a.hudFont = render.LabelFace(13)
	}

	lines := []string{a.status}
	if sh, ok := a.selectionSystem.SelectedShield(); ok {
		e := sh.Energy()
		lines = append(lines, fmt.Sprintf("半径 %d/%d  格子 %d  能量 %.0f/%.0f",
			sh.Radius(), sh.Props().MaxRadius, sh.ProtectedCellCount(), math.Floor(e.Current()), e.Max()))
		if e.Broken() {
			lines = append(lines, fmt.Sprintf("重启中 %.1fs", e.ResetRemaining()))
		}
	}

	for i, line := range lines {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(8, 8+float64(i)*18)
		opts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, a.hudFont, opts)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// SaveOnExit 退出前保存护盾与设置
func (a *App) SaveOnExit() {
	if _, err := a.saveManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save shields on exit: %v", err)
	}
	a.saveSettings()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
