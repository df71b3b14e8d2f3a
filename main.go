package main

import (
	"flag"
	"log"

	"github.com/decker502/radial-shield/pkg/app"
	"github.com/decker502/radial-shield/pkg/config"
	"github.com/decker502/radial-shield/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	appName = flag.String("app", app.DefaultAppName, "存档目录名")
	seed    = flag.Int64("seed", 0, "弹道随机种子（0 使用默认种子）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	sandbox, err := app.NewApp(app.Config{
		Verbose: *verbose,
		AppName: *appName,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("沙盒初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Radial Shield Sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(sandbox); err != nil {
		log.Fatal(err)
	}

	// 窗口关闭后保存护盾状态与设置
	sandbox.SaveOnExit()
}
