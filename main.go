package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/mergebox/pkg/app"
	"github.com/decker502/mergebox/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志和调试信息")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	tiersPath := flag.String("tiers", "", "等级表文件路径（默认使用内置 data/tiers.yaml）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		TiersPath:  *tiersPath,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
