// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/embedded"
	"github.com/decker502/mergebox/pkg/game"
	"github.com/decker502/mergebox/pkg/scenes"
	"github.com/decker502/mergebox/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内置的 data/game.yaml
	ConfigPath string
	// TiersPath 等级表文件路径，为空时使用内置的 data/tiers.yaml
	TiersPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内置配置时应先调用 embedded.Init()；未初始化时回退到代码中的默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	tiers, err := loadTierTable(cfg.TiersPath)
	if err != nil {
		return nil, fmt.Errorf("等级表加载失败: %w", err)
	}
	config.InitTierTable(tiers)

	// 初始化音频上下文
	var audioContext *audio.Context
	if gameConfig.Audio.Enabled {
		audioContext = audio.NewContext(gameConfig.Audio.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, gameConfig.Audio, config.Tiers().Len())
	log.Printf("[App] AudioManager initialized")

	camera := utils.NewCamera(gameConfig.Window.Width, gameConfig.Window.Height, gameConfig.Camera.Zoom)
	pointer := utils.NewEbitenPointer(camera)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(gameConfig, config.Tiers(), audioManager, pointer, camera, cfg.Verbose)
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 按路径加载游戏配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		if !embedded.IsInitialized() {
			log.Printf("[App] Embedded data not initialized, using default game config")
			return config.DefaultGameConfig(), nil
		}
		path = config.DefaultGameConfigPath
	}
	return config.LoadGameConfig(path)
}

// loadTierTable 按路径加载等级表
func loadTierTable(path string) (*config.TierTable, error) {
	if path == "" {
		if !embedded.IsInitialized() {
			log.Printf("[App] Embedded data not initialized, using default tier table")
			return config.DefaultTierTable(), nil
		}
		path = config.DefaultTierConfigPath
	}
	return config.LoadTierTable(path)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// R 清空盒子重新开始
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.sceneManager.Restart(); err != nil {
			return err
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
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

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
