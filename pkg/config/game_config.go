package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 游戏配置文件路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏全局配置
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Box     BoxConfig     `yaml:"box"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	Title  string `yaml:"title"`
}

// BoxConfig 游戏盒子配置（世界单位，盒子中心位于原点）
type BoxConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wallThickness"`
	// SpawnOffset 新球生成点相对天花板外沿的高度
	SpawnOffset float64 `yaml:"spawnOffset"`
}

// PhysicsConfig 物理模拟配置
type PhysicsConfig struct {
	PixelsPerMeter     float64 `yaml:"pixelsPerMeter"` // 世界单位与米的换算
	Gravity            float64 `yaml:"gravity"`        // 竖直重力加速度（米/秒²，向上为正）
	Restitution        float64 `yaml:"restitution"`    // 球的弹性系数
	Friction           float64 `yaml:"friction"`
	VelocityIterations int     `yaml:"velocityIterations"`
	PositionIterations int     `yaml:"positionIterations"`
}

// CameraConfig 摄像机配置
type CameraConfig struct {
	Zoom float64 `yaml:"zoom"` // 每个世界单位对应的屏幕像素数
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 ~ 1.0
	SampleRate int     `yaml:"sampleRate"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Merge Box",
		},
		Box: BoxConfig{
			Width:         200,
			Height:        300,
			WallThickness: 5,
			SpawnOffset:   50,
		},
		Physics: PhysicsConfig{
			PixelsPerMeter:     100,
			Gravity:            -9.81,
			Restitution:        0.7,
			Friction:           0.2,
			VelocityIterations: 8,
			PositionIterations: 3,
		},
		Camera: CameraConfig{
			Zoom: 1.5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 48000,
		},
	}
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Box.Width <= 0 || c.Box.Height <= 0 {
		return fmt.Errorf("box size must be positive, got %.1fx%.1f", c.Box.Width, c.Box.Height)
	}
	if c.Box.WallThickness < 0 {
		return fmt.Errorf("wall thickness must be >= 0, got %.1f", c.Box.WallThickness)
	}
	// 内壁之间必须留有空间
	if c.Box.Width <= 2*c.Box.WallThickness {
		return fmt.Errorf("box width %.1f leaves no room inside walls of thickness %.1f",
			c.Box.Width, c.Box.WallThickness)
	}
	if c.Physics.PixelsPerMeter <= 0 {
		return fmt.Errorf("pixelsPerMeter must be positive, got %.1f", c.Physics.PixelsPerMeter)
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0, 1], got %.2f", c.Physics.Restitution)
	}
	if c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0 {
		return fmt.Errorf("solver iterations must be positive, got velocity=%d position=%d",
			c.Physics.VelocityIterations, c.Physics.PositionIterations)
	}
	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("camera zoom must be positive, got %.2f", c.Camera.Zoom)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := readConfigData(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded game config from %s: box=%.0fx%.0f wall=%.1f",
		path, cfg.Box.Width, cfg.Box.Height, cfg.Box.WallThickness)
	return cfg, nil
}
