package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/mergebox/internal/physics"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/game"
	"github.com/decker502/mergebox/pkg/systems"
	"github.com/decker502/mergebox/pkg/utils"
)

// backgroundColor 场景背景色
var backgroundColor = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}

// GameScene 合并盒子的游戏场景
//
// 持有实体管理器、物理世界以及全部系统，每帧按固定顺序驱动：
//  1. SpawnSystem: 读取指针，更新预览，点击时投放球
//  2. GameBoxSystem: 按盒子尺寸重新应用边界几何
//  3. PhysicsSystem: 推进模拟并同步位置
//  4. MergeSystem: 处理本帧碰撞批次
//  5. EffectSystem: 推进合并光环
//  6. 帧末清理：移除标记删除的实体并释放其刚体
type GameScene struct {
	entityManager *ecs.EntityManager
	world         *physics.World
	verbose       bool

	gameBoxSystem *systems.GameBoxSystem
	spawnSystem   *systems.SpawnSystem
	physicsSystem *systems.PhysicsSystem
	mergeSystem   *systems.MergeSystem
	effectSystem  *systems.EffectSystem
	renderSystem  *systems.RenderSystem
}

var _ game.Scene = (*GameScene)(nil)

// NewGameScene 创建游戏场景并激活盒子
//
// 参数:
//   - cfg: 游戏配置（盒子尺寸、物理参数）
//   - tiers: 等级表
//   - sound: 合并提示音，可为 nil
//   - pointer: 指针来源，可为 nil
//   - camera: 世界到屏幕的变换
//   - verbose: 是否绘制调试信息
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 盒子激活失败时返回错误
func NewGameScene(cfg *config.GameConfig, tiers *config.TierTable, sound systems.MergeSoundPlayer, pointer utils.PointerSource, camera utils.Camera, verbose bool) (*GameScene, error) {
	em := ecs.NewEntityManager()
	world := physics.NewWorld(physics.Settings{
		PixelsPerMeter:     cfg.Physics.PixelsPerMeter,
		Gravity:            cfg.Physics.Gravity,
		Restitution:        cfg.Physics.Restitution,
		Friction:           cfg.Physics.Friction,
		VelocityIterations: cfg.Physics.VelocityIterations,
		PositionIterations: cfg.Physics.PositionIterations,
	})

	s := &GameScene{
		entityManager: em,
		world:         world,
		verbose:       verbose,
		gameBoxSystem: systems.NewGameBoxSystem(em, world, cfg.Box.Width, cfg.Box.Height, cfg.Box.WallThickness),
		physicsSystem: systems.NewPhysicsSystem(em, world),
		mergeSystem:   systems.NewMergeSystem(em, world, tiers, sound),
		effectSystem:  systems.NewEffectSystem(em),
		renderSystem:  systems.NewRenderSystem(em, tiers, camera),
	}

	if err := s.gameBoxSystem.Activate(); err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}
	s.spawnSystem = systems.NewSpawnSystem(em, world, tiers, pointer, cfg.Box.SpawnOffset)

	log.Printf("[GameScene] Created with %d tiers", tiers.Len())
	return s, nil
}

// Update 按固定顺序推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.spawnSystem.Update(deltaTime)
	s.gameBoxSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.mergeSystem.Update(deltaTime)
	s.effectSystem.Update(deltaTime)

	// 合并系统已立即销毁被合并球的刚体，这里对其他被删除的实体兜底
	for _, id := range s.entityManager.RemoveMarkedEntities() {
		s.world.DestroyBody(id)
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	if s.verbose {
		s.renderSystem.DrawHUD(screen, s.mergeSystem.MergeCount())
	}
}

// Resize 修改盒子尺寸，下一帧生效
func (s *GameScene) Resize(width, height float64) error {
	return s.gameBoxSystem.Resize(width, height)
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// World 返回场景的物理世界
func (s *GameScene) World() *physics.World {
	return s.world
}

// SpawnSystem 返回投放系统
func (s *GameScene) SpawnSystem() *systems.SpawnSystem {
	return s.spawnSystem
}

// MergeCount 返回累计合并次数
func (s *GameScene) MergeCount() int {
	return s.mergeSystem.MergeCount()
}
