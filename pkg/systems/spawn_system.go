package systems

import (
	"log"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/entities"
	"github.com/decker502/mergebox/pkg/types"
	"github.com/decker502/mergebox/pkg/utils"
)

// SpawnTier 玩家投放的球的等级
const SpawnTier types.TierIndex = 0

// SpawnSystem 处理玩家投放球
//
// 每帧读取一次指针：
//   - 指针在窗口内：预览显示在 SpawnPosition(指针X) 处
//   - 指针不在窗口内：隐藏预览，点击也不会生成球
//   - 预览可见且主按钮刚按下：在预览位置生成一个最小等级的球
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	bodies        entities.BodyFactory
	tiers         *config.TierTable
	pointer       utils.PointerSource
	spawnOffset   float64

	previewID ecs.EntityID
}

// NewSpawnSystem 创建投放系统，同时创建预览实体
//
// 参数:
//   - em: 实体管理器
//   - bodies: 物理世界（为新球创建刚体）
//   - tiers: 等级表
//   - pointer: 指针来源，可为 nil（此时预览始终隐藏）
//   - spawnOffset: 生成点高出天花板外沿的距离
func NewSpawnSystem(em *ecs.EntityManager, bodies entities.BodyFactory, tiers *config.TierTable, pointer utils.PointerSource, spawnOffset float64) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		bodies:        bodies,
		tiers:         tiers,
		pointer:       pointer,
		spawnOffset:   spawnOffset,
		previewID:     entities.NewSpawnPreviewEntity(em),
	}
}

// SpawnPosition 计算期望 X 对应的生成位置
// X 被限制在左右内壁之间，Y 固定在天花板外沿之上 spawnOffset 处
func (s *SpawnSystem) SpawnPosition(desiredX float64) types.Vec2 {
	box := mustGameBox(s.entityManager)
	return types.Vec2{
		X: box.ClampX(desiredX),
		Y: box.CeilingOuterY() + s.spawnOffset,
	}
}

// SpawnAt 在 SpawnPosition(desiredX) 处生成一个最小等级的球
func (s *SpawnSystem) SpawnAt(desiredX float64) (ecs.EntityID, error) {
	return entities.NewBallEntity(s.entityManager, s.bodies, s.tiers, SpawnTier, s.SpawnPosition(desiredX))
}

// PreviewID 返回预览实体ID
func (s *SpawnSystem) PreviewID() ecs.EntityID {
	return s.previewID
}

// Update 更新预览并处理点击投放
func (s *SpawnSystem) Update(deltaTime float64) {
	preview, ok := ecs.GetComponent[*components.SpawnPreviewComponent](s.entityManager, s.previewID)
	if !ok {
		return
	}

	var state utils.PointerState
	if s.pointer != nil {
		state = s.pointer.Pointer()
	}
	if !state.HasPosition {
		preview.Visible = false
		return
	}

	pos := s.SpawnPosition(state.World.X)
	if p, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.previewID); ok {
		p.X, p.Y = pos.X, pos.Y
	}
	preview.Visible = true

	if !state.JustPressed {
		return
	}
	if _, err := entities.NewBallEntity(s.entityManager, s.bodies, s.tiers, SpawnTier, pos); err != nil {
		log.Printf("[SpawnSystem] Warning: spawn failed: %v", err)
	}
}
