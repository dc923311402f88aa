package systems

import (
	"log"

	"github.com/decker502/mergebox/internal/physics"
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/entities"
	"github.com/decker502/mergebox/pkg/types"
)

// SpawnRequest 合并产生的新球
type SpawnRequest struct {
	Tier     types.TierIndex
	Position types.Vec2
}

// MergeResult 一批碰撞事件的合并结果
type MergeResult struct {
	Despawn []ecs.EntityID
	Spawn   []SpawnRequest
}

// MergeWorld 合并系统需要的物理接口
type MergeWorld interface {
	entities.BodyFactory
	DrainCollisions() []physics.CollisionEvent
	DestroyBody(id ecs.EntityID) bool
}

// MergeSoundPlayer 合并提示音
type MergeSoundPlayer interface {
	PlayMergeSound(tier types.TierIndex) bool
}

// MergeSystem 把同等级球的碰撞合并为下一等级的球
//
// 每帧在物理步进之后运行：取走本帧的碰撞批次，按顺序逐个处理，
// 先决定整批结果（Resolve），再统一执行销毁与生成（apply）。
//
// 同一批次内，已被合并掉的球不会再参与后续事件，因此每个球在一帧内至多合并一次。
// 三个以上同等级球同时接触时，谁和谁配对取决于事件顺序。
type MergeSystem struct {
	entityManager *ecs.EntityManager
	world         MergeWorld
	tiers         *config.TierTable
	sound         MergeSoundPlayer

	merges int
}

// NewMergeSystem 创建合并系统
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界（碰撞批次来源，销毁与创建刚体）
//   - tiers: 等级表
//   - sound: 合并提示音，可为 nil
func NewMergeSystem(em *ecs.EntityManager, world MergeWorld, tiers *config.TierTable, sound MergeSoundPlayer) *MergeSystem {
	return &MergeSystem{
		entityManager: em,
		world:         world,
		tiers:         tiers,
		sound:         sound,
	}
}

// Resolve 计算一批碰撞事件的合并结果，不修改任何状态
//
// 对每个事件 (a, b)，以下情况跳过：
//   - a == b
//   - 任一端不是存活的球（实体不存在、没有 BallComponent、或本批次已被合并）
//   - 两球等级不同
//   - 等级已是最高级
//
// 否则两球都被移除，并在两球位置的中点生成下一等级的球。
func (s *MergeSystem) Resolve(events []physics.CollisionEvent) MergeResult {
	var result MergeResult
	consumed := make(map[ecs.EntityID]struct{}, 2*len(events))

	for _, ev := range events {
		if ev.A == ev.B {
			continue
		}
		ballA, posA, ok := s.liveBall(ev.A, consumed)
		if !ok {
			continue
		}
		ballB, posB, ok := s.liveBall(ev.B, consumed)
		if !ok {
			continue
		}
		if ballA.Tier != ballB.Tier {
			continue
		}
		next, ok := s.tiers.NextTier(ballA.Tier)
		if !ok {
			continue
		}

		consumed[ev.A] = struct{}{}
		consumed[ev.B] = struct{}{}
		result.Despawn = append(result.Despawn, ev.A, ev.B)
		result.Spawn = append(result.Spawn, SpawnRequest{
			Tier:     next,
			Position: types.Midpoint(posA, posB),
		})
	}
	return result
}

// liveBall 返回可参与合并的球及其位置
func (s *MergeSystem) liveBall(id ecs.EntityID, consumed map[ecs.EntityID]struct{}) (*components.BallComponent, types.Vec2, bool) {
	if _, done := consumed[id]; done {
		return nil, types.Vec2{}, false
	}
	if !s.entityManager.IsAlive(id) {
		return nil, types.Vec2{}, false
	}
	ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
	if !ok {
		return nil, types.Vec2{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, types.Vec2{}, false
	}
	return ball, types.Vec2{X: pos.X, Y: pos.Y}, true
}

// Update 处理本帧的碰撞批次
func (s *MergeSystem) Update(deltaTime float64) {
	events := s.world.DrainCollisions()
	if len(events) == 0 {
		return
	}
	s.apply(s.Resolve(events))
}

// apply 执行合并结果：先移除旧球，再生成新球
func (s *MergeSystem) apply(result MergeResult) {
	for _, id := range result.Despawn {
		s.world.DestroyBody(id)
		s.entityManager.DestroyEntity(id)
	}

	for _, req := range result.Spawn {
		id, err := entities.NewBallEntity(s.entityManager, s.world, s.tiers, req.Tier, req.Position)
		if err != nil {
			log.Printf("[MergeSystem] Warning: failed to spawn merged ball: %v", err)
			continue
		}
		entities.NewMergeEffectEntity(s.entityManager, req.Position, s.tiers.TierAt(req.Tier))
		if s.sound != nil {
			s.sound.PlayMergeSound(req.Tier)
		}
		s.merges++
		log.Printf("[MergeSystem] Merged into %s ball %d at (%.1f, %.1f)", req.Tier, id, req.Position.X, req.Position.Y)
	}
}

// MergeCount 返回累计合并次数
func (s *MergeSystem) MergeCount() int {
	return s.merges
}
