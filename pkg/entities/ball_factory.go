package entities

import (
	"fmt"
	"log"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// NewBallEntity 创建一个球实体并插入物理模拟
//
// 球的半径和质量由等级表决定；刚体为动态圆形。
//
// 参数:
//   - em: 实体管理器
//   - bodies: 物理世界（创建动态圆形刚体）
//   - tiers: 等级表
//   - tier: 球的等级，必须在 [0, N) 范围内
//   - pos: 生成位置（世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 刚体创建失败时返回错误（实体会被回收）
func NewBallEntity(em *ecs.EntityManager, bodies BodyFactory, tiers *config.TierTable, tier types.TierIndex, pos types.Vec2) (ecs.EntityID, error) {
	// 越界等级属于程序错误，TierAt 会直接 panic
	def := tiers.TierAt(tier)

	id := em.CreateEntity()

	em.AddComponent(id, &components.BallComponent{Tier: tier})
	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.VelocityComponent{})

	if err := bodies.CreateBall(id, pos, def.Radius, def.Mass); err != nil {
		em.DestroyEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create body for %s ball: %w", tier, err)
	}

	log.Printf("[BallFactory] Spawned %s ball %d at (%.1f, %.1f)", tier, id, pos.X, pos.Y)
	return id, nil
}
