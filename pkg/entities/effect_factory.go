package entities

import (
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// MergeEffectDuration 合并光环持续时间（秒）
const MergeEffectDuration = 0.35

// NewMergeEffectEntity 创建合并光环实体
// 光环从新球半径扩散到 1.8 倍并淡出，颜色取新球等级的颜色
//
// 参数:
//   - em: 实体管理器
//   - pos: 合并中点（世界坐标）
//   - tier: 合并产出的等级定义
func NewMergeEffectEntity(em *ecs.EntityManager, pos types.Vec2, tier config.Tier) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.MergeEffectComponent{
		StartRadius: tier.Radius,
		EndRadius:   tier.Radius * 1.8,
		Color:       tier.Color,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: MergeEffectDuration,
	})

	return id
}
