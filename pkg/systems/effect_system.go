package systems

import (
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
)

// EffectSystem 推进限时实体（合并光环等）的生命周期，到期后标记删除
type EffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{entityManager: em}
}

// Update 为每个 LifetimeComponent 累加时间，过期实体交给帧末统一清理
func (s *EffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
