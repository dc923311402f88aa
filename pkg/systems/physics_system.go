package systems

import (
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// BodyStepper 物理系统需要的模拟接口
type BodyStepper interface {
	Step(dt float64)
	Position(id ecs.EntityID) (types.Vec2, bool)
	Velocity(id ecs.EntityID) (types.Vec2, bool)
}

// PhysicsSystem 推进刚体模拟并把结果同步回组件
//
// 同步之后 PositionComponent 即为本帧模拟结束时的位置，
// 合并系统据此计算中点，渲染系统据此绘制。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	world         BodyStepper
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, world BodyStepper) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		world:         world,
	}
}

// Update 推进模拟 deltaTime 秒，然后同步所有球的位置与速度
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.world.Step(deltaTime)

	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		p, ok := s.world.Position(id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X, pos.Y = p.X, p.Y

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			if v, ok := s.world.Velocity(id); ok {
				vel.VX, vel.VY = v.X, v.Y
			}
		}
	}
}
