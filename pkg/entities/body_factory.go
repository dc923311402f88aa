package entities

import (
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// BodyFactory 物理世界的刚体创建接口
// 实体工厂通过它把新实体插入模拟，由 physics.World 实现
type BodyFactory interface {
	CreateBall(id ecs.EntityID, pos types.Vec2, radius, mass float64) error
	CreateBoundary(id ecs.EntityID, shape components.BoundaryShape) error
}
