package entities

import (
	"fmt"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/types"
)

// NewGameBoxEntity 创建盒子实体（只携带尺寸，不参与物理）
func NewGameBoxEntity(em *ecs.EntityManager, width, height, wallThickness float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.GameBoxComponent{
		Width:         width,
		Height:        height,
		WallThickness: wallThickness,
	})
	return id
}

// NewBoundaryEntity 创建盒子的一个边界元素（墙、地板或天花板）
//
// 几何由 box.BoundaryGeometry(kind) 计算，刚体为静态矩形；
// 天花板是仅感应的碰撞体。
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 刚体创建失败时返回错误（实体会被回收）
func NewBoundaryEntity(em *ecs.EntityManager, bodies BodyFactory, box *components.GameBoxComponent, kind types.BoundaryKind) (ecs.EntityID, error) {
	shape := box.BoundaryGeometry(kind)

	id := em.CreateEntity()
	em.AddComponent(id, &components.BoundaryComponent{Kind: kind})
	em.AddComponent(id, &components.PositionComponent{X: shape.Center.X, Y: shape.Center.Y})

	if err := bodies.CreateBoundary(id, shape); err != nil {
		em.DestroyEntity(id)
		return ecs.InvalidEntity, fmt.Errorf("failed to create %s body: %w", kind, err)
	}
	return id, nil
}
