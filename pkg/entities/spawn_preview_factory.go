package entities

import (
	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/ecs"
)

// NewSpawnPreviewEntity 创建生成预览实体
// 预览默认隐藏，指针进入窗口后由 SpawnSystem 显示并更新位置
func NewSpawnPreviewEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.SpawnPreviewComponent{
		Visible: false,
		Alpha:   0.5,
	})
	return id
}
