package components

import "github.com/decker502/mergebox/pkg/types"

// BoundaryComponent 标记实体为盒子的一个边界元素
type BoundaryComponent struct {
	Kind types.BoundaryKind
}
