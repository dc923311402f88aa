package components

import (
	"fmt"

	"github.com/decker502/mergebox/pkg/types"
)

// GameBoxComponent 容纳所有球的盒子（单例，中心位于原点）
//
// 所有派生几何（内壁位置、天花板外沿等）都由 Width/Height/WallThickness 现算，
// 不做缓存，盒子尺寸在运行时改变后几何会立即跟随。
type GameBoxComponent struct {
	Width         float64
	Height        float64
	WallThickness float64
}

// LeftInnerX 左墙内沿的 X 坐标
func (b *GameBoxComponent) LeftInnerX() float64 {
	return -b.Width/2 + b.WallThickness
}

// RightInnerX 右墙内沿的 X 坐标
func (b *GameBoxComponent) RightInnerX() float64 {
	return b.Width/2 - b.WallThickness
}

// CeilingOuterY 天花板外沿的 Y 坐标
func (b *GameBoxComponent) CeilingOuterY() float64 {
	return b.Height/2 + b.WallThickness
}

// ClampX 将 x 限制在左右内壁之间
func (b *GameBoxComponent) ClampX(x float64) float64 {
	left, right := b.LeftInnerX(), b.RightInnerX()
	if x < left {
		return left
	}
	if x > right {
		return right
	}
	return x
}

// BoundaryShape 边界碰撞体的几何描述
type BoundaryShape struct {
	Center      types.Vec2 // 碰撞盒中心（世界坐标）
	HalfExtents types.Vec2 // 碰撞盒半宽、半高
	Sensor      bool       // 仅感应，不产生碰撞力
}

// BoundaryGeometry 计算指定边界元素的几何
//
// 墙壁中心位于盒子左右边缘，地板、天花板中心位于上下边缘，
// 半厚度为 WallThickness，因此左墙内沿恰好是 LeftInnerX，天花板外沿恰好是 CeilingOuterY。
func (b *GameBoxComponent) BoundaryGeometry(kind types.BoundaryKind) BoundaryShape {
	t := b.WallThickness
	switch kind {
	case types.BoundaryLeft:
		return BoundaryShape{
			Center:      types.Vec2{X: -b.Width / 2},
			HalfExtents: types.Vec2{X: t, Y: b.Height / 2},
		}
	case types.BoundaryRight:
		return BoundaryShape{
			Center:      types.Vec2{X: b.Width / 2},
			HalfExtents: types.Vec2{X: t, Y: b.Height / 2},
		}
	case types.BoundaryFloor:
		return BoundaryShape{
			Center:      types.Vec2{Y: -b.Height / 2},
			HalfExtents: types.Vec2{X: b.Width / 2, Y: t},
		}
	case types.BoundaryCeiling:
		return BoundaryShape{
			Center:      types.Vec2{Y: b.Height / 2},
			HalfExtents: types.Vec2{X: b.Width / 2, Y: t},
			Sensor:      true,
		}
	default:
		panic(fmt.Sprintf("unknown boundary kind %d", int(kind)))
	}
}
