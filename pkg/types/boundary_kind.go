package types

// BoundaryKind 定义盒子边界元素的类型
type BoundaryKind int

const (
	// BoundaryLeft 左墙
	BoundaryLeft BoundaryKind = iota
	// BoundaryRight 右墙
	BoundaryRight
	// BoundaryFloor 地板
	BoundaryFloor
	// BoundaryCeiling 天花板（仅感应，不产生碰撞力）
	BoundaryCeiling
)

// AllBoundaryKinds 按创建顺序列出所有边界类型
var AllBoundaryKinds = [...]BoundaryKind{
	BoundaryLeft,
	BoundaryRight,
	BoundaryFloor,
	BoundaryCeiling,
}

// String 返回边界类型的字符串表示
func (k BoundaryKind) String() string {
	switch k {
	case BoundaryLeft:
		return "LeftWall"
	case BoundaryRight:
		return "RightWall"
	case BoundaryFloor:
		return "Floor"
	case BoundaryCeiling:
		return "Ceiling"
	default:
		return "Unknown"
	}
}
