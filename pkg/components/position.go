package components

// PositionComponent 实体在世界坐标中的位置（盒子中心为原点，Y 轴向上）
// 对于物理实体，该值每帧由物理系统从刚体同步，其他系统只读
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的线速度（世界单位/秒），由物理系统同步
type VelocityComponent struct {
	VX float64
	VY float64
}
