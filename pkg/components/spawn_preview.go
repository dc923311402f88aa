package components

// SpawnPreviewComponent 标记实体为生成预览（跟随指针的半透明球）
// 与 PositionComponent 配合使用，位置始终是下一次点击将生成球的位置
type SpawnPreviewComponent struct {
	// Visible 指针在窗口内时为 true；指针离开窗口时隐藏，且点击不生成球
	Visible bool

	// Alpha 透明度 (0.0-1.0)
	Alpha float64
}
