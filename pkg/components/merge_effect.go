package components

import "image/color"

// MergeEffectComponent 合并时在中点播放的扩散光环
// 与 LifetimeComponent 配合：随生命周期推进，光环放大并淡出
type MergeEffectComponent struct {
	StartRadius float64
	EndRadius   float64
	Color       color.RGBA
}
